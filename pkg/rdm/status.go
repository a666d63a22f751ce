//go:build rdm

package rdm

import "encoding/binary"

// StatusType filters or classifies a status message's severity. Closed set
// per E1.20 Table A-17: out-of-range values fail with
// InvalidParameterDataValue against PIDStatusMessages.
type StatusType byte

const (
	StatusNone     StatusType = 0x00
	StatusGetLastMessage StatusType = 0x01
	StatusAdvisory StatusType = 0x02
	StatusWarning  StatusType = 0x03
	StatusError    StatusType = 0x04
	StatusAdvisoryCleared StatusType = 0x12
	StatusWarningCleared  StatusType = 0x13
	StatusErrorCleared    StatusType = 0x14
)

func StatusTypeFromByte(b byte) (StatusType, error) {
	switch StatusType(b) {
	case StatusNone, StatusGetLastMessage, StatusAdvisory, StatusWarning, StatusError,
		StatusAdvisoryCleared, StatusWarningCleared, StatusErrorCleared:
		return StatusType(b), nil
	default:
		return 0, errParameterDataValue(pid(PIDStatusMessages), "status type out of range")
	}
}

// StatusMessage is one fixed 9-byte record within a STATUS_MESSAGES
// response: sub-device id, status type, status message id, and two
// message-specific data values.
type StatusMessage struct {
	SubDeviceID     SubDeviceId
	Type            StatusType
	StatusMessageID uint16
	DataValue1      int16
	DataValue2      int16
}

const statusMessageRecordLen = 9

func encodeStatusMessage(m StatusMessage) []byte {
	buf := make([]byte, statusMessageRecordLen)
	binary.BigEndian.PutUint16(buf[0:2], m.SubDeviceID.Wire())
	buf[2] = byte(m.Type)
	binary.BigEndian.PutUint16(buf[3:5], m.StatusMessageID)
	binary.BigEndian.PutUint16(buf[5:7], uint16(m.DataValue1))
	binary.BigEndian.PutUint16(buf[7:9], uint16(m.DataValue2))
	return buf
}

func decodeStatusMessage(b []byte) (StatusMessage, error) {
	sub, err := SubDeviceIdFromWire(binary.BigEndian.Uint16(b[0:2]))
	if err != nil {
		return StatusMessage{}, err
	}
	st, err := StatusTypeFromByte(b[2])
	if err != nil {
		return StatusMessage{}, err
	}
	return StatusMessage{
		SubDeviceID:     sub,
		Type:            st,
		StatusMessageID: binary.BigEndian.Uint16(b[3:5]),
		DataValue1:      int16(binary.BigEndian.Uint16(b[5:7])),
		DataValue2:      int16(binary.BigEndian.Uint16(b[7:9])),
	}, nil
}

// MaxStatusMessages is the largest number of status message records a
// single PDL-bounded (231-byte) parameter payload can hold.
const MaxStatusMessages = MaxPDL / statusMessageRecordLen

// StatusMessagesGetResponse carries zero or more status message records.
type StatusMessagesGetResponse struct {
	Messages []StatusMessage
}

func (StatusMessagesGetResponse) ParameterID() ParameterID { return pid(PIDStatusMessages) }

func (r StatusMessagesGetResponse) encode() []byte {
	buf := make([]byte, 0, len(r.Messages)*statusMessageRecordLen)
	for _, m := range r.Messages {
		buf = append(buf, encodeStatusMessage(m)...)
	}
	return buf
}

func decodeStatusMessagesGetResponse(data []byte) (StatusMessagesGetResponse, error) {
	if len(data)%statusMessageRecordLen != 0 {
		return StatusMessagesGetResponse{}, errParameterDataLength(pid(PIDStatusMessages), 0, len(data))
	}
	count := len(data) / statusMessageRecordLen
	if count > MaxStatusMessages {
		return StatusMessagesGetResponse{}, errParameterDataLength(pid(PIDStatusMessages), MaxStatusMessages*statusMessageRecordLen, len(data))
	}
	messages := make([]StatusMessage, 0, count)
	for i := 0; i < count; i++ {
		m, err := decodeStatusMessage(data[i*statusMessageRecordLen : (i+1)*statusMessageRecordLen])
		if err != nil {
			return StatusMessagesGetResponse{}, err
		}
		messages = append(messages, m)
	}
	return StatusMessagesGetResponse{Messages: messages}, nil
}

// CommsStatusGetResponse reports three free-running 16-bit counters
// tracking link-layer comms errors (E1.20 §10.5).
type CommsStatusGetResponse struct {
	ShortMessageCount  uint16
	LengthMismatchCount uint16
	ChecksumFailCount  uint16
}

func (CommsStatusGetResponse) ParameterID() ParameterID { return pid(PIDCommsStatus) }

func (r CommsStatusGetResponse) encode() []byte {
	buf := make([]byte, 6)
	binary.BigEndian.PutUint16(buf[0:2], r.ShortMessageCount)
	binary.BigEndian.PutUint16(buf[2:4], r.LengthMismatchCount)
	binary.BigEndian.PutUint16(buf[4:6], r.ChecksumFailCount)
	return buf
}

func decodeCommsStatusGetResponse(data []byte) (CommsStatusGetResponse, error) {
	if len(data) != 6 {
		return CommsStatusGetResponse{}, errParameterDataLength(pid(PIDCommsStatus), 6, len(data))
	}
	return CommsStatusGetResponse{
		ShortMessageCount:   binary.BigEndian.Uint16(data[0:2]),
		LengthMismatchCount: binary.BigEndian.Uint16(data[2:4]),
		ChecksumFailCount:   binary.BigEndian.Uint16(data[4:6]),
	}, nil
}

// RealTimeClockGetResponse is the responder's clock (E1.20 §10.7.2): year
// as a 16-bit big-endian value, then month/day/hour/minute/second bytes.
type RealTimeClockGetResponse struct {
	Year   uint16
	Month  byte
	Day    byte
	Hour   byte
	Minute byte
	Second byte
}

func (RealTimeClockGetResponse) ParameterID() ParameterID { return pid(PIDRealTimeClock) }

func (r RealTimeClockGetResponse) encode() []byte {
	buf := make([]byte, 7)
	binary.BigEndian.PutUint16(buf[0:2], r.Year)
	buf[2] = r.Month
	buf[3] = r.Day
	buf[4] = r.Hour
	buf[5] = r.Minute
	buf[6] = r.Second
	return buf
}

func decodeRealTimeClockGetResponse(data []byte) (RealTimeClockGetResponse, error) {
	if len(data) != 7 {
		return RealTimeClockGetResponse{}, errParameterDataLength(pid(PIDRealTimeClock), 7, len(data))
	}
	return RealTimeClockGetResponse{
		Year:   binary.BigEndian.Uint16(data[0:2]),
		Month:  data[2],
		Day:    data[3],
		Hour:   data[4],
		Minute: data[5],
		Second: data[6],
	}, nil
}
