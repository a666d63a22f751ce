//go:build rdm

package rdm

import "encoding/binary"

const (
	// StartCode is the RDM frame start code, distinguishing an RDM frame
	// from a DMX512 null-start-code slot stream on the same link.
	StartCode byte = 0xCC
	// SubStartCode identifies the standard RDM message format.
	SubStartCode byte = 0x01

	// HeaderLength is the number of bytes from the start code through
	// the PDL byte, inclusive.
	HeaderLength = 24
	// MaxPDL is the largest parameter-data length a single frame may
	// carry.
	MaxPDL = 231
	// MinFrameLength is the smallest legal frame: header plus empty PDL
	// plus 2-byte checksum.
	MinFrameLength = HeaderLength + 2
	// MaxFrameLength is the largest legal frame: header plus maximum PDL
	// plus checksum.
	MaxFrameLength = HeaderLength + MaxPDL + 2
)

// buildFrame assembles a complete RDM frame: header, payload, and
// checksum. messageLength (frame[2]) is derived, not taken as input.
func buildFrame(destination, source DeviceUID, transaction, portOrResponseType, messageCount byte, subDevice SubDeviceId, commandClass CommandClass, parameterID ParameterID, payload []byte) []byte {
	messageLength := HeaderLength + len(payload)

	buf := make([]byte, 0, messageLength+2)
	buf = append(buf, StartCode, SubStartCode, byte(messageLength))
	dest := destination.Bytes()
	src := source.Bytes()
	buf = append(buf, dest[:]...)
	buf = append(buf, src[:]...)
	buf = append(buf, transaction, portOrResponseType, messageCount)

	var subDeviceBytes [2]byte
	binary.BigEndian.PutUint16(subDeviceBytes[:], subDevice.Wire())
	buf = append(buf, subDeviceBytes[:]...)

	buf = append(buf, byte(commandClass))

	var pidBytes [2]byte
	binary.BigEndian.PutUint16(pidBytes[:], parameterID.Wire())
	buf = append(buf, pidBytes[:]...)

	buf = append(buf, byte(len(payload)))
	buf = append(buf, payload...)

	return appendChecksum(buf)
}

// frameHeader is the parsed form of a standard frame's fixed fields, shared
// by request and response decoding.
type frameHeader struct {
	destination, source      DeviceUID
	transaction               byte
	portOrResponseType        byte
	messageCount               byte
	subDevice                  SubDeviceId
	commandClass               CommandClass
	parameterID                ParameterID
	payload                    []byte
}

// parseFrame validates the checksum, start byte, sub-start byte, and
// length of a standard (non-discovery) frame and splits out its fields.
// It does not interpret the command class or dispatch the payload.
func parseFrame(b []byte) (frameHeader, error) {
	// The checksum is checked first, over everything but the trailing two
	// bytes, so a single corrupted byte anywhere reports InvalidChecksum.
	if len(b) >= MinFrameLength {
		want := checksum(b[:len(b)-2])
		got := binary.BigEndian.Uint16(b[len(b)-2:])
		if got != want {
			return frameHeader{}, errChecksum(got, want)
		}
	}
	if len(b) < 1 || b[0] != StartCode {
		return frameHeader{}, errInvalid(InvalidStartByte, int(firstByte(b)))
	}
	if len(b) < 2 {
		return frameHeader{}, errInvalid(InvalidFrameLength, len(b))
	}
	if b[1] != SubStartCode {
		return frameHeader{}, errInvalid(InvalidSubStartByte, int(b[1]))
	}
	if len(b) < MinFrameLength {
		return frameHeader{}, errInvalid(InvalidFrameLength, len(b))
	}

	messageLength := int(b[2])
	if messageLength+2 != len(b) {
		return frameHeader{}, errInvalid(MessageLengthMismatch, len(b))
	}

	destination := DeviceUIDFromBytes(b[3:9])
	source := DeviceUIDFromBytes(b[9:15])
	transaction := b[15]
	portOrResponseType := b[16]
	messageCount := b[17]

	subDevice, err := SubDeviceIdFromWire(binary.BigEndian.Uint16(b[18:20]))
	if err != nil {
		return frameHeader{}, err
	}

	commandClass, err := CommandClassFromByte(b[20])
	if err != nil {
		return frameHeader{}, err
	}

	parameterID := ParameterIDFromWire(binary.BigEndian.Uint16(b[21:23]))

	pdl := int(b[23])
	if pdl != messageLength-HeaderLength {
		return frameHeader{}, errInvalid(InvalidPdl, pdl)
	}

	payload := b[HeaderLength : HeaderLength+pdl]

	return frameHeader{
		destination:        destination,
		source:              source,
		transaction:         transaction,
		portOrResponseType:  portOrResponseType,
		messageCount:        messageCount,
		subDevice:           subDevice,
		commandClass:        commandClass,
		parameterID:         parameterID,
		payload:             payload,
	}, nil
}

func firstByte(b []byte) byte {
	if len(b) == 0 {
		return 0
	}
	return b[0]
}
