//go:build rdm

package rdm

import "encoding/binary"

// SensorType classifies what physical quantity a sensor measures (E1.20
// Table A-15). Open-ended: unrecognized values decode to Unknown(raw).
type SensorType struct {
	known bool
	name  sensorTypeName
	raw   byte
}

type sensorTypeName int

const (
	SensorTemperature sensorTypeName = iota
	SensorVoltage
	SensorCurrent
	SensorFrequency
	SensorResistance
	SensorPower
	SensorMass
	SensorLength
	SensorArea
	SensorVolume
	SensorDensity
	SensorVelocity
	SensorAcceleration
	SensorForce
	SensorEnergy
	SensorPressure
	SensorTime
	SensorAngle
	SensorHumidity
	SensorCounter16Bit
	SensorOther
)

var sensorTypeWire = map[sensorTypeName]byte{
	SensorTemperature:  0x00,
	SensorVoltage:      0x01,
	SensorCurrent:      0x02,
	SensorFrequency:    0x03,
	SensorResistance:   0x04,
	SensorPower:        0x05,
	SensorMass:         0x06,
	SensorLength:       0x07,
	SensorArea:         0x08,
	SensorVolume:       0x09,
	SensorDensity:      0x0A,
	SensorVelocity:     0x0B,
	SensorAcceleration: 0x0C,
	SensorForce:        0x0D,
	SensorEnergy:       0x0E,
	SensorPressure:     0x0F,
	SensorTime:         0x10,
	SensorAngle:        0x11,
	SensorHumidity:     0x14,
	SensorCounter16Bit: 0x15,
	SensorOther:        0x7F,
}

var wireToSensorTypeName = func() map[byte]sensorTypeName {
	m := make(map[byte]sensorTypeName, len(sensorTypeWire))
	for k, v := range sensorTypeWire {
		m[v] = k
	}
	return m
}()

func SensorTypeFromByte(b byte) SensorType {
	if name, ok := wireToSensorTypeName[b]; ok {
		return SensorType{known: true, name: name, raw: b}
	}
	return SensorType{known: false, raw: b}
}

func (s SensorType) Wire() byte         { return s.raw }
func (s SensorType) IsUnknown() bool    { return !s.known }

// SensorUnit describes a sensor's measurement unit (E1.20 Table A-16).
// Open-ended: unrecognized values decode to Unknown(raw).
type SensorUnit struct {
	known bool
	name  sensorUnitName
	raw   byte
}

type sensorUnitName int

const (
	UnitNone sensorUnitName = iota
	UnitCentigrade
	UnitVoltsDC
	UnitVoltsACRMS
	UnitAmperesDC
	UnitAmperesACRMS
	UnitHertz
	UnitOhm
	UnitWatt
	UnitKilogram
	UnitMeters
	UnitMetersPerSecond
	UnitDegree
	UnitLux
	UnitByte
)

var sensorUnitWire = map[sensorUnitName]byte{
	UnitNone:            0x00,
	UnitCentigrade:      0x01,
	UnitVoltsDC:         0x02,
	UnitVoltsACRMS:      0x04,
	UnitAmperesDC:       0x05,
	UnitAmperesACRMS:    0x07,
	UnitHertz:           0x08,
	UnitOhm:             0x09,
	UnitWatt:            0x0A,
	UnitKilogram:        0x0B,
	UnitMeters:          0x0C,
	UnitMetersPerSecond: 0x11,
	UnitDegree:          0x17,
	UnitLux:             0x1C,
	UnitByte:            0x1F,
}

var wireToSensorUnitName = func() map[byte]sensorUnitName {
	m := make(map[byte]sensorUnitName, len(sensorUnitWire))
	for k, v := range sensorUnitWire {
		m[v] = k
	}
	return m
}()

func SensorUnitFromByte(b byte) SensorUnit {
	if name, ok := wireToSensorUnitName[b]; ok {
		return SensorUnit{known: true, name: name, raw: b}
	}
	return SensorUnit{known: false, raw: b}
}

func (s SensorUnit) Wire() byte      { return s.raw }
func (s SensorUnit) IsUnknown() bool { return !s.known }

// SensorDefinitionGetResponse describes a single sensor's static metadata
// (E1.20 Table 7-29): one fixed-layout record with a trailing description
// up to 32 bytes (decoding stops at the first null byte; encoding writes
// no terminator).
type SensorDefinitionGetResponse struct {
	SensorID         byte
	Type             SensorType
	Unit             SensorUnit
	UnitPrefix       byte
	RangeMinimum     int16
	RangeMaximum     int16
	NormalMinimum    int16
	NormalMaximum    int16
	RecordedValueSupport byte
	Description      string
}

func (SensorDefinitionGetResponse) ParameterID() ParameterID { return pid(PIDSensorDefinition) }

func (r SensorDefinitionGetResponse) encode() []byte {
	buf := make([]byte, 13)
	buf[0] = r.SensorID
	buf[1] = r.Type.Wire()
	buf[2] = r.Unit.Wire()
	buf[3] = r.UnitPrefix
	binary.BigEndian.PutUint16(buf[4:6], uint16(r.RangeMinimum))
	binary.BigEndian.PutUint16(buf[6:8], uint16(r.RangeMaximum))
	binary.BigEndian.PutUint16(buf[8:10], uint16(r.NormalMinimum))
	binary.BigEndian.PutUint16(buf[10:12], uint16(r.NormalMaximum))
	buf[12] = r.RecordedValueSupport
	buf = append(buf, encodeLabel(r.Description)...)
	return buf
}

func decodeSensorDefinitionGetResponse(data []byte) (SensorDefinitionGetResponse, error) {
	if len(data) < 13 {
		return SensorDefinitionGetResponse{}, errParameterDataLength(pid(PIDSensorDefinition), 13, len(data))
	}
	return SensorDefinitionGetResponse{
		SensorID:             data[0],
		Type:                 SensorTypeFromByte(data[1]),
		Unit:                 SensorUnitFromByte(data[2]),
		UnitPrefix:           data[3],
		RangeMinimum:         int16(binary.BigEndian.Uint16(data[4:6])),
		RangeMaximum:         int16(binary.BigEndian.Uint16(data[6:8])),
		NormalMinimum:        int16(binary.BigEndian.Uint16(data[8:10])),
		NormalMaximum:        int16(binary.BigEndian.Uint16(data[10:12])),
		RecordedValueSupport: data[12],
		Description:          decodeLabel(data[13:]),
	}, nil
}

// SensorValueGetResponse reports a sensor's live reading (E1.20 Table
// 7-30): present, lowest, highest, and recorded values, each a signed
// 16-bit big-endian integer.
type SensorValueGetResponse struct {
	SensorID       byte
	PresentValue   int16
	LowestValue    int16
	HighestValue   int16
	RecordedValue  int16
}

func (SensorValueGetResponse) ParameterID() ParameterID { return pid(PIDSensorValue) }

func (r SensorValueGetResponse) encode() []byte {
	buf := make([]byte, 9)
	buf[0] = r.SensorID
	binary.BigEndian.PutUint16(buf[1:3], uint16(r.PresentValue))
	binary.BigEndian.PutUint16(buf[3:5], uint16(r.LowestValue))
	binary.BigEndian.PutUint16(buf[5:7], uint16(r.HighestValue))
	binary.BigEndian.PutUint16(buf[7:9], uint16(r.RecordedValue))
	return buf
}

func decodeSensorValueGetResponse(data []byte) (SensorValueGetResponse, error) {
	if len(data) != 9 {
		return SensorValueGetResponse{}, errParameterDataLength(pid(PIDSensorValue), 9, len(data))
	}
	return SensorValueGetResponse{
		SensorID:      data[0],
		PresentValue:  int16(binary.BigEndian.Uint16(data[1:3])),
		LowestValue:   int16(binary.BigEndian.Uint16(data[3:5])),
		HighestValue:  int16(binary.BigEndian.Uint16(data[5:7])),
		RecordedValue: int16(binary.BigEndian.Uint16(data[7:9])),
	}, nil
}

// SensorValueSetRequest resets every sensor's recorded values when SensorID
// is ResetAllSensors (0xFF, the "reset to factory" form), or otherwise
// requests re-recording of the named sensor.
type SensorValueSetRequest struct {
	SensorID byte
}

const ResetAllSensors byte = 0xFF

func (SensorValueSetRequest) ParameterID() ParameterID { return pid(PIDSensorValue) }

func (r SensorValueSetRequest) encode() []byte {
	return []byte{r.SensorID}
}

func decodeSensorValueSetRequest(data []byte) (SensorValueSetRequest, error) {
	if len(data) != 1 {
		return SensorValueSetRequest{}, errParameterDataLength(pid(PIDSensorValue), 1, len(data))
	}
	return SensorValueSetRequest{SensorID: data[0]}, nil
}
