//go:build rdm

package rdm

import "encoding/binary"

// SlotType classifies whether a DMX slot carries a primary value or one of
// its secondary (fine/timing/etc) companions (E1.20 Table A-7).
// Open-ended: unrecognized values decode to Unknown(raw).
type SlotType struct {
	known bool
	name  slotTypeName
	raw   byte
}

type slotTypeName int

const (
	SlotTypePrimary slotTypeName = iota
	SlotTypeSecondaryFine
	SlotTypeSecondaryTiming
	SlotTypeSecondarySpeed
	SlotTypeSecondaryControl
	SlotTypeSecondaryIndex
	SlotTypeSecondaryRotation
	SlotTypeSecondaryIndexRotate
	SlotTypeSecondaryUndefined
)

var slotTypeWire = map[slotTypeName]byte{
	SlotTypePrimary:              0x00,
	SlotTypeSecondaryFine:        0x01,
	SlotTypeSecondaryTiming:      0x02,
	SlotTypeSecondarySpeed:       0x03,
	SlotTypeSecondaryControl:     0x04,
	SlotTypeSecondaryIndex:       0x05,
	SlotTypeSecondaryRotation:    0x06,
	SlotTypeSecondaryIndexRotate: 0x07,
	SlotTypeSecondaryUndefined:   0xFF,
}

var wireToSlotTypeName = func() map[byte]slotTypeName {
	m := make(map[byte]slotTypeName, len(slotTypeWire))
	for k, v := range slotTypeWire {
		m[v] = k
	}
	return m
}()

func SlotTypeFromByte(b byte) SlotType {
	if name, ok := wireToSlotTypeName[b]; ok {
		return SlotType{known: true, name: name, raw: b}
	}
	return SlotType{known: false, raw: b}
}

func (s SlotType) Wire() byte      { return s.raw }
func (s SlotType) IsUnknown() bool { return !s.known }

// SlotID identifies what a DMX slot actually controls (E1.20 Table A-8):
// intensity, pan, tilt, color wheel, and so on. Open-ended.
type SlotID struct {
	known bool
	name  slotIDName
	raw   uint16
}

type slotIDName int

const (
	SlotIDIntensity slotIDName = iota
	SlotIDIntensityMaster
	SlotIDPan
	SlotIDTilt
	SlotIDColorWheel
	SlotIDColorAdd
	SlotIDColorSubtract
	SlotIDStaticColor
	SlotIDGobo
	SlotIDGoboRotation
	SlotIDPrismEffect
	SlotIDIris
	SlotIDFrost
	SlotIDZoom
	SlotIDFanEffect
	SlotIDEffectSpeed
	SlotIDEffectMacro
	SlotIDSpeedControl
	SlotIDUndefined
)

var slotIDWire = map[slotIDName]uint16{
	SlotIDIntensity:       0x0001,
	SlotIDIntensityMaster: 0x0002,
	SlotIDPan:             0x0101,
	SlotIDTilt:            0x0102,
	SlotIDColorWheel:      0x0201,
	SlotIDColorAdd:        0x0202,
	SlotIDColorSubtract:   0x0203,
	SlotIDStaticColor:     0x0204,
	SlotIDGobo:            0x0301,
	SlotIDGoboRotation:    0x0302,
	SlotIDPrismEffect:     0x0401,
	SlotIDIris:            0x0502,
	SlotIDFrost:           0x0602,
	SlotIDZoom:            0x0702,
	SlotIDFanEffect:       0x0802,
	SlotIDEffectSpeed:     0x0901,
	SlotIDEffectMacro:     0x0A01,
	SlotIDSpeedControl:    0x0601,
	SlotIDUndefined:       0xFFFF,
}

var wireToSlotIDName = func() map[uint16]slotIDName {
	m := make(map[uint16]slotIDName, len(slotIDWire))
	for k, v := range slotIDWire {
		m[v] = k
	}
	return m
}()

func SlotIDFromWire(w uint16) SlotID {
	if name, ok := wireToSlotIDName[w]; ok {
		return SlotID{known: true, name: name, raw: w}
	}
	return SlotID{known: false, raw: w}
}

func (s SlotID) Wire() uint16    { return s.raw }
func (s SlotID) IsUnknown() bool { return !s.known }

// slotInfoRecordLen is the fixed size of one SLOT_INFO entry: slot offset
// (16-bit), slot type (byte), slot label/id (16-bit).
const slotInfoRecordLen = 5

// SlotInfoEntry is one SLOT_INFO record.
type SlotInfoEntry struct {
	SlotOffset uint16
	Type       SlotType
	Label      SlotID
}

// SlotInfoGetResponse reports every DMX slot's type and function.
type SlotInfoGetResponse struct {
	Entries []SlotInfoEntry
}

func (SlotInfoGetResponse) ParameterID() ParameterID { return pid(PIDSlotInfo) }

func (r SlotInfoGetResponse) encode() []byte {
	buf := make([]byte, 0, len(r.Entries)*slotInfoRecordLen)
	for _, e := range r.Entries {
		rec := make([]byte, slotInfoRecordLen)
		binary.BigEndian.PutUint16(rec[0:2], e.SlotOffset)
		rec[2] = e.Type.Wire()
		binary.BigEndian.PutUint16(rec[3:5], e.Label.Wire())
		buf = append(buf, rec...)
	}
	return buf
}

func decodeSlotInfoGetResponse(data []byte) (SlotInfoGetResponse, error) {
	if len(data)%slotInfoRecordLen != 0 {
		return SlotInfoGetResponse{}, errParameterDataLength(pid(PIDSlotInfo), 0, len(data))
	}
	count := len(data) / slotInfoRecordLen
	entries := make([]SlotInfoEntry, 0, count)
	for i := 0; i < count; i++ {
		rec := data[i*slotInfoRecordLen : (i+1)*slotInfoRecordLen]
		entries = append(entries, SlotInfoEntry{
			SlotOffset: binary.BigEndian.Uint16(rec[0:2]),
			Type:       SlotTypeFromByte(rec[2]),
			Label:      SlotIDFromWire(binary.BigEndian.Uint16(rec[3:5])),
		})
	}
	return SlotInfoGetResponse{Entries: entries}, nil
}

// DefaultSlotValueEntry pairs a slot offset with its power-on default
// value.
type DefaultSlotValueEntry struct {
	SlotOffset   uint16
	DefaultValue byte
}

const defaultSlotValueRecordLen = 3

// DefaultSlotValueGetResponse reports the power-on default for each slot.
type DefaultSlotValueGetResponse struct {
	Entries []DefaultSlotValueEntry
}

func (DefaultSlotValueGetResponse) ParameterID() ParameterID { return pid(PIDDefaultSlotValue) }

func (r DefaultSlotValueGetResponse) encode() []byte {
	buf := make([]byte, 0, len(r.Entries)*defaultSlotValueRecordLen)
	for _, e := range r.Entries {
		rec := make([]byte, defaultSlotValueRecordLen)
		binary.BigEndian.PutUint16(rec[0:2], e.SlotOffset)
		rec[2] = e.DefaultValue
		buf = append(buf, rec...)
	}
	return buf
}

func decodeDefaultSlotValueGetResponse(data []byte) (DefaultSlotValueGetResponse, error) {
	if len(data)%defaultSlotValueRecordLen != 0 {
		return DefaultSlotValueGetResponse{}, errParameterDataLength(pid(PIDDefaultSlotValue), 0, len(data))
	}
	count := len(data) / defaultSlotValueRecordLen
	entries := make([]DefaultSlotValueEntry, 0, count)
	for i := 0; i < count; i++ {
		rec := data[i*defaultSlotValueRecordLen : (i+1)*defaultSlotValueRecordLen]
		entries = append(entries, DefaultSlotValueEntry{
			SlotOffset:   binary.BigEndian.Uint16(rec[0:2]),
			DefaultValue: rec[2],
		})
	}
	return DefaultSlotValueGetResponse{Entries: entries}, nil
}

// SlotDescriptionGetResponse names a single slot.
type SlotDescriptionGetResponse struct {
	SlotOffset  uint16
	Description string
}

func (SlotDescriptionGetResponse) ParameterID() ParameterID { return pid(PIDSlotDescription) }

func (r SlotDescriptionGetResponse) encode() []byte {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, r.SlotOffset)
	return append(buf, encodeLabel(r.Description)...)
}

func decodeSlotDescriptionGetResponse(data []byte) (SlotDescriptionGetResponse, error) {
	if len(data) < 2 {
		return SlotDescriptionGetResponse{}, errParameterDataLength(pid(PIDSlotDescription), 2, len(data))
	}
	return SlotDescriptionGetResponse{
		SlotOffset:  binary.BigEndian.Uint16(data[0:2]),
		Description: decodeLabel(data[2:]),
	}, nil
}
