//go:build rdm

package rdm

import (
	"encoding/binary"
	"fmt"
)

// DeviceUID is a 48-bit RDM device identifier: a 16-bit manufacturer id and
// a 32-bit device id, transmitted as 6 bytes big-endian.
type DeviceUID struct {
	ManufacturerID uint16
	DeviceID       uint32
}

// NewDeviceUID constructs a DeviceUID from its two wire fields.
func NewDeviceUID(manufacturerID uint16, deviceID uint32) DeviceUID {
	return DeviceUID{ManufacturerID: manufacturerID, DeviceID: deviceID}
}

// BroadcastAllDevices is the UID addressing every device on the bus
// regardless of manufacturer.
func BroadcastAllDevices() DeviceUID {
	return DeviceUID{ManufacturerID: 0xFFFF, DeviceID: 0xFFFFFFFF}
}

// BroadcastManufacturer is the UID addressing every device made by the
// given manufacturer.
func BroadcastManufacturer(manufacturerID uint16) DeviceUID {
	return DeviceUID{ManufacturerID: manufacturerID, DeviceID: 0xFFFFFFFF}
}

// IsBroadcast reports whether this UID is either broadcast form.
func (d DeviceUID) IsBroadcast() bool {
	return d.DeviceID == 0xFFFFFFFF
}

// Bytes returns the 6-byte big-endian wire form.
func (d DeviceUID) Bytes() [6]byte {
	var b [6]byte
	binary.BigEndian.PutUint16(b[0:2], d.ManufacturerID)
	binary.BigEndian.PutUint32(b[2:6], d.DeviceID)
	return b
}

// DeviceUIDFromBytes parses a 6-byte big-endian UID. It panics if b is
// shorter than 6 bytes; callers decoding frames must slice exactly 6 bytes
// before calling this, which the frame codec always does.
func DeviceUIDFromBytes(b []byte) DeviceUID {
	return DeviceUID{
		ManufacturerID: binary.BigEndian.Uint16(b[0:2]),
		DeviceID:       binary.BigEndian.Uint32(b[2:6]),
	}
}

func (d DeviceUID) String() string {
	return fmt.Sprintf("%04x:%08x", d.ManufacturerID, d.DeviceID)
}

// SubDeviceId addresses the root device, a numbered sub-device, or all
// sub-devices of a responder.
type SubDeviceId struct {
	kind subDeviceKind
	n    uint16
}

type subDeviceKind uint8

const (
	subDeviceRoot subDeviceKind = iota
	subDeviceNumbered
	subDeviceAll
)

// MaxSubDeviceNumber is the highest valid numbered sub-device id.
const MaxSubDeviceNumber = 0x0200

// AllSubDevicesWire is the wire value addressing every sub-device.
const AllSubDevicesWire uint16 = 0xFFFF

// RootDevice addresses the responder's root device (sub-device 0).
func RootDevice() SubDeviceId { return SubDeviceId{kind: subDeviceRoot} }

// AllSubDevices addresses every sub-device of a responder.
func AllSubDevices() SubDeviceId { return SubDeviceId{kind: subDeviceAll} }

// NewSubDevice constructs a numbered sub-device id. n == 0 encodes as
// RootDevice; n > MaxSubDeviceNumber (and not the all-sub-devices wire
// value) fails with InvalidSubDeviceId.
func NewSubDevice(n uint16) (SubDeviceId, error) {
	if n == 0 {
		return RootDevice(), nil
	}
	if n == AllSubDevicesWire {
		return AllSubDevices(), nil
	}
	if n > MaxSubDeviceNumber {
		return SubDeviceId{}, errInvalid(InvalidSubDeviceId, int(n))
	}
	return SubDeviceId{kind: subDeviceNumbered, n: n}, nil
}

// SubDeviceIdFromWire parses the 16-bit wire form.
func SubDeviceIdFromWire(n uint16) (SubDeviceId, error) {
	switch {
	case n == 0:
		return RootDevice(), nil
	case n == AllSubDevicesWire:
		return AllSubDevices(), nil
	case n <= MaxSubDeviceNumber:
		return SubDeviceId{kind: subDeviceNumbered, n: n}, nil
	default:
		return SubDeviceId{}, errInvalid(InvalidSubDeviceId, int(n))
	}
}

// Wire returns the 16-bit wire encoding of this sub-device id.
func (s SubDeviceId) Wire() uint16 {
	switch s.kind {
	case subDeviceAll:
		return AllSubDevicesWire
	case subDeviceNumbered:
		return s.n
	default:
		return 0
	}
}

// IsRoot reports whether this is the root-device id.
func (s SubDeviceId) IsRoot() bool { return s.kind == subDeviceRoot }

// IsAll reports whether this addresses all sub-devices.
func (s SubDeviceId) IsAll() bool { return s.kind == subDeviceAll }

// Number returns the numbered sub-device's id and true, or (0, false) for
// root/all.
func (s SubDeviceId) Number() (uint16, bool) {
	if s.kind != subDeviceNumbered {
		return 0, false
	}
	return s.n, true
}

func (s SubDeviceId) String() string {
	switch s.kind {
	case subDeviceRoot:
		return "RootDevice"
	case subDeviceAll:
		return "AllSubDevices"
	default:
		return fmt.Sprintf("SubDevice(%d)", s.n)
	}
}
