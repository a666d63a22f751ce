//go:build rdm

package rdm

import "encoding/binary"

// these four PIDs (device/lamp hours, lamp strikes, device power cycles)
// all share a single 32-bit big-endian counter layout.

type DeviceHoursGetResponse struct{ Hours uint32 }

func (DeviceHoursGetResponse) ParameterID() ParameterID { return pid(PIDDeviceHours) }
func (r DeviceHoursGetResponse) encode() []byte         { return encodeUint32(r.Hours) }
func decodeDeviceHoursGetResponse(data []byte) (DeviceHoursGetResponse, error) {
	v, err := decodeUint32(pid(PIDDeviceHours), data)
	return DeviceHoursGetResponse{Hours: v}, err
}

type DeviceHoursSetRequest struct{ Hours uint32 }

func (DeviceHoursSetRequest) ParameterID() ParameterID { return pid(PIDDeviceHours) }
func (r DeviceHoursSetRequest) encode() []byte         { return encodeUint32(r.Hours) }
func decodeDeviceHoursSetRequest(data []byte) (DeviceHoursSetRequest, error) {
	v, err := decodeUint32(pid(PIDDeviceHours), data)
	return DeviceHoursSetRequest{Hours: v}, err
}

type LampHoursGetResponse struct{ Hours uint32 }

func (LampHoursGetResponse) ParameterID() ParameterID { return pid(PIDLampHours) }
func (r LampHoursGetResponse) encode() []byte         { return encodeUint32(r.Hours) }
func decodeLampHoursGetResponse(data []byte) (LampHoursGetResponse, error) {
	v, err := decodeUint32(pid(PIDLampHours), data)
	return LampHoursGetResponse{Hours: v}, err
}

type LampHoursSetRequest struct{ Hours uint32 }

func (LampHoursSetRequest) ParameterID() ParameterID { return pid(PIDLampHours) }
func (r LampHoursSetRequest) encode() []byte         { return encodeUint32(r.Hours) }
func decodeLampHoursSetRequest(data []byte) (LampHoursSetRequest, error) {
	v, err := decodeUint32(pid(PIDLampHours), data)
	return LampHoursSetRequest{Hours: v}, err
}

type LampStrikesGetResponse struct{ Strikes uint32 }

func (LampStrikesGetResponse) ParameterID() ParameterID { return pid(PIDLampStrikes) }
func (r LampStrikesGetResponse) encode() []byte         { return encodeUint32(r.Strikes) }
func decodeLampStrikesGetResponse(data []byte) (LampStrikesGetResponse, error) {
	v, err := decodeUint32(pid(PIDLampStrikes), data)
	return LampStrikesGetResponse{Strikes: v}, err
}

type LampStrikesSetRequest struct{ Strikes uint32 }

func (LampStrikesSetRequest) ParameterID() ParameterID { return pid(PIDLampStrikes) }
func (r LampStrikesSetRequest) encode() []byte         { return encodeUint32(r.Strikes) }
func decodeLampStrikesSetRequest(data []byte) (LampStrikesSetRequest, error) {
	v, err := decodeUint32(pid(PIDLampStrikes), data)
	return LampStrikesSetRequest{Strikes: v}, err
}

type DevicePowerCyclesGetResponse struct{ PowerCycles uint32 }

func (DevicePowerCyclesGetResponse) ParameterID() ParameterID { return pid(PIDDevicePowerCycles) }
func (r DevicePowerCyclesGetResponse) encode() []byte         { return encodeUint32(r.PowerCycles) }
func decodeDevicePowerCyclesGetResponse(data []byte) (DevicePowerCyclesGetResponse, error) {
	v, err := decodeUint32(pid(PIDDevicePowerCycles), data)
	return DevicePowerCyclesGetResponse{PowerCycles: v}, err
}

type DevicePowerCyclesSetRequest struct{ PowerCycles uint32 }

func (DevicePowerCyclesSetRequest) ParameterID() ParameterID { return pid(PIDDevicePowerCycles) }
func (r DevicePowerCyclesSetRequest) encode() []byte         { return encodeUint32(r.PowerCycles) }
func decodeDevicePowerCyclesSetRequest(data []byte) (DevicePowerCyclesSetRequest, error) {
	v, err := decodeUint32(pid(PIDDevicePowerCycles), data)
	return DevicePowerCyclesSetRequest{PowerCycles: v}, err
}

func encodeUint32(v uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, v)
	return buf
}

func decodeUint32(p ParameterID, data []byte) (uint32, error) {
	if len(data) != 4 {
		return 0, errParameterDataLength(p, 4, len(data))
	}
	return binary.BigEndian.Uint32(data), nil
}

// LampStateGetResponse / LampStateSetRequest carry a closed-set lamp
// condition byte.
type LampStateGetResponse struct{ State LampState }

func (LampStateGetResponse) ParameterID() ParameterID { return pid(PIDLampState) }
func (r LampStateGetResponse) encode() []byte         { return []byte{byte(r.State)} }
func decodeLampStateGetResponse(data []byte) (LampStateGetResponse, error) {
	if len(data) != 1 {
		return LampStateGetResponse{}, errParameterDataLength(pid(PIDLampState), 1, len(data))
	}
	s, err := LampStateFromByte(data[0])
	return LampStateGetResponse{State: s}, err
}

type LampStateSetRequest struct{ State LampState }

func (LampStateSetRequest) ParameterID() ParameterID { return pid(PIDLampState) }
func (r LampStateSetRequest) encode() []byte         { return []byte{byte(r.State)} }
func decodeLampStateSetRequest(data []byte) (LampStateSetRequest, error) {
	if len(data) != 1 {
		return LampStateSetRequest{}, errParameterDataLength(pid(PIDLampState), 1, len(data))
	}
	s, err := LampStateFromByte(data[0])
	return LampStateSetRequest{State: s}, err
}

// LampOnModeGetResponse / SetRequest carry a closed-set lamp strike policy.
type LampOnModeGetResponse struct{ Mode LampOnMode }

func (LampOnModeGetResponse) ParameterID() ParameterID { return pid(PIDLampOnMode) }
func (r LampOnModeGetResponse) encode() []byte         { return []byte{byte(r.Mode)} }
func decodeLampOnModeGetResponse(data []byte) (LampOnModeGetResponse, error) {
	if len(data) != 1 {
		return LampOnModeGetResponse{}, errParameterDataLength(pid(PIDLampOnMode), 1, len(data))
	}
	m, err := LampOnModeFromByte(data[0])
	return LampOnModeGetResponse{Mode: m}, err
}

type LampOnModeSetRequest struct{ Mode LampOnMode }

func (LampOnModeSetRequest) ParameterID() ParameterID { return pid(PIDLampOnMode) }
func (r LampOnModeSetRequest) encode() []byte         { return []byte{byte(r.Mode)} }
func decodeLampOnModeSetRequest(data []byte) (LampOnModeSetRequest, error) {
	if len(data) != 1 {
		return LampOnModeSetRequest{}, errParameterDataLength(pid(PIDLampOnMode), 1, len(data))
	}
	m, err := LampOnModeFromByte(data[0])
	return LampOnModeSetRequest{Mode: m}, err
}

// DisplayInvertGetResponse / SetRequest carry the closed-set display
// orientation mode.
type DisplayInvertGetResponse struct{ Mode DisplayInvertMode }

func (DisplayInvertGetResponse) ParameterID() ParameterID { return pid(PIDDisplayInvert) }
func (r DisplayInvertGetResponse) encode() []byte         { return []byte{byte(r.Mode)} }
func decodeDisplayInvertGetResponse(data []byte) (DisplayInvertGetResponse, error) {
	if len(data) != 1 {
		return DisplayInvertGetResponse{}, errParameterDataLength(pid(PIDDisplayInvert), 1, len(data))
	}
	m, err := DisplayInvertModeFromByte(data[0])
	return DisplayInvertGetResponse{Mode: m}, err
}

type DisplayInvertSetRequest struct{ Mode DisplayInvertMode }

func (DisplayInvertSetRequest) ParameterID() ParameterID { return pid(PIDDisplayInvert) }
func (r DisplayInvertSetRequest) encode() []byte         { return []byte{byte(r.Mode)} }
func decodeDisplayInvertSetRequest(data []byte) (DisplayInvertSetRequest, error) {
	if len(data) != 1 {
		return DisplayInvertSetRequest{}, errParameterDataLength(pid(PIDDisplayInvert), 1, len(data))
	}
	m, err := DisplayInvertModeFromByte(data[0])
	return DisplayInvertSetRequest{Mode: m}, err
}

// PanInvertGetResponse / TiltInvertGetResponse / PanTiltSwapGetResponse are
// simple 1-byte booleans.
type PanInvertGetResponse struct{ Invert bool }

func (PanInvertGetResponse) ParameterID() ParameterID { return pid(PIDPanInvert) }
func (r PanInvertGetResponse) encode() []byte         { return []byte{boolByte(r.Invert)} }
func decodePanInvertGetResponse(data []byte) (PanInvertGetResponse, error) {
	if len(data) != 1 {
		return PanInvertGetResponse{}, errParameterDataLength(pid(PIDPanInvert), 1, len(data))
	}
	return PanInvertGetResponse{Invert: data[0] != 0}, nil
}

type PanInvertSetRequest struct{ Invert bool }

func (PanInvertSetRequest) ParameterID() ParameterID { return pid(PIDPanInvert) }
func (r PanInvertSetRequest) encode() []byte         { return []byte{boolByte(r.Invert)} }
func decodePanInvertSetRequest(data []byte) (PanInvertSetRequest, error) {
	if len(data) != 1 {
		return PanInvertSetRequest{}, errParameterDataLength(pid(PIDPanInvert), 1, len(data))
	}
	return PanInvertSetRequest{Invert: data[0] != 0}, nil
}

type TiltInvertGetResponse struct{ Invert bool }

func (TiltInvertGetResponse) ParameterID() ParameterID { return pid(PIDTiltInvert) }
func (r TiltInvertGetResponse) encode() []byte         { return []byte{boolByte(r.Invert)} }
func decodeTiltInvertGetResponse(data []byte) (TiltInvertGetResponse, error) {
	if len(data) != 1 {
		return TiltInvertGetResponse{}, errParameterDataLength(pid(PIDTiltInvert), 1, len(data))
	}
	return TiltInvertGetResponse{Invert: data[0] != 0}, nil
}

type TiltInvertSetRequest struct{ Invert bool }

func (TiltInvertSetRequest) ParameterID() ParameterID { return pid(PIDTiltInvert) }
func (r TiltInvertSetRequest) encode() []byte         { return []byte{boolByte(r.Invert)} }
func decodeTiltInvertSetRequest(data []byte) (TiltInvertSetRequest, error) {
	if len(data) != 1 {
		return TiltInvertSetRequest{}, errParameterDataLength(pid(PIDTiltInvert), 1, len(data))
	}
	return TiltInvertSetRequest{Invert: data[0] != 0}, nil
}

type PanTiltSwapGetResponse struct{ Swap bool }

func (PanTiltSwapGetResponse) ParameterID() ParameterID { return pid(PIDPanTiltSwap) }
func (r PanTiltSwapGetResponse) encode() []byte         { return []byte{boolByte(r.Swap)} }
func decodePanTiltSwapGetResponse(data []byte) (PanTiltSwapGetResponse, error) {
	if len(data) != 1 {
		return PanTiltSwapGetResponse{}, errParameterDataLength(pid(PIDPanTiltSwap), 1, len(data))
	}
	return PanTiltSwapGetResponse{Swap: data[0] != 0}, nil
}

type PanTiltSwapSetRequest struct{ Swap bool }

func (PanTiltSwapSetRequest) ParameterID() ParameterID { return pid(PIDPanTiltSwap) }
func (r PanTiltSwapSetRequest) encode() []byte         { return []byte{boolByte(r.Swap)} }
func decodePanTiltSwapSetRequest(data []byte) (PanTiltSwapSetRequest, error) {
	if len(data) != 1 {
		return PanTiltSwapSetRequest{}, errParameterDataLength(pid(PIDPanTiltSwap), 1, len(data))
	}
	return PanTiltSwapSetRequest{Swap: data[0] != 0}, nil
}
