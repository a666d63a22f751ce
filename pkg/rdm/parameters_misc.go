//go:build rdm

package rdm

import "encoding/binary"

// CurveGetResponse / SetRequest select a dimmer's transfer curve by index.
type CurveGetResponse struct {
	CurrentCurve byte
	CurveCount   byte
}

func (CurveGetResponse) ParameterID() ParameterID { return pid(PIDCurve) }
func (r CurveGetResponse) encode() []byte         { return []byte{r.CurrentCurve, r.CurveCount} }
func decodeCurveGetResponse(data []byte) (CurveGetResponse, error) {
	if len(data) != 2 {
		return CurveGetResponse{}, errParameterDataLength(pid(PIDCurve), 2, len(data))
	}
	return CurveGetResponse{CurrentCurve: data[0], CurveCount: data[1]}, nil
}

type CurveSetRequest struct{ Curve byte }

func (CurveSetRequest) ParameterID() ParameterID { return pid(PIDCurve) }
func (r CurveSetRequest) encode() []byte         { return []byte{r.Curve} }
func decodeCurveSetRequest(data []byte) (CurveSetRequest, error) {
	if len(data) != 1 {
		return CurveSetRequest{}, errParameterDataLength(pid(PIDCurve), 1, len(data))
	}
	return CurveSetRequest{Curve: data[0]}, nil
}

// CurveDescriptionGetResponse names a single curve.
type CurveDescriptionGetResponse struct {
	Curve       byte
	Description string
}

func (CurveDescriptionGetResponse) ParameterID() ParameterID { return pid(PIDCurveDescription) }
func (r CurveDescriptionGetResponse) encode() []byte {
	return append([]byte{r.Curve}, encodeLabel(r.Description)...)
}
func decodeCurveDescriptionGetResponse(data []byte) (CurveDescriptionGetResponse, error) {
	if len(data) < 1 {
		return CurveDescriptionGetResponse{}, errParameterDataLength(pid(PIDCurveDescription), 1, len(data))
	}
	return CurveDescriptionGetResponse{Curve: data[0], Description: decodeLabel(data[1:])}, nil
}

// ModulationFrequencyGetResponse / SetRequest select a dimmer's PWM
// modulation frequency by index.
type ModulationFrequencyGetResponse struct {
	CurrentFrequency byte
	FrequencyCount   byte
}

func (ModulationFrequencyGetResponse) ParameterID() ParameterID { return pid(PIDModulationFrequency) }
func (r ModulationFrequencyGetResponse) encode() []byte {
	return []byte{r.CurrentFrequency, r.FrequencyCount}
}
func decodeModulationFrequencyGetResponse(data []byte) (ModulationFrequencyGetResponse, error) {
	if len(data) != 2 {
		return ModulationFrequencyGetResponse{}, errParameterDataLength(pid(PIDModulationFrequency), 2, len(data))
	}
	return ModulationFrequencyGetResponse{CurrentFrequency: data[0], FrequencyCount: data[1]}, nil
}

type ModulationFrequencySetRequest struct{ Frequency byte }

func (ModulationFrequencySetRequest) ParameterID() ParameterID { return pid(PIDModulationFrequency) }
func (r ModulationFrequencySetRequest) encode() []byte         { return []byte{r.Frequency} }
func decodeModulationFrequencySetRequest(data []byte) (ModulationFrequencySetRequest, error) {
	if len(data) != 1 {
		return ModulationFrequencySetRequest{}, errParameterDataLength(pid(PIDModulationFrequency), 1, len(data))
	}
	return ModulationFrequencySetRequest{Frequency: data[0]}, nil
}

// ModulationFrequencyDescriptionGetResponse names one modulation frequency
// setting and reports its value in Hz.
type ModulationFrequencyDescriptionGetResponse struct {
	Frequency     byte
	FrequencyHz   uint32
	Description   string
}

func (ModulationFrequencyDescriptionGetResponse) ParameterID() ParameterID {
	return pid(PIDModulationFrequencyDescription)
}
func (r ModulationFrequencyDescriptionGetResponse) encode() []byte {
	buf := make([]byte, 5)
	buf[0] = r.Frequency
	binary.BigEndian.PutUint32(buf[1:5], r.FrequencyHz)
	return append(buf, encodeLabel(r.Description)...)
}
func decodeModulationFrequencyDescriptionGetResponse(data []byte) (ModulationFrequencyDescriptionGetResponse, error) {
	if len(data) < 5 {
		return ModulationFrequencyDescriptionGetResponse{}, errParameterDataLength(pid(PIDModulationFrequencyDescription), 5, len(data))
	}
	return ModulationFrequencyDescriptionGetResponse{
		Frequency:   data[0],
		FrequencyHz: binary.BigEndian.Uint32(data[1:5]),
		Description: decodeLabel(data[5:]),
	}, nil
}

// OutputResponseTimeGetResponse / SetRequest select a dimmer's output
// response (fade) time by index.
type OutputResponseTimeGetResponse struct {
	CurrentOutputResponseTime byte
	OutputResponseTimeCount   byte
}

func (OutputResponseTimeGetResponse) ParameterID() ParameterID { return pid(PIDOutputResponseTime) }
func (r OutputResponseTimeGetResponse) encode() []byte {
	return []byte{r.CurrentOutputResponseTime, r.OutputResponseTimeCount}
}
func decodeOutputResponseTimeGetResponse(data []byte) (OutputResponseTimeGetResponse, error) {
	if len(data) != 2 {
		return OutputResponseTimeGetResponse{}, errParameterDataLength(pid(PIDOutputResponseTime), 2, len(data))
	}
	return OutputResponseTimeGetResponse{CurrentOutputResponseTime: data[0], OutputResponseTimeCount: data[1]}, nil
}

type OutputResponseTimeSetRequest struct{ OutputResponseTime byte }

func (OutputResponseTimeSetRequest) ParameterID() ParameterID { return pid(PIDOutputResponseTime) }
func (r OutputResponseTimeSetRequest) encode() []byte         { return []byte{r.OutputResponseTime} }
func decodeOutputResponseTimeSetRequest(data []byte) (OutputResponseTimeSetRequest, error) {
	if len(data) != 1 {
		return OutputResponseTimeSetRequest{}, errParameterDataLength(pid(PIDOutputResponseTime), 1, len(data))
	}
	return OutputResponseTimeSetRequest{OutputResponseTime: data[0]}, nil
}

// OutputResponseTimeDescriptionGetResponse names one output response time
// setting.
type OutputResponseTimeDescriptionGetResponse struct {
	OutputResponseTime byte
	Description         string
}

func (OutputResponseTimeDescriptionGetResponse) ParameterID() ParameterID {
	return pid(PIDOutputResponseTimeDescription)
}
func (r OutputResponseTimeDescriptionGetResponse) encode() []byte {
	return append([]byte{r.OutputResponseTime}, encodeLabel(r.Description)...)
}
func decodeOutputResponseTimeDescriptionGetResponse(data []byte) (OutputResponseTimeDescriptionGetResponse, error) {
	if len(data) < 1 {
		return OutputResponseTimeDescriptionGetResponse{}, errParameterDataLength(pid(PIDOutputResponseTimeDescription), 1, len(data))
	}
	return OutputResponseTimeDescriptionGetResponse{
		OutputResponseTime: data[0],
		Description:        decodeLabel(data[1:]),
	}, nil
}

// DimmerInfoGetResponse reports a dimmer's level range and resolution.
type DimmerInfoGetResponse struct {
	MinimumLevelLowerLimit uint16
	MinimumLevelUpperLimit uint16
	MaximumLevelLowerLimit uint16
	MaximumLevelUpperLimit uint16
	NumberOfSupportedCurves byte
	LevelResolution        byte
	MinimumLevelSplitLevel byte
}

func (DimmerInfoGetResponse) ParameterID() ParameterID { return pid(PIDDimmerInfo) }
func (r DimmerInfoGetResponse) encode() []byte {
	buf := make([]byte, 11)
	binary.BigEndian.PutUint16(buf[0:2], r.MinimumLevelLowerLimit)
	binary.BigEndian.PutUint16(buf[2:4], r.MinimumLevelUpperLimit)
	binary.BigEndian.PutUint16(buf[4:6], r.MaximumLevelLowerLimit)
	binary.BigEndian.PutUint16(buf[6:8], r.MaximumLevelUpperLimit)
	buf[8] = r.NumberOfSupportedCurves
	buf[9] = r.LevelResolution
	buf[10] = r.MinimumLevelSplitLevel
	return buf
}
func decodeDimmerInfoGetResponse(data []byte) (DimmerInfoGetResponse, error) {
	if len(data) != 11 {
		return DimmerInfoGetResponse{}, errParameterDataLength(pid(PIDDimmerInfo), 11, len(data))
	}
	return DimmerInfoGetResponse{
		MinimumLevelLowerLimit:  binary.BigEndian.Uint16(data[0:2]),
		MinimumLevelUpperLimit:  binary.BigEndian.Uint16(data[2:4]),
		MaximumLevelLowerLimit:  binary.BigEndian.Uint16(data[4:6]),
		MaximumLevelUpperLimit:  binary.BigEndian.Uint16(data[6:8]),
		NumberOfSupportedCurves: data[8],
		LevelResolution:         data[9],
		MinimumLevelSplitLevel:  data[10],
	}, nil
}

// MinimumLevelGetResponse carries the 16-bit minimum levels for increasing
// and decreasing output plus an on-below-minimum flag;
// MaximumLevelGetResponse carries a single 16-bit maximum level. Neither
// PID has a SetRequest type.
type MinimumLevelGetResponse struct {
	MinimumLevelIncreasing uint16
	MinimumLevelDecreasing uint16
	OnBelowMinimum         bool
}

func (MinimumLevelGetResponse) ParameterID() ParameterID { return pid(PIDMinimumLevel) }
func (r MinimumLevelGetResponse) encode() []byte {
	buf := make([]byte, 5)
	binary.BigEndian.PutUint16(buf[0:2], r.MinimumLevelIncreasing)
	binary.BigEndian.PutUint16(buf[2:4], r.MinimumLevelDecreasing)
	buf[4] = boolByte(r.OnBelowMinimum)
	return buf
}
func decodeMinimumLevelGetResponse(data []byte) (MinimumLevelGetResponse, error) {
	if len(data) != 5 {
		return MinimumLevelGetResponse{}, errParameterDataLength(pid(PIDMinimumLevel), 5, len(data))
	}
	return MinimumLevelGetResponse{
		MinimumLevelIncreasing: binary.BigEndian.Uint16(data[0:2]),
		MinimumLevelDecreasing: binary.BigEndian.Uint16(data[2:4]),
		OnBelowMinimum:         data[4] != 0,
	}, nil
}

type MaximumLevelGetResponse struct{ MaximumLevel uint16 }

func (MaximumLevelGetResponse) ParameterID() ParameterID { return pid(PIDMaximumLevel) }
func (r MaximumLevelGetResponse) encode() []byte {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, r.MaximumLevel)
	return buf
}
func decodeMaximumLevelGetResponse(data []byte) (MaximumLevelGetResponse, error) {
	if len(data) != 2 {
		return MaximumLevelGetResponse{}, errParameterDataLength(pid(PIDMaximumLevel), 2, len(data))
	}
	return MaximumLevelGetResponse{MaximumLevel: binary.BigEndian.Uint16(data)}, nil
}

// PowerStateGetResponse / SetRequest carry the closed-set overall power
// mode.
type PowerStateGetResponse struct{ State PowerState }

func (PowerStateGetResponse) ParameterID() ParameterID { return pid(PIDPowerState) }
func (r PowerStateGetResponse) encode() []byte         { return []byte{byte(r.State)} }
func decodePowerStateGetResponse(data []byte) (PowerStateGetResponse, error) {
	if len(data) != 1 {
		return PowerStateGetResponse{}, errParameterDataLength(pid(PIDPowerState), 1, len(data))
	}
	s, err := PowerStateFromByte(data[0])
	return PowerStateGetResponse{State: s}, err
}

type PowerStateSetRequest struct{ State PowerState }

func (PowerStateSetRequest) ParameterID() ParameterID { return pid(PIDPowerState) }
func (r PowerStateSetRequest) encode() []byte         { return []byte{byte(r.State)} }
func decodePowerStateSetRequest(data []byte) (PowerStateSetRequest, error) {
	if len(data) != 1 {
		return PowerStateSetRequest{}, errParameterDataLength(pid(PIDPowerState), 1, len(data))
	}
	s, err := PowerStateFromByte(data[0])
	return PowerStateSetRequest{State: s}, err
}

// PerformSelfTestSetRequest runs a self-test by index; 0 stops any running
// test.
type PerformSelfTestSetRequest struct{ SelfTestID byte }

func (PerformSelfTestSetRequest) ParameterID() ParameterID { return pid(PIDPerformSelfTest) }
func (r PerformSelfTestSetRequest) encode() []byte         { return []byte{r.SelfTestID} }
func decodePerformSelfTestSetRequest(data []byte) (PerformSelfTestSetRequest, error) {
	if len(data) != 1 {
		return PerformSelfTestSetRequest{}, errParameterDataLength(pid(PIDPerformSelfTest), 1, len(data))
	}
	return PerformSelfTestSetRequest{SelfTestID: data[0]}, nil
}

// SelfTestDescriptionGetResponse names a single self test.
type SelfTestDescriptionGetResponse struct {
	SelfTestID  byte
	Description string
}

func (SelfTestDescriptionGetResponse) ParameterID() ParameterID { return pid(PIDSelfTestDescription) }
func (r SelfTestDescriptionGetResponse) encode() []byte {
	return append([]byte{r.SelfTestID}, encodeLabel(r.Description)...)
}
func decodeSelfTestDescriptionGetResponse(data []byte) (SelfTestDescriptionGetResponse, error) {
	if len(data) < 1 {
		return SelfTestDescriptionGetResponse{}, errParameterDataLength(pid(PIDSelfTestDescription), 1, len(data))
	}
	return SelfTestDescriptionGetResponse{SelfTestID: data[0], Description: decodeLabel(data[1:])}, nil
}

// PresetPlaybackGetResponse / SetRequest select which stored scene (if
// any) the responder is currently replaying, and at what level.
type PresetPlaybackGetResponse struct {
	Mode  PresetPlaybackMode
	Level byte
}

func (PresetPlaybackGetResponse) ParameterID() ParameterID { return pid(PIDPresetPlayback) }
func (r PresetPlaybackGetResponse) encode() []byte {
	buf := make([]byte, 3)
	binary.BigEndian.PutUint16(buf[0:2], uint16(r.Mode))
	buf[2] = r.Level
	return buf
}
func decodePresetPlaybackGetResponse(data []byte) (PresetPlaybackGetResponse, error) {
	if len(data) != 3 {
		return PresetPlaybackGetResponse{}, errParameterDataLength(pid(PIDPresetPlayback), 3, len(data))
	}
	return PresetPlaybackGetResponse{
		Mode:  PresetPlaybackModeFromWire(binary.BigEndian.Uint16(data[0:2])),
		Level: data[2],
	}, nil
}

type PresetPlaybackSetRequest struct {
	Mode  PresetPlaybackMode
	Level byte
}

func (PresetPlaybackSetRequest) ParameterID() ParameterID { return pid(PIDPresetPlayback) }
func (r PresetPlaybackSetRequest) encode() []byte {
	buf := make([]byte, 3)
	binary.BigEndian.PutUint16(buf[0:2], uint16(r.Mode))
	buf[2] = r.Level
	return buf
}
func decodePresetPlaybackSetRequest(data []byte) (PresetPlaybackSetRequest, error) {
	if len(data) != 3 {
		return PresetPlaybackSetRequest{}, errParameterDataLength(pid(PIDPresetPlayback), 3, len(data))
	}
	return PresetPlaybackSetRequest{
		Mode:  PresetPlaybackModeFromWire(binary.BigEndian.Uint16(data[0:2])),
		Level: data[2],
	}, nil
}

// ResetDeviceSetRequest triggers a warm or cold reset.
type ResetDeviceSetRequest struct{ Type ResetType }

func (ResetDeviceSetRequest) ParameterID() ParameterID { return pid(PIDResetDevice) }
func (r ResetDeviceSetRequest) encode() []byte         { return []byte{byte(r.Type)} }
func decodeResetDeviceSetRequest(data []byte) (ResetDeviceSetRequest, error) {
	if len(data) != 1 {
		return ResetDeviceSetRequest{}, errParameterDataLength(pid(PIDResetDevice), 1, len(data))
	}
	t, err := ResetTypeFromByte(data[0])
	return ResetDeviceSetRequest{Type: t}, err
}

// ProxiedDeviceCountGetResponse reports how many devices a proxy is
// managing, and whether that list has changed since last queried.
type ProxiedDeviceCountGetResponse struct {
	DeviceCount  uint16
	ListChanged  bool
}

func (ProxiedDeviceCountGetResponse) ParameterID() ParameterID { return pid(PIDProxiedDeviceCount) }
func (r ProxiedDeviceCountGetResponse) encode() []byte {
	buf := make([]byte, 3)
	binary.BigEndian.PutUint16(buf[0:2], r.DeviceCount)
	buf[2] = boolByte(r.ListChanged)
	return buf
}
func decodeProxiedDeviceCountGetResponse(data []byte) (ProxiedDeviceCountGetResponse, error) {
	if len(data) != 3 {
		return ProxiedDeviceCountGetResponse{}, errParameterDataLength(pid(PIDProxiedDeviceCount), 3, len(data))
	}
	return ProxiedDeviceCountGetResponse{
		DeviceCount: binary.BigEndian.Uint16(data[0:2]),
		ListChanged: data[2] != 0,
	}, nil
}

// ProxiedDevicesGetResponse lists the UIDs a proxy is managing.
type ProxiedDevicesGetResponse struct {
	DeviceUIDs []DeviceUID
}

func (ProxiedDevicesGetResponse) ParameterID() ParameterID { return pid(PIDProxiedDevices) }
func (r ProxiedDevicesGetResponse) encode() []byte {
	buf := make([]byte, 0, len(r.DeviceUIDs)*6)
	for _, u := range r.DeviceUIDs {
		b := u.Bytes()
		buf = append(buf, b[:]...)
	}
	return buf
}
func decodeProxiedDevicesGetResponse(data []byte) (ProxiedDevicesGetResponse, error) {
	if len(data)%6 != 0 {
		return ProxiedDevicesGetResponse{}, errParameterDataLength(pid(PIDProxiedDevices), 0, len(data))
	}
	count := len(data) / 6
	uids := make([]DeviceUID, 0, count)
	for i := 0; i < count; i++ {
		uids = append(uids, DeviceUIDFromBytes(data[i*6:(i+1)*6]))
	}
	return ProxiedDevicesGetResponse{DeviceUIDs: uids}, nil
}

// LanguageCapabilitiesGetResponse lists the 2-character ISO 639-1 language
// codes a responder supports.
type LanguageCapabilitiesGetResponse struct {
	Languages []string
}

func (LanguageCapabilitiesGetResponse) ParameterID() ParameterID { return pid(PIDLanguageCapabilities) }
func (r LanguageCapabilitiesGetResponse) encode() []byte {
	buf := make([]byte, 0, len(r.Languages)*2)
	for _, l := range r.Languages {
		buf = append(buf, []byte(l)...)
	}
	return buf
}
func decodeLanguageCapabilitiesGetResponse(data []byte) (LanguageCapabilitiesGetResponse, error) {
	if len(data)%2 != 0 {
		return LanguageCapabilitiesGetResponse{}, errParameterDataLength(pid(PIDLanguageCapabilities), 0, len(data))
	}
	count := len(data) / 2
	langs := make([]string, 0, count)
	for i := 0; i < count; i++ {
		langs = append(langs, string(data[i*2:i*2+2]))
	}
	return LanguageCapabilitiesGetResponse{Languages: langs}, nil
}

// LanguageGetResponse / SetRequest carry the responder's active 2-character
// language code.
type LanguageGetResponse struct{ Language string }

func (LanguageGetResponse) ParameterID() ParameterID { return pid(PIDLanguage) }
func (r LanguageGetResponse) encode() []byte         { return []byte(r.Language) }
func decodeLanguageGetResponse(data []byte) (LanguageGetResponse, error) {
	if len(data) != 2 {
		return LanguageGetResponse{}, errParameterDataLength(pid(PIDLanguage), 2, len(data))
	}
	return LanguageGetResponse{Language: string(data)}, nil
}

type LanguageSetRequest struct{ Language string }

func (LanguageSetRequest) ParameterID() ParameterID { return pid(PIDLanguage) }
func (r LanguageSetRequest) encode() []byte         { return []byte(r.Language) }
func decodeLanguageSetRequest(data []byte) (LanguageSetRequest, error) {
	if len(data) != 2 {
		return LanguageSetRequest{}, errParameterDataLength(pid(PIDLanguage), 2, len(data))
	}
	return LanguageSetRequest{Language: string(data)}, nil
}
