//go:build rdm

package rdm

// RequestParameter is the tagged union of everything an RdmRequest can
// carry: a GET, a SET, or a discovery command, each paired with its
// parameter id and already-encoded payload.
type RequestParameter interface {
	requestParameterID() ParameterID
	requestCommandClass() CommandClass
	requestPayload() []byte
}

type getRequest struct {
	pid     ParameterID
	payload []byte
}

func (g getRequest) requestParameterID() ParameterID   { return g.pid }
func (g getRequest) requestCommandClass() CommandClass { return GetCommand }
func (g getRequest) requestPayload() []byte            { return g.payload }

type setRequest struct {
	pid     ParameterID
	payload []byte
}

func (s setRequest) requestParameterID() ParameterID   { return s.pid }
func (s setRequest) requestCommandClass() CommandClass { return SetCommand }
func (s setRequest) requestPayload() []byte            { return s.payload }

type discoveryRequest struct {
	pid     ParameterID
	payload []byte
}

func (d discoveryRequest) requestParameterID() ParameterID   { return d.pid }
func (d discoveryRequest) requestCommandClass() CommandClass { return DiscoveryCommand }
func (d discoveryRequest) requestPayload() []byte            { return d.payload }

// RdmRequest is a fully-addressed RDM command awaiting encoding onto the
// wire.
type RdmRequest struct {
	Destination       DeviceUID
	Source            DeviceUID
	TransactionNumber byte
	PortId            byte
	SubDevice         SubDeviceId
	Parameter         RequestParameter
}

// Encode assembles the frame bytes for this request, including its
// trailing checksum. PortId must be non-zero for GET and SET commands;
// discovery commands (which have no reply port) are exempt.
func (r RdmRequest) Encode() ([]byte, error) {
	cc := r.Parameter.requestCommandClass()
	if cc != DiscoveryCommand && r.PortId == 0 {
		return nil, errInvalid(InvalidPortId, int(r.PortId))
	}
	return buildFrame(
		r.Destination,
		r.Source,
		r.TransactionNumber,
		r.PortId,
		0,
		r.SubDevice,
		cc,
		r.Parameter.requestParameterID(),
		r.Parameter.requestPayload(),
	), nil
}

// The constructors below wrap the already-built per-PID codec types into
// RequestParameter values. Simple GETs that carry no request payload are
// built directly from their PID; GETs that do carry a payload take their
// selector bytes directly as arguments; every SET, and the discovery
// unique-branch command, wraps the corresponding *SetRequest/*Request
// type's own encode().

func newGet(p ParameterID) RequestParameter           { return getRequest{pid: p} }
func newGetWithPayload(p ParameterID, b []byte) RequestParameter {
	return getRequest{pid: p, payload: b}
}

func GetDeviceInfo() RequestParameter              { return newGet(pid(PIDDeviceInfo)) }
func GetSupportedParameters() RequestParameter     { return newGet(pid(PIDSupportedParameters)) }
func GetSoftwareVersionLabel() RequestParameter    { return newGet(pid(PIDSoftwareVersionLabel)) }
func GetIdentifyDevice() RequestParameter          { return newGet(pid(PIDIdentifyDevice)) }
func GetDeviceLabel() RequestParameter             { return newGet(pid(PIDDeviceLabel)) }
func GetManufacturerLabel() RequestParameter       { return newGet(pid(PIDManufacturerLabel)) }
func GetDeviceModelDescription() RequestParameter  { return newGet(pid(PIDDeviceModelDescription)) }
func GetFactoryDefaults() RequestParameter         { return newGet(pid(PIDFactoryDefaults)) }
func GetProductDetailIDList() RequestParameter     { return newGet(pid(PIDProductDetailIDList)) }
func GetBootSoftwareVersionID() RequestParameter   { return newGet(pid(PIDBootSoftwareVersionID)) }
func GetBootSoftwareVersionLabel() RequestParameter {
	return newGet(pid(PIDBootSoftwareVersionLabel))
}
func GetLanguageCapabilities() RequestParameter { return newGet(pid(PIDLanguageCapabilities)) }
func GetLanguage() RequestParameter             { return newGet(pid(PIDLanguage)) }
func GetDmxPersonality() RequestParameter       { return newGet(pid(PIDDmxPersonality)) }
func GetDmxStartAddress() RequestParameter      { return newGet(pid(PIDDmxStartAddress)) }
func GetSlotInfo() RequestParameter             { return newGet(pid(PIDSlotInfo)) }
func GetDefaultSlotValue() RequestParameter     { return newGet(pid(PIDDefaultSlotValue)) }
func GetDeviceHours() RequestParameter          { return newGet(pid(PIDDeviceHours)) }
func GetLampHours() RequestParameter            { return newGet(pid(PIDLampHours)) }
func GetLampStrikes() RequestParameter          { return newGet(pid(PIDLampStrikes)) }
func GetLampState() RequestParameter            { return newGet(pid(PIDLampState)) }
func GetLampOnMode() RequestParameter           { return newGet(pid(PIDLampOnMode)) }
func GetDevicePowerCycles() RequestParameter    { return newGet(pid(PIDDevicePowerCycles)) }
func GetDisplayInvert() RequestParameter        { return newGet(pid(PIDDisplayInvert)) }
func GetPanInvert() RequestParameter            { return newGet(pid(PIDPanInvert)) }
func GetTiltInvert() RequestParameter           { return newGet(pid(PIDTiltInvert)) }
func GetPanTiltSwap() RequestParameter          { return newGet(pid(PIDPanTiltSwap)) }
func GetRealTimeClock() RequestParameter        { return newGet(pid(PIDRealTimeClock)) }
func GetPowerState() RequestParameter           { return newGet(pid(PIDPowerState)) }
func GetPresetPlayback() RequestParameter       { return newGet(pid(PIDPresetPlayback)) }
func GetCommsStatus() RequestParameter          { return newGet(pid(PIDCommsStatus)) }
func GetDimmerInfo() RequestParameter           { return newGet(pid(PIDDimmerInfo)) }
func GetMinimumLevel() RequestParameter         { return newGet(pid(PIDMinimumLevel)) }
func GetMaximumLevel() RequestParameter         { return newGet(pid(PIDMaximumLevel)) }
func GetCurve() RequestParameter                { return newGet(pid(PIDCurve)) }
func GetModulationFrequency() RequestParameter  { return newGet(pid(PIDModulationFrequency)) }
func GetOutputResponseTime() RequestParameter   { return newGet(pid(PIDOutputResponseTime)) }
func GetProxiedDevices() RequestParameter       { return newGet(pid(PIDProxiedDevices)) }
func GetProxiedDeviceCount() RequestParameter   { return newGet(pid(PIDProxiedDeviceCount)) }

// GETs that carry a request payload selecting which record to describe.
func GetDmxPersonalityDescription(personality byte) RequestParameter {
	return newGetWithPayload(pid(PIDDmxPersonalityDescription), []byte{personality})
}
func GetSlotDescription(slotOffset uint16) RequestParameter {
	return newGetWithPayload(pid(PIDSlotDescription), uint16Bytes(slotOffset))
}
func GetSensorDefinition(sensorID byte) RequestParameter {
	return newGetWithPayload(pid(PIDSensorDefinition), []byte{sensorID})
}
func GetSensorValue(sensorID byte) RequestParameter {
	return newGetWithPayload(pid(PIDSensorValue), []byte{sensorID})
}
func GetSelfTestDescription(selfTestID byte) RequestParameter {
	return newGetWithPayload(pid(PIDSelfTestDescription), []byte{selfTestID})
}
func GetCurveDescription(curve byte) RequestParameter {
	return newGetWithPayload(pid(PIDCurveDescription), []byte{curve})
}
func GetModulationFrequencyDescription(frequency byte) RequestParameter {
	return newGetWithPayload(pid(PIDModulationFrequencyDescription), []byte{frequency})
}
func GetOutputResponseTimeDescription(responseTime byte) RequestParameter {
	return newGetWithPayload(pid(PIDOutputResponseTimeDescription), []byte{responseTime})
}
func GetParameterDescription(described ParameterID) RequestParameter {
	return newGetWithPayload(pid(PIDParameterDescription), uint16Bytes(described.Wire()))
}
func GetStatusMessages(t StatusType) RequestParameter {
	return newGetWithPayload(pid(PIDStatusMessages), []byte{byte(t)})
}

func uint16Bytes(v uint16) []byte { return []byte{byte(v >> 8), byte(v)} }

// SET commands wrap the payload produced by the corresponding *SetRequest
// type's own encode(), so the wire layout stays defined in exactly one
// place.
func SetDeviceLabel(r DeviceLabelSetRequest) RequestParameter {
	return setRequest{pid: r.ParameterID(), payload: r.encode()}
}
func SetIdentifyDevice(r IdentifyDeviceSetRequest) RequestParameter {
	return setRequest{pid: r.ParameterID(), payload: r.encode()}
}
func SetDmxPersonality(r DmxPersonalitySetRequest) RequestParameter {
	return setRequest{pid: r.ParameterID(), payload: r.encode()}
}
func SetDmxStartAddress(r DmxStartAddressSetRequest) RequestParameter {
	return setRequest{pid: r.ParameterID(), payload: r.encode()}
}
func SetDeviceHours(r DeviceHoursSetRequest) RequestParameter {
	return setRequest{pid: r.ParameterID(), payload: r.encode()}
}
func SetLampHours(r LampHoursSetRequest) RequestParameter {
	return setRequest{pid: r.ParameterID(), payload: r.encode()}
}
func SetLampStrikes(r LampStrikesSetRequest) RequestParameter {
	return setRequest{pid: r.ParameterID(), payload: r.encode()}
}
func SetLampState(r LampStateSetRequest) RequestParameter {
	return setRequest{pid: r.ParameterID(), payload: r.encode()}
}
func SetLampOnMode(r LampOnModeSetRequest) RequestParameter {
	return setRequest{pid: r.ParameterID(), payload: r.encode()}
}
func SetDevicePowerCycles(r DevicePowerCyclesSetRequest) RequestParameter {
	return setRequest{pid: r.ParameterID(), payload: r.encode()}
}
func SetDisplayInvert(r DisplayInvertSetRequest) RequestParameter {
	return setRequest{pid: r.ParameterID(), payload: r.encode()}
}
func SetPanInvert(r PanInvertSetRequest) RequestParameter {
	return setRequest{pid: r.ParameterID(), payload: r.encode()}
}
func SetTiltInvert(r TiltInvertSetRequest) RequestParameter {
	return setRequest{pid: r.ParameterID(), payload: r.encode()}
}
func SetPanTiltSwap(r PanTiltSwapSetRequest) RequestParameter {
	return setRequest{pid: r.ParameterID(), payload: r.encode()}
}
func SetSensorValue(r SensorValueSetRequest) RequestParameter {
	return setRequest{pid: r.ParameterID(), payload: r.encode()}
}
func SetCurve(r CurveSetRequest) RequestParameter {
	return setRequest{pid: r.ParameterID(), payload: r.encode()}
}
func SetModulationFrequency(r ModulationFrequencySetRequest) RequestParameter {
	return setRequest{pid: r.ParameterID(), payload: r.encode()}
}
func SetOutputResponseTime(r OutputResponseTimeSetRequest) RequestParameter {
	return setRequest{pid: r.ParameterID(), payload: r.encode()}
}
func SetPowerState(r PowerStateSetRequest) RequestParameter {
	return setRequest{pid: r.ParameterID(), payload: r.encode()}
}
func SetPerformSelfTest(r PerformSelfTestSetRequest) RequestParameter {
	return setRequest{pid: r.ParameterID(), payload: r.encode()}
}
func SetPresetPlayback(r PresetPlaybackSetRequest) RequestParameter {
	return setRequest{pid: r.ParameterID(), payload: r.encode()}
}
func SetResetDevice(r ResetDeviceSetRequest) RequestParameter {
	return setRequest{pid: r.ParameterID(), payload: r.encode()}
}
func SetLanguage(r LanguageSetRequest) RequestParameter {
	return setRequest{pid: r.ParameterID(), payload: r.encode()}
}

// Discovery commands have no GET/SET semantics of their own.
func DiscoverUniqueBranch(r DiscoveryUniqueBranchRequest) RequestParameter {
	return discoveryRequest{pid: r.ParameterID(), payload: r.encode()}
}
func DiscMute() RequestParameter   { return discoveryRequest{pid: pid(PIDDiscMute)} }
func DiscUnMute() RequestParameter { return discoveryRequest{pid: pid(PIDDiscUnMute)} }

// DecodeRequest parses a single request off the wire, the mirror of Decode.
func DecodeRequest(b []byte) (RdmRequest, error) {
	hdr, err := parseFrame(b)
	if err != nil {
		return RdmRequest{}, err
	}
	if !hdr.commandClass.IsRequest() {
		return RdmRequest{}, errInvalid(InvalidCommandClass, int(hdr.commandClass))
	}

	param, err := decodeRequestParameter(hdr.commandClass, hdr.parameterID, hdr.payload)
	if err != nil {
		return RdmRequest{}, err
	}

	return RdmRequest{
		Destination:       hdr.destination,
		Source:            hdr.source,
		TransactionNumber: hdr.transaction,
		PortId:            hdr.portOrResponseType,
		SubDevice:         hdr.subDevice,
		Parameter:         param,
	}, nil
}

// decodeRequestParameter dispatches a request payload to the per-PID
// decoder matching its command class, then re-wraps the typed result
// through the matching constructor so decode and encode agree on layout.
// SET PIDs this package has no typed SetRequest for, and bare GET/discovery
// selectors, decode to the raw wrapper: a payload with no further
// structure to recover is not an error.
func decodeRequestParameter(cc CommandClass, p ParameterID, data []byte) (RequestParameter, error) {
	switch cc {
	case DiscoveryCommand:
		if p.Equal(pid(PIDDiscUniqueBranch)) {
			r, err := decodeDiscoveryUniqueBranchRequest(data)
			if err != nil {
				return nil, err
			}
			return DiscoverUniqueBranch(r), nil
		}
		return discoveryRequest{pid: p, payload: data}, nil

	case GetCommand:
		return getRequest{pid: p, payload: data}, nil

	case SetCommand:
		switch {
		case p.Equal(pid(PIDDeviceLabel)):
			r, err := decodeDeviceLabelSetRequest(data)
			if err != nil {
				return nil, err
			}
			return SetDeviceLabel(r), nil
		case p.Equal(pid(PIDIdentifyDevice)):
			r, err := decodeIdentifyDeviceSetRequest(data)
			if err != nil {
				return nil, err
			}
			return SetIdentifyDevice(r), nil
		case p.Equal(pid(PIDDmxPersonality)):
			r, err := decodeDmxPersonalitySetRequest(data)
			if err != nil {
				return nil, err
			}
			return SetDmxPersonality(r), nil
		case p.Equal(pid(PIDDmxStartAddress)):
			r, err := decodeDmxStartAddressSetRequest(data)
			if err != nil {
				return nil, err
			}
			return SetDmxStartAddress(r), nil
		case p.Equal(pid(PIDDeviceHours)):
			r, err := decodeDeviceHoursSetRequest(data)
			if err != nil {
				return nil, err
			}
			return SetDeviceHours(r), nil
		case p.Equal(pid(PIDLampHours)):
			r, err := decodeLampHoursSetRequest(data)
			if err != nil {
				return nil, err
			}
			return SetLampHours(r), nil
		case p.Equal(pid(PIDLampStrikes)):
			r, err := decodeLampStrikesSetRequest(data)
			if err != nil {
				return nil, err
			}
			return SetLampStrikes(r), nil
		case p.Equal(pid(PIDLampState)):
			r, err := decodeLampStateSetRequest(data)
			if err != nil {
				return nil, err
			}
			return SetLampState(r), nil
		case p.Equal(pid(PIDLampOnMode)):
			r, err := decodeLampOnModeSetRequest(data)
			if err != nil {
				return nil, err
			}
			return SetLampOnMode(r), nil
		case p.Equal(pid(PIDDevicePowerCycles)):
			r, err := decodeDevicePowerCyclesSetRequest(data)
			if err != nil {
				return nil, err
			}
			return SetDevicePowerCycles(r), nil
		case p.Equal(pid(PIDDisplayInvert)):
			r, err := decodeDisplayInvertSetRequest(data)
			if err != nil {
				return nil, err
			}
			return SetDisplayInvert(r), nil
		case p.Equal(pid(PIDPanInvert)):
			r, err := decodePanInvertSetRequest(data)
			if err != nil {
				return nil, err
			}
			return SetPanInvert(r), nil
		case p.Equal(pid(PIDTiltInvert)):
			r, err := decodeTiltInvertSetRequest(data)
			if err != nil {
				return nil, err
			}
			return SetTiltInvert(r), nil
		case p.Equal(pid(PIDPanTiltSwap)):
			r, err := decodePanTiltSwapSetRequest(data)
			if err != nil {
				return nil, err
			}
			return SetPanTiltSwap(r), nil
		case p.Equal(pid(PIDSensorValue)):
			r, err := decodeSensorValueSetRequest(data)
			if err != nil {
				return nil, err
			}
			return SetSensorValue(r), nil
		case p.Equal(pid(PIDCurve)):
			r, err := decodeCurveSetRequest(data)
			if err != nil {
				return nil, err
			}
			return SetCurve(r), nil
		case p.Equal(pid(PIDModulationFrequency)):
			r, err := decodeModulationFrequencySetRequest(data)
			if err != nil {
				return nil, err
			}
			return SetModulationFrequency(r), nil
		case p.Equal(pid(PIDOutputResponseTime)):
			r, err := decodeOutputResponseTimeSetRequest(data)
			if err != nil {
				return nil, err
			}
			return SetOutputResponseTime(r), nil
		case p.Equal(pid(PIDPowerState)):
			r, err := decodePowerStateSetRequest(data)
			if err != nil {
				return nil, err
			}
			return SetPowerState(r), nil
		case p.Equal(pid(PIDPerformSelfTest)):
			r, err := decodePerformSelfTestSetRequest(data)
			if err != nil {
				return nil, err
			}
			return SetPerformSelfTest(r), nil
		case p.Equal(pid(PIDPresetPlayback)):
			r, err := decodePresetPlaybackSetRequest(data)
			if err != nil {
				return nil, err
			}
			return SetPresetPlayback(r), nil
		case p.Equal(pid(PIDResetDevice)):
			r, err := decodeResetDeviceSetRequest(data)
			if err != nil {
				return nil, err
			}
			return SetResetDevice(r), nil
		case p.Equal(pid(PIDLanguage)):
			r, err := decodeLanguageSetRequest(data)
			if err != nil {
				return nil, err
			}
			return SetLanguage(r), nil
		default:
			return setRequest{pid: p, payload: data}, nil
		}

	default:
		return nil, errInvalid(InvalidCommandClass, int(cc))
	}
}
