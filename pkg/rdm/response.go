//go:build rdm

package rdm

import "encoding/binary"

// ResponseParameterData is satisfied by every decoded *GetResponse /
// *SetRequest type in this package; Decode returns one of these boxed
// inside ParameterData. encode reproduces the wire payload, so a decoded
// response can be re-encoded through RdmFrameResponse.Encode.
type ResponseParameterData interface {
	ParameterID() ParameterID
	encode() []byte
}

// RawParameterData is returned for a PID/command-class combination this
// package does not decode further: the raw payload is preserved verbatim
// rather than rejected, matching the open-set discipline used for
// unrecognized PIDs and enum values throughout the package.
type RawParameterData struct {
	PID  ParameterID
	Data []byte
}

func (r RawParameterData) ParameterID() ParameterID { return r.PID }
func (r RawParameterData) encode() []byte           { return r.Data }

// ResponseData is the tagged union of what a responder's ACK carries:
// decoded parameter data, an estimated-response-time hint (AckTimer), or a
// NACK reason.
type ResponseData interface{ isResponseData() }

type ParameterData struct{ Parameter ResponseParameterData }

func (ParameterData) isResponseData() {}

// EstimatedResponseTime holds the AckTimer payload as sent on the wire:
// Milliseconds is a count of 100 ms units and is not converted to
// milliseconds.
type EstimatedResponseTime struct{ Milliseconds uint16 }

func (EstimatedResponseTime) isResponseData() {}

type NackReason struct{ Reason NackReasonCode }

func (NackReason) isResponseData() {}

// RdmResponse is the tagged union of what Decode can produce: a standard
// addressed frame, or a discovery-unique-branch reply (which has no frame
// header of its own).
type RdmResponse interface{ isRdmResponse() }

// RdmFrameResponse is a fully-parsed standard (non-discovery-response)
// RDM reply.
type RdmFrameResponse struct {
	Destination       DeviceUID
	Source            DeviceUID
	TransactionNumber byte
	ResponseType      ResponseType
	MessageCount      byte
	SubDevice         SubDeviceId
	CommandClass      CommandClass
	ParameterID       ParameterID
	Data              ResponseData
}

func (RdmFrameResponse) isRdmResponse() {}

// Encode assembles this response's frame bytes, including its trailing
// checksum. It is the mirror of Decode for the Ack/AckOverflow, AckTimer,
// and Nack cases alike.
func (f RdmFrameResponse) Encode() ([]byte, error) {
	var payload []byte
	switch d := f.Data.(type) {
	case ParameterData:
		payload = d.Parameter.encode()
	case EstimatedResponseTime:
		payload = uint16Bytes(d.Milliseconds)
	case NackReason:
		payload = uint16Bytes(d.Reason.Wire())
	case nil:
		payload = nil
	default:
		return nil, errInvalid(InvalidResponseType, int(f.ResponseType))
	}
	return buildFrame(
		f.Destination,
		f.Source,
		f.TransactionNumber,
		byte(f.ResponseType),
		f.MessageCount,
		f.SubDevice,
		f.CommandClass,
		f.ParameterID,
		payload,
	), nil
}

// DiscoveryUniqueBranchResponse is a responder's reply to a discovery
// unique-branch command: just its EUID, Manchester-coded with no frame
// header.
type DiscoveryUniqueBranchResponse struct {
	DeviceUID DeviceUID
}

func (DiscoveryUniqueBranchResponse) isRdmResponse() {}

// Encode produces the Manchester-coded discovery reply for this EUID.
func (d DiscoveryUniqueBranchResponse) Encode() []byte {
	return encodeDiscoveryResponse(d.DeviceUID)
}

// EncodeResponse mirrors Decode: it assembles the wire bytes for any
// RdmResponse, dispatching on its concrete type.
func EncodeResponse(r RdmResponse) ([]byte, error) {
	switch v := r.(type) {
	case RdmFrameResponse:
		return v.Encode()
	case DiscoveryUniqueBranchResponse:
		return v.Encode(), nil
	default:
		return nil, errInvalid(InvalidDiscoveryResponse, 0)
	}
}

// Decode parses a single response off the wire. Discovery responses (no
// start code, just optional 0xFE preamble and an 0xAA separator) are
// detected before standard frame parsing is attempted.
func Decode(b []byte) (RdmResponse, error) {
	if len(b) == 0 {
		return nil, errInvalid(InvalidFrameLength, 0)
	}
	if b[0] == 0xFE || b[0] == 0xAA {
		uid, _, err := decodeDiscoveryResponse(b)
		if err != nil {
			return nil, err
		}
		return DiscoveryUniqueBranchResponse{DeviceUID: uid}, nil
	}

	hdr, err := parseFrame(b)
	if err != nil {
		return nil, err
	}
	if !hdr.commandClass.IsResponse() {
		return nil, errInvalid(InvalidCommandClass, int(hdr.commandClass))
	}

	responseType, err := ResponseTypeFromByte(hdr.portOrResponseType)
	if err != nil {
		return nil, err
	}

	var data ResponseData
	switch responseType {
	case AckTimer:
		if len(hdr.payload) != 2 {
			return nil, errParameterDataLength(hdr.parameterID, 2, len(hdr.payload))
		}
		data = EstimatedResponseTime{Milliseconds: binary.BigEndian.Uint16(hdr.payload)}
	case Nack:
		if len(hdr.payload) != 2 {
			return nil, errParameterDataLength(hdr.parameterID, 2, len(hdr.payload))
		}
		data = NackReason{Reason: NackReasonCodeFromWire(binary.BigEndian.Uint16(hdr.payload))}
	case Ack, AckOverflow:
		param, err := decodeResponseParameter(hdr.commandClass, hdr.parameterID, hdr.payload)
		if err != nil {
			return nil, err
		}
		data = ParameterData{Parameter: param}
	}

	return RdmFrameResponse{
		Destination:       hdr.destination,
		Source:            hdr.source,
		TransactionNumber: hdr.transaction,
		ResponseType:      responseType,
		MessageCount:      hdr.messageCount,
		SubDevice:         hdr.subDevice,
		CommandClass:      hdr.commandClass,
		ParameterID:       hdr.parameterID,
		Data:              data,
	}, nil
}

// writableParameters is every PID a SET command can legally target
// (E1.20's GET/SET column in Table A-2, as mirrored by this package's
// SetXxx constructors in request.go). A SetCommandResponse for any other
// known PID is a responder bug, not data: it decodes to
// UnsupportedCommandClass instead of RawParameterData.
var writableParameters = map[pidName]bool{
	PIDDeviceLabel:          true,
	PIDIdentifyDevice:       true,
	PIDDmxPersonality:       true,
	PIDDmxStartAddress:      true,
	PIDDeviceHours:          true,
	PIDLampHours:            true,
	PIDLampStrikes:          true,
	PIDLampState:            true,
	PIDLampOnMode:           true,
	PIDDevicePowerCycles:    true,
	PIDDisplayInvert:        true,
	PIDPanInvert:            true,
	PIDTiltInvert:           true,
	PIDPanTiltSwap:          true,
	PIDSensorValue:          true,
	PIDCurve:                true,
	PIDModulationFrequency:  true,
	PIDOutputResponseTime:   true,
	PIDPowerState:           true,
	PIDPerformSelfTest:      true,
	PIDPresetPlayback:       true,
	PIDResetDevice:          true,
	PIDLanguage:             true,
}

// decodeResponseParameter dispatches an ACK/AckOverflow payload to the
// per-PID decoder matching its command class. A PID this package doesn't
// recognize, or a recognized PID with no typed decoder for the command
// class, decodes to RawParameterData rather than failing: an unrecognized
// PID is data, not an error, per the open-set discipline. The one failing
// case is a SetCommandResponse for a recognized PID outside
// writableParameters, which returns UnsupportedCommandClass.
func decodeResponseParameter(cc CommandClass, p ParameterID, data []byte) (ResponseParameterData, error) {
	if cc == DiscoveryCommandResponse {
		switch {
		case p.Equal(pid(PIDDiscMute)):
			return decodeDiscMuteGetResponse(data)
		case p.Equal(pid(PIDDiscUnMute)):
			return decodeDiscUnMuteGetResponse(data)
		default:
			return RawParameterData{PID: p, Data: data}, nil
		}
	}

	if cc == SetCommandResponse {
		if p.known && !writableParameters[p.name] {
			return nil, errUnsupportedCommandClass(p, cc)
		}
		// SET acknowledgements normally carry no data; preserve whatever
		// the responder actually sent rather than assuming emptiness.
		return RawParameterData{PID: p, Data: data}, nil
	}

	switch {
	case p.Equal(pid(PIDDeviceInfo)):
		return decodeDeviceInfoGetResponse(data)
	case p.Equal(pid(PIDSupportedParameters)):
		return decodeSupportedParametersGetResponse(data)
	case p.Equal(pid(PIDSoftwareVersionLabel)):
		return decodeSoftwareVersionLabelGetResponse(data)
	case p.Equal(pid(PIDIdentifyDevice)):
		return decodeIdentifyDeviceGetResponse(data)
	case p.Equal(pid(PIDDeviceLabel)):
		return decodeDeviceLabelGetResponse(data)
	case p.Equal(pid(PIDManufacturerLabel)):
		return decodeManufacturerLabelGetResponse(data)
	case p.Equal(pid(PIDDeviceModelDescription)):
		return decodeDeviceModelDescriptionGetResponse(data)
	case p.Equal(pid(PIDFactoryDefaults)):
		return decodeFactoryDefaultsGetResponse(data)
	case p.Equal(pid(PIDProductDetailIDList)):
		return decodeProductDetailIDListGetResponse(data)
	case p.Equal(pid(PIDParameterDescription)):
		return decodeParameterDescriptionGetResponse(data)
	case p.Equal(pid(PIDBootSoftwareVersionID)):
		return decodeBootSoftwareVersionIDGetResponse(data)
	case p.Equal(pid(PIDBootSoftwareVersionLabel)):
		return decodeBootSoftwareVersionLabelGetResponse(data)
	case p.Equal(pid(PIDLanguageCapabilities)):
		return decodeLanguageCapabilitiesGetResponse(data)
	case p.Equal(pid(PIDLanguage)):
		return decodeLanguageGetResponse(data)
	case p.Equal(pid(PIDDmxPersonality)):
		return decodeDmxPersonalityGetResponse(data)
	case p.Equal(pid(PIDDmxPersonalityDescription)):
		return decodeDmxPersonalityDescriptionGetResponse(data)
	case p.Equal(pid(PIDDmxStartAddress)):
		return decodeDmxStartAddressGetResponse(data)
	case p.Equal(pid(PIDSlotInfo)):
		return decodeSlotInfoGetResponse(data)
	case p.Equal(pid(PIDSlotDescription)):
		return decodeSlotDescriptionGetResponse(data)
	case p.Equal(pid(PIDDefaultSlotValue)):
		return decodeDefaultSlotValueGetResponse(data)
	case p.Equal(pid(PIDSensorDefinition)):
		return decodeSensorDefinitionGetResponse(data)
	case p.Equal(pid(PIDSensorValue)):
		return decodeSensorValueGetResponse(data)
	case p.Equal(pid(PIDDimmerInfo)):
		return decodeDimmerInfoGetResponse(data)
	case p.Equal(pid(PIDMinimumLevel)):
		return decodeMinimumLevelGetResponse(data)
	case p.Equal(pid(PIDMaximumLevel)):
		return decodeMaximumLevelGetResponse(data)
	case p.Equal(pid(PIDCurve)):
		return decodeCurveGetResponse(data)
	case p.Equal(pid(PIDCurveDescription)):
		return decodeCurveDescriptionGetResponse(data)
	case p.Equal(pid(PIDModulationFrequency)):
		return decodeModulationFrequencyGetResponse(data)
	case p.Equal(pid(PIDModulationFrequencyDescription)):
		return decodeModulationFrequencyDescriptionGetResponse(data)
	case p.Equal(pid(PIDOutputResponseTime)):
		return decodeOutputResponseTimeGetResponse(data)
	case p.Equal(pid(PIDOutputResponseTimeDescription)):
		return decodeOutputResponseTimeDescriptionGetResponse(data)
	case p.Equal(pid(PIDDeviceHours)):
		return decodeDeviceHoursGetResponse(data)
	case p.Equal(pid(PIDLampHours)):
		return decodeLampHoursGetResponse(data)
	case p.Equal(pid(PIDLampStrikes)):
		return decodeLampStrikesGetResponse(data)
	case p.Equal(pid(PIDLampState)):
		return decodeLampStateGetResponse(data)
	case p.Equal(pid(PIDLampOnMode)):
		return decodeLampOnModeGetResponse(data)
	case p.Equal(pid(PIDDevicePowerCycles)):
		return decodeDevicePowerCyclesGetResponse(data)
	case p.Equal(pid(PIDDisplayInvert)):
		return decodeDisplayInvertGetResponse(data)
	case p.Equal(pid(PIDPanInvert)):
		return decodePanInvertGetResponse(data)
	case p.Equal(pid(PIDTiltInvert)):
		return decodeTiltInvertGetResponse(data)
	case p.Equal(pid(PIDPanTiltSwap)):
		return decodePanTiltSwapGetResponse(data)
	case p.Equal(pid(PIDRealTimeClock)):
		return decodeRealTimeClockGetResponse(data)
	case p.Equal(pid(PIDPowerState)):
		return decodePowerStateGetResponse(data)
	case p.Equal(pid(PIDSelfTestDescription)):
		return decodeSelfTestDescriptionGetResponse(data)
	case p.Equal(pid(PIDPresetPlayback)):
		return decodePresetPlaybackGetResponse(data)
	case p.Equal(pid(PIDCommsStatus)):
		return decodeCommsStatusGetResponse(data)
	case p.Equal(pid(PIDStatusMessages)):
		return decodeStatusMessagesGetResponse(data)
	case p.Equal(pid(PIDProxiedDeviceCount)):
		return decodeProxiedDeviceCountGetResponse(data)
	case p.Equal(pid(PIDProxiedDevices)):
		return decodeProxiedDevicesGetResponse(data)
	default:
		return RawParameterData{PID: p, Data: data}, nil
	}
}
