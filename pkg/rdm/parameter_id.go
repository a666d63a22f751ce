//go:build rdm

package rdm

// ParameterID identifies an RDM parameter. It is an open-ended set: any
// 16-bit wire value converts totally, with unrecognized values preserved
// as ManufacturerSpecific(raw) rather than failing.
type ParameterID struct {
	known bool
	name  pidName
	raw   uint16
}

type pidName int

const (
	PIDDiscUniqueBranch pidName = iota
	PIDDiscMute
	PIDDiscUnMute
	PIDProxiedDevices
	PIDProxiedDeviceCount
	PIDCommsStatus
	PIDQueuedMessage
	PIDStatusMessages
	PIDStatusIDDescription
	PIDClearStatusID
	PIDSubDeviceIDStatusReportThreshold
	PIDSupportedParameters
	PIDParameterDescription
	PIDDeviceInfo
	PIDProductDetailIDList
	PIDDeviceLabel
	PIDDeviceModelDescription
	PIDManufacturerLabel
	PIDFactoryDefaults
	PIDLanguageCapabilities
	PIDLanguage
	PIDSoftwareVersionLabel
	PIDBootSoftwareVersionID
	PIDBootSoftwareVersionLabel
	PIDDmxPersonality
	PIDDmxPersonalityDescription
	PIDDmxStartAddress
	PIDSlotInfo
	PIDSlotDescription
	PIDDefaultSlotValue
	PIDSensorDefinition
	PIDSensorValue
	PIDRecordSensors
	PIDDimmerInfo
	PIDMinimumLevel
	PIDMaximumLevel
	PIDCurve
	PIDCurveDescription
	PIDOutputResponseTime
	PIDOutputResponseTimeDescription
	PIDOutputResponseTimeDown
	PIDOutputResponseTimeDownDescription
	PIDModulationFrequency
	PIDModulationFrequencyDescription
	PIDDeviceHours
	PIDLampHours
	PIDLampStrikes
	PIDLampState
	PIDLampOnMode
	PIDDevicePowerCycles
	PIDDisplayInvert
	PIDDisplayLevel
	PIDPanInvert
	PIDTiltInvert
	PIDPanTiltSwap
	PIDRealTimeClock
	PIDIdentifyDevice
	PIDResetDevice
	PIDPowerState
	PIDPerformSelfTest
	PIDSelfTestDescription
	PIDCapturePreset
	PIDPresetPlayback
)

var pidWire = map[pidName]uint16{
	PIDDiscUniqueBranch:                 0x0001,
	PIDDiscMute:                         0x0002,
	PIDDiscUnMute:                       0x0003,
	PIDProxiedDevices:                   0x0010,
	PIDProxiedDeviceCount:               0x0011,
	PIDCommsStatus:                      0x0015,
	PIDQueuedMessage:                    0x0020,
	PIDStatusMessages:                   0x0030,
	PIDStatusIDDescription:              0x0031,
	PIDClearStatusID:                    0x0032,
	PIDSubDeviceIDStatusReportThreshold: 0x0033,
	PIDSupportedParameters:              0x0050,
	PIDParameterDescription:             0x0051,
	PIDDeviceInfo:                       0x0060,
	PIDProductDetailIDList:              0x0070,
	PIDDeviceLabel:                      0x0082,
	PIDDeviceModelDescription:           0x0080,
	PIDManufacturerLabel:                0x0081,
	PIDFactoryDefaults:                  0x0090,
	PIDLanguageCapabilities:             0x00A0,
	PIDLanguage:                         0x00B0,
	PIDSoftwareVersionLabel:             0x00C0,
	PIDBootSoftwareVersionID:            0x00C1,
	PIDBootSoftwareVersionLabel:         0x00C2,
	PIDDmxPersonality:                   0x00E0,
	PIDDmxPersonalityDescription:        0x00E1,
	PIDDmxStartAddress:                  0x00F0,
	PIDSlotInfo:                         0x0120,
	PIDSlotDescription:                  0x0121,
	PIDDefaultSlotValue:                 0x0122,
	PIDSensorDefinition:                 0x0200,
	PIDSensorValue:                      0x0201,
	PIDRecordSensors:                    0x0202,
	PIDDimmerInfo:                       0x0340,
	PIDMinimumLevel:                     0x0341,
	PIDMaximumLevel:                     0x0342,
	PIDCurve:                            0x0343,
	PIDCurveDescription:                 0x0344,
	PIDOutputResponseTime:               0x0345,
	PIDOutputResponseTimeDescription:    0x0346,
	PIDOutputResponseTimeDown:           0x0371,
	PIDOutputResponseTimeDownDescription: 0x0372,
	PIDModulationFrequency:              0x0347,
	PIDModulationFrequencyDescription:   0x0348,
	PIDDeviceHours:                      0x0400,
	PIDLampHours:                        0x0401,
	PIDLampStrikes:                      0x0402,
	PIDLampState:                        0x0403,
	PIDLampOnMode:                       0x0404,
	PIDDevicePowerCycles:                0x0405,
	PIDDisplayInvert:                    0x0500,
	PIDDisplayLevel:                     0x0501,
	PIDPanInvert:                        0x0600,
	PIDTiltInvert:                       0x0601,
	PIDPanTiltSwap:                      0x0602,
	PIDRealTimeClock:                    0x0603,
	PIDIdentifyDevice:                   0x1000,
	PIDResetDevice:                      0x1001,
	PIDPowerState:                       0x1010,
	PIDPerformSelfTest:                  0x1020,
	PIDSelfTestDescription:              0x1021,
	PIDCapturePreset:                    0x1030,
	PIDPresetPlayback:                   0x1031,
}

var pidNames = map[pidName]string{
	PIDDiscUniqueBranch:                 "DiscUniqueBranch",
	PIDDiscMute:                         "DiscMute",
	PIDDiscUnMute:                       "DiscUnMute",
	PIDProxiedDevices:                   "ProxiedDevices",
	PIDProxiedDeviceCount:               "ProxiedDeviceCount",
	PIDCommsStatus:                      "CommsStatus",
	PIDQueuedMessage:                    "QueuedMessage",
	PIDStatusMessages:                   "StatusMessages",
	PIDStatusIDDescription:              "StatusIdDescription",
	PIDClearStatusID:                    "ClearStatusId",
	PIDSubDeviceIDStatusReportThreshold: "SubDeviceIdStatusReportThreshold",
	PIDSupportedParameters:              "SupportedParameters",
	PIDParameterDescription:             "ParameterDescription",
	PIDDeviceInfo:                       "DeviceInfo",
	PIDProductDetailIDList:              "ProductDetailIdList",
	PIDDeviceLabel:                      "DeviceLabel",
	PIDDeviceModelDescription:           "DeviceModelDescription",
	PIDManufacturerLabel:                "ManufacturerLabel",
	PIDFactoryDefaults:                  "FactoryDefaults",
	PIDLanguageCapabilities:             "LanguageCapabilities",
	PIDLanguage:                         "Language",
	PIDSoftwareVersionLabel:             "SoftwareVersionLabel",
	PIDBootSoftwareVersionID:            "BootSoftwareVersionId",
	PIDBootSoftwareVersionLabel:         "BootSoftwareVersionLabel",
	PIDDmxPersonality:                   "DmxPersonality",
	PIDDmxPersonalityDescription:        "DmxPersonalityDescription",
	PIDDmxStartAddress:                  "DmxStartAddress",
	PIDSlotInfo:                         "SlotInfo",
	PIDSlotDescription:                  "SlotDescription",
	PIDDefaultSlotValue:                 "DefaultSlotValue",
	PIDSensorDefinition:                 "SensorDefinition",
	PIDSensorValue:                      "SensorValue",
	PIDRecordSensors:                    "RecordSensors",
	PIDDimmerInfo:                       "DimmerInfo",
	PIDMinimumLevel:                     "MinimumLevel",
	PIDMaximumLevel:                     "MaximumLevel",
	PIDCurve:                            "Curve",
	PIDCurveDescription:                 "CurveDescription",
	PIDOutputResponseTime:               "OutputResponseTime",
	PIDOutputResponseTimeDescription:    "OutputResponseTimeDescription",
	PIDOutputResponseTimeDown:           "OutputResponseTimeDown",
	PIDOutputResponseTimeDownDescription: "OutputResponseTimeDownDescription",
	PIDModulationFrequency:              "ModulationFrequency",
	PIDModulationFrequencyDescription:   "ModulationFrequencyDescription",
	PIDDeviceHours:                      "DeviceHours",
	PIDLampHours:                        "LampHours",
	PIDLampStrikes:                      "LampStrikes",
	PIDLampState:                        "LampState",
	PIDLampOnMode:                       "LampOnMode",
	PIDDevicePowerCycles:                "DevicePowerCycles",
	PIDDisplayInvert:                    "DisplayInvert",
	PIDDisplayLevel:                     "DisplayLevel",
	PIDPanInvert:                        "PanInvert",
	PIDTiltInvert:                       "TiltInvert",
	PIDPanTiltSwap:                      "PanTiltSwap",
	PIDRealTimeClock:                    "RealTimeClock",
	PIDIdentifyDevice:                   "IdentifyDevice",
	PIDResetDevice:                      "ResetDevice",
	PIDPowerState:                       "PowerState",
	PIDPerformSelfTest:                  "PerformSelfTest",
	PIDSelfTestDescription:              "SelfTestDescription",
	PIDCapturePreset:                    "CapturePreset",
	PIDPresetPlayback:                   "PresetPlayback",
}

var wireToPidName = func() map[uint16]pidName {
	m := make(map[uint16]pidName, len(pidWire))
	for name, wire := range pidWire {
		m[wire] = name
	}
	return m
}()

// RequiredParameters lists the PIDs every RDM responder must support
// (E1.20 Table A-4). SupportedParametersGetResponse filters these out of
// its reported PID list, since a controller learns of them unconditionally.
var RequiredParameters = []ParameterID{
	pid(PIDDeviceInfo),
	pid(PIDSupportedParameters),
	pid(PIDSoftwareVersionLabel),
	pid(PIDIdentifyDevice),
}

func pid(name pidName) ParameterID {
	return ParameterID{known: true, name: name, raw: pidWire[name]}
}

// ParameterIDFromWire is a total conversion: unrecognized wire values
// become ManufacturerSpecific(raw).
func ParameterIDFromWire(w uint16) ParameterID {
	if name, ok := wireToPidName[w]; ok {
		return ParameterID{known: true, name: name, raw: w}
	}
	return ParameterID{known: false, raw: w}
}

// Wire returns the 16-bit wire encoding, recovering the original raw value
// for manufacturer-specific PIDs.
func (p ParameterID) Wire() uint16 { return p.raw }

// IsManufacturerSpecific reports whether this PID fell outside the known
// standard set (regardless of whether its raw value lies in the
// conventional 0x8000+ manufacturer-specific range — any unrecognized PID
// is preserved this way, matching the open-set discipline).
func (p ParameterID) IsManufacturerSpecific() bool { return !p.known }

// IsStandard reports whether the raw wire value lies in the standard PID
// range (0x0060..0x8000), independent of whether this library recognizes
// the specific value.
func (p ParameterID) IsStandard() bool { return p.raw >= 0x0060 && p.raw < 0x8000 }

func (p ParameterID) Equal(other ParameterID) bool {
	return p.known == other.known && p.raw == other.raw
}

func (p ParameterID) String() string {
	if p.known {
		return pidNames[p.name]
	}
	return "ManufacturerSpecific"
}

func isRequiredParameter(p ParameterID) bool {
	for _, r := range RequiredParameters {
		if p.Equal(r) {
			return true
		}
	}
	return false
}
