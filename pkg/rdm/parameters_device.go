//go:build rdm

package rdm

import (
	"encoding/binary"
	"fmt"
)

// DeviceInfoGetResponse is the fixed 19-byte DEVICE_INFO record (E1.20
// §10.2.1): protocol version, model id, product category, software
// version id, DMX footprint, current/total personality, DMX start
// address, sub-device count, and sensor count.
type DeviceInfoGetResponse struct {
	ProtocolVersionMajor byte
	ProtocolVersionMinor byte
	DeviceModelID        uint16
	ProductCategory      ProductCategory
	SoftwareVersionID    uint32
	DMXFootprint         uint16
	CurrentPersonality   byte
	PersonalityCount     byte
	DMXStartAddress      uint16
	SubDeviceCount       uint16
	SensorCount          byte
}

func (DeviceInfoGetResponse) ParameterID() ParameterID { return pid(PIDDeviceInfo) }

func (r DeviceInfoGetResponse) encode() []byte {
	buf := make([]byte, 19)
	buf[0] = r.ProtocolVersionMajor
	buf[1] = r.ProtocolVersionMinor
	binary.BigEndian.PutUint16(buf[2:4], r.DeviceModelID)
	binary.BigEndian.PutUint16(buf[4:6], r.ProductCategory.Wire())
	binary.BigEndian.PutUint32(buf[6:10], r.SoftwareVersionID)
	binary.BigEndian.PutUint16(buf[10:12], r.DMXFootprint)
	buf[12] = r.CurrentPersonality
	buf[13] = r.PersonalityCount
	binary.BigEndian.PutUint16(buf[14:16], r.DMXStartAddress)
	binary.BigEndian.PutUint16(buf[16:18], r.SubDeviceCount)
	buf[18] = r.SensorCount
	return buf
}

func decodeDeviceInfoGetResponse(data []byte) (DeviceInfoGetResponse, error) {
	if len(data) != 19 {
		return DeviceInfoGetResponse{}, errParameterDataLength(pid(PIDDeviceInfo), 19, len(data))
	}
	return DeviceInfoGetResponse{
		ProtocolVersionMajor: data[0],
		ProtocolVersionMinor: data[1],
		DeviceModelID:        binary.BigEndian.Uint16(data[2:4]),
		ProductCategory:      ProductCategoryFromWire(binary.BigEndian.Uint16(data[4:6])),
		SoftwareVersionID:    binary.BigEndian.Uint32(data[6:10]),
		DMXFootprint:         binary.BigEndian.Uint16(data[10:12]),
		CurrentPersonality:   data[12],
		PersonalityCount:     data[13],
		DMXStartAddress:      binary.BigEndian.Uint16(data[14:16]),
		SubDeviceCount:       binary.BigEndian.Uint16(data[16:18]),
		SensorCount:          data[18],
	}, nil
}

// ProtocolVersion renders the major.minor version as E1.20 formats it in
// human-readable diagnostics.
func (r DeviceInfoGetResponse) ProtocolVersion() string {
	return fmt.Sprintf("%d.%d", r.ProtocolVersionMajor, r.ProtocolVersionMinor)
}

// SoftwareVersionLabelGetResponse carries a free-form label up to 32
// bytes; decoding stops at the first null byte, encoding writes none.
type SoftwareVersionLabelGetResponse struct {
	Label string
}

func (SoftwareVersionLabelGetResponse) ParameterID() ParameterID { return pid(PIDSoftwareVersionLabel) }

func (r SoftwareVersionLabelGetResponse) encode() []byte { return encodeLabel(r.Label) }

func decodeSoftwareVersionLabelGetResponse(data []byte) (SoftwareVersionLabelGetResponse, error) {
	return SoftwareVersionLabelGetResponse{Label: decodeLabel(data)}, nil
}

// BootSoftwareVersionIDGetResponse reports the boot software's numeric
// version identifier.
type BootSoftwareVersionIDGetResponse struct {
	VersionID uint32
}

func (BootSoftwareVersionIDGetResponse) ParameterID() ParameterID {
	return pid(PIDBootSoftwareVersionID)
}

func (r BootSoftwareVersionIDGetResponse) encode() []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, r.VersionID)
	return buf
}

func decodeBootSoftwareVersionIDGetResponse(data []byte) (BootSoftwareVersionIDGetResponse, error) {
	if len(data) != 4 {
		return BootSoftwareVersionIDGetResponse{}, errParameterDataLength(pid(PIDBootSoftwareVersionID), 4, len(data))
	}
	return BootSoftwareVersionIDGetResponse{VersionID: binary.BigEndian.Uint32(data)}, nil
}

// BootSoftwareVersionLabelGetResponse carries a free-form label.
type BootSoftwareVersionLabelGetResponse struct {
	Label string
}

func (BootSoftwareVersionLabelGetResponse) ParameterID() ParameterID {
	return pid(PIDBootSoftwareVersionLabel)
}

func (r BootSoftwareVersionLabelGetResponse) encode() []byte { return encodeLabel(r.Label) }

func decodeBootSoftwareVersionLabelGetResponse(data []byte) (BootSoftwareVersionLabelGetResponse, error) {
	return BootSoftwareVersionLabelGetResponse{Label: decodeLabel(data)}, nil
}

// DeviceLabelGetResponse / DeviceLabelSetRequest share a free-form label.
type DeviceLabelGetResponse struct{ Label string }

func (DeviceLabelGetResponse) ParameterID() ParameterID { return pid(PIDDeviceLabel) }

func (r DeviceLabelGetResponse) encode() []byte { return encodeLabel(r.Label) }

func decodeDeviceLabelGetResponse(data []byte) (DeviceLabelGetResponse, error) {
	return DeviceLabelGetResponse{Label: decodeLabel(data)}, nil
}

type DeviceLabelSetRequest struct{ Label string }

func (DeviceLabelSetRequest) ParameterID() ParameterID { return pid(PIDDeviceLabel) }

func (r DeviceLabelSetRequest) encode() []byte { return encodeLabel(r.Label) }

func decodeDeviceLabelSetRequest(data []byte) (DeviceLabelSetRequest, error) {
	return DeviceLabelSetRequest{Label: decodeLabel(data)}, nil
}

// IdentifyDeviceGetResponse / IdentifyDeviceSetRequest: 1-byte boolean,
// non-zero meaning true.
type IdentifyDeviceGetResponse struct{ Identifying bool }

func (IdentifyDeviceGetResponse) ParameterID() ParameterID { return pid(PIDIdentifyDevice) }

func (r IdentifyDeviceGetResponse) encode() []byte { return []byte{boolByte(r.Identifying)} }

func decodeIdentifyDeviceGetResponse(data []byte) (IdentifyDeviceGetResponse, error) {
	if len(data) != 1 {
		return IdentifyDeviceGetResponse{}, errParameterDataLength(pid(PIDIdentifyDevice), 1, len(data))
	}
	return IdentifyDeviceGetResponse{Identifying: data[0] != 0}, nil
}

type IdentifyDeviceSetRequest struct{ Identify bool }

func (IdentifyDeviceSetRequest) ParameterID() ParameterID { return pid(PIDIdentifyDevice) }

func (r IdentifyDeviceSetRequest) encode() []byte { return []byte{boolByte(r.Identify)} }

func decodeIdentifyDeviceSetRequest(data []byte) (IdentifyDeviceSetRequest, error) {
	if len(data) != 1 {
		return IdentifyDeviceSetRequest{}, errParameterDataLength(pid(PIDIdentifyDevice), 1, len(data))
	}
	return IdentifyDeviceSetRequest{Identify: data[0] != 0}, nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// ManufacturerLabelGetResponse carries the responder manufacturer's
// free-form name.
type ManufacturerLabelGetResponse struct{ Label string }

func (ManufacturerLabelGetResponse) ParameterID() ParameterID { return pid(PIDManufacturerLabel) }

func (r ManufacturerLabelGetResponse) encode() []byte { return encodeLabel(r.Label) }

func decodeManufacturerLabelGetResponse(data []byte) (ManufacturerLabelGetResponse, error) {
	return ManufacturerLabelGetResponse{Label: decodeLabel(data)}, nil
}

// DeviceModelDescriptionGetResponse carries the responder's free-form model
// description.
type DeviceModelDescriptionGetResponse struct{ Description string }

func (DeviceModelDescriptionGetResponse) ParameterID() ParameterID {
	return pid(PIDDeviceModelDescription)
}

func (r DeviceModelDescriptionGetResponse) encode() []byte { return encodeLabel(r.Description) }

func decodeDeviceModelDescriptionGetResponse(data []byte) (DeviceModelDescriptionGetResponse, error) {
	return DeviceModelDescriptionGetResponse{Description: decodeLabel(data)}, nil
}

// FactoryDefaultsGetResponse reports whether the responder currently holds
// its factory-default configuration.
type FactoryDefaultsGetResponse struct{ FactoryDefaultsActive bool }

func (FactoryDefaultsGetResponse) ParameterID() ParameterID { return pid(PIDFactoryDefaults) }

func (r FactoryDefaultsGetResponse) encode() []byte { return []byte{boolByte(r.FactoryDefaultsActive)} }

func decodeFactoryDefaultsGetResponse(data []byte) (FactoryDefaultsGetResponse, error) {
	if len(data) != 1 {
		return FactoryDefaultsGetResponse{}, errParameterDataLength(pid(PIDFactoryDefaults), 1, len(data))
	}
	return FactoryDefaultsGetResponse{FactoryDefaultsActive: data[0] != 0}, nil
}

// ProductDetailIDListGetResponse carries up to 6 ProductDetail values
// (E1.20 caps this list at 6 entries).
type ProductDetailIDListGetResponse struct{ Details []ProductDetail }

const maxProductDetails = 6

func (ProductDetailIDListGetResponse) ParameterID() ParameterID { return pid(PIDProductDetailIDList) }

func (r ProductDetailIDListGetResponse) encode() []byte {
	buf := make([]byte, 0, len(r.Details)*2)
	for _, d := range r.Details {
		buf = append(buf, byte(d.Wire()>>8), byte(d.Wire()))
	}
	return buf
}

func decodeProductDetailIDListGetResponse(data []byte) (ProductDetailIDListGetResponse, error) {
	if len(data)%2 != 0 {
		return ProductDetailIDListGetResponse{}, errParameterDataLength(pid(PIDProductDetailIDList), 0, len(data))
	}
	count := len(data) / 2
	if count > maxProductDetails {
		return ProductDetailIDListGetResponse{}, errParameterDataLength(pid(PIDProductDetailIDList), maxProductDetails*2, len(data))
	}
	details := make([]ProductDetail, 0, count)
	for i := 0; i < count; i++ {
		details = append(details, ProductDetailFromWire(binary.BigEndian.Uint16(data[i*2:i*2+2])))
	}
	return ProductDetailIDListGetResponse{Details: details}, nil
}

// SupportedParametersGetResponse lists the additional PIDs (beyond the
// four required parameters every responder supports) this device
// implements.
type SupportedParametersGetResponse struct {
	ParameterIDs []ParameterID
}

func (SupportedParametersGetResponse) ParameterID() ParameterID { return pid(PIDSupportedParameters) }

func (r SupportedParametersGetResponse) encode() []byte {
	buf := make([]byte, 0, len(r.ParameterIDs)*2)
	for _, p := range r.ParameterIDs {
		if isRequiredParameter(p) {
			continue
		}
		buf = append(buf, byte(p.Wire()>>8), byte(p.Wire()))
	}
	return buf
}

func decodeSupportedParametersGetResponse(data []byte) (SupportedParametersGetResponse, error) {
	if len(data)%2 != 0 {
		return SupportedParametersGetResponse{}, errParameterDataLength(pid(PIDSupportedParameters), 0, len(data))
	}
	count := len(data) / 2
	if count > MaxSupportedParameters {
		return SupportedParametersGetResponse{}, errParameterDataLength(pid(PIDSupportedParameters), MaxSupportedParameters*2, len(data))
	}
	ids := make([]ParameterID, 0, count)
	for i := 0; i < count; i++ {
		p := ParameterIDFromWire(binary.BigEndian.Uint16(data[i*2 : i*2+2]))
		if isRequiredParameter(p) {
			continue
		}
		ids = append(ids, p)
	}
	return SupportedParametersGetResponse{ParameterIDs: ids}, nil
}

// StandardParameterIDs returns the subset of reported PIDs in the standard
// range (0x0060..0x8000).
func (r SupportedParametersGetResponse) StandardParameterIDs() []ParameterID {
	var out []ParameterID
	for _, p := range r.ParameterIDs {
		if p.IsStandard() {
			out = append(out, p)
		}
	}
	return out
}

// ManufacturerSpecificParameterIDs returns the subset of reported PIDs at
// or above the manufacturer-specific boundary (0x8000).
func (r SupportedParametersGetResponse) ManufacturerSpecificParameterIDs() []ParameterID {
	var out []ParameterID
	for _, p := range r.ParameterIDs {
		if p.Wire() >= 0x8000 {
			out = append(out, p)
		}
	}
	return out
}

// MaxSupportedParameters is the largest number of PIDs a single 231-byte
// PDL payload can report.
const MaxSupportedParameters = MaxPDL / 2

// ParameterDescriptionGetResponse describes a manufacturer-specific PID's
// wire layout: a 20-byte header plus a description of up to 32 bytes
// (decoding stops at the first null byte; encoding writes no terminator).
type ParameterDescriptionGetResponse struct {
	DescribedPID       ParameterID
	PDLSize            byte
	DataType           byte
	CommandClass       byte
	PrefixType         byte
	MinimumValidValue  uint32
	MaximumValidValue  uint32
	DefaultValue       uint32
	Description        string
}

func (ParameterDescriptionGetResponse) ParameterID() ParameterID { return pid(PIDParameterDescription) }

func (r ParameterDescriptionGetResponse) encode() []byte {
	buf := make([]byte, 20)
	binary.BigEndian.PutUint16(buf[0:2], r.DescribedPID.Wire())
	buf[2] = r.PDLSize
	buf[3] = r.DataType
	buf[4] = r.CommandClass
	buf[5] = r.PrefixType
	binary.BigEndian.PutUint32(buf[8:12], r.MinimumValidValue)
	binary.BigEndian.PutUint32(buf[12:16], r.MaximumValidValue)
	binary.BigEndian.PutUint32(buf[16:20], r.DefaultValue)
	buf = append(buf, encodeLabel(r.Description)...)
	return buf
}

func decodeParameterDescriptionGetResponse(data []byte) (ParameterDescriptionGetResponse, error) {
	if len(data) < 20 {
		return ParameterDescriptionGetResponse{}, errParameterDataLength(pid(PIDParameterDescription), 20, len(data))
	}
	return ParameterDescriptionGetResponse{
		DescribedPID:      ParameterIDFromWire(binary.BigEndian.Uint16(data[0:2])),
		PDLSize:           data[2],
		DataType:          data[3],
		CommandClass:      data[4],
		PrefixType:        data[5],
		MinimumValidValue: binary.BigEndian.Uint32(data[8:12]),
		MaximumValidValue: binary.BigEndian.Uint32(data[12:16]),
		DefaultValue:      binary.BigEndian.Uint32(data[16:20]),
		Description:       decodeLabel(data[20:]),
	}, nil
}
