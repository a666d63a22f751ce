//go:build rdm

package rdm

import "encoding/binary"

// DmxPersonalityGetResponse reports the currently-selected personality and
// the total number of personalities the device supports.
type DmxPersonalityGetResponse struct {
	CurrentPersonality byte
	PersonalityCount   byte
}

func (DmxPersonalityGetResponse) ParameterID() ParameterID { return pid(PIDDmxPersonality) }

func (r DmxPersonalityGetResponse) encode() []byte {
	return []byte{r.CurrentPersonality, r.PersonalityCount}
}

func decodeDmxPersonalityGetResponse(data []byte) (DmxPersonalityGetResponse, error) {
	if len(data) != 2 {
		return DmxPersonalityGetResponse{}, errParameterDataLength(pid(PIDDmxPersonality), 2, len(data))
	}
	return DmxPersonalityGetResponse{CurrentPersonality: data[0], PersonalityCount: data[1]}, nil
}

// DmxPersonalitySetRequest selects a personality by its 1-based index.
type DmxPersonalitySetRequest struct {
	Personality byte
}

func (DmxPersonalitySetRequest) ParameterID() ParameterID { return pid(PIDDmxPersonality) }

func (r DmxPersonalitySetRequest) encode() []byte { return []byte{r.Personality} }

func decodeDmxPersonalitySetRequest(data []byte) (DmxPersonalitySetRequest, error) {
	if len(data) != 1 {
		return DmxPersonalitySetRequest{}, errParameterDataLength(pid(PIDDmxPersonality), 1, len(data))
	}
	return DmxPersonalitySetRequest{Personality: data[0]}, nil
}

// DmxPersonalityDescriptionGetResponse describes one personality: its DMX
// footprint and a free-form name.
type DmxPersonalityDescriptionGetResponse struct {
	Personality  byte
	DMXFootprint uint16
	Description  string
}

func (DmxPersonalityDescriptionGetResponse) ParameterID() ParameterID {
	return pid(PIDDmxPersonalityDescription)
}

func (r DmxPersonalityDescriptionGetResponse) encode() []byte {
	buf := make([]byte, 3)
	buf[0] = r.Personality
	binary.BigEndian.PutUint16(buf[1:3], r.DMXFootprint)
	return append(buf, encodeLabel(r.Description)...)
}

func decodeDmxPersonalityDescriptionGetResponse(data []byte) (DmxPersonalityDescriptionGetResponse, error) {
	if len(data) < 3 {
		return DmxPersonalityDescriptionGetResponse{}, errParameterDataLength(pid(PIDDmxPersonalityDescription), 3, len(data))
	}
	return DmxPersonalityDescriptionGetResponse{
		Personality:  data[0],
		DMXFootprint: binary.BigEndian.Uint16(data[1:3]),
		Description:  decodeLabel(data[3:]),
	}, nil
}

// DmxStartAddressGetResponse / SetRequest carry the device's 16-bit DMX
// start address (1-512; 0xFFFF means "no DMX footprint").
type DmxStartAddressGetResponse struct {
	StartAddress uint16
}

func (DmxStartAddressGetResponse) ParameterID() ParameterID { return pid(PIDDmxStartAddress) }

func (r DmxStartAddressGetResponse) encode() []byte {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, r.StartAddress)
	return buf
}

func decodeDmxStartAddressGetResponse(data []byte) (DmxStartAddressGetResponse, error) {
	if len(data) != 2 {
		return DmxStartAddressGetResponse{}, errParameterDataLength(pid(PIDDmxStartAddress), 2, len(data))
	}
	return DmxStartAddressGetResponse{StartAddress: binary.BigEndian.Uint16(data)}, nil
}

type DmxStartAddressSetRequest struct {
	StartAddress uint16
}

func (DmxStartAddressSetRequest) ParameterID() ParameterID { return pid(PIDDmxStartAddress) }

func (r DmxStartAddressSetRequest) encode() []byte {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, r.StartAddress)
	return buf
}

func decodeDmxStartAddressSetRequest(data []byte) (DmxStartAddressSetRequest, error) {
	if len(data) != 2 {
		return DmxStartAddressSetRequest{}, errParameterDataLength(pid(PIDDmxStartAddress), 2, len(data))
	}
	return DmxStartAddressSetRequest{StartAddress: binary.BigEndian.Uint16(data)}, nil
}
