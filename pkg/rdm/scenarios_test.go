//go:build rdm

package rdm

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		t.Fatalf("bad hex literal %q: %v", s, err)
	}
	return b
}

// S1: GET IDENTIFY_DEVICE request encoding.
func TestScenarioS1GetIdentifyDeviceRequest(t *testing.T) {
	req := RdmRequest{
		Destination:       NewDeviceUID(0x0102, 0x03040506),
		Source:            NewDeviceUID(0x0605, 0x04030201),
		TransactionNumber: 0x00,
		PortId:            0x01,
		SubDevice:         RootDevice(),
		Parameter:         GetIdentifyDevice(),
	}
	got, err := req.Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	want := mustHex(t, "CC 01 18 01 02 03 04 05 06 06 05 04 03 02 01 00 01 00 00 00 20 10 00 00 01 40")
	if !bytes.Equal(got, want) {
		t.Errorf("Encode() = % x, want % x", got, want)
	}
}

// S2: GET IDENTIFY_DEVICE response, Ack=true.
func TestScenarioS2GetIdentifyDeviceResponseAck(t *testing.T) {
	frame := mustHex(t, "CC 01 19 01 02 03 04 05 06 06 05 04 03 02 01 00 00 00 00 00 21 10 00 01 01 01 43")
	resp, err := Decode(frame)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	f, ok := resp.(RdmFrameResponse)
	if !ok {
		t.Fatalf("Decode() = %T, want RdmFrameResponse", resp)
	}
	if f.ResponseType != Ack {
		t.Errorf("ResponseType = %v, want Ack", f.ResponseType)
	}
	if f.CommandClass != GetCommandResponse {
		t.Errorf("CommandClass = %v, want GetCommandResponse", f.CommandClass)
	}
	if !f.ParameterID.Equal(pid(PIDIdentifyDevice)) {
		t.Errorf("ParameterID = %v, want IdentifyDevice", f.ParameterID)
	}
	data, ok := f.Data.(ParameterData)
	if !ok {
		t.Fatalf("Data = %T, want ParameterData", f.Data)
	}
	ident, ok := data.Parameter.(IdentifyDeviceGetResponse)
	if !ok {
		t.Fatalf("Parameter = %T, want IdentifyDeviceGetResponse", data.Parameter)
	}
	if !ident.Identifying {
		t.Errorf("Identifying = false, want true")
	}
}

// S3: corrupting any byte except the checksum bytes (or the checksum bytes
// themselves) must yield InvalidChecksum.
func TestScenarioS3ChecksumCorruption(t *testing.T) {
	base := mustHex(t, "CC 01 19 01 02 03 04 05 06 06 05 04 03 02 01 00 00 00 00 00 21 10 00 01 01 01 43")
	for i := range base {
		corrupted := append([]byte(nil), base...)
		corrupted[i] ^= 0xFF
		_, err := Decode(corrupted)
		if err == nil {
			t.Fatalf("byte %d: Decode() succeeded, want InvalidChecksum", i)
		}
		rerr, ok := err.(*Error)
		if !ok || rerr.Kind != InvalidChecksum {
			t.Errorf("byte %d: err = %v, want InvalidChecksum", i, err)
		}
	}
}

// S4: an unrecognized PID decodes to data, not an error.
func TestScenarioS4UnknownPID(t *testing.T) {
	frame := mustHex(t, "CC 01 19 01 02 03 04 05 06 06 05 04 03 02 01 00 00 00 00 00 21 7F FF 01 01 00 00")
	frame = frame[:len(frame)-2]
	frame = appendChecksum(frame)

	resp, err := Decode(frame)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	f := resp.(RdmFrameResponse)
	if !f.ParameterID.IsManufacturerSpecific() {
		t.Errorf("ParameterID.IsManufacturerSpecific() = false, want true")
	}
	if f.ParameterID.Wire() != 0x7FFF {
		t.Errorf("ParameterID.Wire() = %#04x, want 0x7fff", f.ParameterID.Wire())
	}
	raw := f.Data.(ParameterData).Parameter.(RawParameterData)
	if !bytes.Equal(raw.Data, []byte{0x01}) {
		t.Errorf("raw data = % x, want [01]", raw.Data)
	}
}

// S5: a NACK response decodes its reason code and re-encodes identically.
func TestScenarioS5NackResponse(t *testing.T) {
	header := mustHex(t, "CC 01 1A 01 02 03 04 05 06 06 05 04 03 02 01 00 02 00 00 00 21 10 00 02 00 09")
	frame := appendChecksum(header)

	resp, err := Decode(frame)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	f := resp.(RdmFrameResponse)
	if f.ResponseType != Nack {
		t.Errorf("ResponseType = %v, want Nack", f.ResponseType)
	}
	reason := f.Data.(NackReason).Reason
	if !reason.IsKnown() {
		t.Fatalf("reason not known")
	}
	if reason.Wire() != 0x0009 {
		t.Errorf("reason.Wire() = %#04x, want 0x0009 (SubDeviceOutOfRange; this package's NACK reason table matches the original Rust source, where 0x0009 is SubDeviceOutOfRange rather than DataOutOfRange)", reason.Wire())
	}

	reencoded, err := f.Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !bytes.Equal(reencoded, frame) {
		t.Errorf("re-encoding mismatch: % x != % x", reencoded, frame)
	}
}

// S6: a valid discovery response decodes to its EUID; a corrupted
// Manchester byte fails the inner checksum.
func TestScenarioS6DiscoveryUniqueBranchResponse(t *testing.T) {
	euid := NewDeviceUID(0x0102, 0x03040506)
	frame := encodeDiscoveryResponse(euid)

	resp, err := Decode(frame)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	d, ok := resp.(DiscoveryUniqueBranchResponse)
	if !ok {
		t.Fatalf("Decode() = %T, want DiscoveryUniqueBranchResponse", resp)
	}
	if d.DeviceUID != euid {
		t.Errorf("DeviceUID = %v, want %v", d.DeviceUID, euid)
	}

	corrupted := append([]byte(nil), frame...)
	corrupted[len(corrupted)-1] ^= 0xFF
	if _, err := Decode(corrupted); err == nil {
		t.Fatalf("Decode(corrupted) succeeded, want InvalidDiscoveryResponse")
	}
}
