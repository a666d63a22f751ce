//go:build rdm

package rdm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksumAppendMatchesSum(t *testing.T) {
	cases := [][]byte{
		{},
		{0x01},
		{0xFF, 0xFF, 0xFF},
		bytes.Repeat([]byte{0x10}, 300),
	}
	for _, b := range cases {
		got := checksum(b)
		var want uint16
		for _, v := range b {
			want += uint16(v)
		}
		assert.Equalf(t, want, got, "checksum(% x)", b)

		withSum := appendChecksum(append([]byte(nil), b...))
		require.Len(t, withSum, len(b)+2)
		gotSum := uint16(withSum[len(withSum)-2])<<8 | uint16(withSum[len(withSum)-1])
		assert.Equal(t, want, gotSum)
	}
}

func TestRequestEncodeDecodeRoundTrip(t *testing.T) {
	req := RdmRequest{
		Destination:       NewDeviceUID(0xABCD, 0x12345678),
		Source:            NewDeviceUID(0x0001, 0x00000002),
		TransactionNumber: 0x42,
		PortId:            0x01,
		SubDevice:         RootDevice(),
		Parameter:         GetDeviceInfo(),
	}
	encoded, err := req.Encode()
	require.NoError(t, err)

	hdr, err := parseFrame(encoded)
	require.NoError(t, err)
	assert.Equal(t, req.Destination, hdr.destination)
	assert.Equal(t, req.Source, hdr.source)
	assert.Equal(t, req.TransactionNumber, hdr.transaction)
	assert.Equal(t, GetCommand, hdr.commandClass)
	assert.True(t, hdr.parameterID.Equal(pid(PIDDeviceInfo)))
	assert.Empty(t, hdr.payload)
}

func TestRequestEncodeRejectsZeroPortForNonDiscovery(t *testing.T) {
	req := RdmRequest{
		Destination: NewDeviceUID(0x0001, 0x00000002),
		Source:      NewDeviceUID(0x0001, 0x00000003),
		PortId:      0,
		SubDevice:   RootDevice(),
		Parameter:   GetDeviceInfo(),
	}
	_, err := req.Encode()
	require.Error(t, err)
}

func TestRequestEncodeAllowsZeroPortForDiscovery(t *testing.T) {
	req := RdmRequest{
		Destination: BroadcastAllDevices(),
		Source:      NewDeviceUID(0x0001, 0x00000003),
		PortId:      0,
		SubDevice:   RootDevice(),
		Parameter:   DiscUnMute(),
	}
	_, err := req.Encode()
	require.NoError(t, err)
}

// TestRequestDecodeEncodeFullFrameRoundTrip exercises DecodeRequest against
// the public Encode API end-to-end, rather than a per-PID private decoder,
// confirming request decoding mirrors response decoding.
func TestRequestDecodeEncodeFullFrameRoundTrip(t *testing.T) {
	want := RdmRequest{
		Destination:       NewDeviceUID(0xABCD, 0x12345678),
		Source:            NewDeviceUID(0x0001, 0x00000002),
		TransactionNumber: 0x07,
		PortId:            0x01,
		SubDevice:         RootDevice(),
		Parameter:         SetDeviceLabel(DeviceLabelSetRequest{Label: "Fixture 1"}),
	}
	encoded, err := want.Encode()
	require.NoError(t, err)

	got, err := DecodeRequest(encoded)
	require.NoError(t, err)
	assert.Equal(t, want.Destination, got.Destination)
	assert.Equal(t, want.Source, got.Source)
	assert.Equal(t, want.TransactionNumber, got.TransactionNumber)
	assert.Equal(t, want.PortId, got.PortId)
	assert.True(t, got.Parameter.requestParameterID().Equal(pid(PIDDeviceLabel)))
	assert.Equal(t, SetCommand, got.Parameter.requestCommandClass())

	reEncoded, err := got.Encode()
	require.NoError(t, err)
	assert.Equal(t, encoded, reEncoded)
}

func TestRequestDecodeRejectsResponseCommandClass(t *testing.T) {
	resp := RdmFrameResponse{
		Destination:  NewDeviceUID(0x0001, 0x00000002),
		Source:       NewDeviceUID(0xABCD, 0x12345678),
		ResponseType: Ack,
		SubDevice:    RootDevice(),
		CommandClass: GetCommandResponse,
		ParameterID:  pid(PIDDeviceInfo),
	}
	encoded, err := resp.Encode()
	require.NoError(t, err)

	_, err = DecodeRequest(encoded)
	require.Error(t, err)
}

func TestDeviceInfoResponseRoundTrip(t *testing.T) {
	want := DeviceInfoGetResponse{
		ProtocolVersionMajor: 1,
		ProtocolVersionMinor: 0,
		DeviceModelID:        0x0102,
		ProductCategory:      ProductCategoryFromWire(0x0101),
		SoftwareVersionID:    0x01020304,
		DMXFootprint:         512,
		CurrentPersonality:   1,
		PersonalityCount:     4,
		DMXStartAddress:      1,
		SubDeviceCount:       0,
		SensorCount:          2,
	}
	got, err := decodeDeviceInfoGetResponse(want.encode())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDiscMuteResponseRoundTrip(t *testing.T) {
	bound := NewDeviceUID(0x0102, 0x03040506)
	want := DiscMuteGetResponse{
		ManagedProxy: true,
		SubDevice:    false,
		BootDevice:   true,
		Proxied:      true,
		BindingUID:   &bound,
	}
	got, err := decodeDiscMuteGetResponse(want.encode())
	require.NoError(t, err)
	assert.Equal(t, want.ManagedProxy, got.ManagedProxy)
	assert.Equal(t, want.SubDevice, got.SubDevice)
	assert.Equal(t, want.BootDevice, got.BootDevice)
	assert.Equal(t, want.Proxied, got.Proxied)
	require.NotNil(t, got.BindingUID)
	assert.Equal(t, *want.BindingUID, *got.BindingUID)

	noBind := DiscMuteGetResponse{ManagedProxy: true}
	got2, err := decodeDiscMuteGetResponse(noBind.encode())
	require.NoError(t, err)
	assert.Nil(t, got2.BindingUID)
}

// TestResponseDecodeEncodeFullFrameRoundTrip exercises Decode against the
// new public EncodeResponse API end-to-end, the response-side mirror of
// TestRequestDecodeEncodeFullFrameRoundTrip.
func TestResponseDecodeEncodeFullFrameRoundTrip(t *testing.T) {
	want := RdmFrameResponse{
		Destination:       NewDeviceUID(0x0001, 0x00000002),
		Source:            NewDeviceUID(0xABCD, 0x12345678),
		TransactionNumber: 0x09,
		ResponseType:      Ack,
		SubDevice:         RootDevice(),
		CommandClass:      GetCommandResponse,
		ParameterID:       pid(PIDDeviceLabel),
		Data:              ParameterData{Parameter: DeviceLabelGetResponse{Label: "Fixture 1"}},
	}
	encoded, err := want.Encode()
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	got, ok := decoded.(RdmFrameResponse)
	require.True(t, ok)
	assert.Equal(t, want, got)

	reEncoded, err := EncodeResponse(got)
	require.NoError(t, err)
	assert.Equal(t, encoded, reEncoded)
}

func TestResponseEncodeNackAndAckTimerRoundTrip(t *testing.T) {
	nack := RdmFrameResponse{
		Destination:  NewDeviceUID(0x0001, 0x00000002),
		Source:       NewDeviceUID(0xABCD, 0x12345678),
		ResponseType: Nack,
		SubDevice:    RootDevice(),
		CommandClass: GetCommandResponse,
		ParameterID:  pid(PIDDeviceInfo),
		Data:         NackReason{Reason: NewNackReasonCode(UnknownPID)},
	}
	encoded, err := nack.Encode()
	require.NoError(t, err)
	decoded, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, nack, decoded)

	ackTimer := RdmFrameResponse{
		Destination:  NewDeviceUID(0x0001, 0x00000002),
		Source:       NewDeviceUID(0xABCD, 0x12345678),
		ResponseType: AckTimer,
		SubDevice:    RootDevice(),
		CommandClass: GetCommandResponse,
		ParameterID:  pid(PIDDeviceInfo),
		Data:         EstimatedResponseTime{Milliseconds: 200},
	}
	encoded, err = ackTimer.Encode()
	require.NoError(t, err)
	decoded, err = Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, ackTimer, decoded)
}

func TestResponseDecodeRejectsSetOnReadOnlyParameter(t *testing.T) {
	resp := RdmFrameResponse{
		Destination:  NewDeviceUID(0x0001, 0x00000002),
		Source:       NewDeviceUID(0xABCD, 0x12345678),
		ResponseType: Ack,
		SubDevice:    RootDevice(),
		CommandClass: SetCommandResponse,
		ParameterID:  pid(PIDDeviceInfo),
	}
	encoded, err := resp.Encode()
	require.NoError(t, err)

	_, err = Decode(encoded)
	require.Error(t, err)
	rdmErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, UnsupportedCommandClass, rdmErr.Kind)
}

func TestDecodeLabelStopsAtNullByte(t *testing.T) {
	cases := []struct {
		in   []byte
		want string
	}{
		{[]byte("hello\x00world"), "hello"},
		{[]byte("no nulls here"), "no nulls here"},
		{[]byte{}, ""},
		{bytes.Repeat([]byte("x"), 40), string(bytes.Repeat([]byte("x"), MaxLabelLength))},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, decodeLabel(c.in), "decodeLabel(% x)", c.in)
	}
}

func TestEncodeLabelTruncatesToMax(t *testing.T) {
	long := string(bytes.Repeat([]byte("a"), 50))
	assert.Len(t, encodeLabel(long), MaxLabelLength)
}

func TestParameterIDFromWireTotalConversion(t *testing.T) {
	known := pid(PIDDeviceInfo)
	got := ParameterIDFromWire(known.Wire())
	assert.True(t, got.Equal(known))

	unknown := ParameterIDFromWire(0x9999)
	assert.True(t, unknown.IsManufacturerSpecific())
	assert.Equal(t, uint16(0x9999), unknown.Wire())
}

func TestNackReasonCodeFromWireTotalConversion(t *testing.T) {
	known := NewNackReasonCode(DataOutOfRange)
	assert.True(t, NackReasonCodeFromWire(known.Wire()).IsKnown())

	unknown := NackReasonCodeFromWire(0xBEEF)
	assert.False(t, unknown.IsKnown())
	assert.Equal(t, uint16(0xBEEF), unknown.Wire())
}

func TestDiscoveryResponseRoundTrip(t *testing.T) {
	euid := NewDeviceUID(0xFFFF, 0xFFFFFFFF)
	frame := encodeDiscoveryResponse(euid)
	got, _, err := decodeDiscoveryResponse(frame)
	require.NoError(t, err)
	assert.Equal(t, euid, got)
}

// TestDiscoveryResponsePreambleBoundary confirms the preamble loop accepts
// at most 7 leading 0xFE bytes (spec: 0-7), not 8.
func TestDiscoveryResponsePreambleBoundary(t *testing.T) {
	euid := NewDeviceUID(0xFFFF, 0xFFFFFFFF)
	full := encodeDiscoveryResponse(euid)
	require.Equal(t, byte(0xFE), full[0])
	body := full[discoveryPreambleMaxLen:]

	sevenPreamble := append(bytes.Repeat([]byte{0xFE}, 7), body...)
	got, _, err := decodeDiscoveryResponse(sevenPreamble)
	require.NoError(t, err)
	assert.Equal(t, euid, got)

	eightPreamble := append(bytes.Repeat([]byte{0xFE}, 8), body...)
	_, _, err = decodeDiscoveryResponse(eightPreamble)
	require.Error(t, err)
}
