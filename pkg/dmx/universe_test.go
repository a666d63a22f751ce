package dmx

import (
	"bytes"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{"minimum length", 1, false},
		{"maximum length", 512, false},
		{"typical length", 4, false},
		{"zero length", 0, true},
		{"too long", 513, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := New(tt.length)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if u.Len() != tt.length {
				t.Errorf("Len() = %d, want %d", u.Len(), tt.length)
			}
			for i := 0; i < tt.length; i++ {
				v, err := u.ChannelValue(i)
				if err != nil {
					t.Fatalf("ChannelValue(%d): %v", i, err)
				}
				if v != 0 {
					t.Errorf("ChannelValue(%d) = %d, want 0", i, v)
				}
			}
		})
	}
}

func TestDefault(t *testing.T) {
	u := Default()
	if u.Len() != MaxChannelCount {
		t.Fatalf("Len() = %d, want %d", u.Len(), MaxChannelCount)
	}
}

func TestFromBytes(t *testing.T) {
	u, err := FromBytes([]byte{64, 128, 192, 255})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(u.AsSlice(), []byte{64, 128, 192, 255}) {
		t.Errorf("AsSlice() = %v", u.AsSlice())
	}

	if _, err := FromBytes(nil); err == nil {
		t.Errorf("expected error for empty slice")
	}
	if _, err := FromBytes(make([]byte, 513)); err == nil {
		t.Errorf("expected error for oversized slice")
	}
}

func TestChannelValueOutOfBounds(t *testing.T) {
	u, _ := New(4)
	if _, err := u.ChannelValue(4); err == nil {
		t.Errorf("expected ChannelOutOfBounds")
	}
}

func TestChannelValues(t *testing.T) {
	u, _ := New(4)
	if err := u.SetChannelValues(0, []byte{64, 128, 192, 255}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := u.ChannelValues(1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, []byte{128, 192}) {
		t.Errorf("ChannelValues(1, 2) = %v", got)
	}

	if _, err := u.ChannelValues(1, 4); err == nil {
		t.Errorf("expected ChannelOutOfBounds for b >= Len()")
	}
	if _, err := u.ChannelValues(2, 1); err == nil {
		t.Errorf("expected ChannelOutOfBounds for a > b")
	}
}

func TestSetChannelValue(t *testing.T) {
	u, _ := New(4)
	if err := u.SetChannelValue(0, 64); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := u.ChannelValue(0)
	if v != 64 {
		t.Errorf("ChannelValue(0) = %d, want 64", v)
	}
	if err := u.SetChannelValue(4, 1); err == nil {
		t.Errorf("expected ChannelOutOfBounds")
	}
}

func TestSetChannelValuesOffset(t *testing.T) {
	// Regression: writes begin exactly at start, not start+1.
	u, _ := New(4)
	if err := u.SetChannelValues(1, []byte{128, 192, 255}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(u.AsSlice(), []byte{0, 128, 192, 255}) {
		t.Errorf("AsSlice() = %v", u.AsSlice())
	}

	if err := u.SetChannelValues(2, []byte{1, 2, 3}); err == nil {
		t.Errorf("expected ChannelOutOfBounds when start+len(values) > Len()")
	}
}

func TestSetAllChannelValues(t *testing.T) {
	u, _ := New(4)
	u.SetAllChannelValues(255)
	if !bytes.Equal(u.AsSlice(), []byte{255, 255, 255, 255}) {
		t.Errorf("AsSlice() = %v", u.AsSlice())
	}
}

func TestExtend(t *testing.T) {
	u, _ := New(4)
	if err := u.Extend([]byte{1, 2, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Len() != 7 {
		t.Errorf("Len() = %d, want 7", u.Len())
	}

	big, _ := New(510)
	if err := big.Extend([]byte{1, 2, 3}); err == nil {
		t.Errorf("expected InvalidLength when extending past MaxChannelCount")
	}
}

func TestReset(t *testing.T) {
	u, _ := New(4)
	u.SetAllChannelValues(255)
	u.Reset()
	for i := 0; i < 4; i++ {
		v, _ := u.ChannelValue(i)
		if v != 0 {
			t.Errorf("ChannelValue(%d) = %d after Reset, want 0", i, v)
		}
	}
}

func TestEncode(t *testing.T) {
	u, _ := New(4)
	if err := u.SetChannelValues(0, []byte{64, 128, 192, 255}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := u.Encode()
	want := []byte{0, 64, 128, 192, 255}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode() = %v, want %v", got, want)
	}
	if got[0] != StartCode {
		t.Errorf("Encode()[0] = %#x, want null start code", got[0])
	}
	if !bytes.Equal(got[1:], u.AsSlice()) {
		t.Errorf("Encode()[1:] != AsSlice()")
	}
}
