// Package dmx implements the ANSI E1.11 (DMX512) slot stream: a bounded,
// mutable byte buffer representing one universe of channel values, plus its
// null-start-code-prefixed wire encoding.
package dmx

const (
	// StartCode is the DMX512 null start code prepended to every encoded
	// frame for standard (non-alternate) lighting data.
	StartCode byte = 0x00
	// MaxChannelCount is the largest number of channel slots a single
	// universe may carry.
	MaxChannelCount = 512
)

// Universe is a bounded buffer of up to MaxChannelCount channel values. The
// zero value is not usable; construct one with New or Default.
type Universe struct {
	channels []byte
}

// Default returns a full 512-channel universe with every value zeroed,
// matching the wire-level default for an unconfigured DMX link.
func Default() *Universe {
	u, _ := New(MaxChannelCount)
	return u
}

// New constructs a universe with the given channel count, all values
// zeroed. It fails with InvalidLength when length is 0 or exceeds
// MaxChannelCount.
func New(length int) (*Universe, error) {
	if length <= 0 || length > MaxChannelCount {
		return nil, invalidLength(length)
	}
	return &Universe{channels: make([]byte, length)}, nil
}

// FromBytes builds a universe directly from raw channel values, with no
// start-code byte expected or stripped. It fails with InvalidLength unless
// 1 <= len(b) <= MaxChannelCount.
func FromBytes(b []byte) (*Universe, error) {
	if len(b) == 0 || len(b) > MaxChannelCount {
		return nil, invalidLength(len(b))
	}
	channels := make([]byte, len(b))
	copy(channels, b)
	return &Universe{channels: channels}, nil
}

// Len returns the universe's current channel count.
func (u *Universe) Len() int {
	return len(u.channels)
}

// Reset zeroes every channel value without changing the channel count.
func (u *Universe) Reset() {
	for i := range u.channels {
		u.channels[i] = 0
	}
}

// ChannelValue returns the value at the given 0-based channel index. It
// fails with ChannelOutOfBounds when i is not less than Len().
func (u *Universe) ChannelValue(i int) (byte, error) {
	if i < 0 || i >= len(u.channels) {
		return 0, channelOutOfBounds(i)
	}
	return u.channels[i], nil
}

// ChannelValues returns the inclusive range of channel values [a, b]. It
// fails with ChannelOutOfBounds when a > b or b is not less than Len().
func (u *Universe) ChannelValues(a, b int) ([]byte, error) {
	if a < 0 || b < a || b >= len(u.channels) {
		return nil, channelOutOfBounds(b)
	}
	return u.channels[a : b+1], nil
}

// SetChannelValue writes a single channel value. It fails with
// ChannelOutOfBounds when i is not less than Len().
func (u *Universe) SetChannelValue(i int, value byte) error {
	if i < 0 || i >= len(u.channels) {
		return channelOutOfBounds(i)
	}
	u.channels[i] = value
	return nil
}

// SetChannelValues writes values starting at the given channel, in order.
// The write begins exactly at start (not start+1 — the offset-by-one
// regression this contract guards against). It fails with
// ChannelOutOfBounds when start+len(values) exceeds Len().
func (u *Universe) SetChannelValues(start int, values []byte) error {
	if start < 0 || start+len(values) > len(u.channels) {
		return channelOutOfBounds(start)
	}
	copy(u.channels[start:start+len(values)], values)
	return nil
}

// SetAllChannelValues fills every channel with the given value.
func (u *Universe) SetAllChannelValues(value byte) {
	for i := range u.channels {
		u.channels[i] = value
	}
}

// Extend appends values to the universe, growing its channel count. It
// fails with InvalidLength when the resulting length would exceed
// MaxChannelCount; on failure the universe is left unchanged.
func (u *Universe) Extend(values []byte) error {
	if len(u.channels)+len(values) > MaxChannelCount {
		return invalidLength(len(u.channels) + len(values))
	}
	u.channels = append(u.channels, values...)
	return nil
}

// AsSlice returns the raw channel values with no start code.
func (u *Universe) AsSlice() []byte {
	return u.channels
}

// Encode returns the wire form: a leading null start code followed by
// every channel value.
func (u *Universe) Encode() []byte {
	out := make([]byte, 0, len(u.channels)+1)
	out = append(out, StartCode)
	out = append(out, u.channels...)
	return out
}
