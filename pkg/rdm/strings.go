//go:build rdm

package rdm

// MaxLabelLength is the largest number of bytes a label/description string
// field may occupy on the wire (device label, manufacturer label, software
// version label, boot software label, language, descriptions).
const MaxLabelLength = 32

// encodeLabel truncates s to MaxLabelLength bytes. Unlike the decode side,
// encoding never needs an explicit terminator: PDL itself delimits the
// field, and the responder is not required to null-pad unused bytes.
func encodeLabel(s string) []byte {
	b := []byte(s)
	if len(b) > MaxLabelLength {
		b = b[:MaxLabelLength]
	}
	return b
}

// decodeLabel returns the prefix of b up to (but not including) the first
// embedded null byte, truncated to MaxLabelLength bytes of input. This is
// the null-termination bug fix: an embedded null ends the string early
// rather than being copied into the result.
func decodeLabel(b []byte) string {
	if len(b) > MaxLabelLength {
		b = b[:MaxLabelLength]
	}
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
