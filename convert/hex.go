package convert

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNoDigits is returned by ParseHex when nothing is left after the
	// leading '#' characters are stripped.
	ErrNoDigits = errors.New("no hexadecimal digits")
	// ErrInvalidDigit is returned by ParseHex for a non-hexadecimal character.
	ErrInvalidDigit = errors.New("invalid hexadecimal digit")
	// ErrRange is returned by ParseHex when the value does not fit in an int.
	ErrRange = errors.New("value out of range")
)

// ParseError records a failed strict hex parse.
type ParseError struct {
	Input  string
	Offset int // offset of the offending character in Input, -1 if none
	Err    error
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("parse hex %q: %v at offset %d", e.Input, e.Err, e.Offset)
	}
	return fmt.Sprintf("parse hex %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// PackedToHex formats color as uppercase hexadecimal, zero-padded to six
// digits and optionally prefixed with '#'. Values that need more than six
// digits are not truncated. Negative values are written as their 64-bit
// two's complement.
func PackedToHex(color int, prependHash bool) string {
	var s string
	if color < 0 {
		s = fmt.Sprintf("%06X", uint64(color))
	} else {
		s = fmt.Sprintf("%06X", color)
	}
	if prependHash {
		return "#" + s
	}
	return s
}

// Hex is PackedToHex with the '#' prefix.
func Hex(color int) string {
	return PackedToHex(color, true)
}

// HexToPacked parses a hex color leniently. All leading '#' characters are
// stripped and any other non-hexadecimal character is skipped, so input
// without a single hex digit yields 0. Overlong input wraps.
func HexToPacked(hex string) int {
	var n uint64
	for _, r := range strings.TrimLeft(hex, "#") {
		d, ok := hexDigit(r)
		if !ok {
			continue
		}
		n = n<<4 | uint64(d)
	}
	return int(n)
}

// ParseHex is the strict counterpart of HexToPacked: after stripping leading
// '#' characters every remaining character must be a hex digit.
func ParseHex(hex string) (int, error) {
	trimmed := strings.TrimLeft(hex, "#")
	prefix := len(hex) - len(trimmed)
	if trimmed == "" {
		return 0, &ParseError{Input: hex, Offset: -1, Err: ErrNoDigits}
	}
	for i, r := range trimmed {
		if _, ok := hexDigit(r); !ok {
			return 0, &ParseError{Input: hex, Offset: prefix + i, Err: ErrInvalidDigit}
		}
	}

	n, err := strconv.ParseInt(trimmed, 16, strconv.IntSize)
	if err != nil {
		return 0, &ParseError{Input: hex, Offset: -1, Err: ErrRange}
	}
	return int(n), nil
}

func hexDigit(r rune) (byte, bool) {
	switch {
	case '0' <= r && r <= '9':
		return byte(r - '0'), true
	case 'a' <= r && r <= 'f':
		return byte(r-'a') + 10, true
	case 'A' <= r && r <= 'F':
		return byte(r-'A') + 10, true
	}
	return 0, false
}
