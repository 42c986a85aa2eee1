package convert

import (
	"errors"
	"testing"
)

func TestPackedToHex(t *testing.T) {
	tests := []struct {
		color int
		hash  bool
		want  string
	}{
		{0, true, "#000000"},
		{255, true, "#0000FF"},
		{16777215, true, "#FFFFFF"},
		{0xFF0000, true, "#FF0000"},
		{0x0A0B0C, false, "0A0B0C"},
		{0x1000000, true, "#1000000"},
		{-1, false, "FFFFFFFFFFFFFFFF"},
	}

	for _, tt := range tests {
		if got := PackedToHex(tt.color, tt.hash); got != tt.want {
			t.Errorf("PackedToHex(%d, %v) = %q, want %q", tt.color, tt.hash, got, tt.want)
		}
	}
}

func TestHashPrefix(t *testing.T) {
	for c := 0; c <= 0xFFFFFF; c += 4099 {
		if got, want := PackedToHex(c, true), "#"+PackedToHex(c, false); got != want {
			t.Fatalf("PackedToHex(%d, true) = %q, want %q", c, got, want)
		}
		if Hex(c) != PackedToHex(c, true) {
			t.Fatalf("Hex(%d) differs from PackedToHex(%d, true)", c, c)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	check := func(c int) {
		if got := HexToPacked(PackedToHex(c, false)); got != c {
			t.Fatalf("HexToPacked(PackedToHex(%d)) = %d", c, got)
		}
		if got, err := ParseHex(PackedToHex(c, true)); err != nil || got != c {
			t.Fatalf("ParseHex(Hex(%d)) = %d, %v", c, got, err)
		}
	}

	step := 101
	if testing.Short() {
		step = 9973
	}
	for c := 0; c <= 0xFFFFFF; c += step {
		check(c)
	}
	check(0xFFFFFF)
}

// The lenient parser keeps the behavior of a loose numeric parser: every
// leading '#' goes, other junk is skipped and nothing parseable means 0.
func TestHexToPacked(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"#FF0000", 16711680},
		{"00FF00", 65280},
		{"##0000ff", 255},
		{"ffffff", 0xFFFFFF},
		{"", 0},
		{"#", 0},
		{"zzz", 0},
		{"#12xy34", 0x1234},
		{"12#34", 0x1234},
	}

	for _, tt := range tests {
		if got := HexToPacked(tt.in); got != tt.want {
			t.Errorf("HexToPacked(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		err    error
		offset int
	}{
		{in: "#FF0000", want: 16711680},
		{in: "00FF00", want: 65280},
		{in: "###abc", want: 0xABC},
		{in: "", err: ErrNoDigits, offset: -1},
		{in: "##", err: ErrNoDigits, offset: -1},
		{in: "#12xy34", err: ErrInvalidDigit, offset: 3},
		{in: "12#34", err: ErrInvalidDigit, offset: 2},
		{in: "FFFFFFFFFFFFFFFFFF", err: ErrRange, offset: -1},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if tt.err == nil {
			if err != nil || got != tt.want {
				t.Errorf("ParseHex(%q) = %d, %v; want %d", tt.in, got, err, tt.want)
			}
			continue
		}

		if !errors.Is(err, tt.err) {
			t.Errorf("ParseHex(%q) error = %v, want %v", tt.in, err, tt.err)
			continue
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("ParseHex(%q) error %T is not a *ParseError", tt.in, err)
			continue
		}
		if pe.Offset != tt.offset || pe.Input != tt.in {
			t.Errorf("ParseHex(%q) = %+v, want offset %d", tt.in, pe, tt.offset)
		}
	}
}
