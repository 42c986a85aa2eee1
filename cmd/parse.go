package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mmuldo/labcodec/convert"
)

// parseHex applies the configured hex policy: lenient unless strict is set.
func parseHex(s string, strict bool) (int, error) {
	if strict {
		return convert.ParseHex(s)
	}
	return convert.HexToPacked(s), nil
}

// parseColor reads a color argument: '#'-prefixed hex or an integer literal.
func parseColor(arg string, strict bool) (int, error) {
	if strings.HasPrefix(arg, "#") {
		return parseHex(arg, strict)
	}

	n, e := strconv.ParseInt(arg, 0, strconv.IntSize)
	if e != nil {
		return 0, fmt.Errorf("'%s' is not a color: %w", arg, e)
	}
	return int(n), nil
}

func parseInt(arg string) (int, error) {
	n, e := strconv.ParseInt(arg, 0, strconv.IntSize)
	if e != nil {
		return 0, fmt.Errorf("'%s' is not an integer: %w", arg, e)
	}
	return int(n), nil
}
