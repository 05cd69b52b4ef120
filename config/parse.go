package config

import (
	"strconv"
	"strings"
)

// DigitWidthAuto asks for a line number gutter sized from the row count.
const DigitWidthAuto = 0

const autoValue = "auto"

func ParsePositiveInt(option, val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return 0, &Error{Option: option, Value: val}
	}
	return n, nil
}

// ParseUint parses a non-negative integer.
func ParseUint(option, val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return 0, &Error{Option: option, Value: val}
	}
	return n, nil
}

func ParseInt(option, val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, &Error{Option: option, Value: val}
	}
	return n, nil
}

// ParseCharSize reads "HxW", or a lone height whose width is half of it.
func ParseCharSize(option, val string) (CharSize, error) {
	invalid := &Error{Option: option, Value: val}

	h, w, found := strings.Cut(val, "x")
	height, err := strconv.Atoi(h)
	if err != nil {
		return CharSize{}, invalid
	}
	width := height / 2
	if found {
		if width, err = strconv.Atoi(w); err != nil {
			return CharSize{}, invalid
		}
	}
	if height <= 0 || width <= 0 {
		return CharSize{}, invalid
	}
	return CharSize{Width: width, Height: height}, nil
}

// ParseDigitWidth reads "auto" as DigitWidthAuto, anything else must be a
// positive digit count.
func ParseDigitWidth(option, val string) (int, error) {
	if val == autoValue {
		return DigitWidthAuto, nil
	}
	return ParsePositiveInt(option, val)
}

// ParseLength reads a length that may be left to "auto".
func ParseLength(option, val string) (int, error) {
	if val == autoValue {
		return 0, nil
	}
	return ParsePositiveInt(option, val)
}

func ParseBool(option, val string) (bool, error) {
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, &Error{Option: option, Value: val}
	}
	return b, nil
}
