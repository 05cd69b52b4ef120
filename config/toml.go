package config

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// LoadFile overlays the TOML file at path on base. A missing file leaves
// base untouched.
func LoadFile(path string, base Params) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return base, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parse(path, data, base)
}

// LoadReader overlays the TOML document read from r on base.
func LoadReader(r io.Reader, base Params) (Params, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return base, fmt.Errorf("reading config: %w", err)
	}
	return parse("<reader>", data, base)
}

// parse applies every key of the document to a copy of base through Set, so
// a file accepts exactly what the command line does. Keys absent from the
// document keep their base value.
func parse(source string, data []byte, base Params) (Params, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		perr := &ParseError{Path: source, Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return base, perr
	}

	p := base
	for _, key := range slices.Sorted(maps.Keys(doc)) {
		val, ok := scalar(doc[key])
		if !ok {
			return base, &ParseError{Path: source, Err: &Error{Option: key, Value: fmt.Sprint(doc[key])}}
		}
		if err := p.Set(key, val); err != nil {
			return base, &ParseError{Path: source, Err: err}
		}
	}
	return p, nil
}

// scalar renders a decoded TOML value in its command line form.
func scalar(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case int64:
		return strconv.FormatInt(v, 10), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}
