package params

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/routemap/core/routemap"
)

var (
	// ErrValidation is returned when a raw value cannot be converted to the
	// declared parameter type, or when the value count does not match the
	// definition count.
	ErrValidation = errors.New("path parameter validation failed")

	// ErrUnknownType is returned for a type suffix with no registered converter.
	ErrUnknownType = errors.New("unknown path parameter type")
)

const (
	dateLayout = "2006-01-02"
)

// converters maps type suffixes to value converters.
var converters = map[string]func(string) (any, error){
	"str":   func(v string) (any, error) { return v, nil },
	"int":   func(v string) (any, error) { return strconv.Atoi(v) },
	"float": func(v string) (any, error) { return strconv.ParseFloat(v, 64) },
	"uuid":  func(v string) (any, error) { return uuid.Parse(v) },
	"date":  func(v string) (any, error) { return time.Parse(dateLayout, v) },
	"datetime": func(v string) (any, error) {
		return time.Parse(time.RFC3339, v)
	},
	"duration": func(v string) (any, error) { return time.ParseDuration(v) },
}

// Parse converts raw path parameter values to their declared types. It
// satisfies routemap.ParamParser and returns a map[string]any keyed by
// parameter name.
func Parse(defs []routemap.ParamDef, values []string) (any, error) {
	if len(values) != len(defs) {
		return nil, fmt.Errorf("%w: expected %d values, got %d", ErrValidation, len(defs), len(values))
	}

	parsed := make(map[string]any, len(defs))
	for i, def := range defs {
		convert, ok := converters[typeOf(def)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownType, def.Full)
		}

		value, err := convert(values[i])
		if err != nil {
			return nil, fmt.Errorf("%w: parameter %q: %v", ErrValidation, def.Name, err)
		}
		parsed[def.Name] = value
	}

	return parsed, nil
}

// typeOf extracts the type suffix from a definition's full token. Tokens
// without a suffix parse as plain strings.
func typeOf(def routemap.ParamDef) string {
	_, typ, ok := strings.Cut(def.Full, ":")
	if !ok {
		return "str"
	}
	return strings.TrimSpace(typ)
}
