// Package gpu describes how a rendering device is chosen: the ordered list of
// driver types to try and the minimum feature level a device must offer.
// It knows nothing about a particular graphics API.
package gpu

import (
	"errors"
	"fmt"
	"strings"
)

// DriverType identifies which implementation backs a device.
type DriverType int

const (
	// Hardware is the system's GPU driver.
	Hardware DriverType = iota
	// Software is a fast CPU rasteriser (Mesa llvmpipe).
	Software
	// Reference is the slow, conformance-oriented CPU rasteriser (Mesa softpipe).
	Reference
)

// DefaultDriverTypes is the order devices are tried in.
var DefaultDriverTypes = []DriverType{Hardware, Software, Reference}

var driverNames = [...]string{
	Hardware:  "hardware",
	Software:  "software",
	Reference: "reference",
}

func (d DriverType) String() string {
	if d >= 0 && int(d) < len(driverNames) {
		return driverNames[d]
	}
	return fmt.Sprintf("unknown(%d)", int(d))
}

// ErrUnknownDriver means a driver name did not match any DriverType.
var ErrUnknownDriver = errors.New("gpu: unknown driver type")

// ErrNoDevice means no driver type produced a usable device.
var ErrNoDevice = errors.New("gpu: no suitable device found")

// ErrFeatureLevel means a device was created but does not reach the
// required feature level.
var ErrFeatureLevel = errors.New("gpu: required feature level not supported")

// ParseDriverType accepts the names printed by String, case-insensitively.
// "warp" is accepted as an alias for software.
func ParseDriverType(s string) (DriverType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hardware", "hw":
		return Hardware, nil
	case "software", "warp":
		return Software, nil
	case "reference", "ref":
		return Reference, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDriver, s)
}

// ParseDriverTypes parses a list of names, keeping order and dropping
// duplicates.
func ParseDriverTypes(names []string) ([]DriverType, error) {
	out := make([]DriverType, 0, len(names))
	seen := make(map[DriverType]bool, len(names))
	for _, n := range names {
		d, err := ParseDriverType(n)
		if err != nil {
			return nil, err
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out, nil
}

// FeatureLevel is an API version as major.minor.
type FeatureLevel struct {
	Major, Minor int
}

func (f FeatureLevel) String() string {
	return fmt.Sprintf("%d.%d", f.Major, f.Minor)
}

// AtLeast reports whether f is the same as or newer than min.
func (f FeatureLevel) AtLeast(min FeatureLevel) bool {
	if f.Major != min.Major {
		return f.Major > min.Major
	}
	return f.Minor >= min.Minor
}

// Select tries each driver type in order and returns the first device that
// opens. When every attempt fails the returned error wraps ErrNoDevice and
// each attempt's error.
func Select[T any](types []DriverType, open func(DriverType) (T, error)) (T, DriverType, error) {
	var zero T
	if len(types) == 0 {
		return zero, 0, fmt.Errorf("%w: no driver types to try", ErrNoDevice)
	}

	errs := make([]error, 0, len(types)+1)
	errs = append(errs, ErrNoDevice)
	for _, d := range types {
		dev, err := open(d)
		if err == nil {
			return dev, d, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", d, err))
	}
	return zero, 0, errors.Join(errs...)
}

// CodeError is a bare API status code, reported when no diagnostic text
// is available.
type CodeError uint32

func (e CodeError) Error() string {
	return fmt.Sprintf("error code: 0x%08x", uint32(e))
}
