package matrixcfg

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ValidateGPIOMapping validates the GPIO hardware mapping name.
func ValidateGPIOMapping(mapping string) error {
	if mapping == "" {
		return NewValidationError(KeyGPIOMapping, "hardware mapping cannot be empty")
	}
	if _, ok := HardwareMappings[mapping]; !ok {
		return NewValidationError(KeyGPIOMapping,
			fmt.Sprintf("unknown hardware mapping %q (known: %s)", mapping, knownMappings()))
	}
	return nil
}

func knownMappings() string {
	names := make([]string, 0, len(HardwareMappings))
	for name := range HardwareMappings {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// ValidateRows validates the panel row count.
// Panels are scanned in power-of-two row groups; 8, 16, 32 and 64 exist.
func ValidateRows(rows int) error {
	switch rows {
	case 8, 16, 32, 64:
		return nil
	}
	return NewValidationError(KeyRows, fmt.Sprintf("rows must be 8, 16, 32 or 64, got %d", rows))
}

// ValidateCols validates the panel column count.
func ValidateCols(cols int) error {
	if cols < 16 {
		return NewValidationError(KeyCols, fmt.Sprintf("columns must be at least 16, got %d", cols))
	}
	if cols%8 != 0 {
		return NewValidationError(KeyCols, fmt.Sprintf("columns must be a multiple of 8, got %d", cols))
	}
	return nil
}

// ValidateChainLength validates the number of daisy-chained panels.
func ValidateChainLength(chain int) error {
	if chain < 1 {
		return NewValidationError(KeyChainLength, fmt.Sprintf("chain length must be at least 1, got %d", chain))
	}
	return nil
}

// ValidateParallel validates the parallel chain count.
// The driver supports up to 3 parallel chains on 40-pin GPIO headers.
func ValidateParallel(parallel int) error {
	if parallel < 1 || parallel > 3 {
		return NewValidationError(KeyParallel, fmt.Sprintf("parallel chains must be 1-3, got %d", parallel))
	}
	return nil
}

// ValidateMultiplexing validates the multiplexing scheme code (0-18).
func ValidateMultiplexing(mux int) error {
	if mux < 0 || mux > MaxMultiplexing {
		return NewValidationError(KeyMultiplexing,
			fmt.Sprintf("multiplexing code must be 0-%d, got %d", MaxMultiplexing, mux))
	}
	return nil
}

// ValidatePixelMapper validates a semicolon-separated mapper list such as
// "U-mapper;Rotate:90". An empty string means no mapper.
func ValidatePixelMapper(mapper string) error {
	if mapper == "" {
		return nil
	}
	for _, entry := range strings.Split(mapper, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			return NewValidationError(KeyPixelMapper, "empty mapper entry in list")
		}
		name, param, hasParam := strings.Cut(entry, ":")
		if !PixelMapperNames[name] {
			return NewValidationError(KeyPixelMapper,
				fmt.Sprintf("unknown pixel mapper %q (known: Mirror, Rotate, U-mapper, V-mapper)", name))
		}
		if name == "Rotate" {
			if !hasParam {
				return NewValidationError(KeyPixelMapper, "Rotate mapper needs an angle, e.g. Rotate:90")
			}
			angle, err := strconv.Atoi(param)
			if err != nil || angle%90 != 0 {
				return NewValidationError(KeyPixelMapper,
					fmt.Sprintf("Rotate angle must be a multiple of 90, got %q", param))
			}
		}
	}
	return nil
}

// ValidatePWMBits validates the PWM bit depth (1-11).
func ValidatePWMBits(bits int) error {
	if bits < 1 || bits > 11 {
		return NewValidationError(KeyPWMBits, fmt.Sprintf("PWM bits must be 1-11, got %d", bits))
	}
	return nil
}

// ValidatePWMLSBNanos validates the base PWM time unit in nanoseconds.
// Useful values range from 50 (fast, dim low bits) to 3000 (slow, flicker).
func ValidatePWMLSBNanos(ns int) error {
	if ns < 50 || ns > 3000 {
		return NewValidationError(KeyPWMLSBNanos, fmt.Sprintf("PWM LSB nanoseconds must be 50-3000, got %d", ns))
	}
	return nil
}

// ValidatePWMDitherBits validates the PWM dithering depth (0-2).
func ValidatePWMDitherBits(bits int) error {
	if bits < 0 || bits > 2 {
		return NewValidationError(KeyPWMDitherBits, fmt.Sprintf("PWM dither bits must be 0-2, got %d", bits))
	}
	return nil
}

// ValidateScanMode validates the scan mode: 0 progressive, 1 interlaced.
func ValidateScanMode(mode int) error {
	if mode != 0 && mode != 1 {
		return NewValidationError(KeyScanMode, fmt.Sprintf("scan mode must be 0 (progressive) or 1 (interlaced), got %d", mode))
	}
	return nil
}

// ValidateRowAddrType validates the row addressing scheme code (0-4).
func ValidateRowAddrType(typ int) error {
	if typ < 0 || typ > 4 {
		return NewValidationError(KeyRowAddrType, fmt.Sprintf("row address type must be 0-4, got %d", typ))
	}
	return nil
}

// ValidateRGBSequence validates the wire color order. The driver accepts
// any permutation of the letters R, G and B.
func ValidateRGBSequence(seq string) error {
	if len(seq) != 3 {
		return NewValidationError(KeyRGBSequence, fmt.Sprintf("RGB sequence must be 3 letters, got %q", seq))
	}
	seen := map[rune]bool{}
	for _, r := range seq {
		if r != 'R' && r != 'G' && r != 'B' {
			return NewValidationError(KeyRGBSequence, fmt.Sprintf("RGB sequence may only contain R, G and B, got %q", seq))
		}
		if seen[r] {
			return NewValidationError(KeyRGBSequence, fmt.Sprintf("RGB sequence must use each of R, G, B once, got %q", seq))
		}
		seen[r] = true
	}
	return nil
}

// ValidateBrightness validates the brightness percentage (1-100).
// Sample config files describe the range as 0-100, but the driver
// refuses --led-brightness=0, so the floor here is 1.
func ValidateBrightness(brightness int) error {
	if brightness < 1 || brightness > 100 {
		return NewValidationError(KeyBrightness, fmt.Sprintf("brightness must be 1-100, got %d", brightness))
	}
	return nil
}

// ValidateSlowdownGPIO validates the GPIO slowdown factor. SlowdownUnset
// is accepted and leaves the choice to the driver.
func ValidateSlowdownGPIO(slowdown int) error {
	if slowdown == SlowdownUnset {
		return nil
	}
	if slowdown < 0 || slowdown > 4 {
		return NewValidationError(KeySlowdownGPIO, fmt.Sprintf("GPIO slowdown must be 0-4, got %d", slowdown))
	}
	return nil
}

// Validate checks every setting against its documented range and returns
// all violations (empty slice if the configuration is valid).
func (c *Config) Validate() []error {
	var errs []error

	checks := []error{
		ValidateGPIOMapping(c.GPIOMapping),
		ValidateRows(c.Rows),
		ValidateCols(c.Cols),
		ValidateChainLength(c.ChainLength),
		ValidateParallel(c.Parallel),
		ValidateMultiplexing(c.Multiplexing),
		ValidatePixelMapper(c.PixelMapper),
		ValidatePWMBits(c.PWMBits),
		ValidatePWMLSBNanos(c.PWMLSBNanos),
		ValidatePWMDitherBits(c.PWMDitherBits),
		ValidateScanMode(c.ScanMode),
		ValidateRowAddrType(c.RowAddrType),
		ValidateRGBSequence(c.RGBSequence),
		ValidateBrightness(c.Brightness),
		ValidateSlowdownGPIO(c.SlowdownGPIO),
	}
	for _, err := range checks {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
