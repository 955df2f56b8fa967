package matrixcfg

import (
	"fmt"
	"strings"
)

// DriverFlags renders the configuration as the command-line options the
// rgbmatrix driver binaries and demos understand. Boolean options are
// emitted only when set; SlowdownGPIO is omitted when unset so the driver
// picks a default for the host Pi.
func (c *Config) DriverFlags() []string {
	flags := []string{
		fmt.Sprintf("--led-gpio-mapping=%s", c.GPIOMapping),
		fmt.Sprintf("--led-rows=%d", c.Rows),
		fmt.Sprintf("--led-cols=%d", c.Cols),
		fmt.Sprintf("--led-chain=%d", c.ChainLength),
		fmt.Sprintf("--led-parallel=%d", c.Parallel),
		fmt.Sprintf("--led-multiplexing=%d", c.Multiplexing),
		fmt.Sprintf("--led-pwm-bits=%d", c.PWMBits),
		fmt.Sprintf("--led-pwm-lsb-nanoseconds=%d", c.PWMLSBNanos),
		fmt.Sprintf("--led-pwm-dither-bits=%d", c.PWMDitherBits),
		fmt.Sprintf("--led-scan-mode=%d", c.ScanMode),
		fmt.Sprintf("--led-row-addr-type=%d", c.RowAddrType),
		fmt.Sprintf("--led-rgb-sequence=%s", c.RGBSequence),
		fmt.Sprintf("--led-brightness=%d", c.Brightness),
	}

	if c.PanelType != "" {
		flags = append(flags, fmt.Sprintf("--led-panel-type=%s", c.PanelType))
	}
	if c.PixelMapper != "" {
		flags = append(flags, fmt.Sprintf("--led-pixel-mapper=%s", c.PixelMapper))
	}
	if c.SlowdownGPIO != SlowdownUnset {
		flags = append(flags, fmt.Sprintf("--led-slowdown-gpio=%d", c.SlowdownGPIO))
	}
	if c.ShowRefresh {
		flags = append(flags, "--led-show-refresh")
	}
	if c.InvertColors {
		flags = append(flags, "--led-inverse")
	}
	if c.NoHWPulse {
		flags = append(flags, "--led-no-hardware-pulse")
	}
	if c.NoDropPrivs {
		flags = append(flags, "--led-no-drop-privs")
	}

	return flags
}

// DriverFlagsString returns the driver flags joined for shell use.
func (c *Config) DriverFlagsString() string {
	return strings.Join(c.DriverFlags(), " ")
}
