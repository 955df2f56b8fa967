package matrixcfg

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Summary returns a one-line summary of the panel layout.
func (c *Config) Summary() string {
	return fmt.Sprintf("%dx%d panel, chain %d, parallel %d (%s)",
		c.Cols, c.Rows, c.ChainLength, c.Parallel, c.GPIOMapping)
}

// DisplayWidth returns the total pixel width of the assembled display.
func (c *Config) DisplayWidth() int {
	return c.Cols * c.ChainLength
}

// DisplayHeight returns the total pixel height of the assembled display.
func (c *Config) DisplayHeight() int {
	return c.Rows * c.Parallel
}

// FormatGeometry returns a formatted string with the panel geometry.
func (c *Config) FormatGeometry() string {
	var b strings.Builder

	b.WriteString("=== Panel Geometry ===\n")
	b.WriteString(fmt.Sprintf("Panel Size:      %dx%d\n", c.Cols, c.Rows))
	b.WriteString(fmt.Sprintf("Chain Length:    %d\n", c.ChainLength))
	b.WriteString(fmt.Sprintf("Parallel Chains: %d\n", c.Parallel))
	b.WriteString(fmt.Sprintf("Display Size:    %dx%d\n", c.DisplayWidth(), c.DisplayHeight()))
	if c.PixelMapper != "" {
		b.WriteString(fmt.Sprintf("Pixel Mapper:    %s\n", c.PixelMapper))
	}

	return b.String()
}

// FormatWiring returns a formatted string with the wiring settings.
func (c *Config) FormatWiring() string {
	var b strings.Builder

	b.WriteString("=== Wiring ===\n")
	desc := HardwareMappings[c.GPIOMapping]
	if desc == "" {
		desc = "unknown mapping"
	}
	b.WriteString(fmt.Sprintf("GPIO Mapping:     %s (%s)\n", c.GPIOMapping, desc))
	if c.PanelType != "" {
		b.WriteString(fmt.Sprintf("Panel Type:       %s\n", c.PanelType))
	}
	mux := MultiplexingNames[c.Multiplexing]
	if mux == "" {
		mux = "unknown"
	}
	b.WriteString(fmt.Sprintf("Multiplexing:     %d (%s)\n", c.Multiplexing, mux))
	addr := RowAddrTypeNames[c.RowAddrType]
	if addr == "" {
		addr = "unknown"
	}
	b.WriteString(fmt.Sprintf("Row Address Type: %d (%s)\n", c.RowAddrType, addr))
	b.WriteString(fmt.Sprintf("Scan Mode:        %d\n", c.ScanMode))
	b.WriteString(fmt.Sprintf("RGB Sequence:     %s\n", c.RGBSequence))

	return b.String()
}

// FormatTuning returns a formatted string with the driver tuning settings.
func (c *Config) FormatTuning() string {
	var b strings.Builder

	b.WriteString("=== Driver Tuning ===\n")
	b.WriteString(fmt.Sprintf("PWM Bits:        %d\n", c.PWMBits))
	b.WriteString(fmt.Sprintf("PWM LSB (ns):    %d\n", c.PWMLSBNanos))
	b.WriteString(fmt.Sprintf("PWM Dither Bits: %d\n", c.PWMDitherBits))
	b.WriteString(fmt.Sprintf("Brightness:      %d%%\n", c.Brightness))
	if c.SlowdownGPIO != SlowdownUnset {
		b.WriteString(fmt.Sprintf("GPIO Slowdown:   %d\n", c.SlowdownGPIO))
	} else {
		b.WriteString("GPIO Slowdown:   (driver default)\n")
	}
	b.WriteString(fmt.Sprintf("Show Refresh:    %v\n", c.ShowRefresh))
	b.WriteString(fmt.Sprintf("Invert Colors:   %v\n", c.InvertColors))
	b.WriteString(fmt.Sprintf("HW Pulsing:      %v\n", !c.NoHWPulse))
	b.WriteString(fmt.Sprintf("Drop Privileges: %v\n", !c.NoDropPrivs))

	return b.String()
}

// FormatCompact returns a compact multi-line format for terminal display.
func (c *Config) FormatCompact() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Display: %dx%d (%dx%d panel, chain %d, parallel %d)\n",
		c.DisplayWidth(), c.DisplayHeight(), c.Cols, c.Rows, c.ChainLength, c.Parallel))
	b.WriteString(fmt.Sprintf("Wiring:  %s, mux %d, addr type %d, %s\n",
		c.GPIOMapping, c.Multiplexing, c.RowAddrType, c.RGBSequence))
	b.WriteString(fmt.Sprintf("Tuning:  %d-bit PWM @ %dns, brightness %d%%\n",
		c.PWMBits, c.PWMLSBNanos, c.Brightness))

	return b.String()
}

// FormatDetailed returns a comprehensive formatted string with all
// configuration sections.
func (c *Config) FormatDetailed() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(c.FormatGeometry())
	b.WriteString("\n")
	b.WriteString(c.FormatWiring())
	b.WriteString("\n")
	b.WriteString(c.FormatTuning())

	return b.String()
}

// jsonConfig is the JSON projection of a Config for --format json output.
type jsonConfig struct {
	GPIOMapping   string `json:"gpio_mapping"`
	PanelType     string `json:"panel_type,omitempty"`
	Rows          int    `json:"rows"`
	Cols          int    `json:"cols"`
	ChainLength   int    `json:"chain_length"`
	Parallel      int    `json:"parallel"`
	Multiplexing  int    `json:"multiplexing"`
	PixelMapper   string `json:"pixel_mapper,omitempty"`
	PWMBits       int    `json:"pwm_bits"`
	PWMLSBNanos   int    `json:"pwm_lsb_nanoseconds"`
	PWMDitherBits int    `json:"pwm_dither_bits"`
	ScanMode      int    `json:"scan_mode"`
	RowAddrType   int    `json:"row_addr_type"`
	RGBSequence   string `json:"rgb_sequence"`
	Brightness    int    `json:"brightness"`
	ShowRefresh   bool   `json:"show_refresh"`
	InvertColors  bool   `json:"invert_colors"`
	NoHWPulse     bool   `json:"no_hardware_pulse"`
	SlowdownGPIO  *int   `json:"slowdown_gpio,omitempty"`
	NoDropPrivs   bool   `json:"no_drop_privileges"`
	DisplayWidth  int    `json:"display_width"`
	DisplayHeight int    `json:"display_height"`
}

// FormatJSON returns the configuration as indented JSON.
func (c *Config) FormatJSON() (string, error) {
	v := jsonConfig{
		GPIOMapping:   c.GPIOMapping,
		PanelType:     c.PanelType,
		Rows:          c.Rows,
		Cols:          c.Cols,
		ChainLength:   c.ChainLength,
		Parallel:      c.Parallel,
		Multiplexing:  c.Multiplexing,
		PixelMapper:   c.PixelMapper,
		PWMBits:       c.PWMBits,
		PWMLSBNanos:   c.PWMLSBNanos,
		PWMDitherBits: c.PWMDitherBits,
		ScanMode:      c.ScanMode,
		RowAddrType:   c.RowAddrType,
		RGBSequence:   c.RGBSequence,
		Brightness:    c.Brightness,
		ShowRefresh:   c.ShowRefresh,
		InvertColors:  c.InvertColors,
		NoHWPulse:     c.NoHWPulse,
		NoDropPrivs:   c.NoDropPrivs,
		DisplayWidth:  c.DisplayWidth(),
		DisplayHeight: c.DisplayHeight(),
	}
	if c.SlowdownGPIO != SlowdownUnset {
		slowdown := c.SlowdownGPIO
		v.SlowdownGPIO = &slowdown
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return string(data), nil
}
