package matrixcfg

import (
	"strings"
	"testing"
)

func TestDriverFlagsDefaults(t *testing.T) {
	flags := Default().DriverFlags()

	want := []string{
		"--led-gpio-mapping=adafruit-hat-pwm",
		"--led-rows=64",
		"--led-cols=64",
		"--led-chain=1",
		"--led-parallel=1",
		"--led-multiplexing=0",
		"--led-pwm-bits=11",
		"--led-pwm-lsb-nanoseconds=130",
		"--led-brightness=100",
	}
	joined := strings.Join(flags, " ")
	for _, w := range want {
		if !strings.Contains(joined, w) {
			t.Errorf("DriverFlags() missing %q in %q", w, joined)
		}
	}

	// Unset/false options must not appear for the default config
	for _, absent := range []string{
		"--led-slowdown-gpio",
		"--led-panel-type",
		"--led-pixel-mapper",
		"--led-show-refresh",
		"--led-inverse",
		"--led-no-hardware-pulse",
		"--led-no-drop-privs",
	} {
		if strings.Contains(joined, absent) {
			t.Errorf("DriverFlags() should not contain %q for defaults: %q", absent, joined)
		}
	}
}

func TestDriverFlagsOptionals(t *testing.T) {
	c := Default()
	c.PanelType = "FM6126A"
	c.PixelMapper = "U-mapper;Rotate:180"
	c.SlowdownGPIO = 4
	c.ShowRefresh = true
	c.InvertColors = true
	c.NoHWPulse = true
	c.NoDropPrivs = true

	joined := c.DriverFlagsString()
	for _, w := range []string{
		"--led-panel-type=FM6126A",
		"--led-pixel-mapper=U-mapper;Rotate:180",
		"--led-slowdown-gpio=4",
		"--led-show-refresh",
		"--led-inverse",
		"--led-no-hardware-pulse",
		"--led-no-drop-privs",
	} {
		if !strings.Contains(joined, w) {
			t.Errorf("DriverFlagsString() missing %q in %q", w, joined)
		}
	}
}

func TestDisplayDimensions(t *testing.T) {
	c := Default()
	c.Rows = 32
	c.Cols = 64
	c.ChainLength = 3
	c.Parallel = 2

	if got := c.DisplayWidth(); got != 192 {
		t.Errorf("DisplayWidth() = %d, want 192", got)
	}
	if got := c.DisplayHeight(); got != 64 {
		t.Errorf("DisplayHeight() = %d, want 64", got)
	}
}

func TestFormatJSON(t *testing.T) {
	c := Default()
	c.SlowdownGPIO = 2

	out, err := c.FormatJSON()
	if err != nil {
		t.Fatalf("FormatJSON() error = %v", err)
	}
	for _, w := range []string{
		`"gpio_mapping": "adafruit-hat-pwm"`,
		`"rows": 64`,
		`"slowdown_gpio": 2`,
		`"display_width": 64`,
	} {
		if !strings.Contains(out, w) {
			t.Errorf("FormatJSON() missing %q:\n%s", w, out)
		}
	}
}

func TestFormatDetailedMentionsSchemeNames(t *testing.T) {
	c := Default()
	c.Multiplexing = 2
	c.RowAddrType = 1

	out := c.FormatDetailed()
	if !strings.Contains(out, "Checkered") {
		t.Errorf("FormatDetailed() should name multiplexing scheme 2 (Checkered):\n%s", out)
	}
	if !strings.Contains(out, "AB-addressed") {
		t.Errorf("FormatDetailed() should name row address type 1:\n%s", out)
	}
}
