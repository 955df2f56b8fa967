package matrixcfg

// Settings file keys. These match the names the original display project
// used in its environment file, so an existing .env keeps working.
const (
	KeyGPIOMapping   = "GPIO_MAPPING"
	KeyPanelType     = "LED_PANEL_TYPE"
	KeyRows          = "MATRIX_ROWS"
	KeyCols          = "MATRIX_COLS"
	KeyChainLength   = "CHAIN_LENGTH"
	KeyParallel      = "PARALLEL"
	KeyMultiplexing  = "MUX"
	KeyPixelMapper   = "PX_MAP"
	KeyPWMBits       = "PWM_BITS"
	KeyPWMLSBNanos   = "PWM_LSB_NS"
	KeyPWMDitherBits = "PWM_DITHER_BITS"
	KeyScanMode      = "SCAN_MODE"
	KeyRowAddrType   = "ADDR_TYPE"
	KeyRGBSequence   = "RGB_SEQ"
	KeyBrightness    = "BRIGHTNESS"
	KeyShowRefresh   = "SHOW_REFRESH"
	KeyInvertColors  = "INVERT_COLORS"
	KeyNoHWPulse     = "NO_HW_PULSE"
	KeySlowdownGPIO  = "SLOWDOWN_GPIO"
	KeyNoDropPrivs   = "NO_DROP_PRIVS"
)

// SlowdownUnset marks GPIO slowdown as "not configured" so the driver
// picks its own default for the Pi model it runs on.
const SlowdownUnset = -1

// Config holds the complete matrix configuration. Field values map 1:1 to
// options of the rgbmatrix driver constructor; see DriverFlags for the
// command-line form.
type Config struct {
	// GPIOMapping selects the wiring of the HUB75 connector to the Pi
	// GPIO header (e.g. "regular", "adafruit-hat", "adafruit-hat-pwm").
	GPIOMapping string

	// PanelType is the panel init chipset, mostly "" or "FM6126A".
	PanelType string

	// Rows and Cols are the dimensions of a single panel.
	Rows int
	Cols int

	// ChainLength is the number of daisy-chained panels per chain.
	ChainLength int

	// Parallel is the number of parallel chains (1-3).
	Parallel int

	// Multiplexing is the panel wiring scheme code (0-18).
	Multiplexing int

	// PixelMapper is the mapper list, e.g. "U-mapper;Rotate:90".
	PixelMapper string

	// PWMBits is the PWM bit depth (1-11).
	PWMBits int

	// PWMLSBNanos is the base PWM time unit in nanoseconds.
	PWMLSBNanos int

	// PWMDitherBits is the time dithering of the lower PWM bits (0-2).
	PWMDitherBits int

	// ScanMode is 0 (progressive) or 1 (interlaced).
	ScanMode int

	// RowAddrType is the row addressing scheme (0-4).
	RowAddrType int

	// RGBSequence is the wire color order, a permutation of "RGB".
	RGBSequence string

	// Brightness is the output brightness in percent (1-100).
	Brightness int

	// ShowRefresh prints the current refresh rate on the terminal.
	ShowRefresh bool

	// InvertColors inverts the displayed colors.
	InvertColors bool

	// NoHWPulse disables hardware pin-pulse generation.
	NoHWPulse bool

	// SlowdownGPIO slows GPIO writes for faster Pis (0-4), or
	// SlowdownUnset to let the driver decide.
	SlowdownGPIO int

	// NoDropPrivs keeps root privileges after initializing the GPIO.
	NoDropPrivs bool
}

// Default returns the configuration for the reference setup: a single
// 64x64 panel on an Adafruit HAT with the PWM jumper mod.
func Default() *Config {
	return &Config{
		GPIOMapping:  "adafruit-hat-pwm",
		PanelType:    "",
		Rows:         64,
		Cols:         64,
		ChainLength:  1,
		Parallel:     1,
		Multiplexing: 0,
		PixelMapper:  "",
		PWMBits:      11,
		PWMLSBNanos:  130,
		ScanMode:     0,
		RowAddrType:  0,
		RGBSequence:  "RGB",
		Brightness:   100,
		SlowdownGPIO: SlowdownUnset,
	}
}

// HardwareMappings lists the known GPIO wiring names the driver accepts.
var HardwareMappings = map[string]string{
	"regular":          "Standard GPIO wiring",
	"adafruit-hat":     "Adafruit RGB Matrix HAT/Bonnet",
	"adafruit-hat-pwm": "Adafruit HAT with the hardware PWM jumper mod",
	"regular-pi1":      "Standard wiring on a Raspberry Pi 1",
	"classic":          "Early classic wiring (deprecated boards)",
	"classic-pi1":      "Early classic wiring on a Raspberry Pi 1",
}

// MultiplexingNames maps the multiplexing scheme codes to the driver's
// mapper names. Codes are 0 to MaxMultiplexing inclusive.
var MultiplexingNames = map[int]string{
	0:  "direct",
	1:  "Stripe",
	2:  "Checkered",
	3:  "Spiral",
	4:  "ZStripe",
	5:  "ZnMirrorZStripe",
	6:  "coreman",
	7:  "Kaler2Scan",
	8:  "ZStripeUneven",
	9:  "P10-128x4-Z",
	10: "QiangLiQ8",
	11: "InversedZStripe",
	12: "P10Outdoor1R1G1-1",
	13: "P10Outdoor1R1G1-2",
	14: "P10Outdoor1R1G1-3",
	15: "P10CoremanMapper",
	16: "P8Outdoor1R1G1",
	17: "FlippedStripe",
	18: "P10Outdoor32x16HalfScan",
}

// MaxMultiplexing is the highest defined multiplexing scheme code.
const MaxMultiplexing = 18

// RowAddrTypeNames maps row addressing codes to descriptions.
var RowAddrTypeNames = map[int]string{
	0: "direct row select (default)",
	1: "AB-addressed panels",
	2: "direct row select, shift register",
	3: "ABC-addressed panels",
	4: "ABC shift register + DE direct",
}

// PixelMapperNames lists the mapper names usable in the PX_MAP list.
var PixelMapperNames = map[string]bool{
	"U-mapper": true,
	"V-mapper": true,
	"Rotate":   true,
	"Mirror":   true,
}
