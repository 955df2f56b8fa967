package matrixcfg

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// File is the result of loading a settings file: the parsed configuration
// plus any keys that were present but not recognized. Unknown keys are
// surfaced as warnings by callers, never as errors, so a file shared with
// other tools still loads.
type File struct {
	// Path is the file the settings were loaded from ("" for readers)
	Path string
	// Config is the parsed configuration with defaults applied
	Config *Config
	// Unknown lists unrecognized keys in file order
	Unknown []UnknownKey
}

// UnknownKey records an unrecognized assignment in the settings file.
type UnknownKey struct {
	Line int
	Key  string
}

// Load reads and parses a settings file from disk.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings file: %w", err)
	}
	defer f.Close()

	file, err := Parse(f)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.File = path
		}
		return nil, err
	}
	file.Path = path
	return file, nil
}

// Parse parses settings from a reader. Lines are KEY=VALUE assignments;
// blank lines and lines starting with '#' are ignored. Values may be
// wrapped in single or double quotes. Parsing stops at the first
// malformed line or value.
func Parse(r io.Reader) (*File, error) {
	file := &File{Config: Default()}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, &ParseError{
				Line:    lineNo,
				Message: fmt.Sprintf("not a KEY=VALUE assignment: %q", line),
			}
		}

		key = strings.TrimSpace(key)
		value = unquote(strings.TrimSpace(value))

		setter, known := setters[key]
		if !known {
			file.Unknown = append(file.Unknown, UnknownKey{Line: lineNo, Key: key})
			continue
		}
		if err := setter(file.Config, value); err != nil {
			return nil, &ParseError{
				Line:    lineNo,
				Key:     key,
				Message: err.Error(),
				Err:     err,
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	return file, nil
}

// unquote strips one level of matching single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// setters maps settings keys to their typed assignment functions.
var setters = map[string]func(*Config, string) error{
	KeyGPIOMapping:   func(c *Config, v string) error { c.GPIOMapping = v; return nil },
	KeyPanelType:     func(c *Config, v string) error { c.PanelType = v; return nil },
	KeyRows:          intSetter(func(c *Config, n int) { c.Rows = n }),
	KeyCols:          intSetter(func(c *Config, n int) { c.Cols = n }),
	KeyChainLength:   intSetter(func(c *Config, n int) { c.ChainLength = n }),
	KeyParallel:      intSetter(func(c *Config, n int) { c.Parallel = n }),
	KeyMultiplexing:  intSetter(func(c *Config, n int) { c.Multiplexing = n }),
	KeyPixelMapper:   func(c *Config, v string) error { c.PixelMapper = v; return nil },
	KeyPWMBits:       intSetter(func(c *Config, n int) { c.PWMBits = n }),
	KeyPWMLSBNanos:   intSetter(func(c *Config, n int) { c.PWMLSBNanos = n }),
	KeyPWMDitherBits: intSetter(func(c *Config, n int) { c.PWMDitherBits = n }),
	KeyScanMode:      intSetter(func(c *Config, n int) { c.ScanMode = n }),
	KeyRowAddrType:   intSetter(func(c *Config, n int) { c.RowAddrType = n }),
	KeyRGBSequence:   func(c *Config, v string) error { c.RGBSequence = strings.ToUpper(v); return nil },
	KeyBrightness:    intSetter(func(c *Config, n int) { c.Brightness = n }),
	KeyShowRefresh:   boolSetter(func(c *Config, b bool) { c.ShowRefresh = b }),
	KeyInvertColors:  boolSetter(func(c *Config, b bool) { c.InvertColors = b }),
	KeyNoHWPulse:     boolSetter(func(c *Config, b bool) { c.NoHWPulse = b }),
	KeySlowdownGPIO:  intSetter(func(c *Config, n int) { c.SlowdownGPIO = n }),
	KeyNoDropPrivs:   boolSetter(func(c *Config, b bool) { c.NoDropPrivs = b }),
}

func intSetter(assign func(*Config, int)) func(*Config, string) error {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("expected an integer, got %q", v)
		}
		assign(c, n)
		return nil
	}
}

func boolSetter(assign func(*Config, bool)) func(*Config, string) error {
	return func(c *Config, v string) error {
		switch strings.ToLower(v) {
		case "", "0", "false", "no", "off":
			assign(c, false)
		case "1", "true", "yes", "on":
			assign(c, true)
		default:
			return fmt.Errorf("expected a boolean (1/0, true/false, yes/no, on/off), got %q", v)
		}
		return nil
	}
}

// Write serializes the configuration as a commented settings file.
// Refuses to overwrite an existing file unless overwrite is set.
func Write(path string, c *Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("settings file already exists: %s", path)
		}
	}

	var b strings.Builder
	b.WriteString("# LED matrix panel configuration\n")
	b.WriteString("# Values are handed to the rgbmatrix driver at startup.\n")
	b.WriteString("\n")
	b.WriteString("# Wiring\n")
	fmt.Fprintf(&b, "%s=%s\n", KeyGPIOMapping, c.GPIOMapping)
	if c.PanelType != "" {
		fmt.Fprintf(&b, "%s=%s\n", KeyPanelType, c.PanelType)
	}
	b.WriteString("\n")
	b.WriteString("# Geometry\n")
	fmt.Fprintf(&b, "%s=%d\n", KeyRows, c.Rows)
	fmt.Fprintf(&b, "%s=%d\n", KeyCols, c.Cols)
	fmt.Fprintf(&b, "%s=%d\n", KeyChainLength, c.ChainLength)
	fmt.Fprintf(&b, "%s=%d\n", KeyParallel, c.Parallel)
	fmt.Fprintf(&b, "%s=%d\n", KeyMultiplexing, c.Multiplexing)
	if c.PixelMapper != "" {
		fmt.Fprintf(&b, "%s=%s\n", KeyPixelMapper, c.PixelMapper)
	}
	b.WriteString("\n")
	b.WriteString("# Driver tuning\n")
	fmt.Fprintf(&b, "%s=%d\n", KeyPWMBits, c.PWMBits)
	fmt.Fprintf(&b, "%s=%d\n", KeyPWMLSBNanos, c.PWMLSBNanos)
	fmt.Fprintf(&b, "%s=%d\n", KeyPWMDitherBits, c.PWMDitherBits)
	fmt.Fprintf(&b, "%s=%d\n", KeyScanMode, c.ScanMode)
	fmt.Fprintf(&b, "%s=%d\n", KeyRowAddrType, c.RowAddrType)
	fmt.Fprintf(&b, "%s=%s\n", KeyRGBSequence, c.RGBSequence)
	fmt.Fprintf(&b, "%s=%d\n", KeyBrightness, c.Brightness)
	if c.SlowdownGPIO != SlowdownUnset {
		fmt.Fprintf(&b, "%s=%d\n", KeySlowdownGPIO, c.SlowdownGPIO)
	}
	if c.ShowRefresh {
		fmt.Fprintf(&b, "%s=1\n", KeyShowRefresh)
	}
	if c.InvertColors {
		fmt.Fprintf(&b, "%s=1\n", KeyInvertColors)
	}
	if c.NoHWPulse {
		fmt.Fprintf(&b, "%s=1\n", KeyNoHWPulse)
	}
	if c.NoDropPrivs {
		fmt.Fprintf(&b, "%s=1\n", KeyNoDropPrivs)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
