package matrixcfg

import (
	"testing"
)

func TestValidateMultiplexing(t *testing.T) {
	tests := []struct {
		name    string
		mux     int
		wantErr bool
	}{
		{"Valid: 0 (direct)", 0, false},
		{"Valid: 1 (stripe)", 1, false},
		{"Valid: 18 (highest code)", 18, false},
		{"Invalid: negative", -1, true},
		{"Invalid: 19", 19, true},
		{"Invalid: way too high", 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMultiplexing(tt.mux)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMultiplexing(%d) error = %v, wantErr %v", tt.mux, err, tt.wantErr)
			}
			if err != nil && !IsValidationError(err) {
				t.Errorf("expected ValidationError, got %T", err)
			}
		})
	}
}

func TestValidateParallel(t *testing.T) {
	tests := []struct {
		parallel int
		wantErr  bool
	}{
		{1, false},
		{2, false},
		{3, false},
		{0, true},
		{4, true},
		{-1, true},
	}

	for _, tt := range tests {
		err := ValidateParallel(tt.parallel)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateParallel(%d) error = %v, wantErr %v", tt.parallel, err, tt.wantErr)
		}
	}
}

func TestValidateBrightness(t *testing.T) {
	tests := []struct {
		brightness int
		wantErr    bool
	}{
		{1, false},
		{50, false},
		{100, false},
		{0, true},
		{101, true},
		{-5, true},
	}

	for _, tt := range tests {
		err := ValidateBrightness(tt.brightness)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateBrightness(%d) error = %v, wantErr %v", tt.brightness, err, tt.wantErr)
		}
	}
}

func TestValidatePWMBits(t *testing.T) {
	for bits := 1; bits <= 11; bits++ {
		if err := ValidatePWMBits(bits); err != nil {
			t.Errorf("ValidatePWMBits(%d) error = %v, want nil", bits, err)
		}
	}
	for _, bits := range []int{0, 12, -1} {
		if err := ValidatePWMBits(bits); err == nil {
			t.Errorf("ValidatePWMBits(%d) should fail", bits)
		}
	}
}

func TestValidatePWMLSBNanos(t *testing.T) {
	tests := []struct {
		ns      int
		wantErr bool
	}{
		{50, false},
		{130, false},
		{3000, false},
		{49, true},
		{3001, true},
		{0, true},
	}

	for _, tt := range tests {
		err := ValidatePWMLSBNanos(tt.ns)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePWMLSBNanos(%d) error = %v, wantErr %v", tt.ns, err, tt.wantErr)
		}
	}
}

func TestValidatePWMDitherBits(t *testing.T) {
	for _, bits := range []int{0, 1, 2} {
		if err := ValidatePWMDitherBits(bits); err != nil {
			t.Errorf("ValidatePWMDitherBits(%d) error = %v, want nil", bits, err)
		}
	}
	for _, bits := range []int{-1, 3, 10} {
		if err := ValidatePWMDitherBits(bits); err == nil {
			t.Errorf("ValidatePWMDitherBits(%d) should fail", bits)
		}
	}
}

func TestValidateScanMode(t *testing.T) {
	for _, mode := range []int{0, 1} {
		if err := ValidateScanMode(mode); err != nil {
			t.Errorf("ValidateScanMode(%d) error = %v, want nil", mode, err)
		}
	}
	for _, mode := range []int{-1, 2, 5} {
		if err := ValidateScanMode(mode); err == nil {
			t.Errorf("ValidateScanMode(%d) should fail", mode)
		}
	}
}

func TestValidateRowAddrType(t *testing.T) {
	for typ := 0; typ <= 4; typ++ {
		if err := ValidateRowAddrType(typ); err != nil {
			t.Errorf("ValidateRowAddrType(%d) error = %v, want nil", typ, err)
		}
	}
	for _, typ := range []int{-1, 5, 100} {
		if err := ValidateRowAddrType(typ); err == nil {
			t.Errorf("ValidateRowAddrType(%d) should fail", typ)
		}
	}
}

func TestValidateChainLength(t *testing.T) {
	tests := []struct {
		chain   int
		wantErr bool
	}{
		{1, false},
		{4, false},
		{12, false},
		{0, true},
		{-1, true},
	}

	for _, tt := range tests {
		err := ValidateChainLength(tt.chain)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateChainLength(%d) error = %v, wantErr %v", tt.chain, err, tt.wantErr)
		}
	}
}

func TestValidateRows(t *testing.T) {
	for _, rows := range []int{8, 16, 32, 64} {
		if err := ValidateRows(rows); err != nil {
			t.Errorf("ValidateRows(%d) error = %v, want nil", rows, err)
		}
	}
	for _, rows := range []int{0, 24, 48, 128, -8} {
		if err := ValidateRows(rows); err == nil {
			t.Errorf("ValidateRows(%d) should fail", rows)
		}
	}
}

func TestValidateCols(t *testing.T) {
	tests := []struct {
		cols    int
		wantErr bool
	}{
		{16, false},
		{32, false},
		{64, false},
		{40, false},
		{8, true},
		{30, true},
		{0, true},
	}

	for _, tt := range tests {
		err := ValidateCols(tt.cols)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateCols(%d) error = %v, wantErr %v", tt.cols, err, tt.wantErr)
		}
	}
}

func TestValidateRGBSequence(t *testing.T) {
	tests := []struct {
		seq     string
		wantErr bool
	}{
		{"RGB", false},
		{"RBG", false},
		{"GRB", false},
		{"GBR", false},
		{"BRG", false},
		{"BGR", false},
		{"RGG", true},
		{"RG", true},
		{"RGBA", true},
		{"XYZ", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateRGBSequence(tt.seq)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateRGBSequence(%q) error = %v, wantErr %v", tt.seq, err, tt.wantErr)
		}
	}
}

func TestValidatePixelMapper(t *testing.T) {
	tests := []struct {
		name    string
		mapper  string
		wantErr bool
	}{
		{"Empty is fine", "", false},
		{"Single mapper", "U-mapper", false},
		{"V mapper", "V-mapper", false},
		{"Mirror", "Mirror", false},
		{"Mirror with param", "Mirror:H", false},
		{"Rotate with angle", "Rotate:90", false},
		{"Rotate 270", "Rotate:270", false},
		{"Combined list", "U-mapper;Rotate:90", false},
		{"Rotate without angle", "Rotate", true},
		{"Rotate bad angle", "Rotate:45", true},
		{"Unknown mapper", "Z-mapper", true},
		{"Trailing semicolon", "U-mapper;", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePixelMapper(tt.mapper)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePixelMapper(%q) error = %v, wantErr %v", tt.mapper, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSlowdownGPIO(t *testing.T) {
	for _, slowdown := range []int{SlowdownUnset, 0, 1, 2, 3, 4} {
		if err := ValidateSlowdownGPIO(slowdown); err != nil {
			t.Errorf("ValidateSlowdownGPIO(%d) error = %v, want nil", slowdown, err)
		}
	}
	for _, slowdown := range []int{-2, 5, 10} {
		if err := ValidateSlowdownGPIO(slowdown); err == nil {
			t.Errorf("ValidateSlowdownGPIO(%d) should fail", slowdown)
		}
	}
}

func TestValidateGPIOMapping(t *testing.T) {
	for mapping := range HardwareMappings {
		if err := ValidateGPIOMapping(mapping); err != nil {
			t.Errorf("ValidateGPIOMapping(%q) error = %v, want nil", mapping, err)
		}
	}
	if err := ValidateGPIOMapping(""); err == nil {
		t.Error("ValidateGPIOMapping(\"\") should fail")
	}
	if err := ValidateGPIOMapping("bogus-hat"); err == nil {
		t.Error("ValidateGPIOMapping(\"bogus-hat\") should fail")
	}
}

func TestDefaultIsValid(t *testing.T) {
	if errs := Default().Validate(); len(errs) > 0 {
		t.Errorf("Default().Validate() = %v, want no errors", errs)
	}
}

func TestValidateAggregatesAllErrors(t *testing.T) {
	c := Default()
	c.Multiplexing = 99
	c.Parallel = 7
	c.Brightness = 0
	c.RGBSequence = "RR"

	errs := c.Validate()
	if len(errs) != 4 {
		t.Fatalf("Validate() returned %d errors, want 4: %v", len(errs), errs)
	}
	for _, err := range errs {
		if !IsValidationError(err) {
			t.Errorf("expected ValidationError, got %T", err)
		}
	}
}
