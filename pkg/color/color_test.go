package color

import (
	"os"
	"strings"
	"sync"
	"testing"
)

// forceEnabled fires the one-time environment detection, then turns
// colors on regardless of what it decided.
func forceEnabled() {
	Init(false)
	Enable()
}

func TestEnableDisable(t *testing.T) {
	forceEnabled()
	if !Enabled() {
		t.Error("expected colors to be enabled after Enable()")
	}

	Disable()
	if Enabled() {
		t.Error("expected colors to be disabled after Disable()")
	}
	Enable()
}

func TestColorFuncs(t *testing.T) {
	forceEnabled()

	tests := []struct {
		name     string
		fn       func(string) string
		contains string
	}{
		{"Redf", Redf, Red},
		{"Greenf", Greenf, Green},
		{"Yellowf", Yellowf, Yellow},
		{"Cyanf", Cyanf, Cyan},
		{"Grayf", Grayf, Gray},
		{"Boldf", Boldf, Bold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.fn("test")
			if !strings.Contains(result, tt.contains) {
				t.Errorf("%s(%q) = %q, expected to contain %q", tt.name, "test", result, tt.contains)
			}
			if !strings.Contains(result, Reset) {
				t.Errorf("%s(%q) = %q, expected to contain reset code", tt.name, "test", result)
			}
		})
	}
}

func TestColorFuncsDisabled(t *testing.T) {
	forceEnabled()
	Disable()
	defer Enable()

	tests := []struct {
		name string
		fn   func(string) string
	}{
		{"Redf", Redf},
		{"Greenf", Greenf},
		{"Success", Success},
		{"Error", Error},
		{"Warning", Warning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.fn("test"); result != "test" {
				t.Errorf("%s(%q) = %q, expected plain text when disabled", tt.name, "test", result)
			}
		})
	}
}

func TestErrorf(t *testing.T) {
	forceEnabled()

	result := Errorf("fail %d", 42)
	if !strings.Contains(result, Red) || !strings.Contains(result, "fail 42") {
		t.Errorf("Errorf() = %q, expected red-wrapped formatted message", result)
	}
}

func TestInitRespectsNoColorEnv(t *testing.T) {
	origNoColor, exists := os.LookupEnv("NO_COLOR")

	os.Setenv("NO_COLOR", "1")
	state.once = sync.Once{}
	state.disabled = false
	state.enabled = false

	Init(false)
	if Enabled() {
		t.Error("expected colors to be disabled when NO_COLOR is set")
	}

	if exists {
		os.Setenv("NO_COLOR", origNoColor)
	} else {
		os.Unsetenv("NO_COLOR")
	}
	state.once = sync.Once{}
	Enable()
}

func TestInitRespectsNoColorFlag(t *testing.T) {
	state.once = sync.Once{}
	state.disabled = false
	state.enabled = false

	Init(true)
	if Enabled() {
		t.Error("expected colors to be disabled when noColorFlag is true")
	}

	state.once = sync.Once{}
	Enable()
}
