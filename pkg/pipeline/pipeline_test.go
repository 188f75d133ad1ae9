package pipeline

import (
	"slices"
	"testing"

	"github.com/matzehuels/pyregraph/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"dot", false},
		{"svg", false},
		{"png", false},
		{"json", false},
		{"pdf", true},
		{"DOT", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want INVALID_FORMAT", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"dot", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"dot", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidatePolicy(t *testing.T) {
	tests := []struct {
		policy  string
		wantErr bool
	}{
		{"birthing-pod", false},
		{"pyre-of-heroes", false},
		{"natural-order", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidatePolicy(tt.policy)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePolicy(%q) error = %v, wantErr %v", tt.policy, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidPolicy) {
			t.Errorf("ValidatePolicy(%q) code = %s, want INVALID_POLICY", tt.policy, errors.GetCode(err))
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if o.Policy != DefaultPolicy {
		t.Errorf("Policy = %q, want %q", o.Policy, DefaultPolicy)
	}
	if !slices.Equal(o.Formats, []string{FormatDOT}) {
		t.Errorf("Formats = %v, want [dot]", o.Formats)
	}
	if o.Logger == nil {
		t.Error("Logger should default to a discarding logger")
	}

	// Idempotent
	o.Policy = "bogus"
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Error("second call should be a no-op")
	}
}

func TestValidateAndSetDefaultsDedupesFormats(t *testing.T) {
	o := Options{Formats: []string{"dot", " SVG ", "dot", "svg"}}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if !slices.Equal(o.Formats, []string{"dot", "svg"}) {
		t.Errorf("Formats = %v, want [dot svg]", o.Formats)
	}
	if !o.Wants(FormatSVG) || o.Wants(FormatPNG) {
		t.Error("Wants() disagrees with Formats")
	}
}

func TestValidateAndSetDefaultsRejects(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"policy", Options{Policy: "natural-order"}, errors.ErrCodeInvalidPolicy},
		{"format", Options{Formats: []string{"pdf"}}, errors.ErrCodeInvalidFormat},
		{"concurrency", Options{Concurrency: -1}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}
