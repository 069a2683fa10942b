package options

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		addr    string
		wantErr bool
	}{
		{"0.0.0.0:8080", false},
		{":9090", false},
		{"localhost:0", false},
		{"localhost", true},
		{"localhost:http", true},
		{"127.0.0.1:70000", true},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			err := ValidateAddress(tt.addr)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAddress(%q) error = %v, wantErr %v", tt.addr, err, tt.wantErr)
			}
		})
	}
}

func TestCarAPIOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *CarAPIOptions)
		wantErr int
	}{
		{"defaults", func(o *CarAPIOptions) {}, 0},
		{"https", func(o *CarAPIOptions) { o.BaseURL = "https://cars.example.com/v2/" }, 0},
		{"no scheme", func(o *CarAPIOptions) { o.BaseURL = "cars.example.com" }, 1},
		{"ftp scheme", func(o *CarAPIOptions) { o.BaseURL = "ftp://cars.example.com" }, 1},
		{"negative timeout", func(o *CarAPIOptions) { o.Timeout = -time.Second }, 1},
		{"both broken", func(o *CarAPIOptions) { o.BaseURL = ""; o.Timeout = -1 }, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewCarAPIOptions()
			tt.mutate(o)
			if errs := o.Validate(); len(errs) != tt.wantErr {
				t.Errorf("Validate() = %v, want %d errors", errs, tt.wantErr)
			}
		})
	}
}

func TestCarAPIOptionsEndpoint(t *testing.T) {
	o := &CarAPIOptions{BaseURL: "http://localhost:8080//"}
	if got := o.Endpoint(); got != "http://localhost:8080" {
		t.Errorf("Endpoint() = %q", got)
	}
}

func TestCarAPIOptionsFlags(t *testing.T) {
	o := NewCarAPIOptions()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	o.AddFlags(fs)

	if err := fs.Parse([]string{"--api.base-url=http://fleet:9000", "--api.timeout=3s"}); err != nil {
		t.Fatal(err)
	}
	if o.BaseURL != "http://fleet:9000" || o.Timeout != 3*time.Second {
		t.Errorf("flags not applied: %+v", o)
	}
}

func TestFixtureOptionsValidate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "cars.json")
	if err := os.WriteFile(file, []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}

	if errs := (&FixtureOptions{}).Validate(); len(errs) != 0 {
		t.Errorf("empty path should be valid: %v", errs)
	}
	if errs := (&FixtureOptions{Path: file}).Validate(); len(errs) != 0 {
		t.Errorf("existing file should be valid: %v", errs)
	}
	if errs := (&FixtureOptions{Path: dir}).Validate(); len(errs) != 1 {
		t.Errorf("directory should be rejected: %v", errs)
	}
	if errs := (&FixtureOptions{Path: filepath.Join(dir, "missing.json")}).Validate(); len(errs) != 1 {
		t.Errorf("missing file should be rejected: %v", errs)
	}
}
