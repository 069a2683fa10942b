package log

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestToFields(t *testing.T) {
	now := time.Now()
	err := errors.New("boom")

	tests := []struct {
		name     string
		input    []any
		wantKeys []string
	}{
		{"empty input", []any{}, nil},
		{"plate and state", []any{"plate", "ABC-123", "loading", true, "attempt", 1}, []string{"plate", "loading", "attempt"}},
		{"time and duration", []any{"at", now, "took", 250 * time.Millisecond}, []string{"at", "took"}},
		{"temperature", []any{"outdoorTemp", 22.5}, []string{"outdoorTemp"}},
		{"error only", []any{err}, []string{"error"}},
		{"zap field passthrough", []any{zap.String("x", "y"), "status", 404}, []string{"x", "status"}},
		{"odd number of args", []any{"key1", "val1", "key2"}, []string{"key1", "arg#2"}},
		{"non-string key", []any{123, "value"}, []string{"invalid_key_1"}},
		{"nil values", []any{"a", nil, "b", (*int)(nil)}, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := toFields(tt.input...)

			if len(fields) != len(tt.wantKeys) {
				t.Fatalf("got %d fields, want %d: %+v", len(fields), len(tt.wantKeys), fields)
			}
			for i, f := range fields {
				if f.Key != tt.wantKeys[i] {
					t.Errorf("field %d key = %q, want %q", i, f.Key, tt.wantKeys[i])
				}
			}
		})
	}
}

func TestTypedField(t *testing.T) {
	if f := typedField("owner", "John Doe"); f.Type != zapcore.StringType {
		t.Errorf("string field type = %v", f.Type)
	}
	if f := typedField("temp", 21.0); f.Type != zapcore.Float64Type {
		t.Errorf("float field type = %v", f.Type)
	}
	if f := typedField("err", errors.New("x")); f.Type != zapcore.ErrorType {
		t.Errorf("error field type = %v", f.Type)
	}
}

func TestOptionsValidate(t *testing.T) {
	o := NewOptions()
	if errs := o.Validate(); len(errs) != 0 {
		t.Fatalf("default options should be valid, got %v", errs)
	}

	o.Level = "verbose"
	o.Format = "xml"
	if errs := o.Validate(); len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
}
