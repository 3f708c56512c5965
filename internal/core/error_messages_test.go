package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{
			name:     "nil error returns empty",
			err:      nil,
			wantCode: "",
		},
		{
			name:     "missing input",
			err:      fmt.Errorf("%w: /data/registrars.csv", ErrInputNotFound),
			wantCode: "FILE001",
		},
		{
			name:     "invalid csv",
			err:      fmt.Errorf("%w: record on line 3: wrong number of fields", ErrInvalidCSV),
			wantCode: "FILE002",
		},
		{
			name:     "file too large",
			err:      fmt.Errorf("%w: registries.csv", ErrFileTooLarge),
			wantCode: "FILE003",
		},
		{
			name:     "write failed",
			err:      fmt.Errorf("%w: rename: permission denied", ErrWriteFailed),
			wantCode: "FILE004",
		},
		{
			name: "row error with invalid key",
			err: &RowError{
				Line: 7, Column: "iana_id", Value: "abc",
				Err: fmt.Errorf("%w: parse failure", ErrInvalidKey),
			},
			wantCode: "ROW001",
		},
		{
			name:     "cancelled",
			err:      fmt.Errorf("cancelled after 100 rows: %w", context.Canceled),
			wantCode: "RUN001",
		},
		{
			name:     "unknown error falls back",
			err:      errors.New("something odd"),
			wantCode: "ERR000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError(%v).Code = %q, want %q", tt.err, got.Code, tt.wantCode)
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	if got := FormatUserError(nil); got != "" {
		t.Errorf("FormatUserError(nil) = %q, want empty", got)
	}

	got := FormatUserError(fmt.Errorf("%w: x.csv", ErrInputNotFound))
	if !strings.Contains(got, "(Code: FILE001)") {
		t.Errorf("FormatUserError should include code, got %q", got)
	}
	if !strings.HasPrefix(got, "Input file not found") {
		t.Errorf("FormatUserError should start with message, got %q", got)
	}
}

func TestRowError(t *testing.T) {
	err := &RowError{
		Line:   12,
		Column: "iana_id",
		Value:  "abc",
		Err:    fmt.Errorf("%w: bad digits", ErrInvalidKey),
	}

	msg := err.Error()
	for _, want := range []string{"line 12", "iana_id", `"abc"`} {
		if !strings.Contains(msg, want) {
			t.Errorf("RowError.Error() = %q, missing %q", msg, want)
		}
	}
	if !errors.Is(err, ErrInvalidKey) {
		t.Error("RowError should unwrap to ErrInvalidKey")
	}
	if errors.Is(err, ErrBlankKey) {
		t.Error("RowError should not match ErrBlankKey")
	}
}
