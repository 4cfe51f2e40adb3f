// File: error_test.go
// Title: Error Module Tests
// Description: Tests for the error module covering creation, wrapping, codes,
//              severity, code-based matching and serialisation.
// Author: idmagic
// Version: v0.2.0
// Created: 2026-10-05
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-05 v0.1.0: Initial implementation
// - 2026-10-12 v0.2.0: Tests for Is, exit codes and categories

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error keeps code",
			err:      New("divisor is zero").WithCode(CodeDivisionByZero),
			message:  "calc failed",
			wantMsg:  "calc failed: divisor is zero",
			wantCode: CodeDivisionByZero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match its cause")
			}
		})
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInternal, SeverityCritical},
		{CodeDivisionByZero, SeverityHigh},
		{CodeDomainError, SeverityMedium},
		{CodeInvalidConfig, SeverityMedium},
		{CodeInvalidInput, SeverityLow},
		{CodeValueOutOfRange, SeverityLow},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidInput)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: got %v", explicit.Severity())
	}
}

func TestIs(t *testing.T) {
	sentinel := New("division by zero").WithCode(CodeDivisionByZero)
	other := New("different message").WithCode(CodeDivisionByZero)
	unknownA := New("a")
	unknownB := New("a")

	if !errors.Is(other, sentinel) {
		t.Error("errors with the same code should match")
	}
	if !errors.Is(Wrap(other, "outer"), sentinel) {
		t.Error("match should survive wrapping")
	}
	if !errors.Is(fmt.Errorf("std wrap: %w", other), sentinel) {
		t.Error("match should survive fmt.Errorf wrapping")
	}
	if errors.Is(New("x").WithCode(CodeDomainError), sentinel) {
		t.Error("different codes must not match")
	}
	if errors.Is(unknownA, unknownB) {
		t.Error("unknown-code errors must only match themselves")
	}
	if !errors.Is(unknownA, unknownA) {
		t.Error("an error must match itself")
	}
	if sentinel.Is(errors.New("division by zero")) {
		t.Error("plain errors must not match")
	}
}

func TestDetails(t *testing.T) {
	err := New("bad exponent").
		WithDetail("exponent", 1.5).
		WithDetails(map[string]interface{}{"module": "mathx", "operation": "pow"})

	details := err.Details()
	if details["exponent"] != 1.5 || details["module"] != "mathx" || details["operation"] != "pow" {
		t.Errorf("Details() = %v", details)
	}

	details["exponent"] = 2
	if err.Details()["exponent"] != 1.5 {
		t.Error("Details() must return a copy")
	}
}

func TestRootCause(t *testing.T) {
	base := errors.New("root")
	err := Wrap(Wrap(base, "middle"), "outer")
	if err.RootCause() != base {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), base)
	}

	single := New("alone")
	if single.RootCause() != single {
		t.Error("RootCause() of an unwrapped error should be itself")
	}
}

func TestString(t *testing.T) {
	err := Wrap(errors.New("cause"), "failed").
		WithCode(CodeInvalidInput).
		WithOperation("calc").
		WithDetail("b", 2).
		WithDetail("a", 1)

	s := err.String()
	for _, want := range []string{
		"Error: failed",
		"Code: INVALID_INPUT",
		"Severity: low",
		"Operation: calc",
		"Details: {a=1, b=2}",
		"Cause: cause",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("log of zero").
		WithCode(CodeDomainError).
		WithOperation("log").
		WithDetail("modulus", 0)

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jerr)
	}

	if decoded["code"] != "DOMAIN_ERROR" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["severity"] != "medium" {
		t.Errorf("severity = %v", decoded["severity"])
	}
	if decoded["operation"] != "log" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if _, ok := decoded["cause"]; ok {
		t.Error("cause should be omitted when nil")
	}
}

func TestHasCodeAndGetters(t *testing.T) {
	inner := New("inner").WithCode(CodeInvalidFormat)
	outer := fmt.Errorf("outer: %w", inner)

	if !HasCode(outer, CodeInvalidFormat) {
		t.Error("HasCode() should find a code through fmt wrapping")
	}
	if HasCode(outer, CodeInternal) {
		t.Error("HasCode() matched an absent code")
	}
	if HasCode(nil, CodeUnknown) {
		t.Error("HasCode(nil) should be false")
	}

	if GetCode(inner) != CodeInvalidFormat {
		t.Errorf("GetCode() = %v", GetCode(inner))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of a plain error should be UNKNOWN")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() of a plain error should be medium")
	}
}

func TestCodeCategoryAndExitCode(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		exit     int
		valid    bool
	}{
		{CodeDivisionByZero, "arithmetic", 3, true},
		{CodeDomainError, "arithmetic", 3, true},
		{CodeInvalidInput, "validation", 2, true},
		{CodeInvalidConfig, "configuration", 4, true},
		{CodeInternal, "generic", 1, true},
		{Code("MATHX_INVALID_EXPONENT"), "generic", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exit)
			}
			if got := tt.code.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestSeverity(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
		alert    bool
	}{
		{SeverityLow, "low", false},
		{SeverityMedium, "medium", false},
		{SeverityHigh, "high", true},
		{SeverityCritical, "critical", true},
		{Severity(99), "unknown", true},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := tt.severity.ShouldAlert(); got != tt.alert {
				t.Errorf("ShouldAlert() = %v, want %v", got, tt.alert)
			}
		})
	}
}
