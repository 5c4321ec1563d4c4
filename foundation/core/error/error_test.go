// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              serialization.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial test suite

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
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "context",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("disk full"),
			message: "failed to write",
			wantMsg: "failed to write: disk full",
		},
		{
			name:    "wrap structured error",
			err:     New("missing").WithCode(CodeNotFound),
			message: "load",
			wantMsg: "load: missing",
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
			if !errors.Is(got, tt.err) {
				t.Error("errors.Is should find the wrapped cause")
			}
		})
	}
}

func TestWrap_InheritsClassification(t *testing.T) {
	inner := New("bad token").
		WithCode(CodeKoySyntax).
		WithDetail("line", 3)
	outer := Wrap(inner, "evaluate settings.koy")

	if outer.Code() != CodeKoySyntax {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeKoySyntax)
	}
	if outer.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityLow)
	}
	if outer.Details()["line"] != 3 {
		t.Errorf("Details()[line] = %v, want 3", outer.Details()["line"])
	}
}

func TestWithCode_SeverityFollowsCode(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeKoyLexical, SeverityLow},
		{CodeKoySyntax, SeverityLow},
		{CodeKoyRuntime, SeverityLow},
		{CodeInternal, SeverityHigh},
		{CodeConfigError, SeverityMedium},
		{Code("OTHER"), SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := New("x").WithCode(tt.code).Severity(); got != tt.want {
				t.Errorf("Severity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithSeverity_NotOverriddenByCode(t *testing.T) {
	err := New("x").WithSeverity(SeverityCritical).WithCode(CodeNotFound)
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}
}

func TestDetails_ReturnsCopy(t *testing.T) {
	err := New("x").WithDetails(map[string]interface{}{"file": "a.koy"})
	details := err.Details()
	details["file"] = "changed"

	if err.Details()["file"] != "a.koy" {
		t.Error("Details() must not expose internal map")
	}
}

func TestHasCode(t *testing.T) {
	err := New("x").WithCode(CodeKoyRuntime)
	wrapped := fmt.Errorf("outer: %w", err)

	if !HasCode(wrapped, CodeKoyRuntime) {
		t.Error("HasCode() should see through fmt wrapping")
	}
	if HasCode(errors.New("plain"), CodeKoyRuntime) {
		t.Error("HasCode() = true for plain error")
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() should default to CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() should default to SeverityMedium")
	}
}

func TestCode_IsPipelineCode(t *testing.T) {
	if !CodeKoyLexical.IsPipelineCode() || !CodeKoySyntax.IsPipelineCode() || !CodeKoyRuntime.IsPipelineCode() {
		t.Error("pipeline codes not recognized")
	}
	if CodeNotFound.IsPipelineCode() {
		t.Error("CodeNotFound is not a pipeline code")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("eof"), "read").
		WithCode(CodeInternal).
		WithOperation("koy.RunFile").
		WithDetail("path", "a.koy")

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("Marshal() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if unmarshalErr := json.Unmarshal(data, &decoded); unmarshalErr != nil {
		t.Fatalf("Unmarshal() error = %v", unmarshalErr)
	}

	if decoded["code"] != "INTERNAL" {
		t.Errorf("code = %v, want INTERNAL", decoded["code"])
	}
	if decoded["severity"] != "high" {
		t.Errorf("severity = %v, want high", decoded["severity"])
	}
	if decoded["operation"] != "koy.RunFile" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["cause"] != "eof" {
		t.Errorf("cause = %v, want eof", decoded["cause"])
	}
}

func TestString(t *testing.T) {
	err := New("bad").WithCode(CodeInvalidInput).WithDetail("b", 2).WithDetail("a", 1)
	s := err.String()

	for _, want := range []string{"Error: bad", "Code: INVALID_INPUT", "Severity: low", "Details: {a=1, b=2}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in %q", want, s)
		}
	}
}
