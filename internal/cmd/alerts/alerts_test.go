package alerts

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/tarinyoom/llm-stack/internal/cmd/output"
)

func TestAlertString(t *testing.T) {
	alert := NewSuccess("all models present")
	if got := alert.String(); got != "✓ all models present" {
		t.Errorf("String() = %q", got)
	}

	withErr := NewError("pull failed").WithError(errors.New("connection refused"))
	if got := withErr.String(); got != "✗ pull failed: connection refused" {
		t.Errorf("String() = %q", got)
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelError, "error"},
		{LevelWarning, "warning"},
		{LevelInfo, "info"},
		{LevelSuccess, "success"},
		{Level(42), "unknown(42)"},
	}

	for _, tc := range tests {
		if got := tc.level.String(); got != tc.want {
			t.Errorf("Level(%d).String() = %q, want %q", tc.level, got, tc.want)
		}
	}
}

func TestFormatWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	fw := NewFormatWriter(&buf, output.FormatJSON)

	alert := NewWarning("2 models missing").WithDetails("llama3.2", "mistral")
	if err := fw.WriteAlert(alert); err != nil {
		t.Fatalf("WriteAlert: %v", err)
	}

	var decoded struct {
		Level   string   `json:"level"`
		Message string   `json:"message"`
		Details []string `json:"details"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if decoded.Level != "warning" || decoded.Message != "2 models missing" {
		t.Errorf("decoded = %+v", decoded)
	}
	if len(decoded.Details) != 2 {
		t.Errorf("details = %v, want 2 entries", decoded.Details)
	}
}

func TestFormatWriterYAML(t *testing.T) {
	var buf bytes.Buffer
	fw := NewFormatWriter(&buf, output.FormatYAML)

	if err := fw.WriteAlert(NewInfo("reconcile complete")); err != nil {
		t.Fatalf("WriteAlert: %v", err)
	}
	if !strings.Contains(buf.String(), "message: reconcile complete") {
		t.Errorf("yaml output missing message:\n%s", buf.String())
	}
}

func TestFormatWriterTable(t *testing.T) {
	var buf bytes.Buffer
	fw := NewFormatWriter(&buf, output.FormatTable)

	alert := NewError("server unreachable").WithDetails("checked http://localhost:11434")
	if err := fw.WriteAlert(alert); err != nil {
		t.Fatalf("WriteAlert: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "✗ server unreachable") {
		t.Errorf("table output missing alert line:\n%s", out)
	}
	if !strings.Contains(out, "checked http://localhost:11434") {
		t.Errorf("table output missing detail line:\n%s", out)
	}
}

func TestMultiWriter(t *testing.T) {
	var first, second bytes.Buffer
	w := MultiWriter(NewWriterTo(&first), NewWriterTo(&second))

	if err := w.WriteAlert(NewInfo("hello")); err != nil {
		t.Fatalf("WriteAlert: %v", err)
	}
	if first.String() != second.String() || first.Len() == 0 {
		t.Errorf("writers diverged: %q vs %q", first.String(), second.String())
	}
}

func TestDiscardWriter(t *testing.T) {
	if err := DiscardWriter.WriteAlert(NewError("dropped")); err != nil {
		t.Errorf("DiscardWriter returned error: %v", err)
	}
}
