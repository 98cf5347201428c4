package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/tarinyoom/llm-stack/internal/ollama"
)

func TestParseFormat(t *testing.T) {
	valid := []string{"table", "json", "yaml", "wide", "JSON", ""}
	for _, s := range valid {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q) returned error: %v", s, err)
		}
	}

	invalid := []string{"xml", "csv", "tables"}
	for _, s := range invalid {
		if _, err := ParseFormat(s); err == nil {
			t.Errorf("ParseFormat(%q) accepted an unsupported format", s)
		}
	}
}

func TestInventoryJSON(t *testing.T) {
	presences := []ollama.Presence{
		{Model: "llama3.2", Present: true, Size: 2019393189},
		{Model: "mistral", Present: false},
	}

	var buf bytes.Buffer
	if err := Inventory(&buf, presences, "json"); err != nil {
		t.Fatalf("Inventory returned error: %v", err)
	}

	var decoded []ollama.Presence
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded %d entries, want 2", len(decoded))
	}
	if !decoded[0].Present || decoded[1].Present {
		t.Errorf("presence flags wrong: %+v", decoded)
	}
}

func TestInventoryYAML(t *testing.T) {
	presences := []ollama.Presence{{Model: "llama3.2", Present: true}}

	var buf bytes.Buffer
	if err := Inventory(&buf, presences, "yaml"); err != nil {
		t.Fatalf("Inventory returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "model: llama3.2") {
		t.Errorf("yaml output missing model field:\n%s", out)
	}
	if !strings.Contains(out, "present: true") {
		t.Errorf("yaml output missing present field:\n%s", out)
	}
}

func TestInventoryTable(t *testing.T) {
	presences := []ollama.Presence{
		{Model: "llama3.2", Present: true, Size: 2019393189},
		{Model: "mistral", Present: false},
	}

	var buf bytes.Buffer
	if err := Inventory(&buf, presences, "table"); err != nil {
		t.Fatalf("Inventory returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"MODEL", "STATUS", "llama3.2", "mistral", "2.0 GB"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestTableFormatterReflectionFallback(t *testing.T) {
	type row struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	var buf bytes.Buffer
	formatter := &TableFormatter{}
	if err := formatter.Format(&buf, []row{{Name: "a", Count: 1}, {Name: "b", Count: 2}}); err != nil {
		t.Fatalf("Format returned error: %v", err)
	}

	// Header casing depends on tablewriter's auto formatting, so compare
	// case-insensitively.
	out := strings.ToUpper(buf.String())
	for _, want := range []string{"NAME", "COUNT", "A", "B"} {
		if !strings.Contains(out, want) {
			t.Errorf("reflected table missing %q:\n%s", want, buf.String())
		}
	}
}
