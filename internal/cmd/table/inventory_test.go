package table

import (
	"testing"
	"time"

	"github.com/agentstation/utc"

	"github.com/tarinyoom/llm-stack/internal/ollama"
)

func TestInventoryToTableData(t *testing.T) {
	modified := utc.Time{Time: time.Date(2025, 5, 4, 14, 56, 0, 0, time.UTC)}
	presences := []ollama.Presence{
		{Model: "llama3.2", Present: true, Size: 2019393189, Digest: "a80c4f17acd5", ModifiedAt: &modified},
		{Model: "mistral", Present: false},
	}

	data := InventoryToTableData(presences, false)

	wantHeaders := []string{"MODEL", "STATUS", "SIZE", "MODIFIED"}
	if len(data.Headers) != len(wantHeaders) {
		t.Fatalf("Headers = %v, want %v", data.Headers, wantHeaders)
	}
	for i, h := range wantHeaders {
		if data.Headers[i] != h {
			t.Errorf("Headers[%d] = %q, want %q", i, data.Headers[i], h)
		}
	}

	if len(data.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(data.Rows))
	}

	present := data.Rows[0]
	if present[0] != "llama3.2" {
		t.Errorf("model cell = %q, want llama3.2", present[0])
	}
	if present[1] != "✓ present" {
		t.Errorf("status cell = %q, want ✓ present", present[1])
	}
	if present[2] != "2.0 GB" {
		t.Errorf("size cell = %q, want 2.0 GB", present[2])
	}
	if present[3] != "2025-05-04 14:56" {
		t.Errorf("modified cell = %q, want 2025-05-04 14:56", present[3])
	}

	missing := data.Rows[1]
	if missing[1] != "✗ missing" {
		t.Errorf("status cell = %q, want ✗ missing", missing[1])
	}
	if missing[2] != "-" || missing[3] != "-" {
		t.Errorf("missing model cells = %v, want dashes", missing[2:])
	}
}

func TestInventoryToTableDataWide(t *testing.T) {
	presences := []ollama.Presence{
		{Model: "llama3.2", Present: true, Size: 2019393189, Digest: "a80c4f17acd5"},
		{Model: "mistral", Present: false},
	}

	data := InventoryToTableData(presences, true)

	if len(data.Headers) != 5 || data.Headers[4] != "DIGEST" {
		t.Fatalf("Headers = %v, want DIGEST as fifth column", data.Headers)
	}
	if data.Rows[0][4] != "a80c4f17acd5" {
		t.Errorf("digest cell = %q, want a80c4f17acd5", data.Rows[0][4])
	}
	if data.Rows[1][4] != "-" {
		t.Errorf("digest cell for missing model = %q, want -", data.Rows[1][4])
	}
	if len(data.ColumnAlignment) != 5 {
		t.Errorf("ColumnAlignment has %d entries, want 5", len(data.ColumnAlignment))
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{999, "999 B"},
		{1000, "1.0 KB"},
		{1500, "1.5 KB"},
		{2019393189, "2.0 GB"},
		{4700000000, "4.7 GB"},
		{1200000000000, "1.2 TB"},
	}

	for _, tc := range tests {
		if got := FormatBytes(tc.n); got != tc.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
