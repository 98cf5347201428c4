// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"fmt"

	"github.com/tarinyoom/llm-stack/internal/cmd/emoji"
	"github.com/tarinyoom/llm-stack/internal/ollama"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// InventoryToTableData converts presence reports to table format. The wide
// variant adds the digest column.
func InventoryToTableData(presences []ollama.Presence, wide bool) Data {
	headers := []string{"MODEL", "STATUS", "SIZE", "MODIFIED"}
	if wide {
		headers = append(headers, "DIGEST")
	}

	rows := make([][]string, 0, len(presences))
	for _, presence := range presences {
		status := emoji.Error + " missing"
		if presence.Present {
			status = emoji.Success + " present"
		}

		size := "-"
		if presence.Size > 0 {
			size = FormatBytes(presence.Size)
		}

		modified := "-"
		if presence.ModifiedAt != nil {
			modified = presence.ModifiedAt.Format("2006-01-02 15:04")
		}

		row := []string{presence.Model, status, size, modified}
		if wide {
			digest := presence.Digest
			if digest == "" {
				digest = "-"
			}
			row = append(row, digest)
		}

		rows = append(rows, row)
	}

	alignment := []Align{
		AlignDefault, // MODEL
		AlignDefault, // STATUS
		AlignRight,   // SIZE
		AlignDefault, // MODIFIED
	}
	if wide {
		alignment = append(alignment, AlignDefault) // DIGEST
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: alignment,
	}
}

// FormatBytes formats a byte count with decimal units, one fractional digit.
func FormatBytes(n int64) string {
	const unit = 1000
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGT"[exp])
}
