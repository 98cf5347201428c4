package output

import (
	"io"

	"github.com/tarinyoom/llm-stack/internal/cmd/table"
	"github.com/tarinyoom/llm-stack/internal/ollama"
)

// Inventory writes presence reports in the requested format. An empty format
// auto-detects: tables on terminals, JSON on pipes.
func Inventory(w io.Writer, presences []ollama.Presence, explicitFormat string) error {
	format := DetectFormat(explicitFormat)
	formatter := NewFormatter(format)

	var outputData any
	switch format {
	case FormatTable, FormatWide:
		outputData = table.InventoryToTableData(presences, format == FormatWide)
	default:
		outputData = presences
	}

	return formatter.Format(w, outputData)
}
