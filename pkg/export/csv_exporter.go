package export

import (
	"fmt"
	"strings"
)

// Dataset defines tabular export content.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// CSVExporter renders Dataset records into CSV bytes. The header row is
// written bare while every data field is double-quoted, matching the files
// the console has always produced.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes for the dataset.
func (e *CSVExporter) Render(data Dataset) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("csv requires at least one header")
	}
	var b strings.Builder
	b.WriteString(strings.Join(data.Headers, ","))
	for _, row := range data.Rows {
		b.WriteString("\n")
		for i, header := range data.Headers {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(quoteField(row[header]))
		}
	}
	return []byte(b.String()), nil
}

func quoteField(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
