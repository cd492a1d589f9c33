package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// ContentType is the media type of rendered reports.
const ContentType = "text/csv"

// WriteCSV writes rows as CSV to w. The header line comes from the `csv`
// struct tags of the row type and is written even when rows is empty.
func WriteCSV[T any](w io.Writer, rows []T) error {
	if rows == nil {
		rows = []T{}
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to render csv: %w", err)
	}
	return nil
}

// RenderCSV is WriteCSV into a byte slice.
func RenderCSV[T any](rows []T) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// AttachmentDisposition returns a Content-Disposition value for filename.
func AttachmentDisposition(filename string) string {
	return fmt.Sprintf("attachment; filename=%q", filename)
}
