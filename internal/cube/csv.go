package cube

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const utf8BOM = "\ufeff"

// ReadCSV reads a table from CSV data whose first record is the header.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: no header row", ErrInvalidTable)
	}

	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	columns := make([]string, len(header))
	copy(columns, header)
	columns[0] = strings.TrimPrefix(columns[0], utf8BOM)

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV records: %w", err)
	}

	return NewTable(columns, rows)
}

// ReadCSVFile reads a table from the CSV file at path.
func ReadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// WriteCSV writes t as CSV with a header row.
func WriteCSV(w io.Writer, t *Table) error {
	writer := csv.NewWriter(w)

	err := writer.Write(t.Columns)
	if err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	err = writer.WriteAll(t.Rows)
	if err != nil {
		return fmt.Errorf("writing CSV records: %w", err)
	}

	return nil
}
