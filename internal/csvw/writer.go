package csvw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"csvcube/internal/cube"
	"csvcube/internal/sink"
)

// File is one rendered output file.
type File struct {
	Name string
	Data []byte
}

// Files renders b in write order: each chunk's CSV, table schema and
// metadata, then the dataset descriptor.
func (b *Bundle) Files() ([]File, error) {
	files := make([]File, 0, 3*len(b.Chunks)+1)

	for i := range b.Chunks {
		chunk := &b.Chunks[i]

		var csvBuf bytes.Buffer

		err := cube.WriteCSV(&csvBuf, chunk.Data)
		if err != nil {
			return nil, fmt.Errorf("chunk %q: %w", chunk.Name, err)
		}

		schema, err := marshalJSON(chunk.Schema)
		if err != nil {
			return nil, fmt.Errorf("chunk %q table schema: %w", chunk.Name, err)
		}

		metadata, err := marshalJSON(chunk.Metadata)
		if err != nil {
			return nil, fmt.Errorf("chunk %q metadata: %w", chunk.Name, err)
		}

		files = append(files,
			File{Name: chunk.CSVPath(), Data: csvBuf.Bytes()},
			File{Name: chunk.SchemaPath(), Data: schema},
			File{Name: chunk.MetadataPath(), Data: metadata},
		)
	}

	dataset, err := marshalJSON(b.Dataset)
	if err != nil {
		return nil, fmt.Errorf("dataset metadata: %w", err)
	}

	return append(files, File{Name: b.MetadataPath(), Data: dataset}), nil
}

// Write renders b and writes every file to s. Files written before a failure
// are left in place.
func Write(ctx context.Context, s sink.Sink, b *Bundle) error {
	files, err := b.Files()
	if err != nil {
		return err
	}

	for _, f := range files {
		err := s.WriteFile(ctx, f.Name, f.Data)
		if err != nil {
			return fmt.Errorf("writing %s to %s: %w", f.Name, s.Location(), err)
		}
	}

	return nil
}

// marshalJSON encodes v with four-space indentation and without HTML
// escaping.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")

	err := enc.Encode(v)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
