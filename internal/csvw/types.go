package csvw

import (
	"encoding/json"
	"path"

	"csvcube/internal/cube"
	"csvcube/internal/diagnostic"
)

// Datatype is a CSVW column datatype. It encodes as a bare string unless a
// format restriction is present.
type Datatype struct {
	Base   string `json:"base"`
	Format string `json:"format,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (d Datatype) MarshalJSON() ([]byte, error) {
	if d.Format == "" {
		return json.Marshal(d.Base)
	}

	type object Datatype

	return json.Marshal(object(d))
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Datatype) UnmarshalJSON(data []byte) error {
	var base string
	if json.Unmarshal(data, &base) == nil {
		*d = Datatype{Base: base}
		return nil
	}

	type object Datatype

	var o object

	err := json.Unmarshal(data, &o)
	if err != nil {
		return err
	}

	*d = Datatype(o)

	return nil
}

// ColumnDescriptor is one entry of a table schema's columns list.
type ColumnDescriptor struct {
	Titles         string    `json:"titles,omitempty"`
	Name           string    `json:"name"`
	Datatype       *Datatype `json:"datatype,omitempty"`
	PropertyURL    string    `json:"propertyUrl,omitempty"`
	ValueURL       string    `json:"valueUrl,omitempty"`
	SuppressOutput bool      `json:"suppressOutput,omitempty"`
	Virtual        bool      `json:"virtual,omitempty"`
}

// TableSchema is the content of a <chunk>.table.json file.
type TableSchema struct {
	Columns []ColumnDescriptor `json:"columns"`
}

// TableRef points the dataset descriptor at one chunk's files.
type TableRef struct {
	URL         string `json:"url"`
	TableSchema string `json:"tableSchema"`
}

// ChunkMetadata is the content of a <chunk>.csv-metadata.json file.
type ChunkMetadata struct {
	Context     string `json:"@context"`
	URL         string `json:"url"`
	ID          string `json:"@id"`
	TableSchema string `json:"tableSchema"`
	Label       string `json:"rdfs:label"`
	Title       string `json:"dc:title"`
}

// DatasetDescriptor is the top-level <dataset>.csv-metadata.json document.
type DatasetDescriptor struct {
	Context      string     `json:"@context"`
	ID           string     `json:"@id"`
	Tables       []TableRef `json:"tables"`
	Label        string     `json:"rdfs:label"`
	Title        string     `json:"dc:title"`
	Comment      string     `json:"rdfs:comment,omitempty"`
	Description  string     `json:"dc:description,omitempty"`
	Creator      string     `json:"dc:creator,omitempty"`
	Publisher    string     `json:"dc:publisher,omitempty"`
	Issued       string     `json:"dc:issued,omitempty"`
	Modified     string     `json:"dc:modified,omitempty"`
	License      string     `json:"dc:license,omitempty"`
	Themes       []string   `json:"dcat:theme,omitempty"`
	Keywords     []string   `json:"dcat:keyword,omitempty"`
	LandingPages []string   `json:"dcat:landingPage,omitempty"`
	ContactPoint string     `json:"dcat:contactPoint,omitempty"`
}

// ChunkOutput is everything written for one chunk.
type ChunkOutput struct {
	Name     string
	Data     *cube.Table
	Schema   TableSchema
	Metadata ChunkMetadata
}

// CSVPath returns the sink-relative path of the chunk's CSV file.
func (c *ChunkOutput) CSVPath() string {
	return path.Join(c.Name, c.Name+".csv")
}

// SchemaPath returns the sink-relative path of the chunk's table schema.
func (c *ChunkOutput) SchemaPath() string {
	return path.Join(c.Name, c.Name+".table.json")
}

// MetadataPath returns the sink-relative path of the chunk's metadata.
func (c *ChunkOutput) MetadataPath() string {
	return path.Join(c.Name, c.Name+".csv-metadata.json")
}

// Bundle is the projection of a whole cube.
type Bundle struct {
	DatasetID   string
	Dataset     DatasetDescriptor
	Chunks      []ChunkOutput
	Diagnostics diagnostic.Diagnostics
}

// MetadataPath returns the sink-relative path of the dataset descriptor.
func (b *Bundle) MetadataPath() string {
	return b.DatasetID + ".csv-metadata.json"
}
