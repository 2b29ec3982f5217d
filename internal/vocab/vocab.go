// Package vocab holds the vocabulary IRIs and CSVW keys used when describing
// a data cube.
//
// References:
//   - RDF Data Cube: https://www.w3.org/TR/vocab-data-cube/
//   - SDMX-RDF: https://www.w3.org/TR/vocab-data-cube/#dsd-cog
//   - CSVW: https://www.w3.org/TR/tabular-metadata/
//   - DCAT: https://www.w3.org/TR/vocab-dcat-2/
//   - Dublin Core: https://www.dublincore.org/specifications/dublin-core/dcmi-terms/
package vocab

// RDF Data Cube IRIs
const (
	// QBMeasureType is the dimension property whose values select the measure
	// an observation belongs to.
	QBMeasureType = "http://purl.org/linked-data/cube#measureType"
)

// SDMX IRIs
const (
	// SDMXUnitMeasure relates an observation to its unit of measure.
	SDMXUnitMeasure = "http://purl.org/linked-data/sdmx/2009/attribute#unitMeasure"
)

// CSVW
const (
	// CSVWContext is the JSON-LD context of every CSVW metadata document.
	CSVWContext = "http://www.w3.org/ns/csvw"

	// DatatypeString is the default CSVW column datatype.
	DatatypeString = "string"
)

// DefaultBaseURI is used when a configuration document does not set baseUri.
const DefaultBaseURI = "http://gss-data.org.uk/"
