// Package csvw projects a cube onto CSV on the Web (CSVW) metadata.
//
// A Projector resolves each chunk's columns through the columns package and
// describes them as CSVW column descriptors:
//
//	dimension        propertyUrl/valueUrl from the configuration, or
//	                 synthesized under the dataset URI
//	measure type     as dimension; a "types" list restricts the datatype
//	                 with a ^(a|b)$ format
//	attribute        propertyUrl/valueUrl from the configuration
//	observed value   propertyUrl is the (possibly back-filled) measure URI;
//	                 a unit adds a virtual unitMeasure column
//	suppressed       listed with suppressOutput
//
// The result is a Bundle: a dataset descriptor, one table schema and
// metadata document per chunk, and the diagnostics collected on the way.
// Write lays a bundle out through a sink.Sink:
//
//	<chunk>/<chunk>.csv
//	<chunk>/<chunk>.table.json
//	<chunk>/<chunk>.csv-metadata.json
//	<dataset>.csv-metadata.json
package csvw
