// Package config loads cube configuration documents and resolves the
// configuration of one dataset from them.
//
// A document is JSON or YAML (JSON documents are valid YAML 1.2) and keeps the
// order of its keys, so the column mapping is projected in the order it was
// written:
//
//	{
//	  "id": "trade",
//	  "title": "Overseas trade",
//	  "published": "2020-08-13",
//	  "baseUri": "http://gss-data.org.uk/",
//	  "columns": {
//	    "Period": {"dimension": "...", "value": "..."},
//	    "Value":  {"datatype": "decimal"}
//	  },
//	  "cubes": {
//	    "trade-cn8": {"title": "Overseas trade by CN8 code"}
//	  }
//	}
//
// # Overrides
//
// The optional "cubes" block holds per-dataset overrides. Resolving the
// configuration for a dataset id either uses the document as-is (its own id
// matches) or replaces top-level keys with the keys of the matching override
// block. The "cubes" block itself is never part of a resolved configuration,
// and the input document is never modified.
package config
