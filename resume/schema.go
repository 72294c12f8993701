package resume

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema describing the resume data shape. Form
// and storage layers validate incoming documents against it; the template
// evaluator never sees it.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	return r.Reflect(&Resume{})
}

// CoverLetterSchema returns the JSON Schema for cover-letter documents.
func CoverLetterSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	return r.Reflect(&CoverLetter{})
}

// SchemaJSON renders the resume schema as indented JSON, ready to serve to
// a form-handling client.
func SchemaJSON() ([]byte, error) {
	b, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode schema: %w", err)
	}
	return b, nil
}
