package resume

import (
	"encoding/json"
	"fmt"
)

// Context converts the resume into the opaque mapping tree the template
// evaluator consumes. The conversion goes through JSON so templates see
// exactly the field names the schema documents.
func (r *Resume) Context() (map[string]any, error) {
	return toContext(r)
}

// Context converts the cover letter for the template evaluator.
func (c *CoverLetter) Context() (map[string]any, error) {
	return toContext(c)
}

func toContext(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode context: %w", err)
	}
	var ctx map[string]any
	if err := json.Unmarshal(b, &ctx); err != nil {
		return nil, fmt.Errorf("decode context: %w", err)
	}
	return ctx, nil
}
