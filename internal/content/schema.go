package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// activitySchema is the pack-file contract: it guards the shape of each
// activity before it is decoded into the Go types. Playability checks
// (placeholder text, index range) are separate and run after decoding.
const activitySchema = `{
  "type": "object",
  "required": ["id", "age_band", "type", "skill", "difficulty", "title", "content"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "age_band": {"type": "string", "enum": ["4-6", "7-9", "10-13", "14-18", "adult"]},
    "type": {"type": "string", "minLength": 1},
    "skill": {"type": "string", "minLength": 1},
    "difficulty": {"type": ["string", "number"]},
    "title": {"type": "string", "minLength": 1},
    "content": {
      "type": "object",
      "required": ["prompt", "choices", "correctIndex", "explanation", "tip"],
      "properties": {
        "story": {"type": "string"},
        "method": {"type": "string"},
        "evidence_note": {"type": "string"},
        "debrief": {"type": "string"},
        "ct_skill": {"type": "string"},
        "prompt": {"type": "string", "minLength": 1},
        "choices": {"type": "array", "items": {"type": "string"}, "minItems": 2},
        "correctIndex": {"type": "integer", "minimum": 0},
        "explanation": {"type": "string"},
        "tip": {"type": "string"}
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func getActivitySchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(activitySchema), &parsed); err != nil {
			schemaErr = fmt.Errorf("parse activity schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const schemaURL = "schema://activity.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// validateActivityJSON checks one raw activity object against the pack
// schema.
func validateActivityJSON(raw json.RawMessage) error {
	schema, err := getActivitySchema()
	if err != nil {
		return err
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
