package catalogue

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://catalogue.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// ShapeError reports a catalogue document that does not match the schema.
type ShapeError struct {
	Err error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("catalogue does not match schema: %v", e.Err)
}

func (e *ShapeError) Unwrap() error { return e.Err }

// getSchema compiles the embedded schema once.
func getSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(schemaJSON, &def); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// validateShape checks a decoded YAML document against the schema.
// The document is round-tripped through JSON so the validator only ever sees
// plain JSON values.
func validateShape(doc any) error {
	compiled, err := getSchema()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return &ShapeError{Err: fmt.Errorf("not representable as JSON: %w", err)}
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ShapeError{Err: err}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ShapeError{Err: err}
	}
	return nil
}
