package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var schemaJSON []byte

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// validateSchema checks raw catalog JSON against the embedded schema.
func validateSchema(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("catalog schema validation failed: %w", err)
	}
	return nil
}

// compiledSchema compiles the embedded schema once and caches it.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal(schemaJSON, &def); err != nil {
			compileErr = fmt.Errorf("parse embedded schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://catalog.json"
		if err := c.AddResource(url, def); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(url)
	})
	return compiled, compileErr
}
