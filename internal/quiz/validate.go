package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const bankSchemaURL = "schema://question-bank.json"

var (
	compiledOnce sync.Once
	compiled     *jsonschema.Schema
	compileErr   error
)

// validateDocument checks raw bank JSON against bankSchema.
func validateDocument(raw []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}

	// The jsonschema library expects a parsed JSON value, not raw bytes.
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		defBytes, err := json.Marshal(bankSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
		if err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(bankSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(bankSchemaURL)
	})
	return compiled, compileErr
}
