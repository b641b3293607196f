package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/open-edge-platform/pkgcloser/internal/config/schema"
)

const configSchemaName = "pkgcloser-config.schema.json"

// validateAgainstSchema re-marshals a YAML-decoded document to JSON and
// checks it against the embedded config schema.
func validateAgainstSchema(doc interface{}) error {
	comp := jsonschema.NewCompiler()
	if err := comp.AddResource(configSchemaName, bytes.NewReader(schema.ConfigSchema)); err != nil {
		return fmt.Errorf("loading config schema: %w", err)
	}
	sch, err := comp.Compile(configSchemaName)
	if err != nil {
		return fmt.Errorf("compiling config schema: %w", err)
	}

	asJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("re-marshaling config for validation: %w", err)
	}
	var generic interface{}
	if err := json.Unmarshal(asJSON, &generic); err != nil {
		return fmt.Errorf("decoding config for validation: %w", err)
	}

	if err := sch.Validate(generic); err != nil {
		return fmt.Errorf("config failed schema validation: %w", err)
	}
	return nil
}
