// Package schema embeds the JSON schema the config package validates
// against.
package schema

// ConfigSchema describes the shape of a pkgcloser config file, expressed
// against its JSON-equivalent form (the file itself is YAML; it is
// marshaled to JSON before validation).
var ConfigSchema = []byte(`{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "pkgcloser-config",
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"catalog_path": {
			"type": "string",
			"minLength": 1
		},
		"logging": {
			"type": "object",
			"additionalProperties": false,
			"properties": {
				"level": {
					"type": "string",
					"enum": ["debug", "info", "warn", "error"]
				},
				"file": {
					"type": "string"
				}
			}
		}
	}
}`)
