package httpapi

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Request schemas are compiled once at package init and validated per
// request, so malformed payloads are rejected before any business logic
// runs. Schema violations map to 422, like the range/type checks a typed
// framework would enforce.

const createUserSchemaJSON = `{
	"type": "object",
	"required": ["username"],
	"properties": {
		"username": {"type": "string", "minLength": 1},
		"email": {"type": ["string", "null"], "format": "email"}
	},
	"additionalProperties": false
}`

const createSessionSchemaJSON = `{
	"type": "object",
	"required": ["user_id", "skill_type", "score", "feedback"],
	"properties": {
		"user_id": {"type": "integer", "minimum": 1},
		"skill_type": {"type": "string", "minLength": 1},
		"score": {"type": "integer", "minimum": 0, "maximum": 100},
		"feedback": {"type": "string", "minLength": 1},
		"metadata": {"type": ["string", "null"]}
	},
	"additionalProperties": false
}`

var (
	createUserSchema    = mustCompileSchema(createUserSchemaJSON)
	createSessionSchema = mustCompileSchema(createSessionSchemaJSON)
)

func mustCompileSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("invalid request schema: %v", err))
	}
	return schema
}

// validateBody checks the raw request body against the schema. Returns ""
// when valid, otherwise a detail string listing the violations.
func validateBody(schema *gojsonschema.Schema, body []byte) string {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		// Not JSON at all.
		return "invalid JSON body"
	}
	if result.Valid() {
		return ""
	}

	details := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		details = append(details, e.String())
	}
	return strings.Join(details, "; ")
}
