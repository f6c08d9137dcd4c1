package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const chatRequestSchema = `{
  "type": "object",
  "required": ["message"],
  "properties": {
    "message": {"type": "string", "minLength": 1, "pattern": "\\S"},
    "location": {"type": ["string", "null"]},
    "conversation_history": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["role", "content"],
        "properties": {
          "role": {"type": "string", "enum": ["user", "assistant", "system"]},
          "content": {"type": "string"}
        }
      }
    }
  }
}`

const filterRequestSchema = `{
  "type": "object",
  "properties": {
    "cuisine": {"type": ["string", "null"]},
    "min_price": {"type": ["number", "null"], "minimum": 0},
    "max_price": {"type": ["number", "null"], "minimum": 0},
    "min_rating": {"type": ["number", "null"], "minimum": 0, "maximum": 5},
    "max_delivery_time": {"type": ["integer", "null"], "minimum": 0},
    "keyword": {"type": ["string", "null"]}
  }
}`

var (
	chatSchema   = mustCompile("chat", chatRequestSchema)
	filterSchema = mustCompile("filter", filterRequestSchema)
)

func mustCompile(name, raw string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
	if err != nil {
		panic(fmt.Sprintf("invalid %s schema: %v", name, err))
	}
	return schema
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ValidateChatRequest validates a raw chat request body or job variable document.
func ValidateChatRequest(raw []byte) (*ValidationResult, error) {
	return validate(chatSchema, gojsonschema.NewBytesLoader(raw))
}

// ValidateFilterRequest validates a raw filter request body. An empty body is
// treated as an empty object.
func ValidateFilterRequest(raw []byte) (*ValidationResult, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		raw = []byte("{}")
	}
	return validate(filterSchema, gojsonschema.NewBytesLoader(raw))
}

// ValidateChatVariables validates decoded job variables.
func ValidateChatVariables(vars map[string]interface{}) (*ValidationResult, error) {
	return validate(chatSchema, gojsonschema.NewGoLoader(vars))
}

// ValidateFilterVariables validates decoded job variables.
func ValidateFilterVariables(vars map[string]interface{}) (*ValidationResult, error) {
	return validate(filterSchema, gojsonschema.NewGoLoader(vars))
}

func validate(schema *gojsonschema.Schema, doc gojsonschema.JSONLoader) (*ValidationResult, error) {
	result, err := schema.Validate(doc)
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
			Code:    strings.ToUpper(desc.Type()),
		})
	}
	return out, nil
}

// GetErrorMessages returns a simple list of error messages
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

// Summary joins all messages into one line for error details.
func (vr *ValidationResult) Summary() string {
	return strings.Join(vr.GetErrorMessages(), "; ")
}

// HasErrors checks if validation has errors for specific field
func (vr *ValidationResult) HasErrors(field string) bool {
	for _, err := range vr.Errors {
		if err.Field == field || strings.HasPrefix(err.Field, field+".") {
			return true
		}
	}
	return false
}

// DecodeVariables round-trips job variables into a typed struct.
func DecodeVariables(vars map[string]interface{}, out interface{}) error {
	raw, err := json.Marshal(vars)
	if err != nil {
		return fmt.Errorf("encode variables: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode variables: %w", err)
	}
	return nil
}
