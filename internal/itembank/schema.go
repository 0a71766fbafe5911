package itembank

// bankSchema is the JSON schema the embedded bank file must satisfy
// before any structural checks run.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"trait_groups": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string", "minLength": 1},
			"minItems": GroupCount,
			"maxItems": GroupCount,
		},
		"state_groups": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string", "minLength": 1},
			"minItems": GroupCount,
			"maxItems": GroupCount,
		},
		"trait_items": map[string]any{
			"type":     "array",
			"items":    itemSchema,
			"minItems": TraitItemCount,
			"maxItems": TraitItemCount,
		},
		"state_items": map[string]any{
			"type":     "array",
			"items":    itemSchema,
			"minItems": StateItemCount,
			"maxItems": StateItemCount,
		},
	},
	"required":             []any{"trait_groups", "state_groups", "trait_items", "state_items"},
	"additionalProperties": false,
}

var itemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":       map[string]any{"type": "string", "minLength": 1},
		"group":    map[string]any{"type": "string", "minLength": 1},
		"text":     map[string]any{"type": "string", "minLength": 1},
		"reversed": map[string]any{"type": "boolean"},
	},
	"required":             []any{"id", "group", "text"},
	"additionalProperties": false,
}
