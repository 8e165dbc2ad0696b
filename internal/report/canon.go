package report

import (
	"encoding/json"

	"github.com/oasmap/oasmap/internal/model"
)

// CanonicalJSON returns a deterministic canonical serialization of a
// schema's structural body: the body is lowered into nested
// map[string]any values and marshaled with encoding/json, which sorts
// keys and emits no whitespace. The output is used purely as a
// mapping key for structural identity, never for display.
func CanonicalJSON(s *model.Schema) string {
	b, err := json.Marshal(structural(s))
	if err != nil {
		return ""
	}
	return string(b)
}

// prettyJSON is the display form of the same structural body, for the
// tree dump.
func prettyJSON(s *model.Schema, indent string) string {
	b, err := json.MarshalIndent(structural(s), indent, "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

// structural lowers a schema body to plain maps. References stay as
// $ref leaves, mirroring the document text, so an inline copy of a
// component body lowers to the same value as the declaration it was
// copied from.
func structural(s *model.Schema) map[string]any {
	if s == nil {
		return nil
	}
	if s.IsReference() {
		return map[string]any{"$ref": s.Ref}
	}

	m := make(map[string]any)
	if s.Type != "" {
		m["type"] = s.Type
	}
	if s.Format != "" {
		m["format"] = s.Format
	}
	if s.Title != "" {
		m["title"] = s.Title
	}
	if s.Description != "" {
		m["description"] = s.Description
	}
	if s.Nullable {
		m["nullable"] = true
	}
	if s.Deprecated {
		m["deprecated"] = true
	}
	if s.Default != nil {
		m["default"] = s.Default
	}
	if s.Example != nil {
		m["example"] = s.Example
	}
	if len(s.Enum) > 0 {
		m["enum"] = s.Enum
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for _, p := range s.Properties {
			props[p.Name] = structural(p.Schema)
		}
		m["properties"] = props
	}
	if len(s.Required) > 0 {
		m["required"] = s.Required
	}
	if s.Items != nil {
		m["items"] = structural(s.Items)
	}
	if s.AdditionalProperties != nil {
		m["additionalProperties"] = structural(s.AdditionalProperties)
	}
	if len(s.AllOf) > 0 {
		m["allOf"] = structuralSlice(s.AllOf)
	}
	if len(s.OneOf) > 0 {
		m["oneOf"] = structuralSlice(s.OneOf)
	}
	if len(s.AnyOf) > 0 {
		m["anyOf"] = structuralSlice(s.AnyOf)
	}
	if s.Pattern != "" {
		m["pattern"] = s.Pattern
	}
	if s.Minimum != nil {
		m["minimum"] = *s.Minimum
	}
	if s.Maximum != nil {
		m["maximum"] = *s.Maximum
	}
	if s.MinLength != nil {
		m["minLength"] = *s.MinLength
	}
	if s.MaxLength != nil {
		m["maxLength"] = *s.MaxLength
	}
	if s.MinItems != nil {
		m["minItems"] = *s.MinItems
	}
	if s.MaxItems != nil {
		m["maxItems"] = *s.MaxItems
	}
	if s.UniqueItems {
		m["uniqueItems"] = true
	}
	return m
}

func structuralSlice(schemas []*model.Schema) []any {
	out := make([]any, 0, len(schemas))
	for _, s := range schemas {
		out = append(out, structural(s))
	}
	return out
}
