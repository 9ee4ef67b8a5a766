// Package openapi is the Document Loader external collaborator:
// it deserializes OpenAPI 3.0/3.1 documents -- and the non-standard "partial"
// documents Redfish ships that carry only components.schemas -- into an
// in-memory object model. It is mechanical by design: the hard reference-
// closure and type-materialization work lives in internal/collector and
// internal/generator.
package openapi

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// Schema is an OpenAPI/JSON-Schema node. OpenAPI 3.1 schema objects are
// JSON Schema 2020-12 compatible by design (the dialect Redfish documents
// declare via jsonSchemaDialect), so jsonschema.Schema -- the same struct
// MacroPower-x's magicschema generator builds and consumes -- is reused
// directly instead of hand-rolling a parallel representation.
type Schema = jsonschema.Schema

// IsNullable reports OpenAPI 3.0's non-standard "nullable" keyword, carried
// in jsonschema.Schema's catch-all Extra map since it has no first-class
// field in the 2020-12 dialect the library targets.
func IsNullable(s *Schema) bool {
	if s == nil || s.Extra == nil {
		return false
	}
	v, ok := s.Extra["nullable"]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// Discriminator carries OpenAPI's discriminator object, when present.
type Discriminator struct {
	PropertyName string            `json:"propertyName"`
	Mapping      map[string]string `json:"mapping,omitempty"`
}

// SchemaDiscriminator extracts the discriminator object from Extra, if any.
func SchemaDiscriminator(s *Schema) *Discriminator {
	if s == nil || s.Extra == nil {
		return nil
	}
	raw, ok := s.Extra["discriminator"]
	if !ok {
		return nil
	}
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}
	d := &Discriminator{}
	if pn, ok := m["propertyName"].(string); ok {
		d.PropertyName = pn
	}
	if mapping, ok := m["mapping"].(map[string]interface{}); ok {
		d.Mapping = make(map[string]string, len(mapping))
		for k, v := range mapping {
			if s, ok := v.(string); ok {
				d.Mapping[k] = s
			}
		}
	}
	return d
}

// HasRef reports whether the schema is a bare $ref node.
func HasRef(s *Schema) bool {
	return s != nil && s.Ref != ""
}

// TypeNames normalizes the OpenAPI 3.0 single-keyword / 3.1 array-of-keyword
// "type" field into a slice, regardless of which form the
// document used.
func TypeNames(s *Schema) []string {
	if s == nil {
		return nil
	}
	if len(s.Types) > 0 {
		return s.Types
	}
	if s.Type != "" {
		return []string{s.Type}
	}
	return nil
}

// IsPrimitiveType reports whether t names one of the OpenAPI primitive
// types.
func IsPrimitiveType(t string) bool {
	switch t {
	case "boolean", "number", "string", "integer":
		return true
	default:
		return false
	}
}

// IsAnonymous reports whether a ref-free schema meets the promotion
// criteria shared by the Collector and the Generator's
// struct-field lowering: an explicit "object" type, an
// enumeration, or a multi-alternative anyOf/oneOf.
func IsAnonymous(s *Schema) bool {
	if s == nil || HasRef(s) {
		return false
	}
	for _, t := range TypeNames(s) {
		if t == "object" {
			return true
		}
	}
	if len(s.Enum) > 0 {
		return true
	}
	if len(s.AnyOf) > 1 || len(s.OneOf) > 1 {
		return true
	}
	return false
}
