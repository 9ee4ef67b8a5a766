package collector

import (
	"fmt"
	"sort"

	"github.com/bmcpi/redfish-modelgen/internal/modelerr"
	"github.com/bmcpi/redfish-modelgen/internal/openapi"
)

// handleSchema dispatches one sub-schema position encountered during
// traversal: a $ref is resolved, an anonymous inline schema is
// promoted to a synthesized SchemaItem and its children are traversed, and
// anything else (a typed or type-less leaf with no nested structure worth
// naming) is traversed in place without registering a new item.
func (c *Collector) handleSchema(loc location, childName string, schema *openapi.Schema) error {
	if schema == nil {
		return nil
	}
	if len(schema.AllOf) > 0 {
		return modelerr.NewUnsupportedConstruct(loc.file+"#"+childName, "allOf composition is not supported")
	}
	if openapi.HasRef(schema) {
		_, err := c.resolveRef(loc, schema)
		return err
	}
	if openapi.IsAnonymous(schema) {
		item, isNew := c.register(loc.domain, loc.file, childName, schema, true)
		if !isNew {
			return nil
		}
		return c.descendChildren(loc, item.SchemaName, schema)
	}
	return c.descendChildren(loc, childName, schema)
}

// descendChildren recurses into a schema's items, anyOf/oneOf alternatives
// and properties, each under a synthesized child name.
func (c *Collector) descendChildren(loc location, name string, schema *openapi.Schema) error {
	if schema.Items != nil {
		if err := c.handleSchema(loc, name, schema.Items); err != nil {
			return err
		}
	}

	for i, alt := range schema.AnyOf {
		childName := fmt.Sprintf("%s-%d", name, i)
		if err := c.handleSchema(loc, childName, alt); err != nil {
			return err
		}
	}
	for i, alt := range schema.OneOf {
		childName := fmt.Sprintf("%s-%d", name, i)
		if err := c.handleSchema(loc, childName, alt); err != nil {
			return err
		}
	}

	for _, propName := range sortedPropertyKeys(schema.Properties) {
		childName := name + "-" + propName
		if err := c.handleSchema(loc, childName, schema.Properties[propName]); err != nil {
			return err
		}
	}

	return nil
}

func sortedPropertyKeys(properties map[string]*openapi.Schema) []string {
	keys := make([]string, 0, len(properties))
	for k := range properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
