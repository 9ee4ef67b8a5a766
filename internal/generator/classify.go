package generator

import (
	"github.com/bmcpi/redfish-modelgen/internal/model"
	"github.com/bmcpi/redfish-modelgen/internal/modelerr"
	"github.com/bmcpi/redfish-modelgen/internal/openapi"
)

// Classify chooses exactly one Category for item, trying each construct in
// priority order.
func Classify(item *model.SchemaItem) (Category, error) {
	schema := item.Schema
	switch {
	case len(schema.AllOf) > 0:
		return 0, modelerr.NewUnsupportedConstruct(item.Key().String(), "allOf composition is not supported")
	case openapi.HasRef(schema):
		return CategoryAlias, nil
	case len(schema.AnyOf) > 0 || len(schema.OneOf) > 0:
		return CategoryEnumNewtype, nil
	case len(schema.Enum) > 0:
		return CategoryEnumUnit, nil
	}

	types := openapi.TypeNames(schema)
	if len(types) == 1 && openapi.IsPrimitiveType(types[0]) {
		return CategoryPrimitive, nil
	}
	if len(types) > 1 {
		return 0, modelerr.NewUnsupportedConstruct(item.Key().String(), "array-form \"type\" is not supported")
	}
	for _, t := range types {
		if t == "null" {
			return 0, modelerr.NewUnsupportedConstruct(item.Key().String(), "\"null\" as the sole type is not supported")
		}
	}
	return CategoryStruct, nil
}
