package generator

import (
	"github.com/bmcpi/redfish-modelgen/internal/model"
	"github.com/bmcpi/redfish-modelgen/internal/modelerr"
	"github.com/bmcpi/redfish-modelgen/internal/naming"
	"github.com/bmcpi/redfish-modelgen/internal/openapi"
)

// LowerType computes the Go type expression for a schema at a reference
// site. ownName is the composite name the Collector would
// have synthesized for this exact position (parentSchemaName + "-" +
// propertyName for a struct field, or the same value again when recursing
// into an array's items, matching the Collector's "under the parent's
// name" rule at §4.3.5).
func LowerType(reg *Registry, domain, fileName, ownName string, schema *openapi.Schema) (string, error) {
	if schema == nil {
		return "any", nil
	}
	if openapi.HasRef(schema) {
		return lowerRef(reg, domain, schema)
	}
	if openapi.IsAnonymous(schema) {
		key := model.NewReferenceKey(domain, fileName, ownName)
		item, ok := reg.ByKey(key)
		if !ok {
			return "any", modelerr.NewMissingSchema(key.String())
		}
		coords := naming.TypeCoordinatesFor(item)
		return qualifiedGoType(domain, coords), nil
	}

	types := openapi.TypeNames(schema)
	switch len(types) {
	case 0:
		// Type-less, ref-less, non-anonymous leaf: no structure to lower,
		// preserved as an opaque JSON value.
		return "json.RawMessage", nil
	case 1:
		// handled below
	default:
		return "", modelerr.NewUnsupportedConstruct(domain+"/"+fileName+"#"+ownName, "array-form \"type\" is not supported")
	}

	switch types[0] {
	case "null":
		return "", modelerr.NewUnsupportedConstruct(domain+"/"+fileName+"#"+ownName, "\"null\" as the sole type is not supported")
	case "boolean":
		return "bool", nil
	case "number":
		return "float64", nil
	case "string":
		return "string", nil
	case "integer":
		return "int64", nil
	case "array":
		itemType, err := LowerType(reg, domain, fileName, ownName, schema.Items)
		if err != nil {
			return "", err
		}
		return "[]" + itemType, nil
	default:
		return "any", nil
	}
}

func lowerRef(reg *Registry, fromDomain string, refNode *openapi.Schema) (string, error) {
	item, ok := reg.Lookup(refNode)
	if !ok {
		return "any", nil
	}
	target, err := reg.resolveAliasChain(item)
	if err != nil {
		return "", err
	}
	if !openapi.HasRef(target.Schema) {
		types := openapi.TypeNames(target.Schema)
		if len(types) == 1 && openapi.IsPrimitiveType(types[0]) {
			return primitiveGoType(types[0]), nil
		}
	}
	coords := naming.TypeCoordinatesFor(target)
	return qualifiedGoType(fromDomain, coords), nil
}

func primitiveGoType(t string) string {
	switch t {
	case "boolean":
		return "bool"
	case "number":
		return "float64"
	case "string":
		return "string"
	case "integer":
		return "int64"
	default:
		return "any"
	}
}

// qualifiedGoType package-qualifies a cross-domain type reference; a
// same-domain reference is unqualified since every module within a domain
// shares one Go package (domain directory).
func qualifiedGoType(fromDomain string, coords model.TypeCoordinates) string {
	name := naming.GoTypeName(coords)
	if coords.Domain == "" || coords.Domain == fromDomain {
		return name
	}
	return naming.GoPackageName(coords.Domain) + "." + name
}
