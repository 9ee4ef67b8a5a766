package naming

import "github.com/bmcpi/redfish-modelgen/internal/model"

// GoTypeName renders a TypeCoordinates' unqualified Go identifier: its name,
// with the version suffix appended when present (folded per
// model.Version.Suffix's design note since Go has no nested in-file module
// namespace).
func GoTypeName(coords model.TypeCoordinates) string {
	return coords.Name + coords.Version.Suffix()
}

// GoPackageName renders the Go package an emitted type belongs to: the
// snake_case, keyword-escaped form of its domain, or "model" at the tree
// root when the domain is empty (domain directory).
func GoPackageName(domain string) string {
	if domain == "" {
		return "model"
	}
	return PackageName(domain)
}

// TypeCoordinatesFor computes a SchemaItem's namespace path:
// domain and module come straight off the item (module additionally run
// through SnakeCase for its on-disk file-name form), version comes from
// decomposing schema_name, and the type name is UpperCamelCase of the
// decomposition's tail -- with "-Anony" spliced in first when the item was
// marked duplicated by the Duplicate Checker.
//
// Root is always empty: this target has no crate-root segment distinct from
// the module path itself, so the path begins at domain.
func TypeCoordinatesFor(item *model.SchemaItem) model.TypeCoordinates {
	parsed := ParseSchemaName(item.SchemaName)
	tail := parsed.Tail
	if item.Duplicated {
		tail += "-Anony"
	}
	return model.TypeCoordinates{
		Domain:  item.Domain,
		Module:  SnakeCase(parsed.Module),
		Version: parsed.Version,
		Name:    UpperCamelCase(tail),
	}
}

// BareTypeCoordinatesFor computes the same path ignoring the "duplicated"
// suffix, the collision key the Duplicate Checker groups anonymous items by.
func BareTypeCoordinatesFor(item *model.SchemaItem) model.TypeCoordinates {
	parsed := ParseSchemaName(item.SchemaName)
	return model.TypeCoordinates{
		Domain:  item.Domain,
		Module:  SnakeCase(parsed.Module),
		Version: parsed.Version,
		Name:    UpperCamelCase(parsed.Tail),
	}
}
