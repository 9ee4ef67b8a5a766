package generator

import (
	"sort"

	"github.com/bmcpi/redfish-modelgen/internal/naming"
	"github.com/bmcpi/redfish-modelgen/internal/openapi"
)

// EmitStruct lowers a Struct-category SchemaItem's properties into a
// StructUnit. Fields are emitted in sorted wire-name order for
// deterministic output; a property is wrapped in a pointer whenever it is
// absent from "required" or nullable (a property lowered to "any" is left
// unwrapped, since any already holds nil), so its zero value is distinguishable
// from "absent on the wire" or an explicit JSON null. Optional (and thus
// omitempty) tracks only required-membership, independently of nullability.
func EmitStruct(reg *Registry, domain, fileName, ownName string, schema *openapi.Schema) (*StructUnit, error) {
	required := make(map[string]bool, len(schema.Required))
	for _, r := range schema.Required {
		required[r] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]StructField, 0, len(names))
	for _, propName := range names {
		propSchema := schema.Properties[propName]
		childOwnName := ownName + "-" + propName

		goType, err := LowerType(reg, domain, fileName, childOwnName, propSchema)
		if err != nil {
			return nil, err
		}

		optional := !required[propName]
		nullable := openapi.IsNullable(propSchema)
		if (optional || nullable) && goType != "any" {
			goType = "*" + goType
		}

		fields = append(fields, StructField{
			WireName:  propName,
			FieldName: naming.EscapeReserved(naming.UpperCamelCase(propName)),
			GoType:    goType,
			Optional:  optional,
			ReadOnly:  propSchema != nil && propSchema.ReadOnly,
			WriteOnly: propSchema != nil && propSchema.WriteOnly,
		})
	}

	return &StructUnit{Fields: fields}, nil
}
