package generator

import (
	"fmt"
	"sort"

	"github.com/bmcpi/redfish-modelgen/internal/model"
	"github.com/bmcpi/redfish-modelgen/internal/modelerr"
	"github.com/bmcpi/redfish-modelgen/internal/naming"
	"github.com/bmcpi/redfish-modelgen/internal/openapi"
)

// EmitEnumUnit lowers an Enum-category SchemaItem's enum values into an
// EnumUnitUnit: one variant per value, sorted, the first
// (sorted) variant is the default.
func EmitEnumUnit(schema *openapi.Schema) *EnumUnitUnit {
	variants := make([]EnumVariant, 0, len(schema.Enum))
	for _, v := range schema.Enum {
		wire := fmt.Sprintf("%v", v)
		variants = append(variants, EnumVariant{
			WireValue: wire,
			Name:      naming.EscapeReserved(naming.UpperCamelCase(wire)),
		})
	}
	sort.Slice(variants, func(i, j int) bool { return variants[i].WireValue < variants[j].WireValue })

	unit := &EnumUnitUnit{Variants: variants}
	if len(variants) > 0 {
		unit.Default = variants[0].Name
	}
	return unit
}

// EmitEnumNewtype lowers an anyOf/oneOf SchemaItem into an EnumNewtypeUnit
//. ownName is this item's own composite name, used to locate
// any anonymously-promoted inline alternatives under "{ownName}-{index}".
func EmitEnumNewtype(reg *Registry, domain, fileName, ownName string, schema *openapi.Schema, isOneOf bool) (*EnumNewtypeUnit, error) {
	alternatives := schema.AnyOf
	if isOneOf {
		alternatives = schema.OneOf
	}

	variants := make([]NewtypeVariant, 0, len(alternatives))
	for i, alt := range alternatives {
		childOwnName := fmt.Sprintf("%s-%d", ownName, i)

		var rank uint32
		var label string

		switch {
		case openapi.HasRef(alt):
			item, ok := reg.Lookup(alt)
			if !ok {
				continue
			}
			parsed := naming.ParseSchemaName(item.SchemaName)
			if parsed.Version.Present() {
				rank = parsed.Version.Rank()
			}
			label = item.SchemaName
		case openapi.IsAnonymous(alt):
			key := model.NewReferenceKey(domain, fileName, childOwnName)
			item, ok := reg.ByKey(key)
			if !ok {
				return nil, modelerr.NewMissingSchema(key.String())
			}
			if isOneOf {
				rank = uint32(i)
			}
			label = item.SchemaName
		default:
			return nil, modelerr.NewUnsupportedConstruct(domain+"/"+fileName+"#"+childOwnName,
				"oneOf/anyOf alternative is neither a $ref nor an anonymous object/enum")
		}

		goType, err := LowerType(reg, domain, fileName, childOwnName, alt)
		if err != nil {
			return nil, err
		}

		name := naming.UpperCamelCase(label)
		if rank > 0 {
			name = fmt.Sprintf("V%06d", rank)
		}

		variants = append(variants, NewtypeVariant{
			Name:   name,
			GoType: goType,
			Rank:   rank,
		})
	}

	sort.Slice(variants, func(i, j int) bool { return variants[i].Rank > variants[j].Rank })

	unit := &EnumNewtypeUnit{Variants: variants}
	if disc := openapi.SchemaDiscriminator(schema); disc != nil {
		unit.DiscriminatorKey = disc.PropertyName
	}
	return unit, nil
}
