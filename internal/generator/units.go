package generator

import (
	"github.com/bmcpi/redfish-modelgen/internal/model"
	"github.com/bmcpi/redfish-modelgen/internal/naming"
)

// Category is the emission category a SchemaItem is classified into.
type Category int

const (
	CategoryAlias Category = iota
	CategoryEnumNewtype
	CategoryEnumUnit
	CategoryStruct
	CategoryPrimitive // no emission: lowered to a built-in at reference sites
)

// StructField is one emitted Go struct field.
type StructField struct {
	WireName  string
	FieldName string
	GoType    string
	Optional  bool
	ReadOnly  bool
	WriteOnly bool
}

// StructUnit is the Go shape of a Struct EmissionUnit.
type StructUnit struct {
	Fields []StructField
}

// EnumVariant is one EnumUnit value.
type EnumVariant struct {
	WireValue string
	Name      string
}

// EnumUnitUnit is the Go shape of an EnumUnit EmissionUnit: a string-kind
// type with typed constants .
type EnumUnitUnit struct {
	Variants []EnumVariant
	Default  string // variant Name
}

// NewtypeVariant is one EnumNewtype alternative.
type NewtypeVariant struct {
	Name   string
	GoType string
	Rank   uint32
}

// EnumNewtypeUnit is the Go shape of an EnumNewtype EmissionUnit: a struct
// holding one exported pointer field per variant, serialized as an untagged
// union tried in descending rank order.
type EnumNewtypeUnit struct {
	Variants []NewtypeVariant
	// DiscriminatorKey is the discriminator hint: purely a doc-comment
	// annotation, never consulted by the generated Marshal/UnmarshalJSON.
	DiscriminatorKey string
}

// AliasUnit is the Go shape of an Alias EmissionUnit: either a type alias to
// another emitted type, or (when the referent chain bottoms out at a
// primitive) a direct primitive type alias.
type AliasUnit struct {
	GoType string
}

// EmissionUnit is one SchemaItem's materialized output.
type EmissionUnit struct {
	Coordinates model.TypeCoordinates
	Category    Category
	Doc         string

	Struct      *StructUnit
	EnumUnit    *EnumUnitUnit
	EnumNewtype *EnumNewtypeUnit
	Alias       *AliasUnit
}

// GoName is this unit's unqualified Go identifier.
func (u *EmissionUnit) GoName() string {
	return naming.GoTypeName(u.Coordinates)
}
