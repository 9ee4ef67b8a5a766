package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmcpi/redfish-modelgen/internal/generator"
	"github.com/bmcpi/redfish-modelgen/internal/model"
	"github.com/bmcpi/redfish-modelgen/internal/modelerr"
	"github.com/bmcpi/redfish-modelgen/internal/openapi"
)

func TestEmitEnumUnitSortsAndPicksDefault(t *testing.T) {
	schema := &openapi.Schema{Enum: []any{"Off", "Enabled", "Disabled"}}
	unit := generator.EmitEnumUnit(schema)

	require.Len(t, unit.Variants, 3)
	assert.Equal(t, "Disabled", unit.Variants[0].WireValue)
	assert.Equal(t, "Enabled", unit.Variants[1].WireValue)
	assert.Equal(t, "Off", unit.Variants[2].WireValue)
	assert.Equal(t, unit.Variants[0].Name, unit.Default)
}

func TestEmitEnumNewtypeAnyOfRankFromVersionedRef(t *testing.T) {
	refV1 := &openapi.Schema{Ref: "#/components/schemas/StatusV1"}
	refV2 := &openapi.Schema{Ref: "#/components/schemas/StatusV2"}

	itemV1 := &model.SchemaItem{
		Domain: "chassis", FileName: "f.yaml", SchemaName: "Chassis_v1_0_0_Status",
		Schema: &openapi.Schema{Type: "object"},
	}
	itemV2 := &model.SchemaItem{
		Domain: "chassis", FileName: "f.yaml", SchemaName: "Chassis_v1_1_0_Status",
		Schema: &openapi.Schema{Type: "object"},
	}

	refTargets := map[*openapi.Schema]model.ReferenceKey{
		refV1: itemV1.Key(),
		refV2: itemV2.Key(),
	}
	reg := generator.NewRegistry([]*model.SchemaItem{itemV1, itemV2}, refTargets)

	schema := &openapi.Schema{AnyOf: []*openapi.Schema{refV1, refV2}}
	unit, err := generator.EmitEnumNewtype(reg, "chassis", "f.yaml", "Own", schema, false)
	require.NoError(t, err)
	require.Len(t, unit.Variants, 2)

	// descending rank: v1_1_0 sorts before v1_0_0
	assert.Greater(t, unit.Variants[0].Rank, unit.Variants[1].Rank)
}

func TestEmitEnumNewtypeCapturesDiscriminator(t *testing.T) {
	refA := &openapi.Schema{Ref: "#/components/schemas/A"}
	refB := &openapi.Schema{Ref: "#/components/schemas/B"}
	itemA := &model.SchemaItem{Domain: "chassis", FileName: "f.yaml", SchemaName: "A", Schema: &openapi.Schema{Type: "object"}}
	itemB := &model.SchemaItem{Domain: "chassis", FileName: "f.yaml", SchemaName: "B", Schema: &openapi.Schema{Type: "object"}}
	reg := generator.NewRegistry([]*model.SchemaItem{itemA, itemB},
		map[*openapi.Schema]model.ReferenceKey{refA: itemA.Key(), refB: itemB.Key()})
	schema := &openapi.Schema{
		OneOf: []*openapi.Schema{refA, refB},
		Extra: map[string]any{
			"discriminator": map[string]any{"propertyName": "DataType"},
		},
	}

	unit, err := generator.EmitEnumNewtype(reg, "chassis", "f.yaml", "Own", schema, true)
	require.NoError(t, err)
	assert.Equal(t, "DataType", unit.DiscriminatorKey)
}

func TestEmitEnumNewtypeRejectsPrimitiveAlternativeAsAnyOf(t *testing.T) {
	reg := generator.NewRegistry(nil, nil)
	schema := &openapi.Schema{AnyOf: []*openapi.Schema{{Type: "string"}}}

	_, err := generator.EmitEnumNewtype(reg, "chassis", "f.yaml", "Own", schema, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, modelerr.ErrUnsupportedConstruct)
}
