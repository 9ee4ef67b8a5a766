package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmcpi/redfish-modelgen/internal/generator"
	"github.com/bmcpi/redfish-modelgen/internal/openapi"
)

func TestEmitStructFieldOrderingAndOptionality(t *testing.T) {
	reg := generator.NewRegistry(nil, nil)
	schema := &openapi.Schema{
		Type:     "object",
		Required: []string{"Id"},
		Properties: map[string]*openapi.Schema{
			"Id":     {Type: "string"},
			"Health": {Type: "string"},
		},
	}

	unit, err := generator.EmitStruct(reg, "chassis", "f.yaml", "Own", schema)
	require.NoError(t, err)
	require.Len(t, unit.Fields, 2)

	assert.Equal(t, "Health", unit.Fields[0].FieldName)
	assert.Equal(t, "*string", unit.Fields[0].GoType)
	assert.True(t, unit.Fields[0].Optional)

	assert.Equal(t, "Id", unit.Fields[1].FieldName)
	assert.Equal(t, "string", unit.Fields[1].GoType)
	assert.False(t, unit.Fields[1].Optional)
}

func TestEmitStructNullableOptionalIsPointer(t *testing.T) {
	reg := generator.NewRegistry(nil, nil)
	schema := &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"Oem": {Type: "string", Extra: map[string]any{"nullable": true}},
		},
	}

	unit, err := generator.EmitStruct(reg, "chassis", "f.yaml", "Own", schema)
	require.NoError(t, err)
	require.Len(t, unit.Fields, 1)
	assert.Equal(t, "*string", unit.Fields[0].GoType)
	assert.True(t, unit.Fields[0].Optional)
}

func TestEmitStructRequiredNullableIsPointerButNotOptional(t *testing.T) {
	reg := generator.NewRegistry(nil, nil)
	schema := &openapi.Schema{
		Type:     "object",
		Required: []string{"Oem"},
		Properties: map[string]*openapi.Schema{
			"Oem": {Type: "string", Extra: map[string]any{"nullable": true}},
		},
	}

	unit, err := generator.EmitStruct(reg, "chassis", "f.yaml", "Own", schema)
	require.NoError(t, err)
	require.Len(t, unit.Fields, 1)
	assert.Equal(t, "*string", unit.Fields[0].GoType, "required+nullable must still pointer-wrap to distinguish a JSON null")
	assert.False(t, unit.Fields[0].Optional, "Optional tracks required-membership only, independent of nullability")
}

func TestEmitStructReadOnlyWriteOnlyFlags(t *testing.T) {
	reg := generator.NewRegistry(nil, nil)
	schema := &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"Id":       {Type: "string", ReadOnly: true},
			"Password": {Type: "string", WriteOnly: true},
		},
		Required: []string{"Id", "Password"},
	}

	unit, err := generator.EmitStruct(reg, "chassis", "f.yaml", "Own", schema)
	require.NoError(t, err)
	require.Len(t, unit.Fields, 2)

	byName := map[string]bool{}
	for _, f := range unit.Fields {
		byName[f.FieldName] = true
		if f.FieldName == "Id" {
			assert.True(t, f.ReadOnly)
			assert.False(t, f.WriteOnly)
		}
		if f.FieldName == "Password" {
			assert.True(t, f.WriteOnly)
			assert.False(t, f.ReadOnly)
		}
	}
	assert.True(t, byName["Id"])
	assert.True(t, byName["Password"])
}
