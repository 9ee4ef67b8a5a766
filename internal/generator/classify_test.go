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

func classifyOf(t *testing.T, schema *openapi.Schema) generator.Category {
	t.Helper()
	cat, err := generator.Classify(&model.SchemaItem{Schema: schema})
	require.NoError(t, err)
	return cat
}

func TestClassifyPriorityOrder(t *testing.T) {
	assert.Equal(t, generator.CategoryAlias, classifyOf(t, &openapi.Schema{Ref: "#/components/schemas/Foo"}))
	assert.Equal(t, generator.CategoryEnumNewtype, classifyOf(t, &openapi.Schema{OneOf: []*openapi.Schema{{Type: "string"}}}))
	assert.Equal(t, generator.CategoryEnumUnit, classifyOf(t, &openapi.Schema{Enum: []any{"On", "Off"}}))
	assert.Equal(t, generator.CategoryPrimitive, classifyOf(t, &openapi.Schema{Type: "string"}))
	assert.Equal(t, generator.CategoryStruct, classifyOf(t, &openapi.Schema{Type: "object"}))
	assert.Equal(t, generator.CategoryStruct, classifyOf(t, &openapi.Schema{}))
}

func TestClassifyRejectsAllOf(t *testing.T) {
	_, err := generator.Classify(&model.SchemaItem{Schema: &openapi.Schema{AllOf: []*openapi.Schema{{Type: "object"}}}})
	require.Error(t, err)
	assert.ErrorIs(t, err, modelerr.ErrUnsupportedConstruct)
}

func TestClassifyRejectsArrayFormType(t *testing.T) {
	_, err := generator.Classify(&model.SchemaItem{Schema: &openapi.Schema{Types: []string{"string", "integer"}}})
	require.Error(t, err)
	assert.ErrorIs(t, err, modelerr.ErrUnsupportedConstruct)
}

func TestClassifyRejectsNullOnlyType(t *testing.T) {
	_, err := generator.Classify(&model.SchemaItem{Schema: &openapi.Schema{Type: "null"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, modelerr.ErrUnsupportedConstruct)
}
