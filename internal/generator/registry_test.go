package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmcpi/redfish-modelgen/internal/generator"
	"github.com/bmcpi/redfish-modelgen/internal/model"
	"github.com/bmcpi/redfish-modelgen/internal/openapi"
)

func TestRegistryLookupAndByKey(t *testing.T) {
	refNode := &openapi.Schema{Ref: "#/components/schemas/Status"}
	target := &model.SchemaItem{Domain: "chassis", FileName: "Chassis.v1_0_0.yaml", SchemaName: "Status", Schema: &openapi.Schema{Type: "object"}}

	refTargets := map[*openapi.Schema]model.ReferenceKey{refNode: target.Key()}
	reg := generator.NewRegistry([]*model.SchemaItem{target}, refTargets)

	got, ok := reg.Lookup(refNode)
	require.True(t, ok)
	assert.Same(t, target, got)

	got2, ok := reg.ByKey(target.Key())
	require.True(t, ok)
	assert.Same(t, target, got2)

	_, ok = reg.Lookup(&openapi.Schema{Ref: "#/components/schemas/Nope"})
	assert.False(t, ok)
}
