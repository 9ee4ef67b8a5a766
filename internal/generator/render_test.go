package generator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmcpi/redfish-modelgen/internal/generator"
	"github.com/bmcpi/redfish-modelgen/internal/model"
)

func TestRenderStructEmitsFieldsAndTags(t *testing.T) {
	unit := structUnit("chassis", "chassis", "Chassis", model.Version{},
		generator.StructField{WireName: "Id", FieldName: "Id", GoType: "string"},
		generator.StructField{WireName: "Oem", FieldName: "Oem", GoType: "*string", Optional: true, ReadOnly: true},
	)
	tree := generator.BuildTree([]*generator.EmissionUnit{unit}, "")
	out := generator.Render(tree.Files[0])

	assert.True(t, strings.HasPrefix(out, "package chassis\n"))
	assert.Contains(t, out, "type Chassis struct {")
	assert.Contains(t, out, "Id string `json:\"Id\"`")
	assert.Contains(t, out, "// read-only")
	assert.Contains(t, out, "Oem *string `json:\"Oem,omitempty\"`")
}

func TestRenderEnumUnitEmitsConstants(t *testing.T) {
	unit := &generator.EmissionUnit{
		Coordinates: model.TypeCoordinates{Domain: "chassis", Module: "chassis", Name: "IntrusionSensor"},
		Category:    generator.CategoryEnumUnit,
		EnumUnit: &generator.EnumUnitUnit{
			Variants: []generator.EnumVariant{{WireValue: "Normal", Name: "Normal"}, {WireValue: "HardwareIntrusion", Name: "HardwareIntrusion"}},
			Default:  "Normal",
		},
	}
	tree := generator.BuildTree([]*generator.EmissionUnit{unit}, "")
	out := generator.Render(tree.Files[0])

	assert.Contains(t, out, "type IntrusionSensor string")
	assert.Contains(t, out, `IntrusionSensorNormal IntrusionSensor = "Normal"`)
	assert.NotContains(t, out, "import")
}

func TestRenderEnumNewtypeEmitsMarshalUnmarshal(t *testing.T) {
	unit := &generator.EmissionUnit{
		Coordinates: model.TypeCoordinates{Domain: "chassis", Module: "chassis", Name: "Status"},
		Category:    generator.CategoryEnumNewtype,
		EnumNewtype: &generator.EnumNewtypeUnit{
			Variants: []generator.NewtypeVariant{{Name: "A", GoType: "string"}, {Name: "B", GoType: "int64"}},
		},
	}
	tree := generator.BuildTree([]*generator.EmissionUnit{unit}, "")
	require.Len(t, tree.Files, 1)
	out := generator.Render(tree.Files[0])

	assert.Contains(t, out, `"encoding/json"`)
	assert.Contains(t, out, `"fmt"`)
	assert.Contains(t, out, "func (v Status) MarshalJSON() ([]byte, error) {")
	assert.Contains(t, out, "func (v *Status) UnmarshalJSON(data []byte) error {")
	assert.Contains(t, out, "case v.A != nil:")
	assert.Contains(t, out, `fmt.Errorf("no variant of Status matched")`)
}

func TestRenderAliasEmitsTypeAlias(t *testing.T) {
	unit := &generator.EmissionUnit{
		Coordinates: model.TypeCoordinates{Domain: "chassis", Module: "chassis", Name: "ChassisId"},
		Category:    generator.CategoryAlias,
		Alias:       &generator.AliasUnit{GoType: "string"},
	}
	tree := generator.BuildTree([]*generator.EmissionUnit{unit}, "")
	out := generator.Render(tree.Files[0])

	assert.Contains(t, out, "type ChassisId = string")
	assert.NotContains(t, out, "import")
}

func TestRenderVersionGroupsGetBannerComments(t *testing.T) {
	v1, _ := model.ParseVersion("v1_0_0")
	unit := structUnit("chassis", "chassis", "Chassis", v1, generator.StructField{WireName: "Id", FieldName: "Id", GoType: "string"})
	tree := generator.BuildTree([]*generator.EmissionUnit{unit}, "")
	out := generator.Render(tree.Files[0])

	assert.Contains(t, out, "// v1_0_0")
	assert.Contains(t, out, "type ChassisV1_0_0 struct {")
}

func TestRenderEmitsCrossDomainImport(t *testing.T) {
	units := []*generator.EmissionUnit{
		structUnit("power", "power", "PowerSupply", model.Version{},
			generator.StructField{WireName: "status", FieldName: "Status", GoType: "chassis.Status"},
		),
		structUnit("chassis", "chassis", "Status", model.Version{}),
	}
	tree := generator.BuildTree(units, "github.com/acme/widgets/internal/model")

	var powerFile *generator.OutputFile
	for _, f := range tree.Files {
		if f.Domain == "power" {
			powerFile = f
		}
	}
	require.NotNil(t, powerFile)
	out := generator.Render(powerFile)
	assert.Contains(t, out, `"github.com/acme/widgets/internal/model/chassis"`)
}
