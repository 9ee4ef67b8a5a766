package writer_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmcpi/redfish-modelgen/internal/generator"
	"github.com/bmcpi/redfish-modelgen/internal/model"
	"github.com/bmcpi/redfish-modelgen/internal/writer"
)

func TestWriteCreatesDomainFilesWithTrailingNewline(t *testing.T) {
	unit := &generator.EmissionUnit{
		Coordinates: model.TypeCoordinates{Domain: "chassis", Module: "chassis", Name: "Chassis"},
		Category:    generator.CategoryStruct,
		Struct:      &generator.StructUnit{},
	}
	tree := generator.BuildTree([]*generator.EmissionUnit{unit}, "")

	fs := afero.NewMemMapFs()
	require.NoError(t, writer.Write(fs, "/out", tree))

	content, err := afero.ReadFile(fs, "/out/chassis/chassis.go")
	require.NoError(t, err)
	assert.Contains(t, string(content), "type Chassis struct {")
	assert.True(t, len(content) > 0 && content[len(content)-1] == '\n')
}

func TestWriteEmitsDomainAndRootDocGo(t *testing.T) {
	unit := &generator.EmissionUnit{
		Coordinates: model.TypeCoordinates{Domain: "chassis", Module: "chassis", Name: "Chassis"},
		Category:    generator.CategoryStruct,
		Struct:      &generator.StructUnit{},
	}
	tree := generator.BuildTree([]*generator.EmissionUnit{unit}, "")

	fs := afero.NewMemMapFs()
	require.NoError(t, writer.Write(fs, "/out", tree))

	exists, err := afero.Exists(fs, "/out/doc.go")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = afero.Exists(fs, "/out/chassis/doc.go")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestWriteCreatesMissingDirectories(t *testing.T) {
	unit := &generator.EmissionUnit{
		Coordinates: model.TypeCoordinates{Domain: "power", Module: "power_supply", Name: "PowerSupply"},
		Category:    generator.CategoryStruct,
		Struct:      &generator.StructUnit{},
	}
	tree := generator.BuildTree([]*generator.EmissionUnit{unit}, "")

	fs := afero.NewMemMapFs()
	require.NoError(t, writer.Write(fs, "/deep/nested/out", tree))

	exists, err := afero.Exists(fs, "/deep/nested/out/power/power_supply.go")
	require.NoError(t, err)
	assert.True(t, exists)
}
