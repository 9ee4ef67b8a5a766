package walker_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmcpi/redfish-modelgen/internal/openapi"
	"github.com/bmcpi/redfish-modelgen/internal/walker"
)

const chassisDoc = `
openapi: "3.0.3"
paths:
  /redfish/v1/Chassis/{ChassisId}:
    get:
      responses:
        "200":
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Chassis'
components:
  schemas:
    Chassis:
      type: object
`

func TestWalkVisitsEveryOperationInSortedOrder(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/root/b/openapi.yaml", []byte(chassisDoc), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/root/a/openapi.yaml", []byte(chassisDoc), 0o644))

	var visited []string
	err := walker.Walk(fs, "/root", func(root, file, pathTemplate, method string, op *openapi.Operation) error {
		visited = append(visited, file+" "+method+" "+pathTemplate)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, visited, 2)
	assert.Equal(t, "/root/a/openapi.yaml get /redfish/v1/Chassis/{ChassisId}", visited[0])
	assert.Equal(t, "/root/b/openapi.yaml get /redfish/v1/Chassis/{ChassisId}", visited[1])
}

func TestWalkIgnoresNonTargetFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/root/Chassis.v1_0_0.yaml", []byte(chassisDoc), 0o644))

	var visited int
	err := walker.Walk(fs, "/root", func(root, file, pathTemplate, method string, op *openapi.Operation) error {
		visited++
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, visited)
}
