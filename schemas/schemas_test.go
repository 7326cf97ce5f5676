package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, name := range []string{Jobs, GenerateResponse} {
		t.Run(name, func(t *testing.T) {
			data, err := Files.ReadFile(name)
			require.NoError(t, err)

			var v map[string]any
			require.NoError(t, json.Unmarshal(data, &v))
			assert.Equal(t, name, v["$id"])
		})
	}
}
