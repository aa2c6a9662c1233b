package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/objcmp/internal/compare"
)

func TestTableCommand(t *testing.T) {
	out, err := execute(t, "table")
	require.NoError(t, err)
	assert.Equal(t, compare.SupportMatrix(false), out)
	assert.True(t, strings.HasPrefix(out, "operator table: "))

	out, err = execute(t, "table", "--nullsafe")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "null-safe table: "))
}

func TestTableCommand_JSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "table")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   []struct {
			Left  string   `json:"left"`
			Right []string `json:"right"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.NotEmpty(t, resp.Data)
	assert.Equal(t, "null", resp.Data[0].Left)
	assert.Contains(t, resp.Data[0].Right, "int")
}

func TestTableCommand_RejectsArgs(t *testing.T) {
	_, err := execute(t, "table", "extra")
	require.Error(t, err)
}
