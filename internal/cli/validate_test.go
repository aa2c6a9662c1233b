package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_Valid(t *testing.T) {
	profile := writeFile(t, t.TempDir(), "oracle.cue", `mode: "oracle"`+"\n"+`tz_offset: "8h"`+"\n")

	out, err := execute(t, "validate", profile, scenariosDir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ All valid (1 profile(s), 6 scenario(s))")
}

func TestValidateCommand_InvalidProfile(t *testing.T) {
	profile := writeFile(t, t.TempDir(), "bad.cue", `mode: "postgres"`+"\n")

	out, err := execute(t, "validate", profile)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ Validation failed")
	assert.Contains(t, out, ErrCodeProfile)
	assert.Contains(t, out, "mode")
}

func TestValidateCommand_InvalidScenario(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", "name: bad\ndescription: d\ncases: []\n")

	out, err := execute(t, "--format", "json", "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string           `json:"status"`
		Data   ValidationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.False(t, resp.Data.Valid)
	require.Len(t, resp.Data.Errors, 1)
	assert.Equal(t, ErrCodeScenario, resp.Data.Errors[0].Code)
	assert.Contains(t, resp.Data.Errors[0].Message, "cases list is required")
}

func TestValidateCommand_MissingArgs(t *testing.T) {
	_, err := execute(t, "validate")
	require.Error(t, err)
}
