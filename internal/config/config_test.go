package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/objcmp/internal/compare"
	"github.com/roach88/objcmp/internal/types"
)

func TestParseProfile_Defaults(t *testing.T) {
	p, err := ParseProfile([]byte(``), "empty.cue")
	require.NoError(t, err)
	assert.Equal(t, Default(compare.MySQL), p)
	assert.Equal(t, compare.DefaultContext(compare.MySQL), p.Context())
}

func TestParseProfile_OracleDefaultsToNullsLast(t *testing.T) {
	p, err := ParseProfile([]byte(`mode: "oracle"`), "oracle.cue")
	require.NoError(t, err)
	assert.Equal(t, compare.Oracle, p.Mode)
	assert.Equal(t, compare.NullsLast, p.NullPos)
}

func TestParseProfile_AllFields(t *testing.T) {
	src := `
mode:       "oracle"
collation:  "utf8mb4_bin"
null_order: "first"
null_safe:  false
tz_offset:  "-5h30m"
`
	p, err := ParseProfile([]byte(src), "full.cue")
	require.NoError(t, err)
	assert.Equal(t, Profile{
		Mode:      compare.Oracle,
		Collation: types.CollationUTF8MB4Bin,
		NullPos:   compare.NullsFirst,
		NullSafe:  false,
		TZOffset:  -(5*3600 + 30*60) * 1_000_000,
	}, p)

	ctx := p.Context()
	assert.True(t, ctx.HasTZOffset())
	assert.False(t, ctx.NullSafe)
}

func TestParseProfile_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		field string
	}{
		{"unknown mode", `mode: "postgres"`, "mode"},
		{"unknown collation", `collation: "latin1_swedish_ci"`, "collation"},
		{"bad null order", `null_order: "middle"`, "null_order"},
		{"bad offset", `tz_offset: "eight hours"`, "tz_offset"},
		{"unknown field", `nulls: "last"`, "nulls"},
		{"wrong type", `null_safe: "yes"`, "null_safe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProfile([]byte(tt.src), "bad.cue")
			require.Error(t, err)
			var pe *ProfileError
			require.ErrorAs(t, err, &pe)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestParseProfile_SyntaxError(t *testing.T) {
	_, err := ParseProfile([]byte(`mode: `), "broken.cue")
	require.Error(t, err)
	var pe *ProfileError
	require.ErrorAs(t, err, &pe)
	assert.True(t, pe.Pos.IsValid())
	assert.Contains(t, err.Error(), "broken.cue")
}

func TestLoadProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.cue")
	require.NoError(t, os.WriteFile(path, []byte(`tz_offset: "8h"`), 0o644))

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(8*3600*1_000_000), p.TZOffset)

	_, err = LoadProfile(filepath.Join(dir, "missing.cue"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read profile")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromSpec(t *testing.T) {
	no := false
	p, err := FromSpec(Spec{Mode: "oracle", NullSafe: &no})
	require.NoError(t, err)
	assert.Equal(t, compare.Oracle, p.Mode)
	assert.Equal(t, compare.NullsLast, p.NullPos)
	assert.False(t, p.NullSafe)

	p, err = FromSpec(Spec{})
	require.NoError(t, err)
	assert.Equal(t, Default(compare.MySQL), p)

	_, err = FromSpec(Spec{Collation: "klingon_ci"})
	require.Error(t, err)
}
