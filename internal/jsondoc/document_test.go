package jsondoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compareRaw(t *testing.T, a, b string) int {
	t.Helper()
	da, db := Open([]byte(a)), Open([]byte(b))
	require.NoError(t, da.ResetIter())
	require.NoError(t, db.ResetIter())
	r, err := da.Compare(db)
	require.NoError(t, err)
	return r
}

func TestCompare_KindPrecedence(t *testing.T) {
	ordered := []string{`null`, `42`, `"str"`, `{"a":1}`, `[1]`, `false`}
	for i := range ordered {
		for j := range ordered {
			want := cmpInt(i, j)
			assert.Equal(t, want, compareRaw(t, ordered[i], ordered[j]), "%s vs %s", ordered[i], ordered[j])
		}
	}
}

func TestCompare_Scalars(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"int vs fraction equal", `1`, `1.0`, 0},
		{"exponent", `1e2`, `100`, 0},
		{"negative", `-1`, `0`, -1},
		{"big numbers exact", `18446744073709551616`, `18446744073709551615`, 1},
		{"strings bytewise", `"a"`, `"b"`, -1},
		{"strings NFC", `"e\u0301"`, `"\u00e9"`, 0},
		{"false before true", `false`, `true`, -1},
		{"true equal", `true`, `true`, 0},
		{"null equal", `null`, `null`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compareRaw(t, tt.a, tt.b))
			assert.Equal(t, -tt.want, compareRaw(t, tt.b, tt.a))
		})
	}
}

func TestCompare_Containers(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"array elementwise", `[1,2,3]`, `[1,3]`, -1},
		{"array prefix shorter", `[1,2]`, `[1,2,3]`, -1},
		{"array equal", `[1,"a",null]`, `[1.0,"a",null]`, 0},
		{"object fewer members", `{"z":1}`, `{"a":1,"b":2}`, -1},
		{"object key order irrelevant", `{"a":1,"b":2}`, `{"b":2,"a":1}`, 0},
		{"object keys compared", `{"a":1}`, `{"b":1}`, -1},
		{"object values compared", `{"a":1}`, `{"a":2}`, -1},
		{"nested", `{"a":[1,{"b":true}]}`, `{"a":[1,{"b":false}]}`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compareRaw(t, tt.a, tt.b))
			assert.Equal(t, -tt.want, compareRaw(t, tt.b, tt.a))
		})
	}
}

func TestCompare_RequiresReset(t *testing.T) {
	a, b := Open([]byte(`1`)), Open([]byte(`1`))
	_, err := a.Compare(b)
	assert.ErrorIs(t, err, ErrNotReset)

	require.NoError(t, a.ResetIter())
	_, err = a.Compare(b)
	assert.ErrorIs(t, err, ErrNotReset)
}

func TestResetIter_Malformed(t *testing.T) {
	for _, raw := range []string{``, `{`, `[1,]`, `1 2`, `nul`} {
		t.Run(raw, func(t *testing.T) {
			assert.Error(t, Open([]byte(raw)).ResetIter())
		})
	}
}

func TestResetIter_Idempotent(t *testing.T) {
	d := Open([]byte(`{"a":[1,2]}`))
	require.NoError(t, d.ResetIter())
	first := d.Root()
	require.NoError(t, d.ResetIter())
	assert.Equal(t, first, d.Root())
}

func TestFromNode(t *testing.T) {
	d := FromNode(Object{"k": Array{Int(1), String("v")}})
	other := Open([]byte(`{"k":[1,"v"]}`))
	require.NoError(t, other.ResetIter())

	r, err := d.Compare(other)
	require.NoError(t, err)
	assert.Equal(t, 0, r)
}

func TestSortedKeys_UTF16Order(t *testing.T) {
	// U+FF61 sorts before U+1F600 in UTF-8 but after it in UTF-16.
	obj := Object{"\U0001F600": Null{}, "｡": Null{}, "a": Null{}}
	assert.Equal(t, []string{"a", "\U0001F600", "｡"}, obj.SortedKeys())
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"sorted keys", `{"b":1,"a":2}`, `{"a":2,"b":1}`},
		{"reduced numbers", `[1.50, 1e2, -0.0]`, `[1.5,1E+2,0]`},
		{"no html escaping", `"<a&b>"`, `"<a&b>"`},
		{"nfc", `"e\u0301"`, "\"\u00e9\""},
		{"literals", `[true,false,null]`, `[true,false,null]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Open([]byte(tt.raw)).Canonical()
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestCanonical_EqualDocumentsShareForm(t *testing.T) {
	a, err := Open([]byte(`{"x":[1.0,"y"],"n":null}`)).Canonical()
	require.NoError(t, err)
	b, err := Open([]byte(`{"n":null,"x":[1,"y"]}`)).Canonical()
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}
