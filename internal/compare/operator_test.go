package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/objcmp/internal/types"
)

func TestParseOperator(t *testing.T) {
	tests := []struct {
		in   string
		want Operator
	}{
		{"eq", EQ}, {"=", EQ}, {"==", EQ},
		{"le", LE}, {"<=", LE},
		{"lt", LT}, {"<", LT},
		{"ge", GE}, {">=", GE},
		{"gt", GT}, {">", GT},
		{"ne", NE}, {"<>", NE}, {"!=", NE},
		{"cmp", CMP}, {"<=>", CMP}, {"three_way", CMP}, {" CMP ", CMP},
	}
	for _, tt := range tests {
		got, err := ParseOperator(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseOperator("like")
	assert.Error(t, err)
}

func TestOperator_Mirror(t *testing.T) {
	assert.Equal(t, GE, LE.Mirror())
	assert.Equal(t, LE, GE.Mirror())
	assert.Equal(t, GT, LT.Mirror())
	assert.Equal(t, LT, GT.Mirror())
	for _, op := range []Operator{EQ, NE, CMP} {
		assert.Equal(t, op, op.Mirror())
	}
	for _, op := range Operators() {
		assert.Equal(t, op, op.Mirror().Mirror())
	}
}

func TestOperator_Apply(t *testing.T) {
	tests := []struct {
		op                Operator
		less, equal, more Result
	}{
		{EQ, False, True, False},
		{LE, True, True, False},
		{LT, True, False, False},
		{GE, False, True, True},
		{GT, False, False, True},
		{NE, True, False, True},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			assert.Equal(t, tt.less, tt.op.apply(Less))
			assert.Equal(t, tt.equal, tt.op.apply(Equal))
			assert.Equal(t, tt.more, tt.op.apply(Greater))
			assert.Equal(t, Null, tt.op.apply(Null))
			assert.Equal(t, Incomparable, tt.op.apply(Incomparable))
		})
	}
}

func TestResult_Strings(t *testing.T) {
	assert.Equal(t, "lt", Less.String())
	assert.Equal(t, "eq", Equal.String())
	assert.Equal(t, "gt", Greater.String())
	assert.Equal(t, "null", Null.String())
	assert.Equal(t, "incomparable", Incomparable.String())
	assert.Equal(t, "true", True.BoolString())
	assert.Equal(t, "false", False.BoolString())
	assert.Equal(t, "null", Null.BoolString())
	assert.Equal(t, "result(9)", Result(9).String())

	assert.Equal(t, Greater, Less.Negate())
	assert.Equal(t, Null, Null.Negate())
	assert.False(t, Incomparable.IsOrdering())
}

func TestContext(t *testing.T) {
	ctx := DefaultContext(Oracle)
	assert.True(t, ctx.NullSafe)
	assert.Equal(t, NullsLast, ctx.NullPos)
	assert.False(t, ctx.HasTZOffset())
	assert.Equal(t, "mode=oracle collation=invalid tz=invalid nulls=last null_safe=true", ctx.String())

	ctx = NewContext(types.CollationBinary, -3_600_000_000, NullsFirst, false, MySQL)
	assert.True(t, ctx.HasTZOffset())
	assert.Equal(t, NullsFirst, DefaultContext(MySQL).NullPos)
	assert.Contains(t, ctx.String(), "tz=-3600000000us")

	pos, err := ParseNullPos("LAST")
	require.NoError(t, err)
	assert.Equal(t, NullsLast, pos)
	_, err = ParseNullPos("middle")
	assert.Error(t, err)

	mode, err := ParseCompatMode("oracle")
	require.NoError(t, err)
	assert.Equal(t, Oracle, mode)
	_, err = ParseCompatMode("postgres")
	assert.Error(t, err)
}
