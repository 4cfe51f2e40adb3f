package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/idmagic/comnum/foundation/core/error"
	"github.com/idmagic/comnum/foundation/utils/mathx"
)

func newRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(Options{})
	require.NoError(t, err)
	return r
}

func TestBuiltinOperations(t *testing.T) {
	r := newRegistry(t)
	a := mathx.New(1, 2)
	b := mathx.New(3, -4)

	tests := []struct {
		op   string
		in   Input
		want string
	}{
		{"add", Input{A: a, B: b}, "4 - 2*i"},
		{"sub", Input{A: a, B: b}, "-2 + 6*i"},
		{"mul", Input{A: a, B: b}, "11 + 2*i"},
		{"div", Input{A: a, B: b}, "-0.2 + 0.4*i"},
		{"eq", Input{A: a, B: a}, "true"},
		{"eq", Input{A: a, B: b}, "false"},
		{"round", Input{A: mathx.New(1.234, 5.678), Digits: 2}, "1.23 + 5.68*i"},
		{"mod", Input{A: b}, "5"},
		{"arg", Input{A: mathx.New(1, 0)}, "0"},
		{"conj", Input{A: a}, "1 - 2*i"},
		{"recip", Input{A: b}, "0.12 + 0.16*i"},
		{"sqrt", Input{A: mathx.New(-4, 0)}, "2*i"},
		{"log", Input{A: mathx.New(1, 0)}, "0"},
		{"neg", Input{A: a}, "-1 - 2*i"},
		{"pow", Input{A: a, N: "2"}, "-3 + 4*i"},
		{"powmul", Input{A: a, N: "2"}, "-3 + 4*i"},
		{"pow", Input{A: a, N: "0"}, "1"},
		{"powmul", Input{A: a, N: " -1 "}, "0.2 - 0.4*i"},
	}

	for _, tt := range tests {
		t.Run(tt.op+"/"+tt.want, func(t *testing.T) {
			got, err := r.Eval(tt.op, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestOperationErrors(t *testing.T) {
	r := newRegistry(t)
	a := mathx.New(1, 2)

	tests := []struct {
		name   string
		op     string
		in     Input
		target error
	}{
		{"divide by zero", "div", Input{A: a}, mathx.ErrDivisionByZero},
		{"reciprocal of zero", "recip", Input{}, mathx.ErrDivisionByZero},
		{"log of zero", "log", Input{}, mathx.ErrDomain},
		{"pow float exponent", "pow", Input{A: a, N: "1.5"}, mathx.ErrInvalidExponent},
		{"pow integral float exponent", "pow", Input{A: a, N: "4.0"}, mathx.ErrInvalidExponent},
		{"powmul float exponent", "powmul", Input{A: a, N: "1e3"}, mathx.ErrInvalidExponent},
		{"pow zero base negative exponent", "pow", Input{N: "-2"}, mathx.ErrDivisionByZero},
		{"pow overflow", "pow", Input{A: a, N: "1000"}, mathx.ErrOverflow},
		{"powmul overflow", "powmul", Input{A: a, N: "1000"}, mathx.ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Eval(tt.op, tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}

func TestEvalInvalidInput(t *testing.T) {
	r := newRegistry(t)

	for _, n := range []string{"", "x", "2+i"} {
		_, err := r.Eval("pow", Input{A: mathx.New(1, 1), N: n})
		require.Error(t, err, "exponent %q", n)
		assert.Equal(t, mdwerror.CodeInvalidInput, mdwerror.GetCode(err))
	}

	_, err := r.Eval("cbrt", Input{})
	require.Error(t, err)
	assert.Equal(t, mdwerror.CodeInvalidInput, mdwerror.GetCode(err))
	assert.Contains(t, err.Error(), `unknown operation "cbrt"`)
}

func TestLookupAliases(t *testing.T) {
	r := newRegistry(t)

	op, err := r.Lookup("PLUS")
	require.NoError(t, err)
	assert.Equal(t, "add", op.Name)

	op, err = r.Lookup(" pow_mul ")
	require.NoError(t, err)
	assert.Equal(t, "powmul", op.Name)
	assert.True(t, op.NeedsExponent)

	assert.True(t, r.Has("ln"))
	assert.False(t, r.Has("tan"))
}

func TestNames(t *testing.T) {
	r := newRegistry(t)

	names := r.Names()
	require.Len(t, names, 15)
	assert.Equal(t, "add", names[0])
	assert.Equal(t, "powmul", names[len(names)-1])

	ops := r.Operations()
	require.Len(t, ops, len(names))
	for i, op := range ops {
		assert.Equal(t, names[i], op.Name)
		assert.NotEmpty(t, op.Summary)
	}

	names[0] = "changed"
	assert.Equal(t, "add", r.Names()[0])
}

func TestRegister(t *testing.T) {
	r, err := NewRegistry(Options{SkipBuiltins: true})
	require.NoError(t, err)
	assert.Empty(t, r.Names())

	double := &Operation{
		Name:    "Double",
		Aliases: []string{"twice"},
		Summary: "a + a",
		Eval: func(in Input) (Result, error) {
			return ComplexResult(in.A.Add(in.A)), nil
		},
	}
	require.NoError(t, r.Register(double))

	got, err := r.Eval("twice", Input{A: mathx.New(1, -1)})
	require.NoError(t, err)
	assert.Equal(t, "2 - 2*i", got.String())

	assert.Error(t, r.Register(nil))
	assert.Error(t, r.Register(&Operation{Name: " ", Eval: double.Eval}))
	assert.Error(t, r.Register(&Operation{Name: "half"}))
	assert.Error(t, r.Register(&Operation{Name: "double", Eval: double.Eval}))
	assert.Error(t, r.Register(&Operation{Name: "triple", Aliases: []string{"twice"}, Eval: double.Eval}))
	assert.False(t, r.Has("triple"))
}

func TestParseExponent(t *testing.T) {
	n, err := ParseExponent("-3")
	require.NoError(t, err)
	assert.Equal(t, Exponent{Int: -3}, n)

	n, err = ParseExponent("4.0")
	require.NoError(t, err)
	assert.True(t, n.IsFloat)
	assert.Equal(t, 4.0, n.Float)

	_, err = ParseExponent("four")
	assert.Error(t, err)
}

func TestResultFormat(t *testing.T) {
	tests := []struct {
		name      string
		result    Result
		precision int
		want      string
	}{
		{"complex shortest", ComplexResult(mathx.New(1.0/3, 2)), -1, "0.3333333333333333 + 2*i"},
		{"complex rounded", ComplexResult(mathx.New(1.0/3, 2)), 3, "0.333 + 2*i"},
		{"scalar rounded", ScalarResult(math.Pi), 2, "3.14"},
		{"negative zero", ScalarResult(-0.0001), 2, "0"},
		{"bool", BoolResult(true), 4, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Format(tt.precision))
		})
	}
}
