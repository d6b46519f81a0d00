package builtin

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanelang/vane/value"
)

func TestMathModuleUnaryAndBinary(t *testing.T) {
	r := newTestRegistry()
	m := loadMathModule(r)

	sqrt, err := callFn(m, "sqrt", numLit(9))
	require.NoError(t, err)
	assert.Equal(t, float64(3), sqrt.AsNumber())

	pow, err := callFn(m, "pow", numLit(2), numLit(10))
	require.NoError(t, err)
	assert.Equal(t, float64(1024), pow.AsNumber())
}

func TestMathModuleConstants(t *testing.T) {
	r := newTestRegistry()
	m := loadMathModule(r)
	obj := m.AsObject()

	pi, ok := obj.Get("pi")
	require.True(t, ok)
	assert.InDelta(t, math.Pi, pi.AsNumber(), 1e-12)

	e, ok := obj.Get("e")
	require.True(t, ok)
	assert.InDelta(t, math.E, e.AsNumber(), 1e-12)
}

func TestMathModuleIsNanIsInf(t *testing.T) {
	r := newTestRegistry()
	m := loadMathModule(r)

	isNan, err := callFn(m, "is_nan", numLit(math.NaN()))
	require.NoError(t, err)
	assert.True(t, isNan.AsBool())

	isInf, err := callFn(m, "is_inf", numLit(math.Inf(1)))
	require.NoError(t, err)
	assert.True(t, isInf.AsBool())

	isInf, err = callFn(m, "is_inf", numLit(1))
	require.NoError(t, err)
	assert.False(t, isInf.AsBool())
}

func TestMathModuleWrongArityIsArityMismatch(t *testing.T) {
	r := newTestRegistry()
	m := loadMathModule(r)

	_, err := callFn(m, "sqrt")
	require.Error(t, err)
	kind, ok := value.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, value.ErrArityMismatch, kind)
}
