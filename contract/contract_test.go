package contract_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finlib/debtcut/contract"
)

func TestNewContinuous_Validation(t *testing.T) {
	_, err := contract.NewContinuous("c", -1, 0.1, 0)
	require.ErrorIs(t, err, contract.ErrInvalidArgument)

	_, err = contract.NewContinuous("c", 1, math.NaN(), 0)
	require.ErrorIs(t, err, contract.ErrInvalidArgument)

	_, err = contract.NewContinuous("c", 1, 0.1, math.Inf(1))
	require.ErrorIs(t, err, contract.ErrInvalidArgument)

	c, err := contract.NewContinuous("c", 1, 0.1, 0)
	require.NoError(t, err)
	require.True(t, c.IsContinuous())
}

func TestNewPeriodic_Validation(t *testing.T) {
	_, err := contract.NewPeriodic("p", 1, 0.1, 0, 0)
	require.ErrorIs(t, err, contract.ErrInvalidArgument)

	_, err = contract.NewPeriodic("p", 1, 0.1, -3, 0)
	require.ErrorIs(t, err, contract.ErrInvalidArgument)

	c, err := contract.NewPeriodic("p", 2, 0.1, 12, 0)
	require.NoError(t, err)
	require.False(t, c.IsContinuous())
}

func TestEvaluate_RejectsInvalidDuration(t *testing.T) {
	c, err := contract.NewContinuous("c", 1, 0.1, 0)
	require.NoError(t, err)

	_, err = c.Evaluate(-1)
	require.ErrorIs(t, err, contract.ErrInvalidArgument)

	_, err = c.Evaluate(math.NaN())
	require.ErrorIs(t, err, contract.ErrInvalidArgument)

	_, err = c.Evaluate(math.Inf(1))
	require.ErrorIs(t, err, contract.ErrInvalidArgument)
}

func TestEvaluate_Continuous(t *testing.T) {
	c, err := contract.NewContinuous("c", 10, 0.15, 3.0)
	require.NoError(t, err)

	v, err := c.Evaluate(2.0)
	require.NoError(t, err)
	require.InDelta(t, 10*math.Exp(0.15*2.0), v, 1e-9)

	gf, err := c.GrowthFactor(2.0)
	require.NoError(t, err)
	require.InDelta(t, math.Exp(0.15*2.0), gf, 1e-9)
}

func TestEvaluate_Periodic(t *testing.T) {
	c, err := contract.NewPeriodic("p", 2.0, 0.1, 3.0, -1.0)
	require.NoError(t, err)

	// duration 1.0 => floor(3*1.0) = 3 ticks
	v, err := c.Evaluate(1.0)
	require.NoError(t, err)
	require.InDelta(t, 2.0*math.Pow(1+0.1/3.0, 3), v, 1e-9)
}

func TestShiftCorrection(t *testing.T) {
	cont, err := contract.NewContinuous("c", 1, 0.1, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, cont.ShiftCorrection(1.234))

	per, err := contract.NewPeriodic("p", 1, 0.1, 3.0, 0)
	require.NoError(t, err)
	// n*d = 3*0.4 = 1.2 -> fractional part 0.2
	require.InDelta(t, 0.2, per.ShiftCorrection(0.4), 1e-9)
}

func TestEvaluate_MonotoneInDuration(t *testing.T) {
	c, err := contract.NewContinuous("c", 5, 0.2, 0)
	require.NoError(t, err)

	prev := 0.0
	for d := 0.0; d <= 10.0; d += 0.5 {
		v, err := c.Evaluate(d)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

type fakeCuts map[string]float64

func (f fakeCuts) CutFor(id string) (float64, bool) {
	v, ok := f[id]
	return v, ok
}

func TestApplyDebtCut(t *testing.T) {
	c, err := contract.NewContinuous("c", 10, 0.1, 0)
	require.NoError(t, err)

	preCut, err := c.Evaluate(2.0)
	require.NoError(t, err)

	cuts := fakeCuts{"c": 1.5}
	cut, err := c.ApplyDebtCut(cuts, 2.0)
	require.NoError(t, err)
	require.InDelta(t, preCut-1.5, cut.Principal(), 1e-9)
	require.Equal(t, 2.0, cut.Timestamp())
	require.Equal(t, c.InterestRate(), cut.InterestRate())
}

func TestApplyDebtCut_MissingEntry(t *testing.T) {
	c, err := contract.NewContinuous("c", 10, 0.1, 0)
	require.NoError(t, err)

	_, err = c.ApplyDebtCut(fakeCuts{}, 1.0)
	require.ErrorIs(t, err, contract.ErrInvalidState)
}

func TestEqual(t *testing.T) {
	a, _ := contract.NewContinuous("a", 1.0, 0.1, 0)
	b, _ := contract.NewContinuous("b", 1.0005, 0.1, 0)
	require.True(t, a.Equal(b, 1e-3))
	require.False(t, a.Equal(b, 1e-6))
}

func TestEpsilon_SilentlyIgnoresInvalid(t *testing.T) {
	orig := contract.Epsilon()
	defer contract.SetEpsilon(orig)

	contract.SetEpsilon(0.5)
	require.Equal(t, 0.5, contract.Epsilon())

	contract.SetEpsilon(-1)
	require.Equal(t, 0.5, contract.Epsilon())

	contract.SetEpsilon(1.5)
	require.Equal(t, 0.5, contract.Epsilon())

	contract.SetEpsilon(math.NaN())
	require.Equal(t, 0.5, contract.Epsilon())
}
