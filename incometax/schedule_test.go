package incometax_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/agentsociety-incometax/incometax"
)

func testBrackets() []incometax.Bracket {
	return []incometax.Bracket{
		{Name: "free", Lower: 0, Upper: 1000, Formula: incometax.Allowance{}},
		{Name: "ramp", Lower: 1000, Upper: 2000, Formula: incometax.Progression{Start: 1000, Divisor: 1000, Quadratic: 50, Linear: 100}},
		{Name: "flat", Lower: 2000, Upper: math.Inf(1), Formula: incometax.Proportional{Rate: 0.2, Deduction: 250}},
	}
}

func TestFormulas(t *testing.T) {
	assert.Equal(t, 0.0, incometax.Allowance{}.Apply(1e9))
	p := incometax.Progression{Start: 1000, Divisor: 1000, Quadratic: 50, Linear: 100, Offset: 7}
	assert.Equal(t, 7.0, p.Apply(1000))
	assert.InDelta(t, 157.0, p.Apply(2000), 1e-9)
	assert.InDelta(t, 150.0, incometax.Proportional{Rate: 0.2, Deduction: 250}.Apply(2000), 1e-9)
}

func TestBracketContains(t *testing.T) {
	b := incometax.Bracket{Lower: 10, Upper: 20}
	assert.True(t, b.Contains(10))
	assert.True(t, b.Contains(19.999))
	assert.False(t, b.Contains(20))
	assert.False(t, b.Contains(9.999))
}

func TestScheduleValidate(t *testing.T) {
	_, err := incometax.NewSchedule(testBrackets()...)
	require.NoError(t, err)

	_, err = incometax.NewSchedule()
	assert.Error(t, err)

	gap := testBrackets()
	gap[1].Lower = 1001
	_, err = incometax.NewSchedule(gap...)
	assert.ErrorContains(t, err, "ends at 1000")

	overlap := testBrackets()
	overlap[0].Upper = 1500
	_, err = incometax.NewSchedule(overlap...)
	assert.Error(t, err)

	start := testBrackets()
	start[0].Lower = 1
	_, err = incometax.NewSchedule(start...)
	assert.ErrorContains(t, err, "want 0")

	bounded := testBrackets()
	bounded[2].Upper = 1e6
	_, err = incometax.NewSchedule(bounded...)
	assert.ErrorContains(t, err, "bounded above")

	empty := testBrackets()
	empty[1].Upper = 1000
	empty[2].Lower = 1000
	_, err = incometax.NewSchedule(empty...)
	assert.ErrorContains(t, err, "is empty")

	noFormula := testBrackets()
	noFormula[2].Formula = nil
	_, err = incometax.NewSchedule(noFormula...)
	assert.ErrorContains(t, err, "no formula")

	assert.Panics(t, func() { incometax.MustSchedule(gap...) })
}

func TestScheduleFind(t *testing.T) {
	s := incometax.MustSchedule(testBrackets()...)
	for income, name := range map[float64]string{
		0:    "free",
		999:  "free",
		1000: "ramp",
		1999: "ramp",
		2000: "flat",
		1e12: "flat",
	} {
		b, ok := s.Find(income)
		require.True(t, ok)
		assert.Equal(t, name, b.Name, "income %v", income)
	}
	_, ok := s.Find(-1)
	assert.False(t, ok)
}

func TestScheduleEvaluate(t *testing.T) {
	s := incometax.MustSchedule(testBrackets()...)

	tax, err := s.Evaluate(1500)
	require.NoError(t, err)
	assert.Equal(t, 62.0, tax) // (50*0.5+100)*0.5 = 62.5

	// 收入先向下取整
	tax, err = s.Evaluate(1500.99)
	require.NoError(t, err)
	assert.Equal(t, 62.0, tax)

	tax, err = s.Evaluate(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, tax)

	_, err = s.Evaluate(-0.5)
	var negative *incometax.NegativeIncomeError
	assert.True(t, errors.As(err, &negative))

	_, err = s.Evaluate(math.Inf(-1))
	var notFinite *incometax.IncomeNotFiniteError
	assert.True(t, errors.As(err, &notFinite))
}
