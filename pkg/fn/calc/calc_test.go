package calc_test

import (
	"context"
	"testing"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ib-77/fn3/pkg/fn/calc"
)

func TestAdd_CurriedAddition(t *testing.T) {
	assert.Equal(t, 8, calc.Add(5)(3))

	addFive := calc.Add(5)
	for _, y := range []int{-5, 0, 1, 37} {
		assert.Equal(t, 5+y, addFive(y))
	}
}

func TestFibonacci_KnownValues(t *testing.T) {
	assert.Equal(t, 0, calc.Fibonacci(0))
	assert.Equal(t, 1, calc.Fibonacci(1))
	assert.Equal(t, 55, calc.Fibonacci(10))
	assert.Equal(t, 6765, calc.Fibonacci(20))
}

func TestFibonacci_Recurrence(t *testing.T) {
	for n := 2; n <= 30; n++ {
		assert.Equal(t, calc.Fibonacci(n-1)+calc.Fibonacci(n-2), calc.Fibonacci(n), "n=%d", n)
	}
}

func TestFibonacci_NegativeClampsToZero(t *testing.T) {
	assert.Equal(t, 0, calc.Fibonacci(-1))
	assert.Equal(t, 0, calc.Fibonacci(-10))
}

func TestDivide(t *testing.T) {
	res := calc.Divide(10, 2)
	assert.True(t, res.HasValue())
	assert.Equal(t, 5.0, res.Value())

	for _, x := range []float64{0, 1, -3, 10} {
		assert.True(t, calc.Divide(x, 0).IsNothing(), "x=%v", x)
	}
}

func TestDivideExact(t *testing.T) {
	ten := decimal.MustNew(10, 0)
	four := decimal.MustNew(4, 0)

	res := calc.DivideExact(ten, four)
	assert.True(t, res.HasValue())
	assert.Zero(t, res.Value().Cmp(decimal.MustNew(25, 1))) // 2.5 exactly

	absent := calc.DivideExact(ten, decimal.MustNew(0, 0))
	assert.True(t, absent.IsNothing())
}

func TestCalculate_PresentChain(t *testing.T) {
	ctx := context.Background()

	// divide(10,2)=5, then divide(20,5)=4
	res := calc.Calculate(ctx, 2)
	assert.True(t, res.HasValue())
	assert.Equal(t, 4.0, res.Value())
}

func TestCalculate_ZeroShortCircuits(t *testing.T) {
	ctx := context.Background()

	assert.True(t, calc.Calculate(ctx, 0).IsNothing())
}

func TestDescribe(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, "Result: 4", calc.Describe(ctx, calc.Calculate(ctx, 2)))
	assert.Equal(t, "Error: Division by zero", calc.Describe(ctx, calc.Calculate(ctx, 0)))
}
