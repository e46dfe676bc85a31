package tests

import (
	"context"
	"fmt"
	"testing"

	"github.com/ib-77/fn3/pkg/fn/calc"

	"github.com/stretchr/testify/assert"
)

// TestDemoOutput rebuilds the fpdemo pipeline and checks the exact lines
// the demo prints, in order.
func TestDemoOutput(t *testing.T) {
	ctx := context.Background()

	lines := demoLines(ctx)

	assert.Equal(t, []string{
		"8",
		"55",
		"Result: 4",
		"Error: Division by zero",
	}, lines)
}

func demoLines(ctx context.Context) []string {
	addFive := calc.Add(5)

	return []string{
		fmt.Sprintf("%d", addFive(3)),
		fmt.Sprintf("%d", calc.Fibonacci(10)),
		calc.Describe(ctx, calc.Calculate(ctx, 2)),
		calc.Describe(ctx, calc.Calculate(ctx, 0)),
	}
}

func TestCalculate_AcrossDivisors(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		x    float64
		want string
	}{
		{2, "Result: 4"},
		{1, "Result: 2"},
		{5, "Result: 10"},
		{0, "Error: Division by zero"},
		{-2, "Result: -4"},
	}

	for _, c := range cases {
		got := calc.Describe(ctx, calc.Calculate(ctx, c.x))
		assert.Equal(t, c.want, got, "x=%v", c.x)
	}
}
