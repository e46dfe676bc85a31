package curry_test

import (
	"strconv"
	"testing"

	"github.com/ib-77/fn3/pkg/fn/curry"

	"github.com/stretchr/testify/assert"
)

func TestCurry2(t *testing.T) {
	add := curry.Curry2(func(x, y int) int { return x + y })

	assert.Equal(t, 8, add(5)(3))

	addFive := add(5)
	assert.Equal(t, 5, addFive(0))
	assert.Equal(t, 4, addFive(-1))
	assert.Equal(t, 105, addFive(100))
}

func TestCurry3(t *testing.T) {
	volume := curry.Curry3(func(a, b, c int) int { return a * b * c })

	assert.Equal(t, 24, volume(2)(3)(4))
}

func TestCurry4(t *testing.T) {
	join := curry.Curry4(func(a, b, c, d string) string { return a + b + c + d })

	assert.Equal(t, "abcd", join("a")("b")("c")("d"))
}

func TestUncurry2_InvertsCurry2(t *testing.T) {
	sub := func(x, y int) int { return x - y }

	assert.Equal(t, sub(10, 4), curry.Uncurry2(curry.Curry2(sub))(10, 4))
}

func TestUncurry3_InvertsCurry3(t *testing.T) {
	f := func(a, b, c int) int { return a + b*c }

	assert.Equal(t, f(1, 2, 3), curry.Uncurry3(curry.Curry3(f))(1, 2, 3))
}

func TestPartial2(t *testing.T) {
	concat := func(a, b string) string { return a + b }
	hello := curry.Partial2(concat, "hello ")

	assert.Equal(t, "hello world", hello("world"))
}

func TestPartial3(t *testing.T) {
	clamp := func(lo, hi, v int) int {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
	unit := curry.Partial3(clamp, 0)

	assert.Equal(t, 1, unit(1, 5))
	assert.Equal(t, 0, unit(1, -5))
}

func TestFlip(t *testing.T) {
	div := curry.Curry2(func(x, y float64) float64 { return x / y })

	assert.Equal(t, 5.0, div(10)(2))
	assert.Equal(t, 0.2, curry.Flip(div)(10)(2))
}

func TestComp(t *testing.T) {
	double := func(n int) int { return n * 2 }
	show := strconv.Itoa

	assert.Equal(t, "42", curry.Comp(double, show)(21))
}

func TestIdenAndConst(t *testing.T) {
	assert.Equal(t, 7, curry.Iden(7))

	always := curry.Const[string](3)
	assert.Equal(t, 3, always("ignored"))
	assert.Equal(t, 3, always(""))
}
