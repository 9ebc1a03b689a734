package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSalary_ManwonUnits(t *testing.T) {
	amount, ok := ParseSalary("연봉 5,000만원 이상")
	assert.True(t, ok)
	assert.Equal(t, int64(50_000_000), amount)
}

func TestParseSalary_EokPlusManwon(t *testing.T) {
	amount, ok := ParseSalary("1억 2,000만원")
	assert.True(t, ok)
	assert.Equal(t, int64(120_000_000), amount)
}

func TestParseSalary_RawWon(t *testing.T) {
	amount, ok := ParseSalary("40,000,000원")
	assert.True(t, ok)
	assert.Equal(t, int64(40_000_000), amount)
}

func TestParseSalary_UnitlessNumber(t *testing.T) {
	amount, ok := ParseSalary("45000000")
	assert.True(t, ok)
	assert.Equal(t, int64(45_000_000), amount)
}

func TestParseSalary_NoFigure(t *testing.T) {
	for _, text := range []string{"", "면접 후 결정", "회사 내규에 따름", "협의"} {
		amount, ok := ParseSalary(text)
		assert.False(t, ok, text)
		assert.Zero(t, amount, text)
	}
}

func TestParseSalary_KeepsLargestRawFigure(t *testing.T) {
	amount, ok := ParseSalary("월 300 연 42,000,000")
	assert.True(t, ok)
	assert.Equal(t, int64(42_000_000), amount)
}

func TestParseSalary_RangeReadsMaximumNotSum(t *testing.T) {
	// The bounds of a range stay separate figures. Summing them would
	// inflate a 30M-max posting to 50M.
	amount, ok := ParseSalary("2,000만원 ~ 3,000만원")
	assert.True(t, ok)
	assert.Equal(t, int64(30_000_000), amount)
}

func TestParseSalary_RangeOfComposites(t *testing.T) {
	amount, ok := ParseSalary("1억 ~ 1억 2,000만원")
	assert.True(t, ok)
	assert.Equal(t, int64(120_000_000), amount)
}

func TestParseSalary_DecimalEok(t *testing.T) {
	amount, ok := ParseSalary("3.5억")
	assert.True(t, ok)
	assert.Equal(t, int64(350_000_000), amount)
}

func TestParseSalary_EokAlone(t *testing.T) {
	amount, ok := ParseSalary("1억")
	assert.True(t, ok)
	assert.Equal(t, int64(100_000_000), amount)
}
