package money_test

import (
	"testing"

	"hotel/shared/money"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	assert.True(t, money.Sum().IsZero())
	assert.True(t, money.MustParse("10.25").Equal(money.Sum(money.MustParse("10"), money.MustParse("0.25"))))
}

func TestNonNegative(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "negative clamps to zero", in: "-5", want: "0"},
		{name: "zero stays", in: "0", want: "0"},
		{name: "positive stays", in: "12.5", want: "12.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, money.MustParse(tt.want).Equal(money.NonNegative(money.MustParse(tt.in))))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.True(t, money.MustParse("15").Equal(money.Percent(money.MustParse("150"), money.MustParse("10"))))
	assert.True(t, money.MustParse("0.5").Equal(money.Percent(money.MustParse("5"), money.MustParse("10"))))
}

func TestRound(t *testing.T) {
	assert.Equal(t, "33.33", money.Round(money.MustParse("100").Div(money.MustParse("3"))).StringFixed(2))
}
