package money_test

import (
	"testing"

	"app/internal/money"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	d, ok := money.Parse(" 185.00 ")
	assert.True(t, ok)
	assert.Equal(t, "185.00", money.Format(d))

	_, ok = money.Parse("abc")
	assert.False(t, ok)

	_, ok = money.Parse("")
	assert.False(t, ok)
}

func TestParseOrZero_Malformed(t *testing.T) {
	assert.Equal(t, "0.00", money.Format(money.ParseOrZero("not-a-price")))
}

func TestLine(t *testing.T) {
	assert.Equal(t, "60.00", money.Format(money.Line("30.00", 2)))
	//0.1系の誤差が出ないこと
	assert.Equal(t, "0.30", money.Format(money.Line("0.10", 3)))
}

func TestIsPositive(t *testing.T) {
	assert.True(t, money.IsPositive("75.00"))
	assert.False(t, money.IsPositive("0"))
	assert.False(t, money.IsPositive("-5.00"))
	assert.False(t, money.IsPositive("banana"))
}
