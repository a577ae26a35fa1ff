package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRupees(t *testing.T) {
	assert.Equal(t, "₹500", Rupees(500))
	assert.Equal(t, "₹1250.5", Rupees(1250.5))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"go", "react"}, SplitList(" go, ,react ,"))
	assert.Nil(t, SplitList("  "))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
}

func TestAmounts(t *testing.T) {
	assert.NoError(t, ValidateAmount(""))
	assert.NoError(t, ValidateAmount("12.5"))
	assert.Error(t, ValidateAmount("-3"))
	assert.Error(t, ValidateAmount("abc"))

	assert.InDelta(t, 500, ParseAmount("", 500), 0.001)
	assert.InDelta(t, 42, ParseAmount(" 42 ", 0), 0.001)
}
