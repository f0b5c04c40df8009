package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgeInDays(t *testing.T) {
	tests := []struct {
		age  string
		days int
	}{
		{"2;2.0", 790},
		{"2;2.", 790},
		{"5;4.12", 1957},
		{"2", 730},
		{"2;3", 820},
		{"", 0},
		{"not an age", 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.days, AgeInDays(tc.age), tc.age)
	}
}

func TestAgeFromDates(t *testing.T) {
	// 2004 is a leap year: 735 days total, 5 past two 365-day years.
	assert.Equal(t, "2;0.5", AgeFromDates("2004-01-01", "2006-01-05"))
	assert.Equal(t, "0;0.0", AgeFromDates("2004-01-01", "2004-01-01"))
	assert.Equal(t, "", AgeFromDates("", "2006-01-05"))
	assert.Equal(t, "", AgeFromDates("2004-01-01", ""))
	assert.Equal(t, "", AgeFromDates("2006-01-05", "2004-01-01"))
}
