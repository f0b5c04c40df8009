package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanDate(t *testing.T) {
	assert.Equal(t, "1997-09-12", CleanDate("12-SEP-1997"))
	assert.Equal(t, "2006-01-14", CleanDate("14-JAN-2006"))
	assert.Equal(t, "", CleanDate(""))
	assert.Equal(t, "", CleanDate("not a date"))
	assert.Equal(t, "", CleanDate("12-XXX-1997"))
}

func TestCleanTimestamp(t *testing.T) {
	assert.Equal(t, "3661.000", CleanTimestamp("01:01:01"))
	assert.Equal(t, "61.500", CleanTimestamp("00:01:01.500"))
	// Bullet times are already in the unified form.
	assert.Equal(t, "8551", CleanTimestamp("8551"))
	assert.Equal(t, "", CleanTimestamp(""))
}
