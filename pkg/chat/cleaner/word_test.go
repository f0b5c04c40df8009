package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveFormMarkers(t *testing.T) {
	assert.Equal(t, "gaga", RemoveFormMarkers("gaga@o"))
	assert.Equal(t, "ba", RemoveFormMarkers("ba@si:mp"))
	assert.Equal(t, "plain", RemoveFormMarkers("plain"))
}

func TestRemoveDrawls(t *testing.T) {
	assert.Equal(t, "nada", RemoveDrawls("na:da"))
	assert.Equal(t, "soo", RemoveDrawls("so:o:"))
}

func TestRemovePausesWithinWords(t *testing.T) {
	assert.Equal(t, "mama", RemovePausesWithinWords("ma^ma"))
}

func TestRemoveBlocking(t *testing.T) {
	assert.Equal(t, "word", RemoveBlocking("^word"))
	assert.Equal(t, "word", RemoveBlocking("≠word"))
}

func TestRemoveFiller(t *testing.T) {
	assert.Equal(t, "um", RemoveFiller("&-um"))
	assert.Equal(t, "ab", RemoveFiller("&ab"))
	// Event codes are not fillers.
	assert.Equal(t, "&=laughs", RemoveFiller("&=laughs"))
}

func TestCleanWord(t *testing.T) {
	assert.Equal(t, "nada", CleanWord("na:da@o"))
	assert.Equal(t, "um", CleanWord("&-um"))
	assert.Equal(t, "mama", CleanWord("^ma^ma"))
	assert.Equal(t, "", CleanWord(""))
}
