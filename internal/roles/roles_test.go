package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole(t *testing.T) {
	m := NewMapper()
	assert.Equal(t, "Target_Child", m.Role("Target_Child"))
	assert.Equal(t, "Mother", m.Role("mother"))
	assert.Equal(t, "Researcher", m.Role("Investigator"))

	// Unknown's and none's become empty.
	assert.Equal(t, "", m.Role("Unidentified"))
	assert.Equal(t, "", m.Role("None"))
	assert.Equal(t, "", m.Role("not in the table"))
}

func TestGender(t *testing.T) {
	m := NewMapper()
	assert.Equal(t, "Female", m.Gender("Grandmother"))
	assert.Equal(t, "Male", m.Gender("uncle"))
	assert.Equal(t, "", m.Gender("Teacher"))
}

func TestMacroRoleFromRole(t *testing.T) {
	m := NewMapper()
	assert.Equal(t, "Target_Child", m.MacroRole("Target_Child", 0, "CHI"))
	assert.Equal(t, "Adult", m.MacroRole("Mother", 0, "MOT"))
	assert.Equal(t, "Child", m.MacroRole("Playmate", 0, "PLA"))
}

func TestMacroRoleFromAge(t *testing.T) {
	m := NewMapper()
	// Age overrides the role table for everyone but the target child.
	assert.Equal(t, "Child", m.MacroRole("Mother", 800, "MOT"))
	assert.Equal(t, "Adult", m.MacroRole("Sibling", 9000, "SIB"))
	assert.Equal(t, "Child", m.MacroRole("", ChildAgeCutoffDays, "UNK"))
	assert.Equal(t, "Adult", m.MacroRole("", ChildAgeCutoffDays+1, "UNK"))
}

func TestMacroRoleFromLabel(t *testing.T) {
	m := NewMapper().WithLabelMacroRoles(map[string]string{
		"TEA": "Adult",
		"UNK": "Unknown",
	})
	assert.Equal(t, "Adult", m.MacroRole("not in the table", 0, "TEA"))
	assert.Equal(t, "", m.MacroRole("not in the table", 0, "UNK"))
	assert.Equal(t, "", m.MacroRole("not in the table", 0, "ZZZ"))
}
