// Package roles unifies the free-text speaker roles found in session
// headers and infers gender and macro role where the role implies one.
// The mapping tables are embedded; a corpus may add a speaker-label
// table on top for macro-role fallback.
package roles

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed roles.yaml
var defaultTables []byte

// ChildAgeCutoffDays is the age below which a speaker counts as a
// child when the role alone does not settle the macro role. 4380 days
// is twelve years at 365 days each.
const ChildAgeCutoffDays = 4380

type tables struct {
	Roles  map[string]string `yaml:"roles"`
	Gender map[string]string `yaml:"gender"`
	Macro  map[string]string `yaml:"macro"`
}

// Mapper maps raw roles to unified roles, genders and macro roles.
type Mapper struct {
	tables tables

	// labelMacro maps corpus-specific speaker labels to macro roles.
	// Consulted last, when neither role nor age decides.
	labelMacro map[string]string
}

// NewMapper returns a Mapper backed by the embedded tables.
func NewMapper() *Mapper {
	m := &Mapper{}
	if err := yaml.Unmarshal(defaultTables, &m.tables); err != nil {
		// The embedded resource is fixed at build time.
		panic(fmt.Sprintf("roles: embedded tables: %v", err))
	}
	return m
}

// WithLabelMacroRoles sets the per-corpus speaker-label table and
// returns the mapper.
func (m *Mapper) WithLabelMacroRoles(labelMacro map[string]string) *Mapper {
	m.labelMacro = labelMacro
	return m
}

// Role maps a raw role to its unified form. Roles that unify to
// Unknown or None, and roles missing from the table, map to "".
func (m *Mapper) Role(roleRaw string) string {
	role, ok := m.tables.Roles[roleRaw]
	if !ok || role == "Unknown" || role == "None" {
		return ""
	}
	return role
}

// Gender returns the gender implied by the raw role, or "".
func (m *Mapper) Gender(roleRaw string) string {
	return m.tables.Gender[roleRaw]
}

// MacroRole infers the macro role of a speaker. A role mapping to
// Target_Child wins outright; otherwise the age decides via
// ChildAgeCutoffDays, then the role table, then the corpus
// speaker-label table.
func (m *Mapper) MacroRole(roleRaw string, ageInDays int, speakerLabel string) string {
	macro := m.tables.Macro[roleRaw]
	if macro == "Target_Child" {
		return macro
	}

	if ageInDays > 0 {
		if ageInDays <= ChildAgeCutoffDays {
			macro = "Child"
		} else {
			macro = "Adult"
		}
		return macro
	}

	if macro != "" {
		return macro
	}

	if label := m.labelMacro[speakerLabel]; label != "Unknown" {
		return label
	}
	return ""
}
