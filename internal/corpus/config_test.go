package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configYAML = `
db: corpora.sqlite3
workers: 8
log_level: debug
corpora:
  - name: Sesotho
    language: Sesotho
    sessions: "corpora/sesotho/*.cha"
    morph_tiers: [gls]
    morpheme_delimiter: "-"
  - name: Inuktitut
    language: Inuktitut
    sessions: "corpora/inuktitut/*.cha"
    label_macro_roles:
      AUN: Adult
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "acquigo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, configYAML))
	require.NoError(t, err)

	assert.Equal(t, "corpora.sqlite3", cfg.DB)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
	require.Len(t, cfg.Corpora, 2)

	sesotho := cfg.Corpora[0]
	assert.Equal(t, "Sesotho", sesotho.Name)
	assert.Equal(t, []string{"gls"}, sesotho.MorphTiers)
	assert.Equal(t, "-", sesotho.MorphemeDelimiter)

	inuktitut := cfg.Corpora[1]
	assert.Equal(t, map[string]string{"AUN": "Adult"}, inuktitut.LabelMacroRoles)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
corpora:
  - name: Sesotho
    sessions: "*.cha"
`))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigRejectsEmptyCorpora(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "workers: 2\n"))
	assert.Error(t, err)
}

func TestLoadConfigRejectsNamelessCorpus(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `
corpora:
  - sessions: "*.cha"
`))
	assert.Error(t, err)
}
