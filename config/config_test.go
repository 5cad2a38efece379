package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/stackproc/cpu"
)

func writeConfig(t *testing.T, dir string, content string) string {
	t.Helper()

	path := filepath.Join(dir, FILENAME)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	c := Default()
	assert.Equal("> ", c.Prompt)
	assert.Equal(cpu.PREVIEW_LIMIT, c.Preview)
	assert.False(c.Verbose)
	assert.Equal(0, c.StepLimit)
	assert.Empty(c.Language)
	assert.Empty(c.Path)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := writeConfig(t, t.TempDir(), `
prompt = "sp> "
preview = 8
verbose = true
step-limit = 10000
language = "en-GB"
`)

	c, err := Load(path)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal("sp> ", c.Prompt)
	assert.Equal(8, c.Preview)
	assert.True(c.Verbose)
	assert.Equal(10000, c.StepLimit)
	assert.Equal("en-GB", c.Language)
	assert.Equal(path, c.Path)
}

func TestLoadDefaults(t *testing.T) {
	assert := assert.New(t)

	path := writeConfig(t, t.TempDir(), "verbose = true\n")

	c, err := Load(path)
	assert.NoError(err)
	assert.Equal("> ", c.Prompt)
	assert.Equal(cpu.PREVIEW_LIMIT, c.Preview)
	assert.True(c.Verbose)
}

func TestLoadErrors(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(err, os.ErrNotExist)

	table := []string{
		"prompt = ",
		"preview = \"five\"",
		"preview = -1",
		"step-limit = -2",
		"colour = true",
	}
	for _, content := range table {
		_, err = Load(writeConfig(t, dir, content))
		assert.Error(err, content)
	}
}

func TestFindAndLoad(t *testing.T) {
	assert := assert.New(t)

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	assert.NoError(os.MkdirAll(nested, 0755))

	path := writeConfig(t, root, "preview = 3\n")

	c, err := FindAndLoad(nested)
	assert.NoError(err)
	if assert.NotNil(c) {
		assert.Equal(3, c.Preview)
		assert.Equal(path, c.Path)
	}
}
