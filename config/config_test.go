package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	script := []string{
		"base = 'build/'",
		"def name(ext):",
		"    return 'count' + ext",
		"input = name('.asm')",
		"output = base + name('.hex')",
		"print = True",
	}

	cfg, err := Load("test.star", strings.Join(script, "\n"))
	assert.NoError(err)
	assert.Equal(Config{
		Input:  "count.asm",
		Output: "build/count.hex",
		Print:  true,
	}, cfg)
}

func TestLoad_Empty(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load("empty.star", "")
	assert.NoError(err)
	assert.Equal(Config{}, cfg)
}

func TestLoad_File(t *testing.T) {
	assert := assert.New(t)

	name := filepath.Join(t.TempDir(), "borasm.star")
	err := os.WriteFile(name, []byte("debug = True\ninput = 'a.asm'\n"), 0o644)
	assert.NoError(err)

	cfg, err := Load(name, nil)
	assert.NoError(err)
	assert.True(cfg.Debug)
	assert.Equal("a.asm", cfg.Input)

	_, err = Load(filepath.Join(t.TempDir(), "missing.star"), nil)
	assert.Error(err)
}

func TestLoad_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := Load("bad.star", "input = 42")
	var typ *ErrConfigType
	assert.True(errors.As(err, &typ))
	assert.Equal("input", typ.Name)
	assert.Equal("string", typ.Want)
	assert.Equal("int", typ.Got)

	_, err = Load("bad.star", "debug = 'yes'")
	assert.True(errors.As(err, &typ))
	assert.Equal("debug", typ.Name)
	assert.Equal("bool", typ.Want)

	_, err = Load("bad.star", "input = ")
	assert.Error(err)

	_, err = Load("bad.star", "fail('no')")
	assert.Error(err)
}
