// Package config loads borasm settings from a Starlark script.
//
// A configuration script assigns any of the globals below; every other
// global is ignored, so scripts may compute values with helpers.
//
//	input  = "src/" + "main.asm"   # source file
//	output = "build/main.hex"      # hex output file
//	debug  = False                 # verbose logging and table dumps
//	print  = True                  # console hex dump
package config

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/borasm/translate"
)

var f = translate.From

// Config holds the settings of an assembly run.
type Config struct {
	Input  string // Source file.
	Output string // Hex output file, if any.
	Debug  bool   // Verbose logging.
	Print  bool   // Print the machine code to the console.
}

// ErrConfigType is returned when a global has the wrong Starlark type.
type ErrConfigType struct {
	Name string // Global name.
	Want string // Expected Starlark type.
	Got  string // Actual Starlark type.
}

func (err ErrConfigType) Error() string {
	return f("%v: %v expected, got %v", err.Name, err.Want, err.Got)
}

// Load evaluates a configuration script. If src is nil the script is
// read from filename, otherwise src may be a string, []byte or io.Reader.
func Load(filename string, src any) (cfg Config, err error) {
	thread := &starlark.Thread{Name: "config"}
	opts := &syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(opts, thread, filename, src, starlark.StringDict{})
	if err != nil {
		return
	}

	strs := map[string]*string{
		"input":  &cfg.Input,
		"output": &cfg.Output,
	}
	for name, ptr := range strs {
		value, ok := globals[name]
		if !ok {
			continue
		}
		str, ok := value.(starlark.String)
		if !ok {
			err = &ErrConfigType{Name: name, Want: "string", Got: value.Type()}
			return
		}
		*ptr = str.GoString()
	}

	bools := map[string]*bool{
		"debug": &cfg.Debug,
		"print": &cfg.Print,
	}
	for name, ptr := range bools {
		value, ok := globals[name]
		if !ok {
			continue
		}
		b, ok := value.(starlark.Bool)
		if !ok {
			err = &ErrConfigType{Name: name, Want: "bool", Got: value.Type()}
			return
		}
		*ptr = bool(b)
	}

	return
}
