// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/ezrec/borasm/asm"
	"github.com/ezrec/borasm/config"
	bio "github.com/ezrec/borasm/io"
	"github.com/ezrec/borasm/isa"
	"github.com/ezrec/borasm/translate"
)

var f = translate.From

// CLI errors
var (
	ErrNoInput = errors.New(f("no input file"))
)

// options are the command line flags.
type options struct {
	input  string
	output string
	config string
	debug  bool
	print  bool
}

// version returns the module version of the binary.
func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || len(info.Main.Version) == 0 {
		return "(devel)"
	}
	return info.Main.Version
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "borasm -i source.asm [-o output.hex]",
		Short: "Two pass assembler for the borasm 8-bit CPU",
		Long: `Borasm assembles a line oriented source file into machine code for
a small 8-bit CPU with four registers (R0-R3, aliased A-D).

Each source line holds one instruction or one label ("name:").
Comments start with ';' or '//'. The machine code is written as one
two digit hexadecimal byte per line.`,
		Example:       "  borasm -i code.asm -o code.hex",
		Version:       version(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := root.Flags()
	flags.StringVarP(&opts.input, "input", "i", "", "input assembly source file")
	flags.StringVarP(&opts.output, "output", "o", "", "output hex file")
	flags.StringVarP(&opts.config, "config", "c", "", "Starlark configuration script")
	flags.BoolVarP(&opts.debug, "debug", "D", false, "enable debug logging")
	flags.BoolVarP(&opts.print, "print", "p", false, "print the machine code")

	root.AddCommand(newListCommand(), newVersionCommand())

	return root
}

// settings merges the configuration script with the explicitly set flags.
func settings(cmd *cobra.Command, opts *options) (cfg config.Config, err error) {
	if len(opts.config) != 0 {
		cfg, err = config.Load(opts.config, nil)
		if err != nil {
			return
		}
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = opts.input
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if flags.Changed("print") {
		cfg.Print = opts.print
	}

	if len(cfg.Input) == 0 {
		err = ErrNoInput
	}

	return
}

// dump pretty prints the label table and references.
func dump(w io.Writer, img *asm.Image) {
	printer := pp.New()
	printer.SetOutput(w)
	printer.SetColoringEnabled(false)
	printer.Println(img.Labels)
	printer.Println(img.References)
}

func run(cmd *cobra.Command, opts *options) (err error) {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	defer func() {
		if err != nil {
			translate.Fprintf(stderr, "[ERROR] %v\n", err)
		}
	}()

	cfg, err := settings(cmd, opts)
	if err != nil {
		return
	}

	img := &asm.Image{}
	analyzer := asm.NewAnalyzer(img)
	analyzer.Verbose = cfg.Debug

	assembler := &asm.Assembler{
		Verbose:  cfg.Debug,
		Files:    bio.NewFileHandler(),
		Analyzer: analyzer,
		Image:    img,
	}

	err = assembler.Assemble(cfg.Input, cfg.Output)
	if cfg.Debug {
		dump(stderr, img)
	}
	if err != nil {
		return
	}

	translate.Fprintf(stdout, "[OK] %v: %d bytes\n", cfg.Input, img.Len())
	if len(cfg.Output) != 0 {
		translate.Fprintf(stdout, "[OK] machine code saved to %v\n", cfg.Output)
	}

	if cfg.Print {
		translate.Fprintf(stdout, "Machine Code:\n")
		err = assembler.PrintMachineCode(stdout)
	}

	return
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available instructions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			out := cmd.OutOrStdout()
			for name, op := range isa.Opcodes() {
				line := fmt.Sprintf("%-4s 0x%02X %s", name, uint8(op), op.Form().Syntax())
				_, err = fmt.Fprintln(out, strings.TrimSpace(line))
				if err != nil {
					return
				}
			}
			return
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version())
		},
	}
}
