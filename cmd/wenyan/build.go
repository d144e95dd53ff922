package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/bytes"
	"github.com/labstack/gommon/color"
	"github.com/spf13/cobra"

	"wenyan/internal"
)

var errCompilationFailed = errors.New("compilation failed")

var (
	outPath   string
	namespace string
	class     string
	indent    int
)

var buildCmd = &cobra.Command{
	Use:   "build [source]",
	Short: "Compile a source file into a .cs file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		absPath, source, err := readSource(args[0])
		if err != nil {
			return err
		}

		code, ok := internal.CompileWithPrinter(absPath, source, buildOptions(), stdPrinter{})
		if !ok {
			return errCompilationFailed
		}

		target := outPath
		if target == "" {
			target = outputPath(absPath)
		}
		if err := ioutil.WriteFile(target, []byte(code), 0644); err != nil {
			return err
		}
		fmt.Printf("%s %s (%s)\n", color.Green("wrote"), target, bytes.Format(int64(len(code))))
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [source]",
	Short: "Parse and analyze a source file without writing output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		absPath, source, err := readSource(args[0])
		if err != nil {
			return err
		}
		if _, ok := internal.CompileWithPrinter(absPath, source, buildOptions(), stdPrinter{}); !ok {
			return errCompilationFailed
		}
		fmt.Println(color.Green("ok"), absPath)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (defaults to the source path with a .cs extension)")
	for _, cmd := range []*cobra.Command{buildCmd, checkCmd} {
		cmd.Flags().StringVar(&namespace, "namespace", "", "namespace of the generated program")
		cmd.Flags().StringVar(&class, "class", "", "class holding Main")
		cmd.Flags().IntVar(&indent, "indent", 4, "spaces per indentation level")
	}
}

func buildOptions() internal.Options {
	opts := internal.DefaultOptions()
	if namespace != "" {
		opts.Namespace = namespace
	}
	if class != "" {
		opts.Class = class
	}
	if indent > 0 {
		opts.Indent = strings.Repeat(" ", indent)
	}
	opts.Logger = newLogger()
	return opts
}

// outputPath swaps the extension of path for .cs.
func outputPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".cs"
}
