package main

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "wenyan",
	Short: "Compile classical Chinese programs to C#",
	Long: `wenyan translates programs written with classical Chinese keywords into C# source.

Commands:
  build     Compile a source file into a .cs file
  check     Parse and analyze a source file without writing output
  tokens    Print the tokens of a source file
  ast       Print the syntax tree of a source file
  symbols   Print the symbols a source file declares
  keywords  List the recognized keywords
`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.Disable()
		}
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every compilation stage")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured diagnostics")

	rootCmd.AddCommand(buildCmd, checkCmd, tokensCmd, astCmd, symbolsCmd, keywordsCmd)
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.Out = os.Stderr
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// readSource returns the absolute path and contents of path.
func readSource(path string) (string, string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", "", err
	}
	b, err := ioutil.ReadFile(absPath)
	if err != nil {
		return "", "", err
	}
	return absPath, string(b), nil
}
