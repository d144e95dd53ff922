package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wenyan/internal"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [source]",
	Short: "Print the tokens of a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, source, err := readSource(args[0])
		if err != nil {
			return err
		}
		fmt.Print(internal.TokenListing(source))
		return nil
	},
}

var astCmd = &cobra.Command{
	Use:   "ast [source]",
	Short: "Print the syntax tree of a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, source, err := readSource(args[0])
		if err != nil {
			return err
		}
		program, err := internal.Parse(internal.Tokenize(source))
		if err != nil {
			stdPrinter{}.Fprintln(cmd.ErrOrStderr(), err)
			return errCompilationFailed
		}
		fmt.Print(internal.FormatTree(program))
		return nil
	},
}

var symbolsCmd = &cobra.Command{
	Use:   "symbols [source]",
	Short: "Print the symbols a source file declares",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, source, err := readSource(args[0])
		if err != nil {
			return err
		}
		program, err := internal.Parse(internal.Tokenize(source))
		if err == nil {
			var listing string
			if listing, err = internal.SymbolListing(program); err == nil {
				fmt.Print(listing)
				return nil
			}
		}
		stdPrinter{}.Fprintln(cmd.ErrOrStderr(), err)
		return errCompilationFailed
	},
}

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "List the recognized keywords",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, kw := range internal.Keywords() {
			fmt.Println(kw)
		}
	},
}
