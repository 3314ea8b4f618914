package main

import (
	"fmt"

	"github.com/jbialk/jsonstream/jsonerr"
	"github.com/jbialk/jsonstream/lexer"
	"github.com/jbialk/jsonstream/parser"
	"github.com/spf13/cobra"
)

var cmdLex = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize the input and print one token per line",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readInput(args)
		if err != nil {
			return err
		}

		var scanner lexer.Scanner
		if err := scanner.Init(); err != nil {
			return err
		}
		scanner.Begin(content)

		idx := 0
		for {
			tok, err := scanner.Pump()
			if err != nil {
				if jsonerr.IsInputFinished(err) {
					return nil
				}
				return err
			}
			fmt.Printf("%3d: [%15s](%d:%d) %q\n", idx,
				tok.Kind, tok.Location.Lineno, tok.Location.Colno, tok.Spelling)
			idx++
		}
	},
}

var cmdParse = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse the input and print one semantic event per line",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readInput(args)
		if err != nil {
			return err
		}

		var lp parser.LexerParser
		if err := lp.Init(); err != nil {
			return err
		}
		lp.Begin(content)

		idx := 0
		for {
			evt, err := lp.GetNextEvent()
			if err != nil {
				if jsonerr.IsInputFinished(err) {
					return nil
				}
				return err
			}
			fmt.Printf("%3d: [%13s] %q\n", idx, evt.Kind, evt.Token.Spelling)
			idx++
		}
	},
}

var cmdVerify = &cobra.Command{
	Use:   "verify [file]",
	Short: "Exit zero if the input is well formed json",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readInput(args)
		if err != nil {
			return err
		}
		return parser.Verify(content)
	},
}
