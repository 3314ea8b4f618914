package main

import (
	"fmt"
	"html"

	"github.com/jbialk/jsonstream/jsonerr"
	"github.com/jbialk/jsonstream/lexer"
	"github.com/jbialk/jsonstream/parser"
	"github.com/spf13/cobra"
)

const markupHead = `<html>
<head>
<style type="text/css">
body {
  background-color: #1e1e1e;
  color: #d4d4d4;
}
div.content {
  white-space: pre;
  font-family: 'Courier New', Courier, monospace;
}
span.COMMENT {
  color: darkgrey;
}
span.BOOLEAN_LITERAL, span.NULL_LITERAL {
  color: violet;
  font-weight: bold;
}
span.NUMERIC_LITERAL {
  color: lightblue;
  font-weight: bold;
}
span:not(.OBJECT_KEY) > span.STRING_LITERAL {
  color: lightgreen;
}
</style>
</head>
<body>
<div class="content">
`

const markupTail = `</div>
</body>
</html>
`

var argsMarkup struct {
	omitTemplate bool
}

var cmdMarkup = &cobra.Command{
	Use:   "markup [file]",
	Short: "Emit the input as html with one colored span per token",
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
		var psr parser.Parser

		if !argsMarkup.omitTemplate {
			fmt.Print(markupHead)
		}
		for {
			tok, err := scanner.Pump()
			if err != nil {
				if !jsonerr.IsInputFinished(err) {
					return err
				}
				break
			}

			var evt parser.Event
			produced, err := psr.HandleToken(tok, &evt, false)
			if err != nil {
				return err
			}

			span := fmt.Sprintf(`<span class="%s">%s</span>`,
				tok.Kind, html.EscapeString(tok.Spelling))
			if produced && evt.Kind == parser.OBJECT_KEY {
				span = fmt.Sprintf(`<span class="%s">%s</span>`, evt.Kind, span)
			}
			fmt.Print(span)
		}
		if !argsMarkup.omitTemplate {
			fmt.Print(markupTail)
		}
		return nil
	},
}
