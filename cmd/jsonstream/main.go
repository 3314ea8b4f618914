// Package main implements the jsonstream command line tool.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"
)

var version = semver.Version{
	Major: 0,
	Minor: 2,
	Patch: 6,
	Build: semver.Commit(),
}

var cmdRoot = &cobra.Command{
	Use:   "jsonstream",
	Short: "jsonstream tokenizes, parses, and reformats JSON text",
	Long: `All subcommands read from the file given as the first argument,
or from stdin when the argument is missing or "-".`,
}

var cmdVersion = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of this application",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s\n", version.String())
	},
}

func main() {
	for _, arg := range os.Args {
		if arg == "-version" || arg == "--version" {
			fmt.Printf("%s\n", version.Short())
			return
		}
	}
	log.SetFlags(log.Lshortfile | log.Ltime)

	cmdMarkup.Flags().BoolVar(&argsMarkup.omitTemplate, "omit-template", false,
		"emit only the content div, without the html head/tail template")
	cmdRoot.AddCommand(cmdLex, cmdParse, cmdVerify, cmdMarkup, cmdVersion)

	if err := cmdRoot.Execute(); err != nil {
		log.Fatal(err)
	}
}

// readInput returns the content named by args, or stdin.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(args[0])
	return string(b), err
}
