// Package cli wires the extract and summarize pipelines to a go-flags
// command parser.
package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// GlobalFlags apply to every subcommand.
type GlobalFlags struct {
	Config string `short:"c" long:"config" description:"Path to the YAML config file" default:"config.yaml"`
}

// commands holds references to all subcommand structs for tests.
type commands struct {
	Extract   *ExtractCommand
	Summarize *SummarizeCommand
}

// buildParser constructs the go-flags parser with all subcommands
// registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "eventscribe"
	parser.LongDescription = "Calendar event extraction and transcript summarization pipelines."

	cmds := &commands{
		Extract:   &ExtractCommand{globals: &globals},
		Summarize: &SummarizeCommand{globals: &globals},
	}

	parser.AddCommand("extract", "Extract calendar events to a spreadsheet",
		"Parse an .ics calendar, extract resource links, clean, pause for manual review, and export to .xlsx.", cmds.Extract)
	parser.AddCommand("summarize", "Summarize extracted transcripts",
		"Read a previously exported .xlsx with transcripts, chunk and summarize them in batches, and export the result.", cmds.Summarize)

	return parser, &globals, cmds
}

// Run is the main entry point using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the
// matched subcommand.
func RunWithArgs(version string, args []string) error {
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("eventscribe %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
