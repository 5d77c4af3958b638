// Command puz inspects and rewrites Across Lite .puz files.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

const version = "0.1.0"

// Globals are flags shared by every command.
type Globals struct {
	LogLevel  string `name:"log-level" enum:"debug,info,warn,error" default:"warn" help:"Log level (debug, info, warn, error)"`
	LogFormat string `name:"log-format" enum:"text,json" default:"text" help:"Log format (text, json)"`
}

// CLI defines the command-line interface for puz.
type CLI struct {
	Globals

	Info    InfoCmd    `cmd:"" help:"Print puzzle metadata and checksums"`
	Verify  VerifyCmd  `cmd:"" help:"Check that files parse and serialize back to identical bytes"`
	Clues   CluesCmd   `cmd:"" help:"List numbered clues"`
	Lock    LockCmd    `cmd:"" help:"Scramble the solution with a four-digit key"`
	Unlock  UnlockCmd  `cmd:"" help:"Unscramble the solution"`
	Convert ConvertCmd `cmd:"" help:"Rewrite a puzzle, optionally changing version or compression"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

func newParser(cli *CLI, stdout, stderr io.Writer, opts ...kong.Option) (*kong.Kong, error) {
	opts = append([]kong.Option{
		kong.Name("puz"),
		kong.Description("Across Lite .puz crossword tool"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	}, opts...)

	return kong.New(cli, opts...)
}

// execute runs the selected command with the output writer and a logger
// configured from the global flags.
func execute(ctx *kong.Context, g *Globals, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, g.LogLevel, g.LogFormat)
	ctx.BindTo(stdout, (*io.Writer)(nil))
	ctx.Bind(logger)

	return ctx.Run()
}

func main() {
	var cli CLI
	parser, err := newParser(&cli, os.Stdout, os.Stderr)
	if err != nil {
		slog.Error("cli setup failed", "error", err)
		os.Exit(1)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = execute(ctx, &cli.Globals, os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)
}
