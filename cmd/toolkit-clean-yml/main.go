package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/kxue43/yml-cleaner/cleaner"
	"github.com/kxue43/yml-cleaner/config"
	"github.com/kxue43/yml-cleaner/console"
	"github.com/kxue43/yml-cleaner/prompt"
	"github.com/kxue43/yml-cleaner/version"
)

const logPrefix = "toolkit-clean-yml: "

type CLI struct {
	Root     string           `arg:"" optional:"" help:"Folder containing the scenes and templates folders. Prompted for when omitted."`
	Config   string           `name:"config" type:"existingfile" help:"YAML or TOML file overriding the category folders, key prefixes and target files."`
	DryRun   bool             `name:"dry-run" help:"Compute every rewrite without writing any file."`
	Plain    bool             `name:"plain" help:"Read the root folder as a plain line even on a terminal."`
	Verbose  bool             `name:"verbose" short:"v" help:"Log line statistics for every rewritten file."`
	DebugLog string           `name:"debug-log" help:"Dump interactive prompt messages to this file."`
	Version  kong.VersionFlag `name:"version" help:"Show version information and quit."`
}

func (c *CLI) prompter(out io.Writer, debug io.Writer) prompt.Prompter {
	if !c.Plain && console.IsTerminal(os.Stdin) && console.IsTerminal(os.Stdout) {
		return prompt.NewTextInputPrompter(os.Stdin, os.Stdout, debug)
	}

	return prompt.NewLinePrompter(os.Stdin, out)
}

func (c *CLI) Run() (err error) {
	cfg := config.Default()

	if c.Config != "" {
		if cfg, err = config.Load(c.Config); err != nil {
			return err
		}
	}

	out := console.New(os.Stdout, logPrefix, console.IsTerminal(os.Stdout))

	defer func() {
		if err1 := out.FlushLogs(os.Stderr); err1 != nil && err == nil {
			err = fmt.Errorf("failed to flush logs: %w", err1)
		}
	}()

	out.Warn()

	root := c.Root

	if root == "" {
		var debug io.Writer

		if c.DebugLog != "" {
			fd, err := os.OpenFile(c.DebugLog, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
			if err != nil {
				return fmt.Errorf("failed to open debug log %q: %w", c.DebugLog, err)
			}

			defer func() { _ = fd.Close() }()

			debug = fd
		}

		if root, err = c.prompter(out, debug).Prompt(prompt.RootQuestion); err != nil {
			return err
		}
	}

	var logger cleaner.Logger

	if c.Verbose {
		logger = out
	}

	cl := cleaner.NewCleaner(cfg, out, logger)
	cl.DryRun = c.DryRun

	summary, err := cl.Run(context.Background(), root)
	if err != nil {
		return err
	}

	if c.Verbose {
		out.Printf("%d folders, %d files, %d keys prefixed, %d keys re-indented\n", summary.Folders, summary.Files, summary.Prefixed, summary.Reindented)
	}

	return nil
}

func main() {
	var cli CLI

	ctx := kong.Parse(
		&cli,
		kong.Name("toolkit-clean-yml"),
		kong.Description("Rewrite the info.yml and gt.yml files of a pose dataset in place so that YAML 1.0 readers accept them."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version.FromBuildInfo()},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
