// Package cmd implements the boxview commands.
//
// A root command dispatches to subcommands (view, dump, png). Each
// subcommand parses its own flags.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-drift/boxlayout/cmd/boxview/internal/config"
	"github.com/go-drift/boxlayout/pkg/env"
	"github.com/go-drift/boxlayout/pkg/errors"
)

// Version is set at build time.
var Version = "0.1.0-dev"

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = struct {
	Long        string
	Usage       string
	SubCommands []*Command
}{
	Long: `boxview drives a small widget tree through the boxlayout passes.

Use "boxview <command> --help" for more information about a command.`,
	Usage: "boxview <command> [flags]",
}

var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments. With no arguments it
// starts the interactive view.
func Execute(args []string) error {
	if len(args) == 0 {
		return commands["view"].Run(nil)
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp(os.Stdout)
		return nil
	case "-v", "--version", "version":
		fmt.Printf("boxview version %s\n", Version)
		return nil
	}

	if strings.HasPrefix(args[0], "-") {
		return commands["view"].Run(args)
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
		printHelp(os.Stderr)
		return fmt.Errorf("unknown command: %s", args[0])
	}
	return cmd.Run(args[1:])
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, rootCmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", rootCmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range rootCmd.SubCommands {
		fmt.Fprintf(w, "  %-8s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintf(w, "  %s in the working directory sets the title, theme and image defaults.\n", config.FileName)
}

// newFlagSet returns a flag set for cmd whose usage prints the command's
// long help followed by its flags.
func newFlagSet(cmd *Command) *flag.FlagSet {
	fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintln(out, cmd.Long)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s\n", cmd.Usage)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Flags:")
		fs.PrintDefaults()
	}
	return fs
}

// commonFlags are accepted by every subcommand.
type commonFlags struct {
	theme   string
	verbose bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.theme, "theme", "", "theme YAML file (overrides "+config.FileName+")")
	fs.BoolVar(&c.verbose, "verbose", false, "include stack traces in error reports")
}

// setup resolves the configuration and loads the theme. The returned Env
// is empty when no theme is configured.
func (c *commonFlags) setup() (*config.Resolved, *env.Env, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Resolve(dir)
	if err != nil {
		return nil, nil, err
	}
	if c.theme != "" {
		cfg.Theme = c.theme
	}

	e := env.New()
	if cfg.Theme != "" {
		if e, err = env.LoadFile(cfg.Theme); err != nil {
			return nil, nil, err
		}
	}
	return cfg, e, nil
}

// installErrorHandler routes error reports to w and returns a function
// restoring the previous handler.
func installErrorHandler(w io.Writer, verbose bool) func() {
	return errors.SetHandler(&errors.LogHandler{Out: w, Verbose: verbose})
}
