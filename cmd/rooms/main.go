// Package main provides the rooms command: walk a graph of rooms one door at a time.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/rooms/internal/config"
	"github.com/cory-johannsen/rooms/internal/game/command"
	"github.com/cory-johannsen/rooms/internal/game/session"
	"github.com/cory-johannsen/rooms/internal/game/world"
	"github.com/cory-johannsen/rooms/internal/observability"
	"github.com/cory-johannsen/rooms/internal/scripting"
)

// Exit statuses.
const (
	exitOK      = 0
	exitRuntime = 1
	exitUsage   = 2
)

// exitError carries the process exit status for a failure.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error {
	return &exitError{code: exitUsage, err: err}
}

func main() {
	os.Exit(run(filepath.Base(os.Args[0]), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status.
func run(program string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd(program, stdin, stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	if err == nil {
		return exitOK
	}

	fmt.Fprintln(stderr, err)
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitRuntime
}

func newRootCmd(program string, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var (
		configPath string
		dump       bool
		color      bool
	)

	cmd := &cobra.Command{
		Use:   program + " [roomsfile]",
		Short: "Walk a graph of rooms one door at a time",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return usageError(err)
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return usageError(err)
			}
			if cmd.Flags().Changed("color") {
				cfg.Session.Color = color
			}

			logger, err := observability.NewLoggerTo(cfg.Logging, stderr)
			if err != nil {
				return usageError(fmt.Errorf("initializing logger: %w", err))
			}
			defer func() { _ = logger.Sync() }()

			g, err := loadGraph(args)
			if err != nil {
				logger.Debug("loading rooms failed", zap.Strings("args", args), zap.Error(err))
				return usageError(fmt.Errorf("loading rooms: %w", err))
			}

			if dump {
				data, err := world.MarshalGraphYAML(g)
				if err != nil {
					return &exitError{code: exitRuntime, err: err}
				}
				_, err = stdout.Write(data)
				return err
			}

			opts := []session.Option{
				session.WithLogger(logger),
				session.WithColor(cfg.Session.Color),
				session.WithPrompt(cfg.Session.Prompt),
			}
			if cfg.Scripting.ScriptFile != "" {
				hooks, err := scripting.LoadHooks(cfg.Scripting.ScriptFile, cfg.Scripting.InstructionLimit, logger)
				if err != nil {
					return usageError(err)
				}
				defer hooks.Close()
				opts = append(opts, session.WithEntryHook(hooks))
			}

			nav := session.New(g, stdin, stdout, opts...)
			if err := nav.Run(cmd.Context()); err != nil {
				return &exitError{code: exitRuntime, err: err}
			}
			return nil
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})
	cmd.SetUsageTemplate("Usage: " + program + " [roomsfile]\n\n" +
		"Commands (first character of each line):\n" + command.DefaultRegistry().Help() + "\n" +
		"Flags:\n{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}\n")
	cmd.SetHelpTemplate("{{.UsageString}}")

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "path to YAML configuration file")
	flags.BoolVar(&dump, "dump", false, "print the loaded rooms as YAML and exit")
	flags.BoolVar(&color, "color", false, "colorize game output")

	return cmd
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}

func loadGraph(args []string) (*world.Graph, error) {
	if len(args) == 0 {
		return world.DefaultGraph(), nil
	}
	return world.LoadGraphFromFile(args[0])
}
