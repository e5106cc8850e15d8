package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yourusername/yctrl/internal/client"
	"github.com/yourusername/yctrl/internal/command"
	"github.com/yourusername/yctrl/internal/config"
	"github.com/yourusername/yctrl/internal/logging"
	"github.com/yourusername/yctrl/internal/models"
	"github.com/yourusername/yctrl/internal/navigate"
	"github.com/yourusername/yctrl/internal/output"
	"github.com/yourusername/yctrl/internal/query"
)

var (
	socketPath string
	configPath string
	timeout    time.Duration
	noColor    bool
	debugMode  bool

	statusJSON bool
	statusMap  bool

	// Color functions
	errorColor = color.New(color.FgRed, color.Bold)
	keyColor   = color.New(color.FgYellow)
)

// rootCmd forwards a yabai command, adding wrap-around for next/prev
var rootCmd = &cobra.Command{
	Use:   "yctrl [flags] <domain> [id] <verb> [operands...] <selector>",
	Short: "yabai client with wrap-around navigation",
	Long: `yctrl sends a command to the yabai window manager socket.

Commands use yabai's syntax without the leading dashes on the verb:

  yctrl window focus next
  yctrl window 1234 swap prev
  yctrl space focus next
  yctrl window space next
  yctrl window inc left
  yctrl query windows --space

When yabai rejects next/prev at the edge of a space or of the space list,
the command wraps around to the other end. Flags must come before the
domain; everything after it is passed to yabai.`,
	Version:       "0.1.0",
	Args:          cobra.MinimumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCommand,
}

// statusCmd shows the focused space and its windows
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the focused space and its windows",
	Long:  `Queries yabai for the focused space and the windows on it and prints them as tables.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c, err := newClient(cfg)
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		retry := navigatorOptions(cfg).Retry
		space, err := query.CurrentSpace(ctx, c, retry)
		if err != nil {
			return fmt.Errorf("failed to query space: %w", err)
		}
		windows, err := query.SpaceWindows(ctx, c, retry)
		if err != nil {
			return fmt.Errorf("failed to query windows: %w", err)
		}

		if statusJSON {
			return printJSON(statusReport{
				Socket:  c.SocketPath(),
				Space:   space,
				Windows: windows,
			})
		}

		keyColor.Print("Socket: ")
		fmt.Println(c.SocketPath())
		fmt.Println()

		output.PrintSpaceTable(os.Stdout, space)
		fmt.Println()

		width, _ := output.TerminalSize()
		output.PrintWindowsTable(os.Stdout, windows, width)

		if statusMap {
			fmt.Println()
			output.PrintMap(os.Stdout, space, windows, output.DefaultMapOptions())
		}
		return nil
	},
}

type statusReport struct {
	Socket  string              `json:"socket"`
	Space   models.SpaceInfo    `json:"space"`
	Windows []models.WindowInfo `json:"windows"`
}

func runCommand(cmd *cobra.Command, args []string) error {
	parsed, err := command.Parse(args)
	if err != nil {
		return fmt.Errorf("invalid command %q: %w", args, err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := newClient(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	logging.Info().Str("cmd", parsed.String()).Str("socket", c.SocketPath()).Msg("running command")

	reply, err := navigate.New(c, navigatorOptions(cfg)).Run(ctx, parsed)
	if err != nil {
		logging.Error().Err(err).Str("cmd", parsed.String()).Msg("command failed")
		return err
	}
	if reply != "" {
		fmt.Println(strings.TrimRight(reply, "\n"))
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&socketPath, "socket", "", "yabai socket path (default /tmp/yabai_$USER.socket)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/yctrl/config.yaml)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Give up after this long (0 waits forever)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	// yabai arguments such as --space must reach the command untouched
	rootCmd.Flags().SetInterspersed(false)

	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format")
	statusCmd.Flags().BoolVar(&statusMap, "map", false, "Also draw the windows of the space")
	rootCmd.AddCommand(statusCmd)

	// Disable color if requested, enable debug logging if requested
	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
		if debugMode {
			logging.SetDebug(true)
		}
	})
}

func main() {
	// Logging is best effort; without a log file the logger stays a no-op
	logging.Init()

	if err := rootCmd.Execute(); err != nil {
		printError(err.Error())
		logging.Close()
		os.Exit(1)
	}
	logging.Close()
}

// Helper functions

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func newClient(cfg *config.Config) (*client.Client, error) {
	path, err := cfg.SocketPath(socketPath)
	if err != nil {
		return nil, fmt.Errorf("cannot determine yabai socket: %w", err)
	}
	return client.NewClient(path), nil
}

func navigatorOptions(cfg *config.Config) navigate.Options {
	return navigate.Options{
		Retry: query.RetryPolicy{
			MaxAttempts: cfg.Query.MaxAttempts,
			Backoff:     cfg.BackoffDuration(),
		},
		ResizeStep:     cfg.Resize.Step,
		HelperSubroles: cfg.Navigation.HelperSubroles,
	}
}

func commandContext() (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(context.Background(), timeout)
	}
	return context.WithCancel(context.Background())
}

func printJSON(data interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printError(msg string) {
	if noColor {
		fmt.Fprintln(os.Stderr, "Error:", msg)
	} else {
		errorColor.Fprint(os.Stderr, "✗ Error: ")
		fmt.Fprintln(os.Stderr, msg)
	}
}
