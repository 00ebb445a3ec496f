package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	inputhandler "github.com/X86-Point5/input-handler"
	"github.com/X86-Point5/input-handler/input"
	"github.com/X86-Point5/input-handler/internal/config"
	"github.com/X86-Point5/input-handler/logger"
	"github.com/X86-Point5/input-handler/output"
)

// rootOptions carries persistent flags and the state resolved from them
// before any subcommand runs.
type rootOptions struct {
	verbose    bool
	configPath string
	plain      bool
	echo       string

	cfg     *config.Config
	log     logger.Logger
	printer *output.Printer
}

// RootCmd creates the root command for the inputhandler CLI with every
// subcommand attached.
func RootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "inputhandler",
		Short: "Validated console prompts for shell scripts",
		Long: `inputhandler asks for a value on the terminal and keeps asking until the
answer is valid: an integer or decimal within bounds, a single character
from an allowed set, a MM/DD/YYYY date, or a string not on a ban list.

Prompts and error messages go to stderr; the accepted value is printed
to stdout, so it can be captured:

  age=$(inputhandler int --min 0 --max 130 --message "Age: ")`,
		Version:       inputhandler.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log rejected input and config resolution")
	flags.StringVar(&opts.configPath, "config", "", "Config file (default ./"+config.FileName+")")
	flags.BoolVar(&opts.plain, "plain", false, "Disable colors and styling")
	flags.StringVar(&opts.echo, "echo", "", "Echo consumed lines: auto, always or never (default from config)")

	cmd.AddCommand(
		newIntCmd(opts),
		newFloatCmd(opts),
		newCharCmd(opts),
		newDateCmd(opts),
		newStringCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// Execute runs the CLI and reports a failure on stderr.
func Execute() error {
	cmd := RootCmd()
	if err := cmd.Execute(); err != nil {
		output.NewPrinter(cmd.ErrOrStderr()).Error(err.Error())
		return err
	}
	return nil
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	level := logger.LevelInfo
	if o.verbose {
		level = logger.LevelDebug
	}
	o.log = logger.NewLogger(level, cmd.ErrOrStderr())
	logger.SetDefault(o.log)

	o.printer = output.NewPrinter(cmd.ErrOrStderr())
	o.printer.SetVerbose(o.verbose)
	output.SetVerbose(o.verbose)

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	o.cfg = cfg

	if !o.verbose {
		// Validate already accepted the level name.
		lvl, _ := logger.ParseLevel(cfg.LogLevel)
		o.log.SetLevel(lvl)
	}

	switch o.echo {
	case "", config.EchoAuto, config.EchoAlways, config.EchoNever:
	default:
		return fmt.Errorf("invalid --echo value %q: must be auto, always or never", o.echo)
	}
	return nil
}

// prompter builds a Prompter reading the command's stdin and writing
// prompts to its stderr.
func (o *rootOptions) prompter(cmd *cobra.Command) *input.Prompter {
	in, out := cmd.InOrStdin(), cmd.ErrOrStderr()

	theme := input.DefaultTheme(lipgloss.NewRenderer(out))
	if o.plain || o.cfg.Theme == config.ThemePlain {
		theme = input.PlainTheme()
	}

	echo := o.shouldEcho(in)
	o.log.Debug("prompter ready", logger.F("echo", echo), logger.F("plain", o.plain))

	return input.New(in, out,
		input.WithTheme(theme),
		input.WithLogger(o.log),
		input.WithEcho(echo),
	)
}

// shouldEcho resolves the echo mode. In auto mode lines are echoed unless
// stdin is an interactive terminal, which already shows what was typed.
func (o *rootOptions) shouldEcho(in io.Reader) bool {
	mode := o.cfg.Echo
	if o.echo != "" {
		mode = o.echo
	}

	switch mode {
	case config.EchoAlways:
		return true
	case config.EchoNever:
		return false
	}

	if f, ok := in.(*os.File); ok {
		return !term.IsTerminal(int(f.Fd()))
	}
	return true
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "inputhandler v%s\n", inputhandler.Version)
		},
	}
}
