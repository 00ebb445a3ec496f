package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/X86-Point5/input-handler/logger"
)

func newIntCmd(o *rootOptions) *cobra.Command {
	var (
		message   string
		lower     int
		upper     int
		exclusive bool
	)

	cmd := &cobra.Command{
		Use:   "int",
		Short: "Prompt for an integer within bounds",
		Example: `  inputhandler int --min 1 --max 10
  inputhandler int --min 0 --max 100 --exclusive --message "Percent: "`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := o.cfg.IntBounds()
			if cmd.Flags().Changed("min") {
				b.Lower = lower
			}
			if cmd.Flags().Changed("max") {
				b.Upper = upper
			}
			if cmd.Flags().Changed("exclusive") {
				b.Exclusive = exclusive
			}
			if b.Lower > b.Upper {
				return fmt.Errorf("--min %d is greater than --max %d", b.Lower, b.Upper)
			}

			n, err := o.prompter(cmd).Integer(message, b)
			if err != nil {
				return err
			}

			o.log.Debug("accepted integer", logger.F("value", n), logger.F("bounds", b))
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Prompt text")
	cmd.Flags().IntVar(&lower, "min", 0, "Lower bound (default from config, 0)")
	cmd.Flags().IntVar(&upper, "max", 0, "Upper bound (default from config, 32767)")
	cmd.Flags().BoolVar(&exclusive, "exclusive", false, "Exclude the bounds themselves")

	return cmd
}

func newFloatCmd(o *rootOptions) *cobra.Command {
	var (
		message   string
		lower     float64
		upper     float64
		exclusive bool
	)

	cmd := &cobra.Command{
		Use:   "float",
		Short: "Prompt for a decimal number within bounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := o.cfg.FloatBounds()
			if cmd.Flags().Changed("min") {
				b.Lower = lower
			}
			if cmd.Flags().Changed("max") {
				b.Upper = upper
			}
			if cmd.Flags().Changed("exclusive") {
				b.Exclusive = exclusive
			}
			if b.Lower > b.Upper {
				return fmt.Errorf("--min %v is greater than --max %v", b.Lower, b.Upper)
			}

			f, err := o.prompter(cmd).Float(message, b)
			if err != nil {
				return err
			}

			o.log.Debug("accepted float", logger.F("value", f), logger.F("bounds", b))
			fmt.Fprintln(cmd.OutOrStdout(), f)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Prompt text")
	cmd.Flags().Float64Var(&lower, "min", 0, "Lower bound (default from config, 0)")
	cmd.Flags().Float64Var(&upper, "max", 0, "Upper bound (default from config, 32767)")
	cmd.Flags().BoolVar(&exclusive, "exclusive", false, "Exclude the bounds themselves")

	return cmd
}

func newCharCmd(o *rootOptions) *cobra.Command {
	var (
		message string
		allowed string
		noFold  bool
	)

	cmd := &cobra.Command{
		Use:   "char",
		Short: "Prompt for a single character",
		Long: `Prompt for a single character. Only the first character of the line is
used. Empty lines are skipped without showing the prompt again.`,
		Example: `  inputhandler char --allowed yn --message "Continue? [y/n] "`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := o.cfg.CharOptions()
			if cmd.Flags().Changed("allowed") {
				opts.Allowed = allowed
			}
			if cmd.Flags().Changed("no-fold") {
				opts.FoldCase = !noFold
			}

			r, err := o.prompter(cmd).Char(message, opts)
			if err != nil {
				return err
			}

			o.log.Debug("accepted character", logger.F("value", string(r)))
			fmt.Fprintln(cmd.OutOrStdout(), string(r))
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Prompt text")
	cmd.Flags().StringVar(&allowed, "allowed", "", "Characters to accept (default any)")
	cmd.Flags().BoolVar(&noFold, "no-fold", false, "Keep the character's case instead of upper-casing")

	return cmd
}

func newDateCmd(o *rootOptions) *cobra.Command {
	var (
		message string
		parts   bool
	)

	cmd := &cobra.Command{
		Use:   "date",
		Short: "Prompt for a MM/DD/YYYY date",
		Long: `Prompt for a calendar date in MM/DD/YYYY form. The date is printed exactly
as typed, or as "month day year" integers with --parts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := o.prompter(cmd)

			if parts {
				month, day, year, err := p.DateParts(message)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d %d %d\n", month, day, year)
				return nil
			}

			s, err := p.DateString(message)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Prompt text")
	cmd.Flags().BoolVar(&parts, "parts", false, "Print month, day and year as integers")

	return cmd
}

func newStringCmd(o *rootOptions) *cobra.Command {
	var (
		message    string
		banned     []string
		errMessage string
	)

	cmd := &cobra.Command{
		Use:     "string",
		Short:   "Prompt for a line of text not on a ban list",
		Example: `  inputhandler string --ban admin --ban root --message "Username: "`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ban := append(append([]string(nil), o.cfg.String.Banned...), banned...)

			errMsg := o.cfg.String.ErrorMessage
			if cmd.Flags().Changed("error-message") {
				errMsg = errMessage
			}

			s, err := o.prompter(cmd).String(message, ban, errMsg)
			if err != nil {
				return err
			}

			o.log.Debug("accepted string", logger.F("length", len(s)))
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Prompt text")
	cmd.Flags().StringArrayVar(&banned, "ban", nil, "Reject this exact value (repeatable)")
	cmd.Flags().StringVar(&errMessage, "error-message", "", "Message shown for a banned value")

	return cmd
}
