package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/X86-Point5/input-handler/internal/config"
)

func newConfigCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(newConfigInitCmd(o), newConfigShowCmd(o))
	return cmd
}

func newConfigInitCmd(o *rootOptions) *cobra.Command {
	var (
		path  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := config.Save(path, config.Default()); err != nil {
				return err
			}

			o.printer.Success("Wrote " + path)
			o.printer.Step("Edit it, or override any key with " + config.EnvPrefix + "_<SECTION>_<KEY>")
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", config.FileName, "Where to write the file")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}

func newConfigShowCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(o.cfg)
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
