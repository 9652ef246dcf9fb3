package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type voltOptions struct {
	kind kindValue
	ref  string
}

func newVoltCommand(root *rootOptions) *cobra.Command {
	opts := &voltOptions{}

	cmd := &cobra.Command{
		Use:   "volt <temperature>",
		Short: "Print the voltage expected for a hot-junction temperature",
		Long: `Print the voltage expected across the thermocouple when the hot junction is at the given
temperature and the reference junction at --ref.

Temperatures without a unit suffix are in Celsius.`,
		Example: `  thermocouple volt --type K 100C
  thermocouple volt --type T --ref 0C -200C
  thermocouple volt --type T --ref 0C 373.15K`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseTemperature(args[0])
			if err != nil {
				return err
			}

			tc, err := root.thermocouple(opts.kind.Kind(), opts.ref)
			if err != nil {
				return err
			}

			v, err := tc.SenseVoltage(t)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}

	addKindFlag(cmd.Flags(), &opts.kind)
	cmd.Flags().StringVar(&opts.ref, "ref", "25C", "Reference-junction temperature, e.g. 25C, 298.15K or 77F")

	return cmd
}
