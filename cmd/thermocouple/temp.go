package main

import (
	"fmt"

	"github.com/arloliu/go-thermocouple/units"
	"github.com/spf13/cobra"
)

type tempOptions struct {
	kind kindValue
	ref  string
	unit unitValue
}

func newTempCommand(root *rootOptions) *cobra.Command {
	opts := &tempOptions{unit: "C"}

	cmd := &cobra.Command{
		Use:   "temp <voltage>",
		Short: "Print the hot-junction temperature for a measured voltage",
		Long: `Print the hot-junction temperature for a voltage measured against the reference junction.

The voltage is in millivolts, with or without the "mV" suffix. Negative voltages may be given
directly or after a "--" terminator.`,
		Example: `  thermocouple temp --type K --ref 25C 1.1mV
  thermocouple temp --type K --ref 0C -1.527mV
  thermocouple temp --type J --ref 32F --unit F -- 5.269`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := units.ParseMillivolts(args[0])
			if err != nil {
				return err
			}

			tc, err := root.thermocouple(opts.kind.Kind(), opts.ref)
			if err != nil {
				return err
			}

			t, err := tc.SenseTemperature(v)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), opts.unit.convert(t))
			return err
		},
	}

	addKindFlag(cmd.Flags(), &opts.kind)
	cmd.Flags().StringVar(&opts.ref, "ref", "25C", "Reference-junction temperature, e.g. 25C, 298.15K or 77F")
	cmd.Flags().VarP(&opts.unit, "unit", "u", "Output unit: C, K, F, R or Re")

	return cmd
}
