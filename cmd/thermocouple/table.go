package main

import (
	"errors"
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/arloliu/go-thermocouple/units"
	"github.com/spf13/cobra"
)

type tableOptions struct {
	kind kindValue
	from float64
	to   float64
	step float64
}

func newTableCommand(root *rootOptions) *cobra.Command {
	opts := &tableOptions{}

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the E(T) reference table of a thermocouple type",
		Long: `Print the thermoelectric voltage against a 0°C reference junction for a range of
temperatures. The range defaults to the published domain of the type.`,
		Example: `  thermocouple table --type K --from 0 --to 100 --step 10`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isFinite(opts.step) || opts.step <= 0 {
				return errors.New("--step must be a positive finite number")
			}

			tc, err := root.thermocouple(opts.kind.Kind(), "0C")
			if err != nil {
				return err
			}

			domain := tc.Table().ForwardDomain()
			from, to := domain.Low, domain.High
			if cmd.Flags().Changed("from") {
				from = opts.from
			}
			if cmd.Flags().Changed("to") {
				to = opts.to
			}
			if !isFinite(from) || !isFinite(to) {
				return fmt.Errorf("--from %g and --to %g must be finite", from, to)
			}
			if from > to {
				return fmt.Errorf("--from %g is above --to %g", from, to)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintf(w, "°C\tmV\t\n")
			for i := 0; ; i++ {
				t := from + float64(i)*opts.step
				if t > to {
					break
				}
				v, err := tc.SenseVoltage(units.Celsius(t))
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%g\t%.3f\t\n", t, float64(v))
			}

			return w.Flush()
		},
	}

	addKindFlag(cmd.Flags(), &opts.kind)
	cmd.Flags().Float64Var(&opts.from, "from", 0, "First temperature in °C (default: lower bound of the published domain)")
	cmd.Flags().Float64Var(&opts.to, "to", 0, "Last temperature in °C (default: upper bound of the published domain)")
	cmd.Flags().Float64Var(&opts.step, "step", 10, "Temperature step in °C")

	return cmd
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
