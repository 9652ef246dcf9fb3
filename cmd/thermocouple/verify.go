package main

import (
	"fmt"

	"github.com/arloliu/go-thermocouple/its90"
	"github.com/arloliu/go-thermocouple/nisttab"
	"github.com/arloliu/go-thermocouple/units"
	"github.com/spf13/cobra"
)

type verifyOptions struct {
	kind    kindValue
	verbose bool
}

func newVerifyCommand(root *rootOptions) *cobra.Command {
	opts := &verifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify <file.tab>",
		Short: "Check the reference functions against a NIST ITS-90 table",
		Long: `Check E(T) against every voltage of a NIST ITS-90 table file and T(E(t)) against every
temperature of the table inside the certified inverse range.

The tolerances follow the configured precision. The command fails when any point is out of
tolerance.`,
		Example: `  thermocouple verify --type K type_k.tab
  thermocouple --precision single verify --type J type_j.tab`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := nisttab.ReadFile(args[0])
			if err != nil {
				return err
			}

			tc, err := root.thermocouple(opts.kind.Kind(), "0C")
			if err != nil {
				return err
			}

			voltTol, tempTol := its90.Tolerance(tc.Precision())
			certified := tc.Table().InverseTemperatureRange()

			forward := func(t units.Celsius) (units.Millivolts, error) { return tc.SenseVoltage(t) }
			within := func(t units.Celsius) bool { return certified.Contains(float64(t)) }

			reports := []struct {
				name   string
				report *nisttab.Report
			}{
				{"E(T)", nisttab.CheckForward(points, forward, voltTol)},
				{"T(E)", nisttab.CheckRoundTrip(points, forward, tc.SenseTemperature, within, tempTol)},
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, r := range reports {
				if opts.verbose || !r.report.OK() {
					fmt.Fprintf(out, "%s %s: %s\n", tc.Table().Name(), r.name, r.report)
				} else {
					fmt.Fprintf(out, "%s %s: checked %d points, max deviation %.6f, tolerance %g, ok\n",
						tc.Table().Name(), r.name, r.report.Checked, r.report.MaxDeviation, r.report.Tolerance)
				}
				failed += len(r.report.Failures)
			}

			if failed > 0 {
				return fmt.Errorf("%s: %d points out of tolerance", args[0], failed)
			}

			return nil
		},
	}

	addKindFlag(cmd.Flags(), &opts.kind)
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print the full reports")

	return cmd
}
