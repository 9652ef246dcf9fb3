package main

import (
	"io"
	"strings"

	"github.com/arloliu/go-thermocouple/its90"
	"github.com/arloliu/go-thermocouple/logger"
	"github.com/arloliu/go-thermocouple/thermocouple"
	"github.com/arloliu/go-thermocouple/units"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type rootOptions struct {
	configFile string
	precision  string
	domain     string
	logLevel   string

	cfg *thermocouple.Config
}

func newRootCommand(out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "thermocouple",
		Short:         "Convert between thermocouple voltages and temperatures (NIST ITS-90)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.complete()
		},
	}
	cmd.SetOut(out)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "Path to a YAML configuration file")
	flags.StringVar(&opts.precision, "precision", "", "Coefficient precision: double or single (overrides the configuration)")
	flags.StringVar(&opts.domain, "domain", "", "Domain mode: strict or extrapolate (overrides the configuration)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn or error")

	cmd.AddCommand(
		newTempCommand(opts),
		newVoltCommand(opts),
		newTableCommand(opts),
		newVerifyCommand(opts),
	)

	return cmd
}

// complete sets up logging and resolves the configuration from the file, the environment and
// the command-line flags, in increasing priority.
func (o *rootOptions) complete() error {
	level, err := logger.ParseLevel(o.logLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)

	var flagOpts []thermocouple.Option
	if o.precision != "" {
		p, err := its90.ParsePrecision(o.precision)
		if err != nil {
			return err
		}
		flagOpts = append(flagOpts, thermocouple.WithPrecision(p))
	}
	if o.domain != "" {
		mode, err := its90.ParseDomainMode(o.domain)
		if err != nil {
			return err
		}
		flagOpts = append(flagOpts, thermocouple.WithDomainMode(mode))
	}

	cfg, err := thermocouple.LoadConfigFile(o.configFile, flagOpts...)
	if err != nil {
		return err
	}
	o.cfg = cfg
	logger.Debug("configuration resolved", "config", cfg.String())

	return nil
}

// thermocouple creates a thermocouple of the given type with the reference junction at ref.
func (o *rootOptions) thermocouple(kind its90.Kind, ref string) (thermocouple.Thermocouple, error) {
	tc, err := o.cfg.New(kind)
	if err != nil {
		return tc, err
	}
	if ref == "" {
		return tc, nil
	}

	refTemp, err := parseTemperature(ref)
	if err != nil {
		return tc, err
	}

	return tc.WithReferenceTemperature(refTemp)
}

// execute runs cmd with the given command-line arguments.
func execute(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(escapeNegativeArgs(cmd, args))
	return cmd.Execute()
}

// escapeNegativeArgs moves positional arguments behind a "--" terminator when one of them is a
// negative quantity such as "-40C" or "-1.527mV", which pflag would otherwise read as a shorthand
// flag. Flag values like "--from -200" stay in place.
func escapeNegativeArgs(root *cobra.Command, args []string) []string {
	cmd, rest, err := root.Find(args)
	if err != nil || cmd == root {
		return args
	}

	var flagArgs, positional []string
	negative := false
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		if arg == "--" {
			positional = append(positional, rest[i+1:]...)
			break
		}

		if strings.HasPrefix(arg, "-") && !isQuantity(arg) {
			flagArgs = append(flagArgs, arg)
			if takesValue(cmd, arg) && i+1 < len(rest) {
				i++
				flagArgs = append(flagArgs, rest[i])
			}

			continue
		}

		if strings.HasPrefix(arg, "-") {
			negative = true
		}
		positional = append(positional, arg)
	}

	if !negative {
		return args
	}

	escaped := strings.Fields(strings.TrimPrefix(cmd.CommandPath(), root.Name()))
	escaped = append(escaped, flagArgs...)
	escaped = append(escaped, "--")

	return append(escaped, positional...)
}

func isQuantity(arg string) bool {
	if _, err := units.ParseMillivolts(arg); err == nil {
		return true
	}
	_, err := units.ParseTemperature(arg)

	return err == nil
}

// takesValue reports whether arg is a flag expecting its value in the next argument.
func takesValue(cmd *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	var flag *pflag.Flag
	switch {
	case strings.HasPrefix(arg, "--"):
		name := arg[2:]
		if flag = cmd.Flags().Lookup(name); flag == nil {
			flag = cmd.InheritedFlags().Lookup(name)
		}
	case len(arg) == 2:
		name := arg[1:]
		if flag = cmd.Flags().ShorthandLookup(name); flag == nil {
			flag = cmd.InheritedFlags().ShorthandLookup(name)
		}
	}

	return flag != nil && flag.NoOptDefVal == ""
}
