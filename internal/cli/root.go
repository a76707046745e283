package cli

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries state resolved once per invocation by the root command.
type app struct {
	v       *viper.Viper
	cfgFile string
	log     *zap.SugaredLogger
	calc    calculator
}

// NewRootCmd returns the modop command tree with a fresh viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "modop",
		Short:         "Modular arithmetic, number theory and combinatorics",
		Long:          "modop evaluates modular integer expressions at a chosen integer width.\nPass negative operands after --, e.g. modop div -- -3 4.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "optional YAML config file")
	bindFlags(a.v, root.PersistentFlags())

	root.AddCommand(
		a.binaryCmd("div A B", "Divide A by B", calculator.div),
		a.binaryCmd("pow A N", "Raise A to the non-negative power N", calculator.pow),
		a.unaryCmd("inv A", "Modular inverse of A", calculator.inv),
		a.binaryCmd("gcd A B", "GCD with Bezout coefficients, and LCM, of A and B", calculator.gcd),
		a.unaryCmd("fact N", "N! modulo the modulus", calculator.fact),
		a.binaryCmd("perm N R", "N! · (R!)⁻¹ modulo the modulus", calculator.perm),
		a.binaryCmd("comb N R", "Unordered selections of R out of N", calculator.comb),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = logger.Sugar()
	a.log.Debugw("configuration loaded", "modulus", cfg.Modulus, "type", cfg.Type, "max-index", cfg.MaxIndex)

	a.calc, err = calculators[cfg.Type](cfg, a.log)

	return err
}

func (a *app) unaryCmd(use, short string, op func(calculator, string) ([]string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func() ([]string, error) { return op(a.calc, args[0]) })
		},
	}
}

func (a *app) binaryCmd(use, short string, op func(calculator, string, string) ([]string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func() ([]string, error) { return op(a.calc, args[0], args[1]) })
		},
	}
}

func (a *app) run(cmd *cobra.Command, f func() ([]string, error)) error {
	defer a.log.Sync()

	lines, err := guard(a.log, f)
	if err != nil {
		return errors.WithMessage(err, cmd.Name())
	}
	for _, line := range lines {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}

	return nil
}

// guard turns a contract-violation panic raised by the library into an
// error. Runtime errors and panics that do not carry an error are not ours
// and propagate.
func guard(log *zap.SugaredLogger, f func() ([]string, error)) (lines []string, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, bug := r.(runtime.Error); bug {
			panic(r)
		}
		perr, ok := r.(error)
		if !ok {
			panic(r)
		}
		log.Errorw("operation aborted", "error", perr)
		err = errors.Wrap(perr, "aborted")
	}()

	return f()
}
