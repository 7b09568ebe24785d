package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"calc/internal/calculator"
	"calc/internal/config"
	"calc/internal/telemetry"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

// rootCmd reads "<op> <num1> <num2>" and prints the result
var rootCmd = &cobra.Command{
	Use:   "calc [op num1 num2]",
	Short: "Apply + - * / to two numbers",
	Long: `calc reads an operator and two numbers, separated by whitespace,
and prints the result of applying the operator.

Input is read from stdin unless it is given as arguments. Division by zero,
an unknown operator and malformed numbers all print "Error!".

Examples:
  echo "+ 3 4" | calc
  calc '*' 2.5 4
  calc -- - -1 -2`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runCalc,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'calc --help' for usage.")
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging on stderr")
	rootCmd.PersistentFlags().String("log-file", "", "Also append logs to this file")
	rootCmd.Flags().IntP("precision", "p", config.DefaultPrecision, "Significant digits in the result (-1 for shortest)")
	rootCmd.Flags().Bool("no-newline", false, "Do not terminate the result with a newline")
	rootCmd.Flags().String("metrics-file", "", "Write Prometheus metrics in textfile format to this path")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	for _, fs := range []*pflag.FlagSet{rootCmd.PersistentFlags(), rootCmd.Flags()} {
		if err := config.BindFlags(fs); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exit(1)
			return
		}
	}

	if err := config.Load(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
		return
	}

	if err := config.ValidateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
		return
	}
}

func runCalc(cmd *cobra.Command, args []string) error {
	settings := config.Get()

	logger, closeLog := telemetry.NewLogger(cmd.ErrOrStderr(), settings.Verbose, settings.LogFile)
	defer closeLog()
	slog.SetDefault(logger)
	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug("using config file", "path", used)
	}

	var in io.Reader = cmd.InOrStdin()
	if len(args) > 0 {
		in = strings.NewReader(strings.Join(args, " "))
	}

	metrics := telemetry.NewMetrics()
	calc := calculator.New(calculator.Config{
		Precision: settings.Precision,
		Newline:   settings.Newline,
	}, logger, metrics)

	if _, err := calc.Run(in, cmd.OutOrStdout()); err != nil {
		return err
	}

	if settings.MetricsFile != "" {
		if err := metrics.WriteTextfile(settings.MetricsFile); err != nil {
			telemetry.LogError("Failed to export metrics", err, "path", settings.MetricsFile)
		}
	}
	return nil
}
