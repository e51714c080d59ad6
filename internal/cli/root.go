package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/GustavoCaso/expensetracker/internal/config"
	"github.com/GustavoCaso/expensetracker/internal/logger"
	"github.com/GustavoCaso/expensetracker/internal/shell"
	"github.com/GustavoCaso/expensetracker/internal/storage/csvfile"
	"github.com/GustavoCaso/expensetracker/internal/util"
)

const (
	defaultConfigPath = "expensetracker.toml"
	envFilePath       = ".env"
)

func Execute() {
	cmd := NewRootCommand(os.Stdin, os.Stdout)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	var configPath string
	var file string
	var debug bool

	cmd := &cobra.Command{
		Use:          "expensetracker",
		Short:        "Personal expense tracker with a monthly budget",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadEnvFile(envFilePath); err != nil {
				return err
			}

			conf, err := config.Parse(configPath)
			if err != nil {
				return err
			}

			if file != "" {
				conf.File = file
			}
			if debug {
				conf.Logger.Level = logger.LevelDebug
				conf.Logger.Output = "stderr"
			}
			if conf.NoColor {
				util.DisableColors()
			}

			appLogger := logger.New(conf.Logger)
			defer appLogger.Close()

			appLogger.Debug("Using expenses file", "path", conf.File)

			sh := shell.New(in, out, csvfile.New(conf.File, appLogger), appLogger, shell.Options{
				Currency:          conf.Currency,
				ThousandSeparator: conf.ThousandSeparator,
				DecimalSeparator:  conf.DecimalSeparator,
			})

			err = sh.Run(cmd.Context())
			if err != nil {
				appLogger.Error("Expense tracker stopped", "error", err)
			}

			return err
		},
	}

	cmd.SetIn(in)
	cmd.SetOut(out)

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "configuration file")
	cmd.Flags().StringVarP(&file, "file", "f", "", "expenses file (defaults to expenses.csv)")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging to stderr")

	return cmd
}
