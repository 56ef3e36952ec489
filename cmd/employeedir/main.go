package main

import (
	"fmt"
	"os"

	"github.com/inconshreveable/log15"
	"github.com/spf13/cobra"

	"employeedir/config"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	rootCmd := &cobra.Command{
		Use:           "employeedir",
		Short:         "Employee directory served over an SQS queue",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML config")

	loadConfig := func() (*config.Config, error) {
		conf, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("config not loaded: %w", err)
		}
		return conf, nil
	}

	rootCmd.AddCommand(
		newServerCmd(loadConfig),
		newClientCmd(loadConfig),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func newLogger(service string, conf *config.Config) log15.Logger {
	lvl, err := log15.LvlFromString(conf.LogLevel)
	if err != nil {
		lvl = log15.LvlDebug
	}
	logger := log15.New("service", service)
	logger.SetHandler(log15.LvlFilterHandler(lvl, log15.StdoutHandler))
	return logger
}
