package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"employeedir/config"
	"employeedir/server"
)

func newServerCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	var filterYear int
	serverCmd := &cobra.Command{
		Use:   "server",
		Short: "Consume directory commands from the queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig()
			if err != nil {
				return err
			}
			if filterYear != 0 {
				conf.Directory.FilterYear = filterYear
			}

			srv, err := server.NewServer(conf)
			if err != nil {
				return fmt.Errorf("server not started: %w", err)
			}
			defer srv.Cancel()
			go cancelOnSignal(srv.Cancel)

			return srv.StartServer()
		},
	}
	serverCmd.Flags().IntVar(&filterYear, "filter-year", 0, "default hire year for ApplyFilter")
	return serverCmd
}

func cancelOnSignal(cancel func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	<-signals
	cancel()
}
