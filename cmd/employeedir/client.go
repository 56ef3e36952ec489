package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"employeedir/client"
	"employeedir/config"
)

func newClientCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	var inputPath string
	clientCmd := &cobra.Command{
		Use:   "client",
		Short: "Send <clientId> <item> lines from stdin or a file to the queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig()
			if err != nil {
				return err
			}
			if inputPath != "" {
				conf.ClientsInputPath = inputPath
			}

			manager, err := client.NewClientsManager(conf, newLogger("client", conf))
			if err != nil {
				return fmt.Errorf("clients manager not started: %w", err)
			}
			defer manager.Cancel()
			go cancelOnSignal(manager.Cancel)

			return manager.ListenClientActions()
		},
	}
	clientCmd.Flags().StringVar(&inputPath, "input", "", "read client lines from this file instead of stdin")
	return clientCmd
}
