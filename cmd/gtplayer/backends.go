package main

import (
	"fmt"

	"github.com/genricoloni/gtplayer/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List the available player backends",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		selected := settings.GetString(config.KeyBackend)
		for _, name := range availableBackends() {
			marker := " "
			if name == selected {
				marker = "*"
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name); err != nil {
				return err
			}
		}
		return nil
	},
}

func availableBackends() []string {
	return newRegistry(zap.NewNop()).Names()
}
