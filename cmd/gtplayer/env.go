package main

import (
	"fmt"
	"sort"

	"github.com/genricoloni/gtplayer/internal/config"
	"github.com/genricoloni/gtplayer/internal/glenv"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the GL environment the player would export",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		detector := glenv.NewDetector(zap.NewNop(), afero.NewOsFs())
		return printEnv(cmd, detector, settings.GetString(config.KeyGLAPI))
	},
}

func printEnv(cmd *cobra.Command, detector *glenv.Detector, api string) error {
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "session=%s vendor=%s\n", detector.Session(), detector.Vendor()); err != nil {
		return err
	}

	plan := detector.Plan(api)
	keys := lo.Keys(plan)
	sort.Strings(keys)
	for _, key := range keys {
		if _, err := fmt.Fprintf(out, "%s=%s\n", key, plan[key]); err != nil {
			return err
		}
	}
	return nil
}
