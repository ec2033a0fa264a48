package main

import (
	"github.com/genricoloni/gtplayer/internal/config"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// settings is the configuration shared by every command
var settings = viper.New()

func init() {
	flags := rootCmd.PersistentFlags()

	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	lo.Must0(settings.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level")))

	flags.Bool("dev", false, "Use human readable development logging")
	lo.Must0(settings.BindPFlag(config.KeyLogDevelopment, flags.Lookup("dev")))

	flags.StringP("backend", "b", "", "Player backend to use")
	lo.Must0(settings.BindPFlag(config.KeyBackend, flags.Lookup("backend")))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("backend", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return availableBackends(), cobra.ShellCompDirectiveNoFileComp
	}))

	flags.String("gl-api", "", "GL API to request (auto, opengl, gles2)")
	lo.Must0(settings.BindPFlag(config.KeyGLAPI, flags.Lookup("gl-api")))

	rootCmd.AddCommand(playCmd, backendsCmd, envCmd)
}

var rootCmd = &cobra.Command{
	Use:           "gtplayer",
	Short:         "GStreamer OpenGL player backend for streaming video",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Setup(settings, afero.NewOsFs(), config.Dir())
	},
}
