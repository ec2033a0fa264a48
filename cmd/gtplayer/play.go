package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/genricoloni/gtplayer/internal/config"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const stopTimeout = 5 * time.Second

func init() {
	playCmd.Flags().Float64("volume", 0, "Initial volume between 0 and 1")
	lo.Must0(settings.BindPFlag(config.KeyVolume, playCmd.Flags().Lookup("volume")))

	playCmd.Flags().String("video-sink", "", "GL video sink element; must expose a widget property")
	lo.Must0(settings.BindPFlag(config.KeyVideoSinkElement, playCmd.Flags().Lookup("video-sink")))

	playCmd.Flags().Bool("mpris", true, "Export the player on the session bus")
	lo.Must0(settings.BindPFlag(config.KeyMPRISEnabled, playCmd.Flags().Lookup("mpris")))
}

var playCmd = &cobra.Command{
	Use:   "play [uri]",
	Short: "Play a stream until interrupted",
	Long: `Play a stream until interrupted.

The default gtkglsink renders into a GTK widget and needs an initialized GTK
host to display anything. Without one the pipeline still runs, so this command
is useful for checking playback state, buffering and the MPRIS export. Use
--video-sink to select another sink that exposes a widget property.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := PlayRequest{}
		if len(args) == 1 {
			req.URI = args[0]
		}

		app := fx.New(
			AppOptions,
			fx.Supply(settings, req),
		)
		if err := app.Err(); err != nil {
			return err
		}

		// Handle graceful shutdown
		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		if err := app.Start(ctx); err != nil {
			return err
		}

		<-ctx.Done()

		stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
		defer stopCancel()
		return app.Stop(stopCtx)
	},
}
