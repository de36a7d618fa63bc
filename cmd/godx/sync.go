package godx

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Lodziarka/GOD-X/internal/app"
	"github.com/Lodziarka/GOD-X/internal/device"
	"github.com/Lodziarka/GOD-X/internal/model"
	"github.com/Lodziarka/GOD-X/internal/service"
	"github.com/Lodziarka/GOD-X/internal/store"
)

var syncWatch bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull a fresh health snapshot from connected devices",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := app.LoadConfig()
		if err != nil {
			return err
		}
		feed := device.NewFeed(cfg.SyncInterval)
		return withStore(func(st *store.Store) error {
			if len(st.User().ConnectedDevices) == 0 {
				return fmt.Errorf("no devices connected (see 'godx profile device connect')")
			}
			apply := func(snap model.HealthSnapshot) {
				if err := service.ApplyHealthSnapshot(st, snap); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					return
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Synced: %d steps | %.0f kcal active | %d bpm | %.2f km\n",
					snap.Steps, snap.ActiveCalories, snap.HeartRate, snap.DistanceKm)
			}
			apply(feed.SyncNow(st.Health()))
			if !syncWatch {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			fmt.Fprintf(cmd.OutOrStdout(), "Watching every %s, ctrl-c to stop\n", feed.Interval)
			feed.Run(ctx, st.Health, apply)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().BoolVar(&syncWatch, "watch", false, "Keep syncing on an interval until interrupted")
}
