package godx

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lodziarka/GOD-X/internal/service"
	"github.com/Lodziarka/GOD-X/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the user profile, goals, and connected devices",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile and current targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			user := st.User()
			health := st.Health()
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", user.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Targets: %d kcal | P %.0fg | C %.0fg | F %.0fg\n",
				user.TargetCalories, user.TargetProteinG, user.TargetCarbsG, user.TargetFatG)
			if len(user.ConnectedDevices) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Devices: none")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Devices: %s\n", strings.Join(user.ConnectedDevices, ", "))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Health: %d steps | %.0f kcal active | %d bpm | %.2f km (synced %s)\n",
				health.Steps, health.ActiveCalories, health.HeartRate, health.DistanceKm,
				health.LastSync.Local().Format("2006-01-02 15:04"))
			return nil
		})
	},
}

var (
	profileName   string
	profileAvatar string
)

var profileRenameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Change the display name",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := service.RenameProfile(st, profileName, profileAvatar); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed profile to %s\n", strings.TrimSpace(profileName))
			return nil
		})
	},
}

var (
	goalCalories int
	goalProtein  float64
	goalCarbs    float64
	goalFat      float64
)

var profileGoalsCmd = &cobra.Command{
	Use:   "set-goals",
	Short: "Set daily calorie and macro targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			in := service.GoalsInput{
				Calories: goalCalories,
				ProteinG: goalProtein,
				CarbsG:   goalCarbs,
				FatG:     goalFat,
			}
			if err := service.UpdateGoals(st, in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Targets set: %d kcal | P %.0fg | C %.0fg | F %.0fg\n",
				in.Calories, in.ProteinG, in.CarbsG, in.FatG)
			return nil
		})
	},
}

var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Manage connected devices",
}

var deviceConnectCmd = &cobra.Command{
	Use:   "connect <id>",
	Short: "Connect a device (apple, garmin, samsung)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := service.ConnectDevice(st, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Connected %s\n", args[0])
			return nil
		})
	},
}

var deviceDisconnectCmd = &cobra.Command{
	Use:   "disconnect <id>",
	Short: "Disconnect a device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := service.DisconnectDevice(st, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Disconnected %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd, profileRenameCmd, profileGoalsCmd, deviceCmd)
	deviceCmd.AddCommand(deviceConnectCmd, deviceDisconnectCmd)

	profileRenameCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileRenameCmd.Flags().StringVar(&profileAvatar, "avatar", "", "Avatar reference")

	profileGoalsCmd.Flags().IntVar(&goalCalories, "calories", 0, "Daily calorie target (kcal)")
	profileGoalsCmd.Flags().Float64Var(&goalProtein, "protein", 0, "Daily protein target (g)")
	profileGoalsCmd.Flags().Float64Var(&goalCarbs, "carbs", 0, "Daily carbs target (g)")
	profileGoalsCmd.Flags().Float64Var(&goalFat, "fat", 0, "Daily fat target (g)")
}
