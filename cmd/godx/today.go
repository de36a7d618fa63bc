package godx

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/Lodziarka/GOD-X/internal/service"
	"github.com/Lodziarka/GOD-X/internal/store"
)

var (
	todayDate string
	todayJSON bool
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake against the adjusted calorie target",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := parseDateOrNow(todayDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			status := service.DailyStatus(st, target)
			if todayJSON {
				b, err := json.MarshalIndent(status, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", status.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "Remaining: %d kcal\n", status.Remaining)
			fmt.Fprintf(cmd.OutOrStdout(), "Intake: %d kcal of %d (target %d + activity)\n", status.Totals.Calories, status.AdjustedTarget, status.TargetCalories)
			fmt.Fprintf(cmd.OutOrStdout(), "Macros: P %.1fg/%.0fg | C %.1fg/%.0fg | F %.1fg/%.0fg\n",
				status.Totals.ProteinG, status.TargetProteinG,
				status.Totals.CarbsG, status.TargetCarbsG,
				status.Totals.FatG, status.TargetFatG)
			if math.IsInf(status.Progress, 1) {
				fmt.Fprintf(cmd.OutOrStdout(), "Progress: %s\n", status.Band)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Progress: %.0f%% (%s)\n", status.Progress*100, status.Band)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
	todayCmd.Flags().BoolVar(&todayJSON, "json", false, "Print as JSON")
}
