package godx

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Lodziarka/GOD-X/internal/provider/foodlens"
	"github.com/Lodziarka/GOD-X/internal/service"
	"github.com/Lodziarka/GOD-X/internal/store"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log, list, and look up meals",
}

var (
	mealName     string
	mealCalories string
	mealProtein  string
	mealCarbs    string
	mealFat      string
)

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a meal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			meal, err := service.LogMeal(st, service.LogMealInput{
				Name:     mealName,
				Calories: mealCalories,
				Protein:  mealProtein,
				Carbs:    mealCarbs,
				Fat:      mealFat,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%d kcal) as %s\n", meal.Name, meal.Calories, meal.ID)
			return nil
		})
	},
}

var mealListDate string

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List meals for a day, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDateOrNow(mealListDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			totals := service.TotalsForDay(st.Meals(), day)
			meals := service.MealsForDay(st.Meals(), day)
			sort.SliceStable(meals, func(i, j int) bool { return meals[i].LoggedAt.After(meals[j].LoggedAt) })

			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTIME\tNAME\tKCAL\tP\tC\tF")
			for _, m := range meals {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\t%.1f\t%.1f\t%.1f\n",
					m.ID, m.LoggedAt.Local().Format("15:04"), m.Name, m.Calories, m.ProteinG, m.CarbsG, m.FatG)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %d kcal | P %.1fg | C %.1fg | F %.1fg\n",
				totals.Calories, totals.ProteinG, totals.CarbsG, totals.FatG)
			return nil
		})
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a logged meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := service.DeleteMeal(st, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted meal %s\n", args[0])
			return nil
		})
	},
}

var (
	mealPick   int
	mealWeight float64
	mealLog    bool
)

var mealSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the food database and optionally log a result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := lookupClient()
		if err != nil {
			return err
		}
		lookup := service.NewLookup(client)
		results := make(chan service.LookupResult, 1)
		lookup.Search(cmd.Context(), args[0], func(r service.LookupResult) { results <- r })
		res := <-results
		if res.Err != nil {
			return res.Err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "#\tNAME\tKCAL/100G\tP\tC\tF")
		for i, c := range res.Candidates {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%.0f\t%.1f\t%.1f\t%.1f\n", i, c.Name, c.Calories, c.ProteinG, c.CarbsG, c.FatG)
		}
		if !mealLog {
			return nil
		}
		if mealPick < 0 || mealPick >= len(res.Candidates) {
			return fmt.Errorf("--pick %d is out of range (0-%d)", mealPick, len(res.Candidates)-1)
		}
		return logDraft(cmd, res.Candidates[mealPick])
	},
}

var mealScanCmd = &cobra.Command{
	Use:   "scan <image-file>",
	Short: "Recognize a food photo and optionally log the match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		image, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read image %s: %w", args[0], err)
		}
		client, err := lookupClient()
		if err != nil {
			return err
		}
		lookup := service.NewLookup(client)
		results := make(chan service.LookupResult, 1)
		lookup.Recognize(cmd.Context(), image, func(r service.LookupResult) { results <- r })
		res := <-results
		if res.Err != nil {
			return res.Err
		}

		c := res.Candidates[0]
		fmt.Fprintf(cmd.OutOrStdout(), "Recognized: %s (%.0f kcal/100g)\n", c.Name, c.Calories)
		if !mealLog {
			return nil
		}
		return logDraft(cmd, c)
	},
}

func logDraft(cmd *cobra.Command, candidate foodlens.Candidate) error {
	draft := service.DraftFromBasis(service.BasisFromCandidate(candidate))
	if err := draft.SetWeight(mealWeight); err != nil {
		return err
	}
	return withStore(func(st *store.Store) error {
		meal, err := service.LogMeal(st, draft.LogInput())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Logged %s at %sg: %d kcal (P %.1f C %.1f F %.1f)\n",
			meal.Name, strconv.FormatFloat(draft.WeightG, 'f', -1, 64), meal.Calories, meal.ProteinG, meal.CarbsG, meal.FatG)
		return nil
	})
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealAddCmd, mealListCmd, mealDeleteCmd, mealSearchCmd, mealScanCmd)

	mealAddCmd.Flags().StringVar(&mealName, "name", "", "Meal name")
	mealAddCmd.Flags().StringVar(&mealCalories, "calories", "", "Calories (kcal)")
	mealAddCmd.Flags().StringVar(&mealProtein, "protein", "", "Protein (g)")
	mealAddCmd.Flags().StringVar(&mealCarbs, "carbs", "", "Carbs (g)")
	mealAddCmd.Flags().StringVar(&mealFat, "fat", "", "Fat (g)")

	mealListCmd.Flags().StringVar(&mealListDate, "date", "", "Date YYYY-MM-DD (default today)")

	mealSearchCmd.Flags().IntVar(&mealPick, "pick", 0, "Result index to log")
	for _, c := range []*cobra.Command{mealSearchCmd, mealScanCmd} {
		c.Flags().Float64Var(&mealWeight, "weight", 100, "Serving weight in grams")
		c.Flags().BoolVar(&mealLog, "log", false, "Log the result as a meal")
	}
}
