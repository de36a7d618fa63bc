package godx

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lodziarka/GOD-X/internal/service"
	"github.com/Lodziarka/GOD-X/internal/store"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage workout plans",
}

var (
	planName      string
	planExercises []string
)

var planCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a workout plan from catalog exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		for _, id := range planExercises {
			if _, ok := cat.Get(id); !ok {
				return fmt.Errorf("unknown exercise %q (see 'godx plan exercises')", id)
			}
		}
		return withStore(func(st *store.Store) error {
			plan, err := service.CreatePlan(st, planName, planExercises)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created plan %s (%s) with %d exercises\n", plan.Name, plan.ID, len(plan.Exercises))
			return nil
		})
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workout plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			plans := st.Plans()
			if len(plans) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No plans yet")
				return nil
			}
			for _, p := range plans {
				names := make([]string, 0, len(p.Exercises))
				for _, id := range p.Exercises {
					names = append(names, exerciseName(cat, id))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", p.ID, p.Name, strings.Join(names, ", "))
			}
			return nil
		})
	},
}

var planDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a workout plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := service.DeletePlan(st, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted plan %s\n", args[0])
			return nil
		})
	},
}

var planExercisesCmd = &cobra.Command{
	Use:   "exercises [query]",
	Short: "Browse the exercise catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		matches := cat.Search(query)
		if len(matches) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No exercises match")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tCATEGORY")
		for _, ex := range matches {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", ex.ID, ex.Name, ex.Category)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.AddCommand(planCreateCmd, planListCmd, planDeleteCmd, planExercisesCmd)

	planCreateCmd.Flags().StringVar(&planName, "name", "", "Plan name")
	planCreateCmd.Flags().StringArrayVar(&planExercises, "exercise", nil, "Exercise id (repeatable, order kept, duplicates allowed)")
}
