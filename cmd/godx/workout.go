package godx

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Lodziarka/GOD-X/internal/service"
	"github.com/Lodziarka/GOD-X/internal/store"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Run workout sessions and review history and records",
}

var workoutStartCmd = &cobra.Command{
	Use:   "start <plan-id>",
	Short: "Start a workout session from a plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			session, err := service.StartWorkout(st, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started %s with %d exercises\n", session.Name, len(session.Exercises))
			return nil
		})
	},
}

var (
	setExercise int
	setIndex    int
	setWeight   float64
	setReps     int
)

var workoutSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update a set of the active session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("weight") && !cmd.Flags().Changed("reps") {
			return fmt.Errorf("nothing to update: pass --weight and/or --reps")
		}
		return withStore(func(st *store.Store) error {
			if cmd.Flags().Changed("weight") {
				if err := service.SetWeight(st, setExercise, setIndex, setWeight); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("reps") {
				if err := service.SetReps(st, setExercise, setIndex, setReps); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated exercise %d set %d\n", setExercise, setIndex)
			return nil
		})
	},
}

var workoutAddSetCmd = &cobra.Command{
	Use:   "add-set",
	Short: "Add a set to an exercise of the active session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := service.AddSet(st, setExercise); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added set to exercise %d\n", setExercise)
			return nil
		})
	},
}

var workoutRemoveSetCmd = &cobra.Command{
	Use:   "remove-set",
	Short: "Remove a set from an exercise of the active session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := service.RemoveSet(st, setExercise, setIndex); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed set %d from exercise %d\n", setIndex, setExercise)
			return nil
		})
	},
}

var workoutStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			session := st.Active()
			if session == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No workout in progress")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Active: %s (started %s)\n", session.Name, session.Date.Local().Format("15:04"))
			for i, ex := range session.Exercises {
				fmt.Fprintf(cmd.OutOrStdout(), "[%d] %s\n", i, exerciseName(cat, ex.ExerciseID))
				for j, set := range ex.Sets {
					fmt.Fprintf(cmd.OutOrStdout(), "    set %d: %.1f kg x %d\n", j, set.WeightKg, set.Reps)
				}
			}
			return nil
		})
	},
}

var workoutCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Discard the active session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := service.CancelWorkout(st); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Workout discarded")
			return nil
		})
	},
}

var workoutFinishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Finish the active session and update personal records",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			summary, err := service.FinishWorkout(st)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Finished %s\n", summary.Session.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Total volume: %.0f kg\n", summary.TotalVolumeKg)
			for _, id := range summary.NewRecordExerciseIDs {
				fmt.Fprintf(cmd.OutOrStdout(), "New record: %s\n", exerciseName(cat, id))
			}
			return nil
		})
	},
}

var workoutHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List finished sessions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			sessions := st.Sessions()
			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sessions yet")
				return nil
			}
			for i := len(sessions) - 1; i >= 0; i-- {
				s := sessions[i]
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d exercises\n",
					s.ID, s.Date.Local().Format("2006-01-02"), s.Name, len(s.Exercises))
			}
			return nil
		})
	},
}

var workoutRecordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show personal records",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			records := st.Records()
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No records yet")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "EXERCISE\tWEIGHT\tDATE")
			for _, r := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f kg\t%s\n",
					exerciseName(cat, r.ExerciseID), r.WeightKg, r.Date.Local().Format("2006-01-02"))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutStartCmd, workoutSetCmd, workoutAddSetCmd, workoutRemoveSetCmd,
		workoutStatusCmd, workoutCancelCmd, workoutFinishCmd, workoutHistoryCmd, workoutRecordsCmd)

	for _, c := range []*cobra.Command{workoutSetCmd, workoutAddSetCmd, workoutRemoveSetCmd} {
		c.Flags().IntVar(&setExercise, "exercise", 0, "Exercise index in the session")
	}
	for _, c := range []*cobra.Command{workoutSetCmd, workoutRemoveSetCmd} {
		c.Flags().IntVar(&setIndex, "set", 0, "Set index within the exercise")
	}
	workoutSetCmd.Flags().Float64Var(&setWeight, "weight", 0, "Weight in kg")
	workoutSetCmd.Flags().IntVar(&setReps, "reps", 0, "Repetitions")
}
