package godx

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "godx",
	Short: "godx tracks meals, workouts, and personal records from your terminal",
	Long:  "godx is a local-first fitness tracker: log meals against calorie and macro targets, run timed workout sessions from your plans, and keep personal records per exercise.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
