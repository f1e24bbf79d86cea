package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Surfer12/microarch-lab-conversions/internal/challenge"
	"github.com/Surfer12/microarch-lab-conversions/internal/store"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit the result of an exercise solved outside the app",
	Long: `Submit records a solving time and error rate against the saved learning
state, applying the same difficulty transition a play session would.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		solvingTime, _ := cmd.Flags().GetFloat64("time")
		errorRate, _ := cmd.Flags().GetFloat64("error-rate")
		levelName, _ := cmd.Flags().GetString("level")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		state, err := loadState(ctx, st.SnapshotRepo())
		if err != nil {
			return err
		}

		level := state.Level
		if levelName != "" {
			level, err = challenge.ParseLevel(levelName)
			if err != nil {
				return err
			}
		}

		// The exercise was solved offline, so generate a stand-in
		// challenge at the reported level to carry the result.
		gen := challenge.New(nil)
		ch, err := gen.Generate(challenge.KindBaseConversion, level)
		if err != nil {
			return err
		}

		result := challenge.Result{
			Challenge:   *ch,
			Correct:     errorRate == 0,
			SolvingTime: solvingTime,
			ErrorRate:   errorRate,
		}

		newLevel, err := state.Submit(result)
		if err != nil {
			return err
		}

		snapData, err := state.Snapshot()
		if err != nil {
			return err
		}
		if err := st.SnapshotRepo().Save(ctx, snapData); err != nil {
			return err
		}

		fmt.Printf("Recorded: %.0fs, error rate %.2f, level %s\n", solvingTime, errorRate, level)
		fmt.Printf("New difficulty level: %s\n", newLevel)
		return nil
	},
}

func init() {
	submitCmd.Flags().Float64("time", 0, "Solving time in seconds")
	submitCmd.Flags().Float64("error-rate", 0, "Error rate (0.0 to 1.0)")
	submitCmd.Flags().String("level", "", "Difficulty level the exercise was taken at (defaults to current)")
	submitCmd.MarkFlagRequired("time")
	submitCmd.MarkFlagRequired("error-rate")
}
