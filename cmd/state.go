package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Surfer12/microarch-lab-conversions/internal/challenge"
	"github.com/Surfer12/microarch-lab-conversions/internal/learning"
	"github.com/Surfer12/microarch-lab-conversions/internal/store"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show the current learning state",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		if name, _ := cmd.Flags().GetString("reset-level"); name != "" {
			level, err := challenge.ParseLevel(name)
			if err != nil {
				return err
			}
			fresh := learning.NewStateAt(level)
			snapData, err := fresh.Snapshot()
			if err != nil {
				return err
			}
			if err := st.SnapshotRepo().Save(ctx, snapData); err != nil {
				return err
			}
			fmt.Printf("Started a new session at %s\n", level)
			return nil
		}

		state, err := loadState(ctx, st.SnapshotRepo())
		if err != nil {
			return err
		}

		fmt.Printf("Difficulty level:     %s\n", state.Level)
		fmt.Printf("Completed challenges: %d\n", len(state.Completed))

		stats, err := st.AttemptRepo().Stats(ctx)
		if err != nil {
			return err
		}
		if stats.Total > 0 {
			fmt.Printf("Recorded attempts:    %d (%.0f%% correct)\n", stats.Total, stats.Accuracy*100)
		}
		return nil
	},
}

func init() {
	stateCmd.Flags().String("reset-level", "", "Start a fresh session at the given difficulty level")
}
