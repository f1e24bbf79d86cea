package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Surfer12/microarch-lab-conversions/internal/app"
	"github.com/Surfer12/microarch-lab-conversions/internal/challenge"
	"github.com/Surfer12/microarch-lab-conversions/internal/learning"
	"github.com/Surfer12/microarch-lab-conversions/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	playCmd.Flags().String("level", "", "Start at a specific difficulty level instead of the saved one")
}

// runPlay opens the store, restores the saved learning state, and
// launches the practice TUI.
func runPlay(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	state, err := loadState(cmd.Context(), st.SnapshotRepo())
	if err != nil {
		return err
	}

	if name, _ := cmd.Flags().GetString("level"); name != "" {
		level, err := challenge.ParseLevel(name)
		if err != nil {
			return err
		}
		state = learning.NewStateAt(level)
	}

	return app.Run(app.Options{
		State:     state,
		Attempts:  st.AttemptRepo(),
		Snapshots: st.SnapshotRepo(),
	})
}

// loadState restores the latest persisted learning state, or returns
// a fresh Beginner state when none is saved. An invalid snapshot is
// an error, never a silent fresh start; `convlab reset` clears it.
func loadState(ctx context.Context, snapshots store.SnapshotRepo) (*learning.State, error) {
	data, err := snapshots.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load latest snapshot: %w", err)
	}
	if data == nil {
		return learning.NewState(), nil
	}

	state, err := learning.Restore(data)
	if err != nil {
		return nil, fmt.Errorf("restore saved learning state: %w", err)
	}
	return state, nil
}
