// Package app wires the store, challenge generator, and learning
// state into the interactive practice program.
package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/Surfer12/microarch-lab-conversions/internal/challenge"
	"github.com/Surfer12/microarch-lab-conversions/internal/learning"
	"github.com/Surfer12/microarch-lab-conversions/internal/screens/practice"
	"github.com/Surfer12/microarch-lab-conversions/internal/store"
)

// Options configures the practice program. Nil repos run the session
// in memory only.
type Options struct {
	State     *learning.State
	Generator *challenge.Generator
	Attempts  store.AttemptRepo
	Snapshots store.SnapshotRepo
	SessionID string
}

// Run starts the Bubble Tea practice program and blocks until it exits.
func Run(opts Options) error {
	if opts.State == nil {
		opts.State = learning.NewState()
	}
	if opts.Generator == nil {
		opts.Generator = challenge.New(nil)
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.New().String()
	}

	model := practice.New(opts.State, opts.Generator, opts.Attempts, opts.Snapshots, opts.SessionID)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("run practice program: %w", err)
	}
	return nil
}
