// Package practice implements the interactive practice session screen.
package practice

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Surfer12/microarch-lab-conversions/internal/challenge"
	"github.com/Surfer12/microarch-lab-conversions/internal/learning"
	"github.com/Surfer12/microarch-lab-conversions/internal/store"
	"github.com/Surfer12/microarch-lab-conversions/internal/ui/components"
)

// Model is the Bubble Tea model for a practice session. It owns one
// learning.State for the life of the program and submits every graded
// answer to it.
type Model struct {
	state     *learning.State
	generator *challenge.Generator
	attempts  store.AttemptRepo  // nil when running without a store
	snapshots store.SnapshotRepo // nil when running without a store
	sessionID string

	input   components.AnswerInput
	current *challenge.Challenge

	questionStart time.Time
	elapsed       time.Duration

	showingFeedback    bool
	showingQuitConfirm bool
	lastEval           *learning.Evaluation
	lastUserAnswer     string
	levelBefore        challenge.Level

	totalAnswered int
	totalCorrect  int

	errMsg string
	width  int
	height int
}

// New creates a practice model. The repos may be nil; the session then
// runs in memory only.
func New(state *learning.State, generator *challenge.Generator, attempts store.AttemptRepo, snapshots store.SnapshotRepo, sessionID string) *Model {
	return &Model{
		state:     state,
		generator: generator,
		attempts:  attempts,
		snapshots: snapshots,
		sessionID: sessionID,
		input:     components.NewAnswerInput("Type your answer...", 24),
		width:     80,
		height:    24,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.nextChallenge(),
		m.input.Init(),
		timerTick(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case challengeReadyMsg:
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.current = msg.Challenge
		m.questionStart = time.Now()
		m.elapsed = 0
		m.input.Reset()
		return m, nil

	case timerTickMsg:
		if m.current != nil && !m.showingFeedback && !m.showingQuitConfirm {
			m.elapsed = time.Since(m.questionStart)
		}
		return m, timerTick()

	case persistDoneMsg:
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.current != nil && !m.showingFeedback && !m.showingQuitConfirm {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showingQuitConfirm {
		switch key {
		case "y", "Y":
			return m, tea.Quit
		case "n", "N", "esc":
			m.showingQuitConfirm = false
			m.questionStart = time.Now().Add(-m.elapsed)
		}
		return m, nil
	}

	if m.showingFeedback {
		// Any key moves on to the next challenge.
		m.showingFeedback = false
		m.lastEval = nil
		m.current = nil
		return m, m.nextChallenge()
	}

	switch key {
	case "esc":
		m.showingQuitConfirm = true
		return m, nil
	case "enter":
		return m.submitAnswer()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitAnswer grades the typed answer, feeds the result through the
// learning state, and schedules persistence.
func (m *Model) submitAnswer() (tea.Model, tea.Cmd) {
	if m.current == nil {
		return m, nil
	}

	userAnswer := m.input.Value()
	eval, err := learning.EvaluateAnswer(*m.current, userAnswer)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	solvingTime := time.Since(m.questionStart).Seconds()
	result := challenge.Result{
		Challenge:   *m.current,
		UserAnswer:  userAnswer,
		Correct:     eval.Correct,
		SolvingTime: solvingTime,
		ErrorRate:   eval.ErrorRate,
	}

	m.levelBefore = m.state.Level
	if _, err := m.state.Submit(result); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.totalAnswered++
	if eval.Correct {
		m.totalCorrect++
	}
	m.lastEval = eval
	m.lastUserAnswer = userAnswer
	m.showingFeedback = true

	return m, m.persistResult(result)
}

// nextChallenge generates a challenge at the current difficulty level.
func (m *Model) nextChallenge() tea.Cmd {
	level := m.state.Level
	return func() tea.Msg {
		ch, err := m.generator.Generate(challenge.KindBaseConversion, level)
		return challengeReadyMsg{Challenge: ch, Err: err}
	}
}

// persistResult appends the attempt event and saves a state snapshot.
// Skipped entirely when no store is attached.
func (m *Model) persistResult(result challenge.Result) tea.Cmd {
	if m.attempts == nil && m.snapshots == nil {
		return nil
	}
	snapData, err := m.state.Snapshot()
	if err != nil {
		return func() tea.Msg { return persistDoneMsg{Err: err} }
	}

	attempts := m.attempts
	snapshots := m.snapshots
	sessionID := m.sessionID
	return func() tea.Msg {
		ctx := context.Background()
		if attempts != nil {
			data := store.AttemptEventData{
				SessionID:   sessionID,
				Kind:        string(result.Challenge.Kind),
				SourceBase:  result.Challenge.SourceBase,
				TargetBase:  result.Challenge.TargetBase,
				Value:       result.Challenge.Value,
				Level:       result.Challenge.Level.String(),
				Complexity:  result.Challenge.Complexity,
				UserAnswer:  result.UserAnswer,
				Correct:     result.Correct,
				SolvingTime: result.SolvingTime,
				ErrorRate:   result.ErrorRate,
			}
			if err := attempts.Append(ctx, data); err != nil {
				return persistDoneMsg{Err: fmt.Errorf("append attempt: %w", err)}
			}
		}
		if snapshots != nil {
			if err := snapshots.Save(ctx, snapData); err != nil {
				return persistDoneMsg{Err: fmt.Errorf("save snapshot: %w", err)}
			}
		}
		return persistDoneMsg{}
	}
}

func timerTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
