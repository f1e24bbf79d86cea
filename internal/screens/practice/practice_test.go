package practice

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Surfer12/microarch-lab-conversions/internal/challenge"
	"github.com/Surfer12/microarch-lab-conversions/internal/learning"
	"github.com/Surfer12/microarch-lab-conversions/internal/store"
)

// mockAttemptRepo implements store.AttemptRepo for testing.
type mockAttemptRepo struct {
	appended []store.AttemptEventData
}

func (m *mockAttemptRepo) Append(_ context.Context, data store.AttemptEventData) error {
	m.appended = append(m.appended, data)
	return nil
}

func (m *mockAttemptRepo) Stats(_ context.Context) (*store.AttemptStats, error) {
	return &store.AttemptStats{}, nil
}

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	saved [][]byte
}

func (m *mockSnapshotRepo) Save(_ context.Context, data []byte) error {
	m.saved = append(m.saved, data)
	return nil
}

func (m *mockSnapshotRepo) Latest(_ context.Context) ([]byte, error) {
	if len(m.saved) == 0 {
		return nil, nil
	}
	return m.saved[len(m.saved)-1], nil
}

func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testModel() (*Model, *mockAttemptRepo, *mockSnapshotRepo) {
	attempts := &mockAttemptRepo{}
	snapshots := &mockSnapshotRepo{}
	m := New(
		learning.NewState(),
		challenge.New(rand.New(rand.NewSource(1))),
		attempts,
		snapshots,
		"test-session",
	)
	return m, attempts, snapshots
}

// setActiveChallenge installs a known question so tests don't depend
// on generator output.
func setActiveChallenge(m *Model) {
	m.current = &challenge.Challenge{
		Kind:       challenge.KindBaseConversion,
		SourceBase: 10,
		TargetBase: 16,
		Value:      "255",
		Level:      challenge.Beginner,
		Complexity: 3.2,
	}
	m.questionStart = time.Now()
}

func TestModel_InitReturnsCommand(t *testing.T) {
	m, _, _ := testModel()
	if m.Init() == nil {
		t.Error("expected a command from Init")
	}
}

func TestModel_ChallengeReady(t *testing.T) {
	m, _, _ := testModel()

	ch := &challenge.Challenge{
		Kind:       challenge.KindBaseConversion,
		SourceBase: 2,
		TargetBase: 10,
		Value:      "1010",
		Level:      challenge.Beginner,
	}
	mdl, _ := m.Update(challengeReadyMsg{Challenge: ch})
	pm := mdl.(*Model)

	if pm.current != ch {
		t.Error("expected current challenge to be set")
	}
	view := pm.render()
	if !strings.Contains(view, "Convert 1010 from base 2 to base 10") {
		t.Errorf("view missing challenge prompt:\n%s", view)
	}
}

func TestModel_ChallengeReadyError(t *testing.T) {
	m, _, _ := testModel()

	mdl, _ := m.Update(challengeReadyMsg{Err: context.DeadlineExceeded})
	pm := mdl.(*Model)

	if pm.errMsg == "" {
		t.Error("expected error message to be recorded")
	}
	if pm.render() == "" {
		t.Error("expected non-empty error view")
	}
}

func TestModel_CorrectAnswerSubmit(t *testing.T) {
	m, attempts, snapshots := testModel()
	setActiveChallenge(m)
	m.input.Model.SetValue("FF")

	mdl, cmd := m.Update(specialKey(tea.KeyEnter))
	pm := mdl.(*Model)

	if !pm.showingFeedback {
		t.Error("expected feedback after submit")
	}
	if pm.lastEval == nil || !pm.lastEval.Correct {
		t.Error("expected answer FF to grade correct")
	}
	if pm.totalCorrect != 1 || pm.totalAnswered != 1 {
		t.Errorf("score = %d/%d, want 1/1", pm.totalCorrect, pm.totalAnswered)
	}
	// Fast and accurate moves the learner up one level.
	if pm.state.Level != challenge.Intermediate {
		t.Errorf("level = %v, want %v", pm.state.Level, challenge.Intermediate)
	}

	if cmd == nil {
		t.Fatal("expected a persistence command")
	}
	if msg, ok := cmd().(persistDoneMsg); !ok || msg.Err != nil {
		t.Fatalf("persist command result = %#v", msg)
	}
	if len(attempts.appended) != 1 {
		t.Fatalf("attempt events = %d, want 1", len(attempts.appended))
	}
	if attempts.appended[0].UserAnswer != "FF" || !attempts.appended[0].Correct {
		t.Errorf("attempt event = %+v", attempts.appended[0])
	}
	if attempts.appended[0].SessionID != "test-session" {
		t.Errorf("session id = %q, want test-session", attempts.appended[0].SessionID)
	}
	if len(snapshots.saved) != 1 {
		t.Errorf("snapshots saved = %d, want 1", len(snapshots.saved))
	}
}

func TestModel_WrongAnswerSubmit(t *testing.T) {
	m, attempts, _ := testModel()
	setActiveChallenge(m)
	m.input.Model.SetValue("FE")

	mdl, cmd := m.Update(specialKey(tea.KeyEnter))
	pm := mdl.(*Model)

	if pm.lastEval == nil || pm.lastEval.Correct {
		t.Error("expected answer FE to grade incorrect")
	}
	if pm.lastEval.CorrectAnswer != "FF" {
		t.Errorf("CorrectAnswer = %q, want FF", pm.lastEval.CorrectAnswer)
	}
	// Error rate 1 trips the hard reset back to Beginner.
	if pm.state.Level != challenge.Beginner {
		t.Errorf("level = %v, want %v", pm.state.Level, challenge.Beginner)
	}

	if cmd == nil {
		t.Fatal("expected a persistence command")
	}
	cmd()
	if len(attempts.appended) != 1 || attempts.appended[0].Correct {
		t.Errorf("attempt events = %+v", attempts.appended)
	}

	view := pm.render()
	if !strings.Contains(view, "FF") {
		t.Errorf("feedback view missing correct answer:\n%s", view)
	}
}

func TestModel_FeedbackDismissAdvances(t *testing.T) {
	m, _, _ := testModel()
	setActiveChallenge(m)
	m.showingFeedback = true
	m.lastEval = &learning.Evaluation{Correct: true}

	mdl, cmd := m.Update(keyPress(' '))
	pm := mdl.(*Model)

	if pm.showingFeedback {
		t.Error("expected feedback to be dismissed")
	}
	if pm.current != nil {
		t.Error("expected current challenge to be cleared")
	}
	if cmd == nil {
		t.Error("expected a command to generate the next challenge")
	}
}

func TestModel_QuitConfirm(t *testing.T) {
	m, _, _ := testModel()
	setActiveChallenge(m)

	mdl, _ := m.Update(specialKey(tea.KeyEscape))
	pm := mdl.(*Model)
	if !pm.showingQuitConfirm {
		t.Error("expected quit confirmation after Esc")
	}
	if !strings.Contains(pm.render(), "End this practice session?") {
		t.Error("expected quit confirmation view")
	}

	mdl, _ = pm.Update(keyPress('n'))
	pm = mdl.(*Model)
	if pm.showingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed by n")
	}
}

func TestModel_QuitConfirmYes(t *testing.T) {
	m, _, _ := testModel()
	setActiveChallenge(m)

	mdl, _ := m.Update(specialKey(tea.KeyEscape))
	pm := mdl.(*Model)
	_, cmd := pm.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected quit command after confirmation")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("command produced %#v, want tea.QuitMsg", msg)
	}
}

func TestModel_TypedKeysReachInput(t *testing.T) {
	m, _, _ := testModel()
	setActiveChallenge(m)

	var mdl tea.Model = m
	for _, r := range "1a." {
		mdl, _ = mdl.Update(keyPress(r))
	}
	pm := mdl.(*Model)
	if got := pm.input.Value(); got != "1a." {
		t.Errorf("input value = %q, want %q", got, "1a.")
	}

	// Characters outside the answer alphabet are dropped.
	mdl, _ = pm.Update(keyPress('!'))
	pm = mdl.(*Model)
	if got := pm.input.Value(); got != "1a." {
		t.Errorf("input value after '!' = %q, want %q", got, "1a.")
	}
}

func TestModel_ViewNonEmptyWhileLoading(t *testing.T) {
	m, _, _ := testModel()
	if m.render() == "" {
		t.Error("expected non-empty loading view")
	}
}
