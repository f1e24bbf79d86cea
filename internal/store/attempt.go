package store

import (
	"context"
	"fmt"

	"github.com/Surfer12/microarch-lab-conversions/ent"
	"github.com/Surfer12/microarch-lab-conversions/ent/attemptevent"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) Append(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetKind(data.Kind).
		SetSourceBase(data.SourceBase).
		SetTargetBase(data.TargetBase).
		SetValue(data.Value).
		SetLevel(data.Level).
		SetComplexity(data.Complexity).
		SetUserAnswer(data.UserAnswer).
		SetCorrect(data.Correct).
		SetSolvingTime(data.SolvingTime).
		SetErrorRate(data.ErrorRate).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *attemptRepo) Stats(ctx context.Context) (*AttemptStats, error) {
	total, err := r.client.AttemptEvent.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count attempts: %w", err)
	}

	correct, err := r.client.AttemptEvent.Query().
		Where(attemptevent.CorrectEQ(true)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count correct attempts: %w", err)
	}

	stats := &AttemptStats{Total: total, Correct: correct}
	if total > 0 {
		stats.Accuracy = float64(correct) / float64(total)
	}
	return stats, nil
}
