// Package progress tracks each user's best recorded run.
package progress

import (
	"context"
	"errors"
	"log/slog"

	"github.com/arcadelab/wavearena-go/internal/model"
	"github.com/arcadelab/wavearena-go/internal/storage"
)

// ErrInvalidSubmission is returned when a submission falls outside the
// stored-progress domain: score must be non-negative and wave at least 1
var ErrInvalidSubmission = errors.New("wave must be at least 1 and score non-negative")

// Service reads and merges per-user progress
type Service struct {
	store  storage.ProgressStore
	logger *slog.Logger
}

// New creates a new progress Service
func New(store storage.ProgressStore, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Get returns the stored best for a user, or the default (score 0, wave 1)
// when no row exists yet. The default is never written back.
func (s *Service) Get(ctx context.Context, userID model.UserID) (*model.Progress, error) {
	p, err := s.store.GetProgress(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrProgressNotFound) {
			def := model.DefaultProgress(userID)
			return &def, nil
		}
		return nil, err
	}
	return p, nil
}

// Submit records a finished run. The first submission for a user is stored
// as-is; later submissions only replace the stored best per mergeBest.
//
// The read-then-write is not transactional: concurrent submissions for the
// same user are last-writer-wins.
func (s *Service) Submit(ctx context.Context, userID model.UserID, wave, score int64) error {
	// Wave 1 is the floor: runs start on wave 1 and the store enforces
	// max_wave >= 1, so anything below is rejected before any write
	if wave < 1 || score < 0 {
		return ErrInvalidSubmission
	}

	current, err := s.store.GetProgress(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrProgressNotFound) {
			return s.store.InsertProgress(ctx, &model.Progress{
				UserID:    userID,
				HighScore: score,
				MaxWave:   wave,
			})
		}
		return err
	}

	next, improved := mergeBest(*current, wave, score)
	if !improved {
		return nil
	}

	s.logger.Info("new best run",
		slog.Int64("user_id", int64(userID)),
		slog.Int64("score", next.HighScore),
		slog.Int64("wave", next.MaxWave),
	)

	return s.store.UpdateProgress(ctx, &next)
}

// mergeBest decides whether a candidate run beats the stored best.
// Score is the primary ordering; wave only improves on a score tie.
// A higher wave at a lower score never updates the stored wave.
func mergeBest(current model.Progress, wave, score int64) (model.Progress, bool) {
	switch {
	case score > current.HighScore:
		current.HighScore = score
		current.MaxWave = wave
		return current, true
	case score == current.HighScore && wave > current.MaxWave:
		current.MaxWave = wave
		return current, true
	default:
		return current, false
	}
}
