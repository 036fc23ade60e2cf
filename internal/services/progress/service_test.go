package progress

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arcadelab/wavearena-go/internal/model"
	"github.com/arcadelab/wavearena-go/internal/storage/memory"
	"github.com/arcadelab/wavearena-go/internal/testutil"
)

// countingStore wraps the memory store to count writes, so tests can assert
// that losing submissions issue no write at all
type countingStore struct {
	*memory.Storage
	inserts int
	updates int
}

func (c *countingStore) InsertProgress(ctx context.Context, p *model.Progress) error {
	c.inserts++
	return c.Storage.InsertProgress(ctx, p)
}

func (c *countingStore) UpdateProgress(ctx context.Context, p *model.Progress) error {
	c.updates++
	return c.Storage.UpdateProgress(ctx, p)
}

type ServiceSuite struct {
	suite.Suite
	store   *countingStore
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = &countingStore{Storage: memory.New()}
	s.service = New(s.store, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) mustGet(userID model.UserID) *model.Progress {
	p, err := s.service.Get(s.ctx, userID)
	s.Require().NoError(err)
	return p
}

// Get tests

func (s *ServiceSuite) TestGetDefaultsWithoutRow() {
	p := s.mustGet(1)
	s.Equal(int64(0), p.HighScore)
	s.Equal(int64(1), p.MaxWave)

	// The default must not have been written back
	_, err := s.store.GetProgress(s.ctx, 1)
	s.ErrorIs(err, model.ErrProgressNotFound)
}

func (s *ServiceSuite) TestGetReturnsStored() {
	s.Require().NoError(s.service.Submit(s.ctx, 1, 3, 100))

	p := s.mustGet(1)
	s.Equal(int64(100), p.HighScore)
	s.Equal(int64(3), p.MaxWave)
}

// Submit tests

func (s *ServiceSuite) TestFirstSubmissionStoredAsIs() {
	// Even a zero-score run creates the row exactly as submitted
	s.Require().NoError(s.service.Submit(s.ctx, 1, 1, 0))

	p := s.mustGet(1)
	s.Equal(int64(0), p.HighScore)
	s.Equal(int64(1), p.MaxWave)
	s.Equal(1, s.store.inserts)
}

func (s *ServiceSuite) TestHigherScoreReplacesBoth() {
	s.Require().NoError(s.service.Submit(s.ctx, 1, 3, 100))
	s.Require().NoError(s.service.Submit(s.ctx, 1, 2, 150))

	p := s.mustGet(1)
	s.Equal(int64(150), p.HighScore)
	s.Equal(int64(2), p.MaxWave, "wave follows the higher-scoring run even when lower")
}

func (s *ServiceSuite) TestEqualScoreHigherWaveReplacesWaveOnly() {
	s.Require().NoError(s.service.Submit(s.ctx, 1, 3, 100))
	s.Require().NoError(s.service.Submit(s.ctx, 1, 5, 100))

	p := s.mustGet(1)
	s.Equal(int64(100), p.HighScore)
	s.Equal(int64(5), p.MaxWave)
}

func (s *ServiceSuite) TestLowerScoreIsIgnored() {
	s.Require().NoError(s.service.Submit(s.ctx, 1, 3, 100))
	s.Require().NoError(s.service.Submit(s.ctx, 1, 5, 50))

	p := s.mustGet(1)
	s.Equal(int64(100), p.HighScore)
	s.Equal(int64(3), p.MaxWave, "higher wave at a lower score never updates the stored wave")
}

func (s *ServiceSuite) TestLosingSubmissionIssuesNoWrite() {
	s.Require().NoError(s.service.Submit(s.ctx, 1, 3, 100))
	writes := s.store.updates

	s.Require().NoError(s.service.Submit(s.ctx, 1, 5, 50))
	s.Require().NoError(s.service.Submit(s.ctx, 1, 2, 100))
	s.Require().NoError(s.service.Submit(s.ctx, 1, 3, 100))

	s.Equal(writes, s.store.updates)
}

func (s *ServiceSuite) TestNegativeValuesRejectedBeforeStorage() {
	s.ErrorIs(s.service.Submit(s.ctx, 1, -1, 100), ErrInvalidSubmission)
	s.ErrorIs(s.service.Submit(s.ctx, 1, 1, -100), ErrInvalidSubmission)
	s.Equal(0, s.store.inserts)
	s.Equal(0, s.store.updates)
}

func (s *ServiceSuite) TestWaveZeroRejectedBeforeStorage() {
	// Wave 1 is the floor for stored progress; a wave-0 run must be
	// rejected here rather than trip the store's constraint
	s.ErrorIs(s.service.Submit(s.ctx, 1, 0, 5), ErrInvalidSubmission)
	s.Equal(0, s.store.inserts)
	s.Equal(0, s.store.updates)

	p := s.mustGet(1)
	s.Equal(int64(0), p.HighScore)
	s.Equal(int64(1), p.MaxWave)
}

func (s *ServiceSuite) TestBestRunScenario() {
	// register → (3,100) → (5,50) ignored → (2,100) ignored → (10,150) wins
	s.Require().NoError(s.service.Submit(s.ctx, 1, 3, 100))
	s.Require().NoError(s.service.Submit(s.ctx, 1, 5, 50))
	s.Require().NoError(s.service.Submit(s.ctx, 1, 2, 100))

	p := s.mustGet(1)
	s.Equal(int64(100), p.HighScore)
	s.Equal(int64(3), p.MaxWave)

	s.Require().NoError(s.service.Submit(s.ctx, 1, 10, 150))

	p = s.mustGet(1)
	s.Equal(int64(150), p.HighScore)
	s.Equal(int64(10), p.MaxWave)
}

// mergeBest table tests

func TestMergeBest(t *testing.T) {
	cases := []struct {
		name      string
		current   model.Progress
		wave      int64
		score     int64
		wantScore int64
		wantWave  int64
		improved  bool
	}{
		{"higher score replaces both", model.Progress{HighScore: 100, MaxWave: 3}, 2, 150, 150, 2, true},
		{"equal score higher wave", model.Progress{HighScore: 100, MaxWave: 3}, 5, 100, 100, 5, true},
		{"equal score equal wave", model.Progress{HighScore: 100, MaxWave: 3}, 3, 100, 100, 3, false},
		{"equal score lower wave", model.Progress{HighScore: 100, MaxWave: 3}, 2, 100, 100, 3, false},
		{"lower score higher wave", model.Progress{HighScore: 100, MaxWave: 3}, 9, 99, 100, 3, false},
		{"lower score lower wave", model.Progress{HighScore: 100, MaxWave: 3}, 1, 1, 100, 3, false},
		{"zero current beaten by anything positive", model.Progress{HighScore: 0, MaxWave: 1}, 1, 1, 1, 1, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, improved := mergeBest(tc.current, tc.wave, tc.score)
			if improved != tc.improved {
				t.Fatalf("improved = %v, want %v", improved, tc.improved)
			}
			if next.HighScore != tc.wantScore || next.MaxWave != tc.wantWave {
				t.Fatalf("next = (%d, %d), want (%d, %d)",
					next.HighScore, next.MaxWave, tc.wantScore, tc.wantWave)
			}
		})
	}
}
