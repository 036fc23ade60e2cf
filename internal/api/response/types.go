package response

import (
	"time"

	"github.com/arcadelab/wavearena-go/internal/model"
)

// Health is the response for the health check endpoint
type Health struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

// Auth is the response for register, login and whoami endpoints
type Auth struct {
	Username string `json:"username"`
}

// Message is the response for logout and other message-only results
type Message struct {
	Message string `json:"message"`
}

// Progress is the response for the progress read endpoint
type Progress struct {
	BestScore int64 `json:"bestScore"`
	BestWave  int64 `json:"bestWave"`
}

// ProgressFromModel converts a model.Progress to a response Progress
func ProgressFromModel(p *model.Progress) Progress {
	return Progress{
		BestScore: p.HighScore,
		BestWave:  p.MaxWave,
	}
}

// Ack acknowledges an accepted submission
type Ack struct {
	OK bool `json:"ok"`
}
