package handler

import (
	"encoding/json"
	"net/http"

	"github.com/arcadelab/wavearena-go/internal/api/apierr"
	"github.com/arcadelab/wavearena-go/internal/api/middleware"
	"github.com/arcadelab/wavearena-go/internal/api/request"
	"github.com/arcadelab/wavearena-go/internal/api/response"
	"github.com/arcadelab/wavearena-go/internal/services/progress"
)

// ProgressHandler handles progress read and submit endpoints
type ProgressHandler struct {
	progressService *progress.Service
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressService *progress.Service) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
	}
}

// Get handles GET /api/progress
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	p, err := h.progressService.Get(r.Context(), session.UserID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProgressFromModel(p))
}

// Submit handles POST /api/progress
func (h *ProgressHandler) Submit(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	var req request.SubmitProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Wave and score must be numbers"))
		return
	}

	if req.Wave == nil || req.Score == nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Wave and score are required"))
		return
	}

	if err := h.progressService.Submit(r.Context(), session.UserID, *req.Wave, *req.Score); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Ack{OK: true})
}
