package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/oviohub/airbridge"
)

// maxFormMemory caps how much of a multipart body is held in memory.
const maxFormMemory = 10 << 20

// rowMapper turns a raw form submission into an Airtable row.
type rowMapper interface {
	MapRow(ctx context.Context, sub airbridge.Submission) (airbridge.Row, error)
}

// submitter pushes a mapped row to Airtable.
type submitter interface {
	Submit(ctx context.Context, row airbridge.Row) (airbridge.Record, error)
}

// handleSubmit handles POST /submit
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	// ParseMultipartForm also populates PostForm for urlencoded bodies.
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && err != http.ErrNotMultipart {
		zap.S().Debugw("form parse failed",
			"error", err,
			"request_id", requestIDFromContext(r.Context()),
		)
	}

	sub := airbridge.Submission(r.PostForm)

	row, err := s.mapper.MapRow(r.Context(), sub)
	if err != nil {
		zap.S().Errorw("error saving to airtable",
			"error", err,
			"request_id", requestIDFromContext(r.Context()),
		)
		writeError(w, http.StatusInternalServerError, errSaveFailed)
		return
	}

	if _, err := s.relay.Submit(r.Context(), row); err != nil {
		zap.S().Errorw("error saving to airtable",
			"error", err,
			"request_id", requestIDFromContext(r.Context()),
		)
		writeError(w, http.StatusInternalServerError, errSaveFailed)
		return
	}

	writeSuccess(w)
}
