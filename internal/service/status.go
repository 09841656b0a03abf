package service

import (
	"context"
	"fmt"
	"time"

	"solartherm/internal/frame"
	"solartherm/internal/models"
	"solartherm/internal/source"

	"github.com/google/uuid"
)

// StatusService reads one frame from the source and decodes it. It
// holds no state between polls; the de facto retry mechanism is the
// caller issuing a fresh request.
type StatusService struct {
	src source.Source
}

func NewStatusService(src source.Source) *StatusService {
	return &StatusService{src: src}
}

// Poll obtains and decodes a fresh status frame. A transport failure
// short-circuits before any decoding; a decode failure yields no
// status at all, never a partial one.
func (s *StatusService) Poll(ctx context.Context) (models.Status, error) {
	raw, err := s.src.ReadFrame(ctx)
	if err != nil {
		return models.Status{}, fmt.Errorf("read status frame: %w", err)
	}

	st, err := frame.Decode(raw)
	if err != nil {
		return models.Status{}, err
	}

	st.ReadingID = uuid.NewString()
	st.PolledAt = time.Now().UTC()
	return st, nil
}
