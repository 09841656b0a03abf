package service

import (
	"context"

	"solartherm/internal/models"
	"solartherm/internal/source"
)

// Status exposes the one read operation the presentation layer needs:
// a fresh poll-and-decode of the controller. There is deliberately no
// caching; every call re-reads the device.
type Status interface {
	Poll(ctx context.Context) (models.Status, error)
}

// Service aggregates all sub-services handed to the HTTP layer.
type Service struct {
	Status
}

// NewService wires the frame source into the concrete services.
func NewService(src source.Source) *Service {
	return &Service{
		Status: NewStatusService(src),
	}
}
