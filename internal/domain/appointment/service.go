package appointment

import (
	"context"
	"time"

	"github.com/clinica/clinica/internal/resource"
)

// Appointments move fast; their list goes stale quicker than other entities.
const (
	listStale = 2 * time.Minute
	itemStale = 5 * time.Minute
)

// Service is the appointments API client.
type Service struct {
	res *resource.Client[Appointment, Write]
}

func NewService(deps resource.Deps) *Service {
	return &Service{res: resource.New[Appointment, Write](deps, resource.Descriptor{
		Path:    "/citas",
		Key:     "citas",
		Label:   "appointment",
		ListTTL: listStale,
		ItemTTL: itemStale,
	})}
}

func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	return s.res.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*Appointment, error) {
	return s.res.Get(ctx, id)
}

func (s *Service) Cached(id int) (*Appointment, bool) {
	return s.res.Cached(id)
}

func (s *Service) Create(ctx context.Context, w Write) (*Appointment, error) {
	return s.res.Create(ctx, w)
}

func (s *Service) Update(ctx context.Context, id int, w Write) (resource.Message, error) {
	return s.res.Update(ctx, id, w)
}

func (s *Service) Delete(ctx context.Context, id int) (resource.Message, error) {
	return s.res.Delete(ctx, id)
}
