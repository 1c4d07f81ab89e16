package medication

import (
	"context"
	"time"

	"github.com/clinica/clinica/internal/resource"
)

const staleWindow = 5 * time.Minute

// Service is the medications API client.
type Service struct {
	res *resource.Client[Medication, Write]
}

func NewService(deps resource.Deps) *Service {
	return &Service{res: resource.New[Medication, Write](deps, resource.Descriptor{
		Path:    "/medicamentos",
		Key:     "medicamentos",
		Label:   "medication",
		ListTTL: staleWindow,
		ItemTTL: staleWindow,
	})}
}

func (s *Service) List(ctx context.Context) ([]Medication, error) {
	return s.res.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*Medication, error) {
	return s.res.Get(ctx, id)
}

func (s *Service) Cached(id int) (*Medication, bool) {
	return s.res.Cached(id)
}

func (s *Service) Create(ctx context.Context, w Write) (*Medication, error) {
	return s.res.Create(ctx, w)
}

func (s *Service) Update(ctx context.Context, id int, w Write) (resource.Message, error) {
	return s.res.Update(ctx, id, w)
}

func (s *Service) Delete(ctx context.Context, id int) (resource.Message, error) {
	return s.res.Delete(ctx, id)
}
