package patient

import (
	"context"
	"time"

	"github.com/clinica/clinica/internal/resource"
)

const staleWindow = 5 * time.Minute

// Service is the patients API client: pure transport plus the shared cache
// contract. Validation happens in the form layer, never here.
type Service struct {
	res *resource.Client[Patient, Write]
}

func NewService(deps resource.Deps) *Service {
	return &Service{res: resource.New[Patient, Write](deps, resource.Descriptor{
		Path:    "/pacientes",
		Key:     "pacientes",
		Label:   "patient",
		ListTTL: staleWindow,
		ItemTTL: staleWindow,
	})}
}

func (s *Service) List(ctx context.Context) ([]Patient, error) {
	return s.res.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*Patient, error) {
	return s.res.Get(ctx, id)
}

// Cached serves the read-only detail view from already-fetched data.
func (s *Service) Cached(id int) (*Patient, bool) {
	return s.res.Cached(id)
}

func (s *Service) Create(ctx context.Context, w Write) (*Patient, error) {
	return s.res.Create(ctx, w)
}

func (s *Service) Update(ctx context.Context, id int, w Write) (resource.Message, error) {
	return s.res.Update(ctx, id, w)
}

func (s *Service) Delete(ctx context.Context, id int) (resource.Message, error) {
	return s.res.Delete(ctx, id)
}
