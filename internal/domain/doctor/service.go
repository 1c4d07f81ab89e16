package doctor

import (
	"context"
	"time"

	"github.com/clinica/clinica/internal/resource"
)

const staleWindow = 5 * time.Minute

// Service is the doctors API client.
type Service struct {
	res *resource.Client[Doctor, Write]
}

func NewService(deps resource.Deps) *Service {
	return &Service{res: resource.New[Doctor, Write](deps, resource.Descriptor{
		Path:    "/doctores",
		Key:     "doctores",
		Label:   "doctor",
		ListTTL: staleWindow,
		ItemTTL: staleWindow,
	})}
}

func (s *Service) List(ctx context.Context) ([]Doctor, error) {
	return s.res.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*Doctor, error) {
	return s.res.Get(ctx, id)
}

func (s *Service) Cached(id int) (*Doctor, bool) {
	return s.res.Cached(id)
}

func (s *Service) Create(ctx context.Context, w Write) (*Doctor, error) {
	return s.res.Create(ctx, w)
}

func (s *Service) Update(ctx context.Context, id int, w Write) (resource.Message, error) {
	return s.res.Update(ctx, id, w)
}

func (s *Service) Delete(ctx context.Context, id int) (resource.Message, error) {
	return s.res.Delete(ctx, id)
}
