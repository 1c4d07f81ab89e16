package department

import (
	"context"
	"time"

	"github.com/clinica/clinica/internal/resource"
)

// Departments rarely change, so they get the longest stale window.
const staleWindow = 10 * time.Minute

// Service is the departments API client.
type Service struct {
	res *resource.Client[Department, Write]
}

func NewService(deps resource.Deps) *Service {
	return &Service{res: resource.New[Department, Write](deps, resource.Descriptor{
		Path:    "/departamentos",
		Key:     "departamentos",
		Label:   "department",
		ListTTL: staleWindow,
		ItemTTL: staleWindow,
	})}
}

func (s *Service) List(ctx context.Context) ([]Department, error) {
	return s.res.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*Department, error) {
	return s.res.Get(ctx, id)
}

func (s *Service) Cached(id int) (*Department, bool) {
	return s.res.Cached(id)
}

func (s *Service) Create(ctx context.Context, w Write) (*Department, error) {
	return s.res.Create(ctx, w)
}

func (s *Service) Update(ctx context.Context, id int, w Write) (resource.Message, error) {
	return s.res.Update(ctx, id, w)
}

func (s *Service) Delete(ctx context.Context, id int) (resource.Message, error) {
	return s.res.Delete(ctx, id)
}
