package site

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sitekhata/labour-backend-go/internal/domain/site"
	"github.com/sitekhata/labour-backend-go/internal/pkg/database"
	"github.com/sitekhata/labour-backend-go/internal/repository/postgresql"
)

type Service interface {
	Create(ctx context.Context, req site.CreateSiteRequest) (site.SiteResponse, error)
	GetByID(ctx context.Context, id string) (site.SiteResponse, error)
	List(ctx context.Context, activeOnly bool) ([]site.SiteResponse, error)
	Update(ctx context.Context, req site.UpdateSiteRequest) (site.SiteResponse, error)
	Delete(ctx context.Context, id string) error
}

type ServiceImpl struct {
	db *database.DB
	site.SiteRepository
}

func NewService(db *database.DB, siteRepository site.SiteRepository) Service {
	return &ServiceImpl{
		db:             db,
		SiteRepository: siteRepository,
	}
}

// Create implements Service.
func (s *ServiceImpl) Create(ctx context.Context, req site.CreateSiteRequest) (site.SiteResponse, error) {
	if err := req.Validate(); err != nil {
		return site.SiteResponse{}, err
	}

	created, err := s.SiteRepository.Create(ctx, site.Site{
		Name:     req.Name,
		Address:  req.Address,
		Location: req.Location,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return site.SiteResponse{}, site.ErrSiteNameExists
		}
		return site.SiteResponse{}, fmt.Errorf("failed to create site: %w", err)
	}

	return site.ToResponse(created), nil
}

// GetByID implements Service.
func (s *ServiceImpl) GetByID(ctx context.Context, id string) (site.SiteResponse, error) {
	found, err := s.SiteRepository.GetByID(ctx, id)
	if err != nil {
		return site.SiteResponse{}, err
	}
	return site.ToResponse(found), nil
}

// List implements Service.
func (s *ServiceImpl) List(ctx context.Context, activeOnly bool) ([]site.SiteResponse, error) {
	sites, err := s.SiteRepository.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]site.SiteResponse, 0, len(sites))
	for _, found := range sites {
		responses = append(responses, site.ToResponse(found))
	}
	return responses, nil
}

// Update implements Service.
func (s *ServiceImpl) Update(ctx context.Context, req site.UpdateSiteRequest) (site.SiteResponse, error) {
	if err := req.Validate(); err != nil {
		return site.SiteResponse{}, err
	}

	existing, err := s.SiteRepository.GetByID(ctx, req.ID)
	if err != nil {
		return site.SiteResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Address != nil {
		existing.Address = req.Address
	}
	if req.Location != nil {
		existing.Location = req.Location
	}

	if err := s.SiteRepository.Update(ctx, existing); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return site.SiteResponse{}, site.ErrSiteNameExists
		}
		return site.SiteResponse{}, fmt.Errorf("failed to update site: %w", err)
	}

	if req.IsActive != nil && *req.IsActive != existing.IsActive {
		if err := s.SiteRepository.SetActive(ctx, existing.ID, *req.IsActive); err != nil {
			return site.SiteResponse{}, fmt.Errorf("failed to set site active flag: %w", err)
		}
		existing.IsActive = *req.IsActive
	}

	return site.ToResponse(existing), nil
}

// Delete implements Service. Sites with labours or manager accounts
// attached must be deactivated instead.
func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	// Dependency check and delete run in one transaction so a labour
	// added in between cannot be orphaned.
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		hasDependents, err := s.SiteRepository.HasDependents(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to check site dependents: %w", err)
		}
		if hasDependents {
			return site.ErrSiteHasDependents
		}

		return s.SiteRepository.Delete(txCtx, id)
	})
}
