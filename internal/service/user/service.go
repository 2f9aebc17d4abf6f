package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/sitekhata/labour-backend-go/internal/domain/site"
	"github.com/sitekhata/labour-backend-go/internal/domain/user"
)

// Service manages manager accounts. Admin accounts are provisioned
// out of band.
type Service interface {
	CreateManager(ctx context.Context, req user.CreateManagerRequest) (user.ManagerResponse, error)
	ListManagers(ctx context.Context) ([]user.ManagerResponse, error)
	UpdateManager(ctx context.Context, req user.UpdateManagerRequest) (user.ManagerResponse, error)
	DeleteManager(ctx context.Context, id string) error
}

type ServiceImpl struct {
	user.UserRepository
	site.SiteRepository
}

func NewService(userRepository user.UserRepository, siteRepository site.SiteRepository) Service {
	return &ServiceImpl{
		UserRepository: userRepository,
		SiteRepository: siteRepository,
	}
}

func toManagerResponse(u user.User) user.ManagerResponse {
	return user.ManagerResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     string(u.Role),
		SiteID:   u.SiteID,
		SiteName: u.SiteName,
	}
}

// CreateManager implements Service.
func (s *ServiceImpl) CreateManager(ctx context.Context, req user.CreateManagerRequest) (user.ManagerResponse, error) {
	if err := req.Validate(); err != nil {
		return user.ManagerResponse{}, err
	}

	if _, err := s.SiteRepository.GetByID(ctx, req.SiteID); err != nil {
		return user.ManagerResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.ManagerResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Username: req.Username,
		Password: string(hash),
		Role:     user.RoleManager,
		SiteID:   &req.SiteID,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.ManagerResponse{}, user.ErrUsernameExists
		}
		return user.ManagerResponse{}, fmt.Errorf("failed to create manager: %w", err)
	}

	return toManagerResponse(created), nil
}

// ListManagers implements Service.
func (s *ServiceImpl) ListManagers(ctx context.Context) ([]user.ManagerResponse, error) {
	managers, err := s.UserRepository.ListManagers(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.ManagerResponse, 0, len(managers))
	for _, m := range managers {
		responses = append(responses, toManagerResponse(m))
	}
	return responses, nil
}

// UpdateManager implements Service.
func (s *ServiceImpl) UpdateManager(ctx context.Context, req user.UpdateManagerRequest) (user.ManagerResponse, error) {
	if err := req.Validate(); err != nil {
		return user.ManagerResponse{}, err
	}

	existing, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.ManagerResponse{}, err
	}
	if existing.Role != user.RoleManager {
		return user.ManagerResponse{}, user.ErrUserNotFound
	}

	if req.Username != nil {
		existing.Username = *req.Username
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.ManagerResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		existing.Password = string(hash)
	}
	if req.SiteID != nil {
		if _, err := s.SiteRepository.GetByID(ctx, *req.SiteID); err != nil {
			return user.ManagerResponse{}, err
		}
		existing.SiteID = req.SiteID
	}

	if err := s.UserRepository.Update(ctx, existing); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.ManagerResponse{}, user.ErrUsernameExists
		}
		return user.ManagerResponse{}, fmt.Errorf("failed to update manager: %w", err)
	}

	return toManagerResponse(existing), nil
}

// DeleteManager implements Service.
func (s *ServiceImpl) DeleteManager(ctx context.Context, id string) error {
	existing, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Role != user.RoleManager {
		return user.ErrUserNotFound
	}

	return s.UserRepository.Delete(ctx, id)
}
