package labour

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sitekhata/labour-backend-go/internal/domain/labour"
	"github.com/sitekhata/labour-backend-go/internal/domain/site"
	"github.com/sitekhata/labour-backend-go/internal/pkg/database"
	"github.com/sitekhata/labour-backend-go/internal/pkg/storage"
	"github.com/sitekhata/labour-backend-go/internal/pkg/validator"
	"github.com/sitekhata/labour-backend-go/internal/repository/postgresql"
)

type Service interface {
	Create(ctx context.Context, req labour.CreateLabourRequest) (labour.LabourResponse, error)
	GetByID(ctx context.Context, id string) (labour.LabourResponse, error)
	List(ctx context.Context, filter labour.Filter) ([]labour.LabourResponse, error)
	Update(ctx context.Context, req labour.UpdateLabourRequest) (labour.LabourResponse, error)

	// Delete removes a labour with no history; labours with history
	// are rejected and must be deactivated.
	Delete(ctx context.Context, id string) error

	// UploadDocument stores a document scan and records its path on
	// the labour row. A replaced scan's old file is removed.
	UploadDocument(ctx context.Context, labourID, kind, filename, contentType string, file io.Reader) (labour.LabourResponse, error)

	// OpenDocument streams a stored document scan.
	OpenDocument(ctx context.Context, labourID, kind string) (io.ReadCloser, error)
}

type ServiceImpl struct {
	db *database.DB
	labour.LabourRepository
	site.SiteRepository
	fileStorage storage.FileStorage
}

func NewService(db *database.DB, labourRepository labour.LabourRepository, siteRepository site.SiteRepository, fileStorage storage.FileStorage) Service {
	return &ServiceImpl{
		db:               db,
		LabourRepository: labourRepository,
		SiteRepository:   siteRepository,
		fileStorage:      fileStorage,
	}
}

// Create implements Service.
func (s *ServiceImpl) Create(ctx context.Context, req labour.CreateLabourRequest) (labour.LabourResponse, error) {
	if err := req.Validate(); err != nil {
		return labour.LabourResponse{}, err
	}

	if _, err := s.SiteRepository.GetByID(ctx, req.SiteID); err != nil {
		return labour.LabourResponse{}, err
	}

	// Write-time duplicate check; the unique constraint on
	// (phone, site_id) still backstops races.
	existing, err := s.LabourRepository.GetByPhoneAndSite(ctx, req.Phone, req.SiteID)
	if err != nil {
		return labour.LabourResponse{}, fmt.Errorf("failed to check duplicate phone: %w", err)
	}
	if existing != nil {
		return labour.LabourResponse{}, labour.ErrLabourPhoneExists
	}

	created, err := s.LabourRepository.Create(ctx, labour.Labour{
		SiteID:      req.SiteID,
		GatePassID:  req.GatePassID,
		Name:        req.Name,
		Phone:       req.Phone,
		BankAccount: req.BankAccount,
		IFSCCode:    req.IFSCCode,
		DailyWage:   req.Wage(),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return labour.LabourResponse{}, labour.ErrLabourPhoneExists
		}
		return labour.LabourResponse{}, fmt.Errorf("failed to create labour: %w", err)
	}

	return labour.ToResponse(created), nil
}

// GetByID implements Service.
func (s *ServiceImpl) GetByID(ctx context.Context, id string) (labour.LabourResponse, error) {
	found, err := s.LabourRepository.GetByID(ctx, id)
	if err != nil {
		return labour.LabourResponse{}, err
	}
	return labour.ToResponse(found), nil
}

// List implements Service.
func (s *ServiceImpl) List(ctx context.Context, filter labour.Filter) ([]labour.LabourResponse, error) {
	labours, err := s.LabourRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]labour.LabourResponse, 0, len(labours))
	for _, found := range labours {
		responses = append(responses, labour.ToResponse(found))
	}
	return responses, nil
}

// Update implements Service.
func (s *ServiceImpl) Update(ctx context.Context, req labour.UpdateLabourRequest) (labour.LabourResponse, error) {
	if err := req.Validate(); err != nil {
		return labour.LabourResponse{}, err
	}

	existing, err := s.LabourRepository.GetByID(ctx, req.ID)
	if err != nil {
		return labour.LabourResponse{}, err
	}

	if req.SiteID != nil && *req.SiteID != existing.SiteID {
		if _, err := s.SiteRepository.GetByID(ctx, *req.SiteID); err != nil {
			return labour.LabourResponse{}, err
		}
		existing.SiteID = *req.SiteID
	}
	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Phone != nil {
		existing.Phone = *req.Phone
	}
	if req.GatePassID != nil {
		existing.GatePassID = req.GatePassID
	}
	if req.BankAccount != nil {
		existing.BankAccount = req.BankAccount
	}
	if req.IFSCCode != nil {
		existing.IFSCCode = req.IFSCCode
	}
	if req.DailyWage != nil && *req.DailyWage != "" {
		wage, _ := validator.ParseAmount(*req.DailyWage)
		existing.DailyWage = &wage
	}

	if err := s.LabourRepository.Update(ctx, existing); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return labour.LabourResponse{}, labour.ErrLabourPhoneExists
		}
		return labour.LabourResponse{}, fmt.Errorf("failed to update labour: %w", err)
	}

	if req.IsActive != nil && *req.IsActive != existing.IsActive {
		if err := s.LabourRepository.SetActive(ctx, existing.ID, *req.IsActive); err != nil {
			return labour.LabourResponse{}, fmt.Errorf("failed to set labour active flag: %w", err)
		}
		existing.IsActive = *req.IsActive
	}

	return labour.ToResponse(existing), nil
}

// Delete implements Service.
func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	// History check and delete run in one transaction so a mark landing
	// in between cannot be orphaned.
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		hasHistory, err := s.LabourRepository.HasHistory(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to check labour history: %w", err)
		}
		if hasHistory {
			return labour.ErrLabourHasHistory
		}

		return s.LabourRepository.Delete(txCtx, id)
	})
}

// documentSlot returns the path field holding the given document kind.
func documentSlot(l *labour.Labour, kind string) **string {
	switch kind {
	case labour.DocPhoto:
		return &l.PhotoPath
	case labour.DocIDFront:
		return &l.IDFrontPath
	case labour.DocIDBack:
		return &l.IDBackPath
	case labour.DocGatePassFront:
		return &l.GatePassFrontPath
	case labour.DocGatePassBack:
		return &l.GatePassBackPath
	}
	return nil
}

// UploadDocument implements Service.
func (s *ServiceImpl) UploadDocument(ctx context.Context, labourID, kind, filename, contentType string, file io.Reader) (labour.LabourResponse, error) {
	if !validator.IsInSlice(kind, labour.DocumentKinds) {
		return labour.LabourResponse{}, labour.ErrInvalidDocumentKind
	}

	existing, err := s.LabourRepository.GetByID(ctx, labourID)
	if err != nil {
		return labour.LabourResponse{}, err
	}

	key := fmt.Sprintf("labours/%s/%s-%s%s", labourID, kind, uuid.NewString(), path.Ext(filename))
	stored, err := s.fileStorage.Upload(ctx, file, key, contentType)
	if err != nil {
		return labour.LabourResponse{}, fmt.Errorf("failed to store document: %w", err)
	}

	slot := documentSlot(&existing, kind)
	previous := *slot
	*slot = &stored

	if err := s.LabourRepository.Update(ctx, existing); err != nil {
		return labour.LabourResponse{}, fmt.Errorf("failed to record document path: %w", err)
	}

	// Best effort: the new path is already recorded.
	if previous != nil {
		_ = s.fileStorage.Delete(ctx, *previous)
	}

	return labour.ToResponse(existing), nil
}

// OpenDocument implements Service.
func (s *ServiceImpl) OpenDocument(ctx context.Context, labourID, kind string) (io.ReadCloser, error) {
	if !validator.IsInSlice(kind, labour.DocumentKinds) {
		return nil, labour.ErrInvalidDocumentKind
	}

	existing, err := s.LabourRepository.GetByID(ctx, labourID)
	if err != nil {
		return nil, err
	}

	slot := documentSlot(&existing, kind)
	if *slot == nil {
		return nil, labour.ErrDocumentNotFound
	}

	found, err := s.fileStorage.Exists(ctx, **slot)
	if err != nil {
		return nil, fmt.Errorf("failed to check document: %w", err)
	}
	if !found {
		return nil, labour.ErrDocumentNotFound
	}

	return s.fileStorage.Download(ctx, **slot)
}
