package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/zititex/zititex-api/internal/dto"
	"github.com/zititex/zititex-api/internal/models"
	"github.com/zititex/zititex-api/internal/repository"
)

// ErrClientNotFound indicates the requested lead does not exist.
var ErrClientNotFound = errors.New("client not found")

// AdminClientService exposes admin read and cleanup operations over stored leads.
type AdminClientService interface {
	List(ctx context.Context, req dto.AdminClientListRequest) (dto.AdminClientListResponse, error)
	Get(ctx context.Context, id uint) (dto.AdminClientResponse, error)
	Delete(ctx context.Context, id uint) error
}

type adminClientService struct {
	repo   repository.ClientRepository
	logger zerolog.Logger
}

// NewAdminClientService constructs the admin lead service.
func NewAdminClientService(repo repository.ClientRepository, logger zerolog.Logger) AdminClientService {
	return &adminClientService{
		repo:   repo,
		logger: logger.With().Str("component", "admin_client_service").Logger(),
	}
}

func (s *adminClientService) List(ctx context.Context, req dto.AdminClientListRequest) (dto.AdminClientListResponse, error) {
	filter := repository.ClientFilter{
		Search:   strings.TrimSpace(req.Search),
		Sort:     strings.TrimSpace(req.Sort),
		Page:     normalizePage(req.Page),
		PageSize: clampPageSize(req.PageSize),
	}

	clients, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return dto.AdminClientListResponse{}, err
	}

	items := make([]dto.AdminClientResponse, 0, len(clients))
	for _, client := range clients {
		items = append(items, toAdminClientResponse(client))
	}

	return dto.AdminClientListResponse{
		Items: items,
		Pagination: dto.PaginationMeta{
			Page:       filter.Page,
			PageSize:   filter.PageSize,
			TotalItems: total,
			TotalPages: calculateTotalPages(total, filter.PageSize),
		},
	}, nil
}

func (s *adminClientService) Get(ctx context.Context, id uint) (dto.AdminClientResponse, error) {
	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AdminClientResponse{}, ErrClientNotFound
		}
		return dto.AdminClientResponse{}, err
	}
	return toAdminClientResponse(client), nil
}

func (s *adminClientService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClientNotFound
		}
		return err
	}

	s.logger.Info().Uint("client_id", id).Msg("lead deleted")
	return nil
}

func toAdminClientResponse(client models.Client) dto.AdminClientResponse {
	return dto.AdminClientResponse{
		ID:          client.ID,
		FullName:    client.FullName,
		Email:       maskEmailAddress(client.Email),
		Phone:       client.Phone,
		Company:     client.Company,
		ProductType: client.ProductType,
		Quantity:    client.Quantity,
		Message:     client.Message,
		CreatedAt:   client.CreatedAt,
	}
}
