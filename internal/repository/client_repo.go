package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/zititex/zititex-api/internal/models"
)

// ClientFilter narrows and paginates admin lead listings.
type ClientFilter struct {
	Search   string
	Sort     string
	Page     int
	PageSize int
}

// ClientRepository persists contact form submissions.
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, id uint) (models.Client, error)
	GetByEmail(ctx context.Context, email string) (models.Client, error)
	List(ctx context.Context, filter ClientFilter) ([]models.Client, int64, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository constructs a repository backed by GORM.
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepository) GetByID(ctx context.Context, id uint) (models.Client, error) {
	var client models.Client
	err := r.db.WithContext(ctx).First(&client, id).Error
	return client, err
}

func (r *clientRepository) GetByEmail(ctx context.Context, email string) (models.Client, error) {
	var client models.Client
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.TrimSpace(email)).
		Order("created_at DESC").
		First(&client).Error
	return client, err
}

func (r *clientRepository) List(ctx context.Context, filter ClientFilter) ([]models.Client, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Client{})

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := fmt.Sprintf("%%%s%%", strings.ToLower(search))
		query = query.Where(
			"LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(company) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var clients []models.Client
	err := query.
		Order(normalizeClientSort(filter.Sort)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&clients).Error
	if err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}

// normalizeClientSort maps the caller-supplied sort parameter onto a fixed set
// of column/direction pairs. Anything outside the whitelist falls back to
// newest-first; the raw value never reaches the SQL layer.
func normalizeClientSort(sort string) string {
	switch strings.ToLower(strings.TrimSpace(sort)) {
	case "created_at", "created_at:asc", "created_at.asc":
		return "created_at ASC"
	case "-created_at", "created_at:desc", "created_at.desc":
		return "created_at DESC"
	case "full_name", "full_name:asc", "full_name.asc":
		return "full_name ASC"
	case "-full_name", "full_name:desc", "full_name.desc":
		return "full_name DESC"
	case "email", "email:asc", "email.asc":
		return "email ASC"
	case "-email", "email:desc", "email.desc":
		return "email DESC"
	case "company", "company:asc", "company.asc":
		return "company ASC"
	case "-company", "company:desc", "company.desc":
		return "company DESC"
	default:
		return "created_at DESC"
	}
}

func (r *clientRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Client{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *clientRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Client{}).Count(&total).Error
	return total, err
}
