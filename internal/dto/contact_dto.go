package dto

import (
	"time"

	"github.com/zititex/zititex-api/internal/models"
)

// ContactRequest defines the expected payload for the contact form endpoint.
type ContactRequest struct {
	FullName    string `json:"full_name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Phone       string `json:"phone" validate:"required,min=10,max=20,phone"`
	Company     string `json:"company" validate:"omitempty,max=255"`
	ProductType string `json:"product_type" validate:"omitempty,max=100"`
	Quantity    *int   `json:"quantity" validate:"omitempty,min=1"`
	Message     string `json:"message" validate:"required,min=10,max=2000"`
	IPAddress   string `json:"-"`
	UserAgent   string `json:"-"`
}

// ContactResult echoes the submitted fields back to the caller together with
// the stored record identity and a server-generated timestamp. EmailSent
// reflects the admin notification only and is never serialized.
type ContactResult struct {
	ID          uint      `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Company     string    `json:"company,omitempty"`
	ProductType string    `json:"product_type,omitempty"`
	Quantity    *int      `json:"quantity,omitempty"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
	EmailSent   bool      `json:"-"`
}

// PaginationMeta describes list pagination state.
type PaginationMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// AdminClientListRequest captures query filters for the admin lead listing.
type AdminClientListRequest struct {
	Page     int
	PageSize int
	Search   string
	Sort     string
}

// AdminClientResponse is the serialized representation of a stored lead.
type AdminClientResponse struct {
	ID          uint      `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Company     string    `json:"company,omitempty"`
	ProductType string    `json:"product_type,omitempty"`
	Quantity    *int      `json:"quantity,omitempty"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

// AdminClientListResponse wraps a page of leads with pagination metadata.
type AdminClientListResponse struct {
	Items      []AdminClientResponse `json:"items"`
	Pagination PaginationMeta        `json:"pagination"`
}

// NewClientFromContactRequest builds the persistence model for a submission.
func NewClientFromContactRequest(req ContactRequest) models.Client {
	client := models.Client{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		ProductType: req.ProductType,
		Quantity:    req.Quantity,
		Message:     req.Message,
	}

	if req.IPAddress != "" || req.UserAgent != "" {
		client.Metadata = map[string]interface{}{}
		if req.IPAddress != "" {
			client.Metadata["ip_address"] = req.IPAddress
		}
		if req.UserAgent != "" {
			client.Metadata["user_agent"] = req.UserAgent
		}
	}

	return client
}
