package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/zititex/zititex-api/internal/dto"
	"github.com/zititex/zititex-api/internal/handler"
	"github.com/zititex/zititex-api/internal/service"
)

type mockAdminClientService struct {
	list    dto.AdminClientListResponse
	get     dto.AdminClientResponse
	err     error
	deleted []uint
}

func (m *mockAdminClientService) List(context.Context, dto.AdminClientListRequest) (dto.AdminClientListResponse, error) {
	return m.list, m.err
}

func (m *mockAdminClientService) Get(_ context.Context, id uint) (dto.AdminClientResponse, error) {
	if m.err != nil {
		return dto.AdminClientResponse{}, m.err
	}
	return m.get, nil
}

func (m *mockAdminClientService) Delete(_ context.Context, id uint) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func newAdminApp(svc service.AdminClientService) *fiber.App {
	app := fiber.New()
	logger := zerolog.New(io.Discard)
	handler.NewAdminClientHandler(svc, logger).Register(app.Group("/api/admin/clients"))
	return app
}

func TestAdminClientHandler_List(t *testing.T) {
	svc := &mockAdminClientService{list: dto.AdminClientListResponse{
		Items:      []dto.AdminClientResponse{{ID: 1, FullName: "Juan Pérez", Email: "j***n@example.com"}},
		Pagination: dto.PaginationMeta{Page: 1, PageSize: 20, TotalItems: 1, TotalPages: 1},
	}}
	app := newAdminApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/clients?page=1&page_size=20", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response struct {
		Success bool                        `json:"success"`
		Data    dto.AdminClientListResponse `json:"data"`
	}
	decodeResponse(t, resp, &response)
	require.True(t, response.Success)
	require.Len(t, response.Data.Items, 1)
}

func TestAdminClientHandler_GetNotFound(t *testing.T) {
	app := newAdminApp(&mockAdminClientService{err: service.ErrClientNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/clients/99", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAdminClientHandler_Delete(t *testing.T) {
	svc := &mockAdminClientService{}
	app := newAdminApp(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/clients/7", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, []uint{7}, svc.deleted)
}

func TestAdminClientHandler_InvalidID(t *testing.T) {
	app := newAdminApp(&mockAdminClientService{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/clients/abc", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
