package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/zititex/zititex-api/internal/models"
)

func setupClientTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Client{}))
	return db
}

func newLead(name, email string) models.Client {
	return models.Client{
		FullName: name,
		Email:    email,
		Phone:    "+52 123 456 7890",
		Message:  "Quiero información sobre sus productos",
	}
}

func TestClientRepositoryCreateAndGet(t *testing.T) {
	db := setupClientTestDB(t)
	repo := NewClientRepository(db)

	lead := newLead("Juan Pérez", "juan@example.com")
	lead.Metadata = map[string]interface{}{"ip_address": "203.0.113.9"}
	require.NoError(t, repo.Create(context.Background(), &lead))
	require.NotZero(t, lead.ID)
	require.False(t, lead.CreatedAt.IsZero())

	stored, err := repo.GetByID(context.Background(), lead.ID)
	require.NoError(t, err)
	require.Equal(t, "Juan Pérez", stored.FullName)
	require.Equal(t, "+52 123 456 7890", stored.Phone, "phone separators are preserved")

	byEmail, err := repo.GetByEmail(context.Background(), "juan@example.com")
	require.NoError(t, err)
	require.Equal(t, lead.ID, byEmail.ID)
}

func TestClientRepositoryAllowsDuplicateEmails(t *testing.T) {
	db := setupClientTestDB(t)
	repo := NewClientRepository(db)

	first := newLead("Juan Pérez", "juan@example.com")
	second := newLead("Juan Pérez", "juan@example.com")
	require.NoError(t, repo.Create(context.Background(), &first))
	require.NoError(t, repo.Create(context.Background(), &second))
	require.NotEqual(t, first.ID, second.ID)

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
}

func TestClientRepositoryListFiltersAndPaginates(t *testing.T) {
	db := setupClientTestDB(t)
	repo := NewClientRepository(db)

	leads := []models.Client{
		newLead("Ana García", "ana@textiles.mx"),
		newLead("Juan Pérez", "juan@example.com"),
		newLead("Pedro López", "pedro@example.com"),
	}
	leads[0].Company = "Textiles del Norte"
	for i := range leads {
		require.NoError(t, repo.Create(context.Background(), &leads[i]))
	}

	items, total, err := repo.List(context.Background(), ClientFilter{Search: "textiles"})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	require.Equal(t, "Ana García", items[0].FullName)

	paged, total, err := repo.List(context.Background(), ClientFilter{Page: 2, PageSize: 2, Sort: "full_name"})
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Len(t, paged, 1)
	require.Equal(t, "Pedro López", paged[0].FullName)
}

func TestClientRepositoryListSortIsWhitelisted(t *testing.T) {
	db := setupClientTestDB(t)
	repo := NewClientRepository(db)

	leads := []models.Client{
		newLead("Ana García", "ana@example.com"),
		newLead("Pedro López", "pedro@example.com"),
	}
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	for i := range leads {
		leads[i].CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(context.Background(), &leads[i]))
	}

	asc, _, err := repo.List(context.Background(), ClientFilter{Sort: "full_name"})
	require.NoError(t, err)
	require.Equal(t, "Ana García", asc[0].FullName)

	desc, _, err := repo.List(context.Background(), ClientFilter{Sort: "-full_name"})
	require.NoError(t, err)
	require.Equal(t, "Pedro López", desc[0].FullName)

	// Sort values outside the whitelist never reach the SQL layer; a
	// conditional subquery must behave exactly like the newest-first default.
	injected, _, err := repo.List(context.Background(), ClientFilter{
		Sort: "CASE WHEN (SELECT count(*) FROM sqlite_master) > 0 THEN full_name END DESC",
	})
	require.NoError(t, err)
	fallback, _, err := repo.List(context.Background(), ClientFilter{})
	require.NoError(t, err)
	require.Equal(t, fallback[0].ID, injected[0].ID)
	require.Equal(t, fallback[1].ID, injected[1].ID)
}

func TestNormalizeClientSort(t *testing.T) {
	cases := []struct {
		sort string
		want string
	}{
		{sort: "", want: "created_at DESC"},
		{sort: "created_at", want: "created_at ASC"},
		{sort: "-created_at", want: "created_at DESC"},
		{sort: "Email:DESC", want: "email DESC"},
		{sort: "company.asc", want: "company ASC"},
		{sort: "id ASC", want: "created_at DESC"},
		{sort: "full_name; DROP TABLE clients", want: "created_at DESC"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, normalizeClientSort(tc.sort), "sort %q", tc.sort)
	}
}

func TestClientRepositoryDelete(t *testing.T) {
	db := setupClientTestDB(t)
	repo := NewClientRepository(db)

	lead := newLead("Juan Pérez", "juan@example.com")
	require.NoError(t, repo.Create(context.Background(), &lead))

	require.NoError(t, repo.Delete(context.Background(), lead.ID))
	require.ErrorIs(t, repo.Delete(context.Background(), lead.ID), gorm.ErrRecordNotFound)

	_, err := repo.GetByID(context.Background(), lead.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
