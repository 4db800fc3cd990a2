package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EYOB-A19/Astu-compliant-system/internal/models"
	"github.com/EYOB-A19/Astu-compliant-system/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func studentSession() *models.Session {
	return &models.Session{
		UserID:     "stu-1",
		Name:       "Abel Tesfaye",
		Email:      "abel@astu.edu",
		Role:       models.RoleStudent,
		Department: models.DefaultDepartment,
	}
}

func staffSession(department string) *models.Session {
	return &models.Session{
		UserID:     "stf-1",
		Name:       "Staff Person",
		Email:      "staff@astu.edu",
		Role:       models.RoleStaff,
		Department: department,
	}
}

func adminSession() *models.Session {
	return &models.Session{
		UserID:     "adm-1",
		Name:       "Admin Person",
		Email:      "admin@astu.edu",
		Role:       models.RoleAdmin,
		Department: models.DefaultDepartment,
	}
}
