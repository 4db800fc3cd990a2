package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EYOB-A19/Astu-compliant-system/internal/models"
	"github.com/EYOB-A19/Astu-compliant-system/internal/utils"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	session := models.Session{
		UserID:     "u1",
		Name:       "Staff Demo",
		Email:      "staff@astu.edu",
		Role:       models.RoleStaff,
		Department: "ICT Support",
	}

	tok, err := utils.SignSession("secret", session, time.Hour)
	require.NoError(t, err)

	got, err := utils.ParseSession("secret", tok)
	require.NoError(t, err)
	assert.Equal(t, session, *got)
}

func TestParseSessionRejectsWrongSecret(t *testing.T) {
	tok, err := utils.SignSession("secret", models.Session{UserID: "u1"}, time.Hour)
	require.NoError(t, err)

	_, err = utils.ParseSession("other", tok)
	assert.Error(t, err)
}

func TestParseSessionRejectsExpiredToken(t *testing.T) {
	tok, err := utils.SignSession("secret", models.Session{UserID: "u1"}, -time.Minute)
	require.NoError(t, err)

	_, err = utils.ParseSession("secret", tok)
	assert.Error(t, err)
}
