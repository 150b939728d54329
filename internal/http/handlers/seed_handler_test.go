package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/campus-lostfound/internal/auth"
	"github.com/ignatzorin/campus-lostfound/internal/infrastructure/memory"
)

func TestSeedHandler_IsIdempotent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := memory.NewStore()
	tokens := auth.NewTokenManager("secret", time.Hour)
	r := gin.New()
	r.POST("/seed", NewSeedHandler(store.Users(), tokens).Seed)

	seed := func() SeedResponse {
		req, _ := http.NewRequest("POST", "/seed", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)

		var body struct {
			Data SeedResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return body.Data
	}

	first := seed()
	require.Len(t, first.Accounts, len(seedAccounts))

	admin := first.Accounts[len(first.Accounts)-1]
	userID, role, err := tokens.ParseAccess(admin.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, userID.String())
	assert.Equal(t, "ADMIN", role)

	stored, err := store.Users().FindByID(context.Background(), uuid.MustParse(admin.ID))
	require.NoError(t, err)
	assert.Equal(t, "admin@campus.test", stored.Email)

	assert.Empty(t, seed().Accounts)
}
