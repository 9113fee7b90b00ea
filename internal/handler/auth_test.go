package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"coffee-filter-api/internal/models"
	"coffee-filter-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockLoginService is a mock implementation of the LoginService interface
type MockLoginService struct {
	mock.Mock
}

func (m *MockLoginService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           interface{}
		mockToken      string
		mockError      error
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			body:           gin.H{"username": "admin", "password": "correct"},
			mockToken:      "signed.jwt.token",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad credentials",
			body:           gin.H{"username": "admin", "password": "wrong"},
			mockError:      service.ErrRejected,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing password",
			body:           gin.H{"username": "admin"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed payload",
			body:           "nope",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockLoginService)
			handler := NewAuthHandler(mockSvc)

			c, w := testContext(t, http.MethodPost, "/api/v1/auth/login", tt.body)

			if tt.mockToken != "" || tt.mockError != nil {
				mockSvc.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(tt.mockToken, tt.mockError)
			}

			handler.Login(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp tokenResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.mockToken, resp.AccessToken)
				assert.Equal(t, "bearer", resp.TokenType)
			}
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewAuthHandler(new(MockLoginService))

	t.Run("authenticated", func(t *testing.T) {
		c, w := testContext(t, http.MethodGet, "/api/v1/auth/me", nil)
		c.Set(identityKey, &models.Identity{Username: "admin", IsAdmin: true})

		handler.Me(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var identity models.Identity
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &identity))
		assert.Equal(t, "admin", identity.Username)
		assert.True(t, identity.IsAdmin)
	})

	t.Run("no identity on context", func(t *testing.T) {
		c, w := testContext(t, http.MethodGet, "/api/v1/auth/me", nil)

		handler.Me(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
