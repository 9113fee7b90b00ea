package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"coffee-filter-api/internal/models"
	"coffee-filter-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockShopService is a mock implementation of the ShopService interface
type MockShopService struct {
	mock.Mock
}

func (m *MockShopService) Create(ctx context.Context, params models.CreateShopParams) (*models.CoffeeShop, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CoffeeShop), args.Error(1)
}

func (m *MockShopService) Get(ctx context.Context, id int) (*models.CoffeeShop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CoffeeShop), args.Error(1)
}

func (m *MockShopService) List(ctx context.Context, skip, limit int) ([]models.CoffeeShop, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CoffeeShop), args.Error(1)
}

func (m *MockShopService) Update(ctx context.Context, id int, params models.UpdateShopParams) (*models.CoffeeShop, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CoffeeShop), args.Error(1)
}

func (m *MockShopService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testContext(t *testing.T, method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestShopHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	shop := &models.CoffeeShop{ID: 1, Name: "Roast", Address: "1 Main St", Latitude: 45.5, Longitude: -122.6}

	tests := []struct {
		name           string
		id             string
		mockShop       *models.CoffeeShop
		mockError      error
		expectedStatus int
	}{
		{
			name:           "found",
			id:             "1",
			mockShop:       shop,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "not found",
			id:             "42",
			mockError:      service.ErrNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-numeric id",
			id:             "abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "service error",
			id:             "1",
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockShopService)
			handler := NewShopHandler(mockSvc)

			c, w := testContext(t, http.MethodGet, "/api/v1/coffee-shops/"+tt.id, nil)
			c.Params = gin.Params{{Key: "id", Value: tt.id}}

			if tt.mockShop != nil || tt.mockError != nil {
				mockSvc.On("Get", mock.Anything, mock.Anything).Return(tt.mockShop, tt.mockError)
			}

			handler.Get(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var got models.CoffeeShop
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, *tt.mockShop, got)
			}
		})
	}
}

func TestShopHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		query          string
		expectSkip     int
		expectLimit    int
		expectedStatus int
	}{
		{
			name:           "defaults applied",
			query:          "",
			expectSkip:     0,
			expectLimit:    100,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "explicit paging",
			query:          "?skip=10&limit=5",
			expectSkip:     10,
			expectLimit:    5,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid skip",
			query:          "?skip=ten",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockShopService)
			handler := NewShopHandler(mockSvc)

			c, w := testContext(t, http.MethodGet, "/api/v1/coffee-shops"+tt.query, nil)

			if tt.expectedStatus == http.StatusOK {
				mockSvc.On("List", mock.Anything, tt.expectSkip, tt.expectLimit).Return([]models.CoffeeShop{}, nil)
			}

			handler.List(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestShopHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	created := &models.CoffeeShop{ID: 1, Name: "Roast", Address: "1 Main St", Latitude: 45.5, Longitude: -122.6}

	tests := []struct {
		name           string
		body           interface{}
		mockShop       *models.CoffeeShop
		mockError      error
		expectedStatus int
	}{
		{
			name:           "created",
			body:           gin.H{"name": "Roast", "address": "1 Main St"},
			mockShop:       created,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "geocoding failure surfaces as 400",
			body:           gin.H{"name": "Roast", "address": "nowhere"},
			mockError:      &service.ValidationError{Msg: "Could not geocode address: nowhere. Please provide latitude and longitude manually.", Address: "nowhere"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed payload",
			body:           "not an object",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockShopService)
			handler := NewShopHandler(mockSvc)

			c, w := testContext(t, http.MethodPost, "/api/v1/coffee-shops", tt.body)

			if tt.mockShop != nil || tt.mockError != nil {
				mockSvc.On("Create", mock.Anything, mock.Anything).Return(tt.mockShop, tt.mockError)
			}

			handler.Create(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.mockError != nil {
				var body map[string]string
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Contains(t, body["error"], "nowhere")
			}
		})
	}
}

func TestShopHandler_UpdatePayloadTriState(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockSvc := new(MockShopService)
	handler := NewShopHandler(mockSvc)

	c, w := testContext(t, http.MethodPut, "/api/v1/coffee-shops/1",
		gin.H{"name": "New Name", "photo_reference": nil})
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	mockSvc.On("Update", mock.Anything, 1, mock.MatchedBy(func(params models.UpdateShopParams) bool {
		return params.Name.Set && params.Name.Valid && params.Name.Value == "New Name" &&
			params.PhotoReference.Set && !params.PhotoReference.Valid &&
			!params.Address.Set
	})).Return(&models.CoffeeShop{ID: 1, Name: "New Name"}, nil)

	handler.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestShopHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		id             string
		mockError      error
		expectedStatus int
	}{
		{
			name:           "deleted",
			id:             "1",
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "not found",
			id:             "42",
			mockError:      service.ErrNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockShopService)
			handler := NewShopHandler(mockSvc)

			c, w := testContext(t, http.MethodDelete, "/api/v1/coffee-shops/"+tt.id, nil)
			c.Params = gin.Params{{Key: "id", Value: tt.id}}

			mockSvc.On("Delete", mock.Anything, mock.Anything).Return(tt.mockError)

			handler.Delete(c)
			// Body-less responses defer the status write on a bare test
			// context until the writer is flushed.
			c.Writer.WriteHeaderNow()

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
