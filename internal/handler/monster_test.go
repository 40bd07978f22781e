package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tamaverse/TamaPet_Go/internal/domain"
	"github.com/tamaverse/TamaPet_Go/internal/handler"
	"github.com/tamaverse/TamaPet_Go/internal/monster"
)

func TestHandleCreateMonster(t *testing.T) {
	handler.InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockMonsterService)
		expectedStatus int
		expectedError  string
	}{
		{
			name:        "Success",
			requestBody: handler.CreateMonsterRequest{OwnerID: "viewer-42", Name: "Blinky"},
			setupMock: func(m *MockMonsterService) {
				m.On("CreateMonster", mock.Anything, "viewer-42", "Blinky").
					Return(&monster.CreateResult{
						Monster:   &domain.Monster{ID: "mon-1", OwnerID: "viewer-42", Name: "Blinky", Level: 1},
						PricePaid: 0,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "Insufficient Funds",
			requestBody: handler.CreateMonsterRequest{OwnerID: "broke", Name: "Pricey"},
			setupMock: func(m *MockMonsterService) {
				m.On("CreateMonster", mock.Anything, "broke", "Pricey").
					Return(nil, domain.ErrInsufficientFunds)
			},
			expectedStatus: http.StatusPaymentRequired,
			expectedError:  "not enough",
		},
		{
			name:           "Validation Error (Missing Name)",
			requestBody:    handler.CreateMonsterRequest{OwnerID: "viewer-42"},
			setupMock:      func(m *MockMonsterService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request",
		},
		{
			name:           "Malformed JSON",
			requestBody:    "not-json",
			setupMock:      func(m *MockMonsterService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockMonsterService)
			tt.setupMock(mockSvc)

			var body []byte
			if s, ok := tt.requestBody.(string); ok {
				body = []byte(s)
			} else {
				var err error
				body, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatalf("Failed to marshal request body: %v", err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/monsters", bytes.NewReader(body))
			w := httptest.NewRecorder()

			handler.HandleCreateMonster(mockSvc)(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, strings.ToLower(w.Body.String()), strings.ToLower(tt.expectedError))
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleGetMonster(t *testing.T) {
	handler.InitValidator()

	t.Run("returns monster", func(t *testing.T) {
		mockSvc := new(MockMonsterService)
		mockSvc.On("GetMonster", mock.Anything, "viewer-42", "mon-1").
			Return(&domain.Monster{ID: "mon-1", OwnerID: "viewer-42", Name: "Blinky", State: domain.StateHungry}, nil)

		req := withChiParam(httptest.NewRequest(http.MethodGet, "/monsters/mon-1?owner_id=viewer-42", nil), "id", "mon-1")
		w := httptest.NewRecorder()

		handler.HandleGetMonster(mockSvc)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp handler.GetMonsterResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, domain.StateHungry, resp.Monster.State)
	})

	t.Run("foreign monster", func(t *testing.T) {
		mockSvc := new(MockMonsterService)
		mockSvc.On("GetMonster", mock.Anything, "intruder", "mon-1").
			Return(nil, domain.ErrOwnershipMismatch)

		req := withChiParam(httptest.NewRequest(http.MethodGet, "/monsters/mon-1?owner_id=intruder", nil), "id", "mon-1")
		w := httptest.NewRecorder()

		handler.HandleGetMonster(mockSvc)(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing owner_id", func(t *testing.T) {
		mockSvc := new(MockMonsterService)

		req := withChiParam(httptest.NewRequest(http.MethodGet, "/monsters/mon-1", nil), "id", "mon-1")
		w := httptest.NewRecorder()

		handler.HandleGetMonster(mockSvc)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "GetMonster")
	})
}

func TestHandleListMonsters(t *testing.T) {
	handler.InitValidator()

	mockSvc := new(MockMonsterService)
	mockSvc.On("ListMonsters", mock.Anything, "viewer-42").
		Return([]*domain.Monster{
			{ID: "mon-1", Name: "Blinky"},
			{ID: "mon-2", Name: "Clyde"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/monsters?owner_id=viewer-42", nil)
	w := httptest.NewRecorder()

	handler.HandleListMonsters(mockSvc)(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.ListMonstersResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Monsters, 2)
}

func TestHandleNextMonsterPrice(t *testing.T) {
	handler.InitValidator()

	mockSvc := new(MockMonsterService)
	mockSvc.On("NextMonsterPrice", mock.Anything, "viewer-42").Return(100, nil)

	req := httptest.NewRequest(http.MethodGet, "/monsters/price?owner_id=viewer-42", nil)
	w := httptest.NewRecorder()

	handler.HandleNextMonsterPrice(mockSvc)(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.NextMonsterPriceResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 100, resp.Price)
}

func TestHandlePerformAction(t *testing.T) {
	handler.InitValidator()

	t.Run("matching action rewards", func(t *testing.T) {
		mockSvc := new(MockMonsterService)
		mockSvc.On("PerformAction", mock.Anything, "viewer-42", "mon-1", domain.ActionFeed).
			Return(&monster.ActionResult{
				Action:        domain.ActionFeed,
				OldState:      domain.StateHungry,
				NewState:      domain.StateHappy,
				OldXP:         0,
				NewXP:         10,
				OldLevel:      1,
				NewLevel:      1,
				XPToNextLevel: 100,
				Rewarded:      true,
				Reward:        2,
			}, nil)

		body, _ := json.Marshal(handler.CareActionRequest{OwnerID: "viewer-42", Action: "feed"})
		req := withChiParam(httptest.NewRequest(http.MethodPost, "/monsters/mon-1/action", bytes.NewReader(body)), "id", "mon-1")
		w := httptest.NewRecorder()

		handler.HandlePerformAction(mockSvc)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp handler.CareActionResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, domain.StateHappy, resp.Result.NewState)
		assert.True(t, resp.Result.Rewarded)
		assert.Equal(t, 2, resp.Result.Reward)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown action rejected by validator", func(t *testing.T) {
		mockSvc := new(MockMonsterService)

		body, _ := json.Marshal(handler.CareActionRequest{OwnerID: "viewer-42", Action: "tickle"})
		req := withChiParam(httptest.NewRequest(http.MethodPost, "/monsters/mon-1/action", bytes.NewReader(body)), "id", "mon-1")
		w := httptest.NewRecorder()

		handler.HandlePerformAction(mockSvc)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "PerformAction")
	})

	t.Run("monster not found", func(t *testing.T) {
		mockSvc := new(MockMonsterService)
		mockSvc.On("PerformAction", mock.Anything, "viewer-42", "ghost", domain.ActionHug).
			Return(nil, domain.ErrMonsterNotFound)

		body, _ := json.Marshal(handler.CareActionRequest{OwnerID: "viewer-42", Action: "hug"})
		req := withChiParam(httptest.NewRequest(http.MethodPost, "/monsters/ghost/action", bytes.NewReader(body)), "id", "ghost")
		w := httptest.NewRecorder()

		handler.HandlePerformAction(mockSvc)(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
