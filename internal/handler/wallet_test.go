package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tamaverse/TamaPet_Go/internal/domain"
	"github.com/tamaverse/TamaPet_Go/internal/handler"
)

// withChiParam attaches a chi route parameter to the request context
func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestHandleGetWallet(t *testing.T) {
	handler.InitValidator()

	t.Run("returns wallet", func(t *testing.T) {
		mockSvc := new(MockWalletService)
		expected := &domain.Wallet{ID: "w-1", OwnerID: "viewer-42", Balance: 100, Currency: domain.CurrencyTC}
		mockSvc.On("GetOrCreateWallet", mock.Anything, "viewer-42").Return(expected, nil)

		req := httptest.NewRequest(http.MethodGet, "/wallet?owner_id=viewer-42", nil)
		w := httptest.NewRecorder()

		handler.HandleGetWallet(mockSvc)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp handler.GetWalletResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "viewer-42", resp.Wallet.OwnerID)
		assert.Equal(t, 100, resp.Wallet.Balance)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing owner_id", func(t *testing.T) {
		mockSvc := new(MockWalletService)

		req := httptest.NewRequest(http.MethodGet, "/wallet", nil)
		w := httptest.NewRecorder()

		handler.HandleGetWallet(mockSvc)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "GetOrCreateWallet")
	})

	t.Run("service failure", func(t *testing.T) {
		mockSvc := new(MockWalletService)
		mockSvc.On("GetOrCreateWallet", mock.Anything, "viewer-42").Return(nil, assert.AnError)

		req := httptest.NewRequest(http.MethodGet, "/wallet?owner_id=viewer-42", nil)
		w := httptest.NewRecorder()

		handler.HandleGetWallet(mockSvc)(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandleGetBalance(t *testing.T) {
	handler.InitValidator()

	mockSvc := new(MockWalletService)
	mockSvc.On("GetBalance", mock.Anything, "viewer-42").Return(250, nil)

	req := httptest.NewRequest(http.MethodGet, "/wallet/balance?owner_id=viewer-42", nil)
	w := httptest.NewRecorder()

	handler.HandleGetBalance(mockSvc)(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.BalanceResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 250, resp.Balance)
	assert.Equal(t, domain.CurrencyTC, resp.Currency)
}

func TestHandleCredit(t *testing.T) {
	handler.InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockWalletService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Success",
			requestBody: handler.AdjustBalanceRequest{
				OwnerID: "viewer-42",
				Amount:  50,
				Reason:  string(domain.ReasonAdminGrant),
			},
			setupMock: func(m *MockWalletService) {
				m.On("Credit", mock.Anything, "viewer-42", 50, domain.ReasonAdminGrant, "").
					Return(&domain.Wallet{Balance: 150}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Balance Cap Exceeded",
			requestBody: handler.AdjustBalanceRequest{
				OwnerID: "hoarder",
				Amount:  500,
				Reason:  string(domain.ReasonAdminGrant),
			},
			setupMock: func(m *MockWalletService) {
				m.On("Credit", mock.Anything, "hoarder", 500, domain.ReasonAdminGrant, "").
					Return(nil, domain.ErrBalanceCapExceeded)
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "wallet is full",
		},
		{
			name:           "Malformed JSON",
			requestBody:    "not-json",
			setupMock:      func(m *MockWalletService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request body",
		},
		{
			name: "Validation Error (Missing Owner)",
			requestBody: handler.AdjustBalanceRequest{
				Amount: 50,
				Reason: string(domain.ReasonAdminGrant),
			},
			setupMock:      func(m *MockWalletService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockWalletService)
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

			req := httptest.NewRequest(http.MethodPost, "/wallet/credit", bytes.NewReader(body))
			w := httptest.NewRecorder()

			handler.HandleCredit(mockSvc)(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, strings.ToLower(w.Body.String()), strings.ToLower(tt.expectedError))
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleDebit(t *testing.T) {
	handler.InitValidator()

	t.Run("insufficient funds", func(t *testing.T) {
		mockSvc := new(MockWalletService)
		mockSvc.On("Debit", mock.Anything, "spender", 999, domain.ReasonAdminDeduct, "").
			Return(nil, domain.ErrInsufficientFunds)

		body, _ := json.Marshal(handler.AdjustBalanceRequest{
			OwnerID: "spender",
			Amount:  999,
			Reason:  string(domain.ReasonAdminDeduct),
		})

		req := httptest.NewRequest(http.MethodPost, "/wallet/debit", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.HandleDebit(mockSvc)(w, req)

		assert.Equal(t, http.StatusPaymentRequired, w.Code)
		assert.Contains(t, strings.ToLower(w.Body.String()), "not enough")
	})
}

func TestHandleGetTransactions(t *testing.T) {
	handler.InitValidator()

	t.Run("passes filter through", func(t *testing.T) {
		mockSvc := new(MockWalletService)
		earn := domain.TransactionEarn
		mockSvc.On("GetTransactions", mock.Anything, "viewer-42", domain.TransactionFilter{Type: &earn, Limit: 10, Offset: 20}).
			Return([]domain.Transaction{{ID: "t-1", Amount: 25}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/wallet/transactions?owner_id=viewer-42&type=EARN&limit=10&offset=20", nil)
		w := httptest.NewRecorder()

		handler.HandleGetTransactions(mockSvc)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp handler.GetTransactionsResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Transactions, 1)
		mockSvc.AssertExpectations(t)
	})

	t.Run("rejects unknown type filter", func(t *testing.T) {
		mockSvc := new(MockWalletService)

		req := httptest.NewRequest(http.MethodGet, "/wallet/transactions?owner_id=viewer-42&type=STEAL", nil)
		w := httptest.NewRecorder()

		handler.HandleGetTransactions(mockSvc)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "GetTransactions")
	})

	t.Run("rejects negative limit", func(t *testing.T) {
		mockSvc := new(MockWalletService)

		req := httptest.NewRequest(http.MethodGet, "/wallet/transactions?owner_id=viewer-42&limit=-5", nil)
		w := httptest.NewRecorder()

		handler.HandleGetTransactions(mockSvc)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "GetTransactions")
	})
}
