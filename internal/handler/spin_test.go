package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/spinworks/SlotEngine_Go/internal/domain"
	"github.com/spinworks/SlotEngine_Go/internal/spin"
	"github.com/spinworks/SlotEngine_Go/mocks"
)

func TestHandleSpin(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*mocks.MockSpinService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Invalid JSON",
			reqBody:        "invalid json",
			setupMocks:     func(ms *mocks.MockSpinService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Missing fields",
			reqBody:        SpinRequest{ThemeKey: "classic", BetAmount: 100},
			setupMocks:     func(ms *mocks.MockSpinService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "This field is required",
		},
		{
			name:           "Bad theme key",
			reqBody:        SpinRequest{UserID: "alice", ThemeKey: "../secrets", BetAmount: 100},
			setupMocks:     func(ms *mocks.MockSpinService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid theme key",
		},
		{
			name:    "Insufficient balance",
			reqBody: SpinRequest{UserID: "alice", ThemeKey: "classic", BetAmount: 100},
			setupMocks: func(ms *mocks.MockSpinService) {
				ms.On("Spin", mock.Anything, "alice", "classic", int64(100)).
					Return(nil, domain.ErrInsufficientBalance)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgInsufficientBalanceErr,
		},
		{
			name:    "Unknown theme",
			reqBody: SpinRequest{UserID: "alice", ThemeKey: "missing", BetAmount: 100},
			setupMocks: func(ms *mocks.MockSpinService) {
				ms.On("Spin", mock.Anything, "alice", "missing", int64(100)).
					Return(nil, domain.ErrThemeNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgThemeNotFoundError,
		},
		{
			name:    "Service error",
			reqBody: SpinRequest{UserID: "alice", ThemeKey: "classic", BetAmount: 100},
			setupMocks: func(ms *mocks.MockSpinService) {
				ms.On("Spin", mock.Anything, "alice", "classic", int64(100)).
					Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
		{
			name:    "Success",
			reqBody: SpinRequest{UserID: "alice", ThemeKey: "classic", BetAmount: 100},
			setupMocks: func(ms *mocks.MockSpinService) {
				ms.On("Spin", mock.Anything, "alice", "classic", int64(100)).
					Return(&spin.Result{
						Record: &domain.SpinRecord{
							ID:      "spin-1",
							UserID:  "alice",
							Settled: true,
							Outcome: domain.SpinOutcome{ThemeKey: "classic", BetAmount: 100, TotalWin: 250},
						},
						NewBalance: 1150,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"new_balance":1150`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.MockSpinService)
			tt.setupMocks(svc)
			h := NewSpinHandler(svc)

			body, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest(http.MethodPost, "/spin", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			h.HandleSpin(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleGetSpin(t *testing.T) {
	svc := new(mocks.MockSpinService)
	svc.On("GetSpin", mock.Anything, "spin-1").Return(&domain.SpinRecord{
		ID:     "spin-1",
		UserID: "alice",
	}, nil)
	svc.On("GetSpin", mock.Anything, "missing").Return(nil, domain.ErrSpinNotFound)

	h := NewSpinHandler(svc)
	router := chi.NewRouter()
	router.Get("/spin/{id}", h.HandleGetSpin)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/spin/spin-1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"spin-1"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/spin/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgSpinNotFoundError)
}

func TestHandleGetHistory(t *testing.T) {
	t.Run("Missing user_id", func(t *testing.T) {
		h := NewSpinHandler(new(mocks.MockSpinService))
		rec := httptest.NewRecorder()
		h.HandleGetHistory(rec, httptest.NewRequest(http.MethodGet, "/spin/history", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Invalid limit", func(t *testing.T) {
		h := NewSpinHandler(new(mocks.MockSpinService))
		rec := httptest.NewRecorder()
		h.HandleGetHistory(rec, httptest.NewRequest(http.MethodGet, "/spin/history?user_id=alice&limit=abc", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgInvalidLimit)
	})

	t.Run("Defaults limit", func(t *testing.T) {
		svc := new(mocks.MockSpinService)
		svc.On("GetHistory", mock.Anything, "alice", spin.DefaultHistoryLimit).
			Return([]domain.SpinRecord{{ID: "spin-1"}}, nil)
		h := NewSpinHandler(svc)

		rec := httptest.NewRecorder()
		h.HandleGetHistory(rec, httptest.NewRequest(http.MethodGet, "/spin/history?user_id=alice", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})
}

func TestHandleAudit(t *testing.T) {
	svc := new(mocks.MockSpinService)
	svc.On("Audit", mock.Anything, "spin-1").Return(&domain.AuditResult{
		SpinID:    "spin-1",
		GridMatch: true,
		WinMatch:  true,
		StoredWin: 250,
		ReplayWin: 250,
	}, nil)

	h := NewSpinHandler(svc)
	router := chi.NewRouter()
	router.Get("/spin/{id}/audit", h.HandleAudit)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/spin/spin-1/audit", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"grid_match":true`)
	svc.AssertExpectations(t)
}
