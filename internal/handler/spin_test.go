package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zodiacgames/ZodiacSpin_Go/internal/config"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/domain"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/history"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/spin"
)

// MockSpinService mocks the spin.Service interface
type MockSpinService struct {
	mock.Mock
}

func (m *MockSpinService) RequestSpin(ctx context.Context, stake int) (string, error) {
	args := m.Called(ctx, stake)
	return args.String(0), args.Error(1)
}

func (m *MockSpinService) SetAutoSpin(ctx context.Context, enabled bool) {
	m.Called(ctx, enabled)
}

func (m *MockSpinService) SetTurbo(ctx context.Context, enabled bool) bool {
	args := m.Called(ctx, enabled)
	return args.Bool(0)
}

func (m *MockSpinService) AdjustStake(ctx context.Context, delta int) int {
	args := m.Called(ctx, delta)
	return args.Int(0)
}

func (m *MockSpinService) SetTheme(ctx context.Context, themeID string) error {
	args := m.Called(ctx, themeID)
	return args.Error(0)
}

func (m *MockSpinService) Status() spin.Status {
	args := m.Called()
	return args.Get(0).(spin.Status)
}

func (m *MockSpinService) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newTestHandler(svc spin.Service) (*SpinHandler, history.Service) {
	hist := history.NewService(10, time.Minute)
	return NewSpinHandler(svc, hist, config.DefaultGame()), hist
}

func postJSON(t *testing.T, h http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandleSpin(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        interface{}
		setupMock      func(*MockSpinService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Accepted",
			reqBody: SpinRequest{Stake: 100},
			setupMock: func(m *MockSpinService) {
				m.On("RequestSpin", mock.Anything, 100).Return("sess-1", nil)
			},
			expectedStatus: http.StatusAccepted,
			expectedBody:   `"session_id":"sess-1"`,
		},
		{
			name:    "Spin In Progress",
			reqBody: SpinRequest{},
			setupMock: func(m *MockSpinService) {
				m.On("RequestSpin", mock.Anything, 0).Return("", domain.ErrSpinInProgress)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgSpinInProgressError,
		},
		{
			name:    "Insufficient Energy",
			reqBody: SpinRequest{Stake: 100},
			setupMock: func(m *MockSpinService) {
				m.On("RequestSpin", mock.Anything, 100).Return("", domain.ErrInsufficientEnergy)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgNotEnoughEnergyError,
		},
		{
			name:    "Insufficient Currency",
			reqBody: SpinRequest{Stake: 500},
			setupMock: func(m *MockSpinService) {
				m.On("RequestSpin", mock.Anything, 500).Return("", domain.ErrInsufficientCurrency)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgNotEnoughCurrencyError,
		},
		{
			name:           "Invalid JSON",
			reqBody:        "not json",
			setupMock:      func(m *MockSpinService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockSpinService{}
			tt.setupMock(mockSvc)
			h, _ := newTestHandler(mockSvc)

			w := postJSON(t, h.HandleSpin, "/api/v1/slot/spin", tt.reqBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleSetAutoSpin(t *testing.T) {
	mockSvc := &MockSpinService{}
	mockSvc.On("SetAutoSpin", mock.Anything, true).Return()
	h, _ := newTestHandler(mockSvc)

	w := postJSON(t, h.HandleSetAutoSpin, "/api/v1/slot/auto", AutoSpinRequest{Enabled: true})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgAutoSpinEnabled)
	mockSvc.AssertExpectations(t)
}

func TestHandleSetTurbo(t *testing.T) {
	mockSvc := &MockSpinService{}
	mockSvc.On("SetTurbo", mock.Anything, true).Return(true)
	h, _ := newTestHandler(mockSvc)

	w := postJSON(t, h.HandleSetTurbo, "/api/v1/slot/turbo", TurboRequest{Enabled: true})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"turbo":true`)
	mockSvc.AssertExpectations(t)
}

func TestHandleAdjustStake(t *testing.T) {
	mockSvc := &MockSpinService{}
	mockSvc.On("AdjustStake", mock.Anything, 25).Return(125)
	h, _ := newTestHandler(mockSvc)

	w := postJSON(t, h.HandleAdjustStake, "/api/v1/slot/stake", StakeRequest{Delta: 25})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"stake":125`)
	mockSvc.AssertExpectations(t)
}

func TestHandleSetTheme(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockSpinService{}
		mockSvc.On("SetTheme", mock.Anything, "dragon").Return(nil)
		h, _ := newTestHandler(mockSvc)

		w := postJSON(t, h.HandleSetTheme, "/api/v1/slot/theme", ThemeRequest{ThemeID: "dragon"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgThemeChanged)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Unknown Theme", func(t *testing.T) {
		mockSvc := &MockSpinService{}
		mockSvc.On("SetTheme", mock.Anything, "nope").Return(domain.ErrUnknownTheme)
		h, _ := newTestHandler(mockSvc)

		w := postJSON(t, h.HandleSetTheme, "/api/v1/slot/theme", ThemeRequest{ThemeID: "nope"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgUnknownThemeError)
	})

	t.Run("Missing Theme ID", func(t *testing.T) {
		mockSvc := &MockSpinService{}
		h, _ := newTestHandler(mockSvc)

		w := postJSON(t, h.HandleSetTheme, "/api/v1/slot/theme", ThemeRequest{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "This field is required")
	})
}

func TestHandleGetState(t *testing.T) {
	mockSvc := &MockSpinService{}
	mockSvc.On("Status").Return(spin.Status{
		State:   spin.StateIdle,
		Stake:   100,
		ThemeID: "classic",
		Economy: domain.EconomySnapshot{Currency: 10000, Energy: 5, Level: 1},
	})
	h, _ := newTestHandler(mockSvc)

	req := httptest.NewRequest("GET", "/api/v1/slot/state", nil)
	w := httptest.NewRecorder()
	h.HandleGetState(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"idle"`)
	assert.Contains(t, w.Body.String(), `"currency":10000`)
}

func TestHandleGetThemes(t *testing.T) {
	h, _ := newTestHandler(&MockSpinService{})

	req := httptest.NewRequest("GET", "/api/v1/slot/themes", nil)
	w := httptest.NewRecorder()
	h.HandleGetThemes(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var themes []ThemeInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &themes))
	assert.Len(t, themes, 6)
}

func TestHandleGetHistory(t *testing.T) {
	h, hist := newTestHandler(&MockSpinService{})
	hist.Record(domain.SpinRecord{
		SessionID: "sess-1",
		Outcome:   domain.SpinOutcome{Stake: 100, TotalPayout: 700, IsWin: true},
		SettledAt: time.Now(),
	})

	t.Run("Default Limit", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/slot/history", nil)
		w := httptest.NewRecorder()
		h.HandleGetHistory(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"session_id":"sess-1"`)
	})

	t.Run("Invalid Limit", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/slot/history?limit=abc", nil)
		w := httptest.NewRecorder()
		h.HandleGetHistory(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleGetSession(t *testing.T) {
	h, hist := newTestHandler(&MockSpinService{})
	hist.Record(domain.SpinRecord{SessionID: "sess-1", SettledAt: time.Now()})

	t.Run("Found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/slot/history/session?id=sess-1", nil)
		w := httptest.NewRecorder()
		h.HandleGetSession(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Not Found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/slot/history/session?id=missing", nil)
		w := httptest.NewRecorder()
		h.HandleGetSession(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgSessionNotFound)
	})

	t.Run("Missing ID", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/slot/history/session", nil)
		w := httptest.NewRecorder()
		h.HandleGetSession(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
