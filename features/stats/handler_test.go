package stats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockInteractionCounter struct{ mock.Mock }

func (m *MockInteractionCounter) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockInteractionCounter) CountSessions(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestHandler_GetStatus_Table(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*MockInteractionCounter)
		wantStatus int
		wantError  bool
		checkBody  func(*testing.T, map[string]interface{})
	}{
		{
			name: "Success",
			setupMocks: func(m *MockInteractionCounter) {
				m.On("Count", mock.Anything).Return(42, nil)
				m.On("CountSessions", mock.Anything).Return(7, nil)
			},
			wantStatus: http.StatusOK,
			wantError:  false,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				data := body["data"].(map[string]interface{})
				assert.Equal(t, "policyhub", data["service"])
				assert.Equal(t, "operational", data["status"])
				assert.Equal(t, "policy-bucket", data["bucket"])
				assert.EqualValues(t, 42, data["interactions"])
				assert.EqualValues(t, 7, data["sessions"])
				assert.NotEmpty(t, data["timestamp"])
			},
		},
		{
			name: "Count Error",
			setupMocks: func(m *MockInteractionCounter) {
				m.On("Count", mock.Anything).Return(0, errors.New("db error"))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  true,
		},
		{
			name: "CountSessions Error",
			setupMocks: func(m *MockInteractionCounter) {
				m.On("Count", mock.Anything).Return(42, nil)
				m.On("CountSessions", mock.Anything).Return(0, errors.New("db error"))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mCounter := new(MockInteractionCounter)
			tt.setupMocks(mCounter)

			h := NewHandler(mCounter, "policy-bucket")
			req := httptest.NewRequest("GET", "/api/status", nil)
			w := httptest.NewRecorder()

			h.GetStatus(w, req)

			resp := w.Result()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body map[string]interface{}
			err := json.NewDecoder(resp.Body).Decode(&body)
			assert.NoError(t, err)

			if tt.wantError {
				assert.Contains(t, body, "error")
				errMap := body["error"].(map[string]interface{})
				assert.Equal(t, "INTERNAL_ERROR", errMap["code"])
			} else {
				tt.checkBody(t, body)
			}
		})
	}
}
