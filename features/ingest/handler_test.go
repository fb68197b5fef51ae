package ingest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"policyhub/internal/pipeline"
)

type MockProcessor struct {
	mock.Mock
}

func (m *MockProcessor) Process(ctx context.Context, seedURL string) *pipeline.Result {
	args := m.Called(ctx, seedURL)
	return args.Get(0).(*pipeline.Result)
}

func TestHandler_ProcessPDFs_Table(t *testing.T) {
	okResult := &pipeline.Result{
		Success: true,
		Summary: &pipeline.Summary{Total: 2, Successful: 2, Sections: map[string]int{"child-welfare-manuals": 2}},
		Results: []pipeline.DocumentResult{{Filename: "a.pdf"}, {Filename: "b.pdf"}},
	}

	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockProcessor)
		wantStatus int
		checkBody  func(*testing.T, map[string]interface{})
	}{
		{
			name: "Success",
			body: `{"url": "https://policies.example.gov/manuals"}`,
			setupMock: func(m *MockProcessor) {
				m.On("Process", mock.Anything, "https://policies.example.gov/manuals").Return(okResult)
			},
			wantStatus: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, true, body["success"])
				summary := body["summary"].(map[string]interface{})
				assert.EqualValues(t, 2, summary["total"])
			},
		},
		{
			name: "ProcessorFailureIsStillEncoded",
			body: `{"url": "https://unreachable.example.gov"}`,
			setupMock: func(m *MockProcessor) {
				m.On("Process", mock.Anything, mock.Anything).Return(&pipeline.Result{
					Success: false,
					Error:   "fetch failed",
				})
			},
			wantStatus: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, false, body["success"])
				assert.Equal(t, "fetch failed", body["error"])
			},
		},
		{
			name:       "MissingURL",
			body:       `{}`,
			setupMock:  func(m *MockProcessor) {},
			wantStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				errObj := body["error"].(map[string]interface{})
				assert.Equal(t, "VALIDATION_ERROR", errObj["code"])
			},
		},
		{
			name:       "MalformedJSON",
			body:       `{"url"`,
			setupMock:  func(m *MockProcessor) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proc := new(MockProcessor)
			tt.setupMock(proc)
			h := NewHandler(proc)

			req := httptest.NewRequest(http.MethodPost, "/api/process-pdfs", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.ProcessPDFs(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.checkBody != nil {
				var body map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				tt.checkBody(t, body)
			}
			proc.AssertExpectations(t)
		})
	}
}
