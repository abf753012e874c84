package server

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/review-generator/internal/core"
	"github.com/sevigo/review-generator/internal/server/handler"
	"github.com/sevigo/review-generator/mocks"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	ctrl := gomock.NewController(t)
	page, err := handler.NewPage(core.DefaultFormContent())
	require.NoError(t, err)
	forms := handler.NewFormHandler(mocks.NewMockReviewGenerator(ctrl), page, slog.New(slog.DiscardHandler))
	return NewRouter(forms, time.Minute)
}

func TestRouter(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "Health", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK},
		{name: "Form", method: http.MethodGet, path: "/", wantStatus: http.StatusOK},
		{name: "Unknown path", method: http.MethodGet, path: "/reviews", wantStatus: http.StatusNotFound},
		{name: "Wrong method", method: http.MethodDelete, path: "/", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequestTimeout(t *testing.T) {
	assert.Equal(t, 3*time.Minute+requestOverhead, RequestTimeout(time.Minute))
	assert.Greater(t, RequestTimeout(time.Second), time.Duration(core.ReviewsPerRequest)*time.Second)
}
