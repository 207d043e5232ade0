package requesttime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type RequestTimeSuite struct {
	suite.Suite
}

func TestRequestTimeSuite(t *testing.T) {
	suite.Run(t, new(RequestTimeSuite))
}

func (s *RequestTimeSuite) TestWithTime() {
	s.Run("returns the injected time", func() {
		pinned := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		ctx := WithTime(context.Background(), pinned)
		s.Equal(pinned, Now(ctx))
	})

	s.Run("falls back to wall clock when unset", func() {
		before := time.Now()
		got := Now(context.Background())
		s.False(got.Before(before))
	})
}

func (s *RequestTimeSuite) TestMiddleware() {
	var captured time.Time
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = Now(r.Context())
	}))

	start := time.Now()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	s.False(captured.Before(start))
	s.False(captured.After(time.Now()))
}
