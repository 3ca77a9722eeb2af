package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	apierrors "erp-dashboard/internal/errors"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) serve(traceID string, h echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/reports/insights", nil), rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	var err error
	s.NotPanics(func() {
		err = PanicRecovery()(h)(c)
	})
	return rec, err
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_RecoverFromPanic() {
	rec, err := s.serve("test-trace-id", func(c echo.Context) error {
		panic("nil map in insight rule")
	})

	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)

	var errorResponse apierrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("SYSTEM_001", errorResponse.Error.Code)
	s.Equal("test-trace-id", errorResponse.Error.TraceID)
	s.NotContains(rec.Body.String(), "nil map")
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_NoTraceID() {
	rec, _ := s.serve("", func(c echo.Context) error {
		panic(errors.New("boom"))
	})

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "unknown")
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_NormalFlow() {
	rec, err := s.serve("test-trace-id", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_AfterResponseCommitted() {
	rec, err := s.serve("test-trace-id", func(c echo.Context) error {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "partial"})
		panic("late panic")
	})

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "SYSTEM_001")
}
