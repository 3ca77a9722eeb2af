package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(AuthMissingToken, s.traceID)

	s.Equal("AUTH_001", response.Error.Code)
	s.Equal("Authorization token is required", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	response := NewErrorResponse(ValidationInvalidSort, s.traceID,
		WithMessage("Sort field is not supported"),
		WithDetails("sort: must be one of name budget spent created_at"),
	)

	s.Equal("VALIDATION_003", response.Error.Code)
	s.Equal("Sort field is not supported", response.Error.Message)
	s.Equal([]string{"sort: must be one of name budget spent created_at"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationErrorFromList() {
	details := []string{"sort: invalid"}
	response := NewValidationErrorFromList(details, s.traceID)

	s.Equal(string(ValidationGeneral), response.Error.Code)
	s.Equal(details, response.Error.Details)
	s.Equal(http.StatusBadRequest, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestNewReportError_HidesCause() {
	cause := errors.New("pq: relation \"projects\" does not exist")
	response, internal := NewReportError("budget_analysis", cause, s.traceID)

	s.Equal("REPORT_001", response.Error.Code)
	s.Equal("Failed to generate budget_analysis report", response.Error.Message)
	s.NotContains(response.Error.Message, "pq:")
	s.Equal(cause, internal)
	s.Equal(http.StatusInternalServerError, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestWrapSystemError_NoInternalDetailsExposed() {
	internalErr := errors.New("dial tcp 10.0.0.5:5432: connection refused")
	response, returned := WrapSystemError(internalErr, s.traceID)

	s.Equal(string(SystemInternalError), response.Error.Code)
	s.NotContains(response.Error.Message, "10.0.0.5")
	s.Equal(internalErr, returned)
}

func (s *ResponseTestSuite) TestJSONShape() {
	response := NewErrorResponse(ReportGenerationFailed, s.traceID)

	data, err := json.Marshal(response)
	s.Require().NoError(err)

	var decoded map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal("REPORT_001", decoded["error"]["code"])
	s.Equal(s.traceID, decoded["error"]["trace_id"])
	s.NotContains(decoded["error"], "details")
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationInvalidSort, http.StatusBadRequest},
		{AuthMissingToken, http.StatusUnauthorized},
		{AuthExpiredToken, http.StatusUnauthorized},
		{ReportGenerationFailed, http.StatusInternalServerError},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemRouteNotFound, http.StatusNotFound},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemDatabaseError, http.StatusInternalServerError},
		{"UNKNOWN_001", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestClientAndServerClassification() {
	s.True(NewErrorResponse(AuthInvalidToken, s.traceID).IsClientError())
	s.False(NewErrorResponse(AuthInvalidToken, s.traceID).IsServerError())
	s.True(NewErrorResponse(ReportGenerationFailed, s.traceID).IsServerError())
	s.False(NewErrorResponse(ReportGenerationFailed, s.traceID).IsClientError())
}

func (s *ResponseTestSuite) TestString() {
	response := NewErrorResponse(SystemRateLimitExceeded, s.traceID)
	s.Equal("[SYSTEM_004] Rate limit exceeded. Please try again later (trace: "+s.traceID+")", response.String())
}
