package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aerodoc/backend/internal/middleware"
	"github.com/aerodoc/backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// fakeTracker records captured events for assertions.
type fakeTracker struct {
	enabled  bool
	captures []capturedEvent
}

type capturedEvent struct {
	distinctID string
	event      string
	properties map[string]any
}

func (f *fakeTracker) Enabled() bool { return f.enabled }

func (f *fakeTracker) Capture(distinctID string, event string, properties map[string]any) {
	f.captures = append(f.captures, capturedEvent{distinctID: distinctID, event: event, properties: properties})
}

type AnalyticsMiddlewareTestSuite struct {
	suite.Suite
	tracker   *fakeTracker
	router    *gin.Engine
	jwtSecret string
	userID    string
}

func (suite *AnalyticsMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.tracker = &fakeTracker{enabled: true}
	suite.jwtSecret = "analytics-test-secret-key"
	suite.userID = uuid.NewString()

	suite.router = gin.New()
	suite.router.Use(middleware.AnalyticsMiddleware(suite.tracker))
	suite.router.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "OK") })

	authed := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	authed.GET("/documents/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"documentID": c.Param("id")})
	})
	authed.GET("/broken", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
	})
}

func (suite *AnalyticsMiddlewareTestSuite) doRequest(path string, authenticated bool) *httptest.ResponseRecorder {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(suite.T(), err)
	if authenticated {
		token, err := utils.GenerateJWT(suite.userID, suite.jwtSecret, time.Hour, "test-issuer")
		require.NoError(suite.T(), err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AnalyticsMiddlewareTestSuite) TestSuccessfulRequestIsTracked() {
	docID := uuid.NewString()
	w := suite.doRequest("/api/v1/documents/"+docID, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.Require().Len(suite.tracker.captures, 1)
	captured := suite.tracker.captures[0]
	suite.Equal(suite.userID, captured.distinctID)
	suite.Equal("api_v1_documents_:id", captured.event)
	suite.Equal(http.MethodGet, captured.properties["method"])
	suite.Equal(http.StatusOK, captured.properties["status_code"])
	params, ok := captured.properties["params"].(map[string]string)
	suite.Require().True(ok)
	suite.Equal(docID, params["id"])
}

func (suite *AnalyticsMiddlewareTestSuite) TestHealthCheckIsNotTracked() {
	w := suite.doRequest("/health", false)

	suite.Equal(http.StatusOK, w.Code)
	suite.Empty(suite.tracker.captures)
}

func (suite *AnalyticsMiddlewareTestSuite) TestFailedRequestIsNotTracked() {
	w := suite.doRequest("/api/v1/broken", true)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Empty(suite.tracker.captures)
}

func (suite *AnalyticsMiddlewareTestSuite) TestAnonymousRequestIsNotTracked() {
	w := suite.doRequest("/api/v1/documents/abc", false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Empty(suite.tracker.captures)
}

func (suite *AnalyticsMiddlewareTestSuite) TestDisabledTrackerIsBypassed() {
	suite.tracker.enabled = false

	w := suite.doRequest("/api/v1/documents/abc", true)

	suite.Equal(http.StatusOK, w.Code)
	suite.Empty(suite.tracker.captures)
}

func TestAnalyticsMiddleware(t *testing.T) {
	suite.Run(t, new(AnalyticsMiddlewareTestSuite))
}
