package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tasklist/internal/adapter/http/middleware"
	"tasklist/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type staticTokens map[string]domain.Principal

func (s staticTokens) Parse(token string) (domain.Principal, error) {
	if principal, ok := s[token]; ok {
		return principal, nil
	}
	return domain.Anonymous, errors.New("unknown token")
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	tokens := staticTokens{"alice-token": {UserID: 1}}
	router.GET("/open", middleware.Authenticate(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": middleware.GetPrincipal(c).UserID})
	})
	router.GET("/closed", middleware.Authenticate(tokens), middleware.RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func serve(router *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate(t *testing.T) {
	router := newAuthRouter()

	rec := serve(router, "/open", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"user":0}`, rec.Body.String())

	rec = serve(router, "/open", "Bearer alice-token")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"user":1}`, rec.Body.String())

	require.Equal(t, http.StatusForbidden, serve(router, "/open", "Bearer nope").Code)
	require.Equal(t, http.StatusForbidden, serve(router, "/open", "Basic YWxpY2U6cHc=").Code)
	require.Equal(t, http.StatusForbidden, serve(router, "/open", "Bearer ").Code)
}

func TestRequireAuth(t *testing.T) {
	router := newAuthRouter()

	require.Equal(t, http.StatusForbidden, serve(router, "/closed", "").Code)
	require.Equal(t, http.StatusNoContent, serve(router, "/closed", "bearer alice-token").Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, middleware.GetRequestID(c)) })

	rec := serve(router, "/", "")
	generated := rec.Header().Get(middleware.RequestIDHeader)
	require.Len(t, generated, 36)
	require.Equal(t, generated, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, "abc-123", rec.Header().Get(middleware.RequestIDHeader))
}

func TestGinZapMiddleware_LevelFollowsStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	router := gin.New()
	router.Use(middleware.RequestIDMiddleware(), middleware.GinZapMiddleware(zap.New(core)))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	serve(router, "/ok", "")
	serve(router, "/missing", "")
	serve(router, "/boom", "")

	entries := logs.All()
	require.Len(t, entries, 3)
	require.Equal(t, zap.InfoLevel, entries[0].Level)
	require.Equal(t, zap.WarnLevel, entries[1].Level)
	require.Equal(t, zap.ErrorLevel, entries[2].Level)
	require.Equal(t, "/boom", entries[2].ContextMap()["path"])
	require.Equal(t, "/boom", entries[2].ContextMap()["route"])
	require.NotEmpty(t, entries[2].ContextMap()["request_id"])
}
