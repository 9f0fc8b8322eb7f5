package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	"tasklist/internal/adapter/auth"
	dbadapter "tasklist/internal/adapter/db"
	httpadapter "tasklist/internal/adapter/http"
	"tasklist/internal/adapter/http/dto"
	"tasklist/internal/adapter/http/handlers"
	"tasklist/internal/adapter/http/middleware"
	appservice "tasklist/internal/app/service"
	"tasklist/internal/config"
	"tasklist/pkg/apierrors"
	"tasklist/pkg/translator"
)

const (
	testSecret   = "integration-secret"
	testPageSize = 2

	alice uint64 = 1
	bob   uint64 = 2
)

// IntegrationSuiteBase wires the full HTTP stack over a fresh, migrated
// SQLite database for every test.
type IntegrationSuiteBase struct {
	suite.Suite

	DB     *sqlx.DB
	router *gin.Engine
	tokens *auth.Issuer
}

func (s *IntegrationSuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "../../../../pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	tokens, err := auth.NewIssuer(testSecret, "tasklist-test", time.Hour)
	s.Require().NoError(err)
	s.tokens = tokens
}

func (s *IntegrationSuiteBase) SetupTest() {
	path := filepath.Join(s.T().TempDir(), "tasklist.db")
	db, err := dbadapter.Open(config.DriverSQLite, "file:"+path+"?_pragma=foreign_keys(1)")
	s.Require().NoError(err)
	s.Require().NoError(dbadapter.Migrate(db))
	s.DB = db

	listRepository := dbadapter.NewListRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	listService := appservice.NewListService(listRepository)
	taskService := appservice.NewTaskService(taskRepository, listRepository)

	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	httpadapter.RegisterRoutes(
		router,
		s.tokens,
		handlers.NewHealthHandler(db, "tasklist", "test"),
		handlers.NewListHandler(listService, testPageSize),
		handlers.NewTaskHandler(taskService, listService, testPageSize),
	)
	s.router = router
}

func (s *IntegrationSuiteBase) TearDownTest() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}
}

// Do sends a request as userID; zero sends it anonymously.
func (s *IntegrationSuiteBase) Do(method, path string, userID uint64, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != 0 {
		token, err := s.tokens.Issue(userID)
		s.Require().NoError(err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// DoWithToken sends a request with a raw Authorization bearer value.
func (s *IntegrationSuiteBase) DoWithToken(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *IntegrationSuiteBase) createList(userID uint64, body string) dto.ListItem {
	rec := s.Do(http.MethodPost, "/api/lists/", userID, body)
	s.RequireStatus(rec, http.StatusCreated)

	var got dto.ListItem
	s.Decode(rec, &got)
	return got
}

func (s *IntegrationSuiteBase) createTask(userID, listID uint64, body string) dto.TaskItem {
	rec := s.Do(http.MethodPost, tasksPath(listID), userID, body)
	s.RequireStatus(rec, http.StatusCreated)

	var got dto.TaskItem
	s.Decode(rec, &got)
	return got
}

func (s *IntegrationSuiteBase) Decode(rec *httptest.ResponseRecorder, dst any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}

func (s *IntegrationSuiteBase) DecodeError(rec *httptest.ResponseRecorder) apierrors.Err {
	var got apierrors.JsonErr
	s.Decode(rec, &got)
	return got.ErrDetails
}

func (s *IntegrationSuiteBase) RequireStatus(rec *httptest.ResponseRecorder, status int) {
	s.Require().Equal(status, rec.Code, rec.Body.String())
}

func listPath(id uint64) string {
	return "/api/lists/" + strconv.FormatUint(id, 10) + "/"
}

func tasksPath(listID uint64) string {
	return listPath(listID) + "tasks/"
}

func taskPath(listID, taskID uint64) string {
	return tasksPath(listID) + strconv.FormatUint(taskID, 10) + "/"
}
