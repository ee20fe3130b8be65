package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"classroom-service/internal/application/command"
	"classroom-service/internal/application/services"
	"classroom-service/internal/infrastructure"
	"classroom-service/internal/infrastructure/db/postgres"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	userRepo := postgres.NewUserRepository(db)
	classroomRepo := postgres.NewClassroomRepository(db)
	questionRepo := postgres.NewQuestionRepository(db)
	credentialRepo := postgres.NewCredentialRepository(db)

	tokenService := infrastructure.NewTokenService(credentialRepo, infrastructure.NewDisabledRedisService())

	h := NewHandler(
		services.NewAuthService(userRepo, tokenService),
		services.NewClassroomService(classroomRepo, userRepo),
		services.NewQuestionService(questionRepo, classroomRepo),
	)

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	RegisterRoutes(e, h, BearerAuth(tokenService, userRepo))

	return e
}

func doRequest(t *testing.T, e *echo.Echo, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func signup(t *testing.T, e *echo.Echo, username, role string) (string, uuid.UUID) {
	t.Helper()

	rec := doRequest(t, e, http.MethodPost, "/api/signup", "", map[string]string{
		"username": username,
		"password": "secret",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var result command.RegisterUserCommandResult
	decodeJSON(t, rec, &result)
	require.NotEmpty(t, result.Token)

	return result.Token, result.User.Id
}

func TestSignupAndLogin(t *testing.T) {
	e := newTestServer(t)

	token, _ := signup(t, e, "alice", "teacher")
	require.NotEmpty(t, token)

	// Duplicate username conflicts.
	rec := doRequest(t, e, http.MethodPost, "/api/signup", "", map[string]string{
		"username": "alice", "password": "secret", "role": "teacher",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Login returns the same credential signup minted.
	rec = doRequest(t, e, http.MethodPost, "/api/login", "", map[string]string{
		"username": "alice", "password": "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var loginResult command.LoginUserCommandResult
	decodeJSON(t, rec, &loginResult)
	assert.Equal(t, token, loginResult.Token)

	rec = doRequest(t, e, http.MethodPost, "/api/login", "", map[string]string{
		"username": "alice", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, e, http.MethodPost, "/api/login", "", map[string]string{
		"username": "nobody", "password": "secret",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSignupValidation(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodPost, "/api/signup", "", map[string]string{
		"username": "alice", "password": "secret", "role": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, e, http.MethodPost, "/api/signup", "", map[string]string{
		"username": "alice", "role": "student",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProtectedRoutesRequireCredential(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodPost, "/api/classrooms", "", map[string]string{"title": "Algebra"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, e, http.MethodPost, "/api/classrooms", "not-a-credential", map[string]string{"title": "Algebra"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, e, http.MethodGet, "/api/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe(t *testing.T) {
	e := newTestServer(t)

	token, _ := signup(t, e, "alice", "student")

	rec := doRequest(t, e, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Result struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"result"`
	}
	decodeJSON(t, rec, &result)
	assert.Equal(t, "alice", result.Result.Username)
	assert.Equal(t, "student", result.Result.Role)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestClassroomQuestionFlow(t *testing.T) {
	e := newTestServer(t)

	teacherToken, _ := signup(t, e, "mr-t", "teacher")
	studentToken, studentId := signup(t, e, "sam", "student")

	// Students cannot create classrooms.
	rec := doRequest(t, e, http.MethodPost, "/api/classrooms", studentToken, map[string]string{"title": "Algebra"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, e, http.MethodPost, "/api/classrooms", teacherToken, map[string]string{"title": "Algebra"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created command.CreateClassroomCommandResult
	decodeJSON(t, rec, &created)
	classroomPath := "/api/classrooms/" + created.Result.Id.String()

	// Posting before enrollment is forbidden.
	rec = doRequest(t, e, http.MethodPost, classroomPath+"/questions", studentToken, map[string]string{"text": "What is x?"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Enrollment drops the unknown id silently.
	rec = doRequest(t, e, http.MethodPost, classroomPath+"/students", teacherToken, map[string]interface{}{
		"student_ids": []string{studentId.String(), uuid.NewString()},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var enrolled command.EnrollStudentsCommandResult
	decodeJSON(t, rec, &enrolled)
	assert.Equal(t, 1, enrolled.EnrolledCount)

	rec = doRequest(t, e, http.MethodPost, classroomPath+"/questions", studentToken, map[string]string{"text": "What is x?"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// The question list is public.
	rec = doRequest(t, e, http.MethodGet, classroomPath+"/questions", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed struct {
		Results []struct {
			Text      string    `json:"text"`
			StudentId uuid.UUID `json:"student_id"`
		} `json:"results"`
	}
	decodeJSON(t, rec, &listed)
	require.Len(t, listed.Results, 1)
	assert.Equal(t, "What is x?", listed.Results[0].Text)
	assert.Equal(t, studentId, listed.Results[0].StudentId)

	// Unknown classroom: empty list, not an error.
	rec = doRequest(t, e, http.MethodGet, "/api/classrooms/"+uuid.NewString()+"/questions", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeJSON(t, rec, &listed)
	assert.Empty(t, listed.Results)

	// Classroom read is public and includes the roster.
	rec = doRequest(t, e, http.MethodGet, classroomPath, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var classroom struct {
		Result struct {
			Title            string `json:"title"`
			EnrolledStudents []struct {
				Username string `json:"username"`
			} `json:"enrolled_students"`
		} `json:"result"`
	}
	decodeJSON(t, rec, &classroom)
	assert.Equal(t, "Algebra", classroom.Result.Title)
	require.Len(t, classroom.Result.EnrolledStudents, 1)
	assert.Equal(t, "sam", classroom.Result.EnrolledStudents[0].Username)
}

func TestEnrollForbiddenForNonOwner(t *testing.T) {
	e := newTestServer(t)

	ownerToken, _ := signup(t, e, "owner", "teacher")
	otherToken, _ := signup(t, e, "other", "teacher")
	_, studentId := signup(t, e, "sam", "student")

	rec := doRequest(t, e, http.MethodPost, "/api/classrooms", ownerToken, map[string]string{"title": "Algebra"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created command.CreateClassroomCommandResult
	decodeJSON(t, rec, &created)

	rec = doRequest(t, e, http.MethodPost, "/api/classrooms/"+created.Result.Id.String()+"/students", otherToken, map[string]interface{}{
		"student_ids": []string{studentId.String()},
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
