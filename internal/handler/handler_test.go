package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"health_check_project/internal/auth"
	"health_check_project/internal/extractor"
	"health_check_project/internal/middleware"
	"health_check_project/internal/service"
	"health_check_project/internal/session"
	"health_check_project/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fixedGenerator struct {
	answer string
}

func (g fixedGenerator) Generate(context.Context, string) (string, error) {
	return g.answer, nil
}

func setupTestAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	tokens := auth.NewTokenManager("test-secret")
	accounts := service.NewAccountService(store, tokens, "")
	records := service.NewRecordService(store, func([]byte, string) (string, error) {
		return "血壓 120/80", nil
	})
	analysis := service.NewAnalysisService(records, fixedGenerator{answer: "一切正常"}, session.NewStore(time.Minute))

	h := New(accounts, records, analysis)

	router := gin.New()
	router.POST("/register", h.Register)
	router.POST("/login", h.Login)
	router.POST("/forgot-password", h.ForgotPassword)
	router.POST("/health-check/upload/:identifier", h.UploadHealthCheck)
	router.GET("/health-check/user/:identifier", h.GetUserHealthCheck)
	router.GET("/health-check/other/:identifier", h.GetOtherHealthCheck)
	router.POST("/health-check/other/interact", h.Interact)
	router.GET("/api/profile", middleware.AuthMiddleware(tokens), h.Profile)
	return router
}

func postJSON(router *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

const registerBody = `{
	"full_name": "王小明",
	"gender": "M",
	"birth_date": "1990-05-17",
	"id_number": "A123456789",
	"password": "password123",
	"phone_number": "0912345678",
	"email": "ming@example.com"
}`

func uploadFile(router *gin.Engine, identifier, filename, contentType string, data []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="file"; filename="` + filename + `"`}
	header["Content-Type"] = []string{contentType}
	part, _ := writer.CreatePart(header)
	part.Write(data)
	writer.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/health-check/upload/"+identifier, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	router := setupTestAPI(t)

	w := postJSON(router, "/register", registerBody)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Registration successful")

	// A second registration with the same id number must conflict.
	w = postJSON(router, "/register", registerBody)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already registered")
}

func TestRegisterEndpointValidation(t *testing.T) {
	router := setupTestAPI(t)

	w := postJSON(router, "/register", `{"id_number": "bogus", "password": "password123"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "id number")
}

func TestLoginEndpoint(t *testing.T) {
	router := setupTestAPI(t)
	postJSON(router, "/register", registerBody)

	w := postJSON(router, "/login", `{"id_number": "A123456789", "password": "password123"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "A123456789", resp["identifier"])
	assert.NotEmpty(t, resp["token"])
}

func TestLoginEndpointRejectsBadCredentials(t *testing.T) {
	router := setupTestAPI(t)
	postJSON(router, "/register", registerBody)

	wrongPass := postJSON(router, "/login", `{"id_number": "A123456789", "password": "nope-nope"}`)
	unknownID := postJSON(router, "/login", `{"id_number": "B987654321", "password": "password123"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownID.Code)
	// Same body for both: no user-existence oracle.
	assert.Equal(t, wrongPass.Body.String(), unknownID.Body.String())
}

func TestForgotPasswordEndpoint(t *testing.T) {
	router := setupTestAPI(t)
	postJSON(router, "/register", registerBody)

	w := postJSON(router, "/forgot-password", `{"id_number": "A123456789", "email": "wrong@example.com"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = postJSON(router, "/forgot-password", `{"id_number": "A123456789", "email": "ming@example.com"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["temp_password"])
}

func TestUploadEndpoint(t *testing.T) {
	router := setupTestAPI(t)
	postJSON(router, "/register", registerBody)

	w := uploadFile(router, "A123456789", "report.pdf", extractor.ContentTypePDF, []byte("pdf-bytes"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "血壓 120/80")
}

func TestUploadEndpointUnknownIdentifier(t *testing.T) {
	router := setupTestAPI(t)

	w := uploadFile(router, "A123456789", "report.pdf", extractor.ContentTypePDF, []byte("pdf-bytes"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadEndpointRejectsContentType(t *testing.T) {
	router := setupTestAPI(t)
	postJSON(router, "/register", registerBody)

	w := uploadFile(router, "A123456789", "report.txt", "text/plain", []byte("hi"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRetrieveAndAnalyzeEndpoint(t *testing.T) {
	router := setupTestAPI(t)
	postJSON(router, "/register", registerBody)
	uploadFile(router, "A123456789", "report.pdf", extractor.ContentTypePDF, []byte("pdf-bytes"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health-check/user/A123456789", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["health_data"], "血壓 120/80")
	assert.Equal(t, "一切正常", resp["analysis_result"])
	assert.Empty(t, resp["session_token"], "owner path must not open a session")
}

func TestInteractiveFlow(t *testing.T) {
	router := setupTestAPI(t)
	postJSON(router, "/register", registerBody)
	uploadFile(router, "A123456789", "report.pdf", extractor.ContentTypePDF, []byte("pdf-bytes"))

	// Interact before any non-owner retrieval: precondition failure.
	w := postJSON(router, "/health-check/other/interact", `{"query": "需要運動嗎"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health-check/other/A123456789", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["session_token"])

	req := httptest.NewRequest(http.MethodPost, "/health-check/other/interact",
		bytes.NewBufferString(`{"query": "需要運動嗎"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Token", resp["session_token"])
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "一切正常")
}

func TestRetrieveUnknownIdentifier(t *testing.T) {
	router := setupTestAPI(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health-check/user/A123456789", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health-check/user/not-an-id", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileRequiresToken(t *testing.T) {
	router := setupTestAPI(t)
	postJSON(router, "/register", registerBody)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/profile", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	login := postJSON(router, "/login", `{"id_number": "A123456789", "password": "password123"}`)
	var resp map[string]string
	assert.NoError(t, json.Unmarshal(login.Body.Bytes(), &resp))

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+resp["token"])
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "A123456789")
}
