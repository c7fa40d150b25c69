package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odionmurphy/Murphy-Portfolio/internal/logger"
	"github.com/odionmurphy/Murphy-Portfolio/internal/mail"
	"github.com/odionmurphy/Murphy-Portfolio/internal/model"
	"github.com/odionmurphy/Murphy-Portfolio/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ---------------------------------------------------------------------------
// Mock ContactService
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc func(ctx context.Context, in service.SubmitInput) (*service.SubmitResult, error)
	listFunc   func(ctx context.Context, credential string) ([]*model.ContactMessage, error)
}

func (m *mockContactService) Submit(ctx context.Context, in service.SubmitInput) (*service.SubmitResult, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, in)
	}
	return &service.SubmitResult{ID: 1, Mail: mail.Outcome{Sent: true}}, nil
}

func (m *mockContactService) List(ctx context.Context, credential string) ([]*model.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, credential)
	}
	return nil, nil
}

func newTestRouter(svc service.ContactService) *gin.Engine {
	h := NewContactHandler(svc, logger.NewNop())
	return NewRouter(RouterConfig{ContactHandler: h, PublicDir: "testdata/missing"})
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ---------------------------------------------------------------------------
// POST /api/contact
// ---------------------------------------------------------------------------

func TestSubmit_Created(t *testing.T) {
	var captured service.SubmitInput
	svc := &mockContactService{
		submitFunc: func(ctx context.Context, in service.SubmitInput) (*service.SubmitResult, error) {
			captured = in
			return &service.SubmitResult{ID: 7, Mail: mail.Outcome{Sent: true}}, nil
		},
	}
	router := newTestRouter(svc)

	rec := doJSON(t, router, http.MethodPost, "/api/contact",
		`{"name":"Ada","email":"ada@x.com","message":"Hello"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Ada", captured.Name)
	assert.Equal(t, "ada@x.com", captured.Email)
	assert.Equal(t, "Hello", captured.Message)

	var resp struct {
		ID   int64        `json:"id"`
		Mail mail.Outcome `json:"mail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.True(t, resp.Mail.Sent)
}

func TestSubmit_InvalidBody(t *testing.T) {
	router := newTestRouter(&mockContactService{})

	rec := doJSON(t, router, http.MethodPost, "/api/contact", `{not json`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid request"}`, rec.Body.String())
}

func TestSubmit_MissingFields(t *testing.T) {
	svc := &mockContactService{
		submitFunc: func(ctx context.Context, in service.SubmitInput) (*service.SubmitResult, error) {
			return nil, service.ErrMissingFields
		},
	}
	router := newTestRouter(svc)

	rec := doJSON(t, router, http.MethodPost, "/api/contact",
		`{"name":"","email":"a@b.com","message":"hi"}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing required fields"}`, rec.Body.String())
}

func TestSubmit_NotificationFailureStillCreated(t *testing.T) {
	svc := &mockContactService{
		submitFunc: func(ctx context.Context, in service.SubmitInput) (*service.SubmitResult, error) {
			return &service.SubmitResult{ID: 3, Mail: mail.Outcome{Sent: false, Error: "relay down"}}, nil
		},
	}
	router := newTestRouter(svc)

	rec := doJSON(t, router, http.MethodPost, "/api/contact",
		`{"name":"Ada","email":"ada@x.com","message":"Hello"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":3,"mail":{"sent":false,"error":"relay down"}}`, rec.Body.String())
}

// ---------------------------------------------------------------------------
// GET /api/contact
// ---------------------------------------------------------------------------

func TestList_Unauthorized(t *testing.T) {
	svc := &mockContactService{
		listFunc: func(ctx context.Context, credential string) ([]*model.ContactMessage, error) {
			return nil, service.ErrUnauthorized
		},
	}
	router := newTestRouter(svc)

	rec := doJSON(t, router, http.MethodGet, "/api/contact", "", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestList_BearerCredentialExtraction(t *testing.T) {
	var captured string
	svc := &mockContactService{
		listFunc: func(ctx context.Context, credential string) ([]*model.ContactMessage, error) {
			captured = credential
			return nil, nil
		},
	}
	router := newTestRouter(svc)

	doJSON(t, router, http.MethodGet, "/api/contact", "",
		map[string]string{"Authorization": "Bearer s3cret"})
	assert.Equal(t, "s3cret", captured)

	doJSON(t, router, http.MethodGet, "/api/contact", "",
		map[string]string{"x-admin-token": "header-token"})
	assert.Equal(t, "header-token", captured)
}

func TestList_ReturnsBareArray(t *testing.T) {
	svc := &mockContactService{
		listFunc: func(ctx context.Context, credential string) ([]*model.ContactMessage, error) {
			return []*model.ContactMessage{
				{ID: 2, Name: "Bob", Email: "bob@x.com", Message: "Hi"},
				{ID: 1, Name: "Ada", Email: "ada@x.com", Message: "Hello"},
			}, nil
		},
	}
	router := newTestRouter(svc)

	rec := doJSON(t, router, http.MethodGet, "/api/contact", "",
		map[string]string{"Authorization": "Bearer s3cret"})

	require.Equal(t, http.StatusOK, rec.Code)

	var messages []model.ContactMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &messages))
	require.Len(t, messages, 2)
	assert.Equal(t, int64(2), messages[0].ID)
	assert.Equal(t, int64(1), messages[1].ID)
}

func TestList_EmptyStoreReturnsEmptyArray(t *testing.T) {
	router := newTestRouter(&mockContactService{})

	rec := doJSON(t, router, http.MethodGet, "/api/contact", "",
		map[string]string{"Authorization": "Bearer s3cret"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

// ---------------------------------------------------------------------------
// Router behavior
// ---------------------------------------------------------------------------

func TestRouter_CORSPreflight(t *testing.T) {
	router := newTestRouter(&mockContactService{})

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_UnknownAPIPathIs404(t *testing.T) {
	router := newTestRouter(&mockContactService{})

	rec := doJSON(t, router, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
