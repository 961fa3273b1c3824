package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/swipehome/api/internal/domain"
)

func TestLogin_InvalidBody(t *testing.T) {
	h := NewSessionHandler(&mockIdentitySvc{}, newTestJWTProvider(t))
	r := httptest.NewRequest(http.MethodPost, "/v1/sessions/login", bytes.NewBufferString("not-json"))
	rr := httptest.NewRecorder()
	h.Login(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := &mockIdentitySvc{}
	svc.On("Authenticate", mock.Anything, "maria@example.com", "wrong", mock.Anything).
		Return(nil, domain.ErrInvalidCredentials)
	h := NewSessionHandler(svc, newTestJWTProvider(t))

	body, _ := json.Marshal(map[string]string{"email": "maria@example.com", "password": "wrong"})
	r := httptest.NewRequest(http.MethodPost, "/v1/sessions/login", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Login(rr, r)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	svc.AssertExpectations(t)
}

func TestLogin_KindNotAllowed(t *testing.T) {
	svc := &mockIdentitySvc{}
	svc.On("Authenticate", mock.Anything, "nikos@example.com", "secret123",
		[]domain.Kind{domain.KindRenter}).Return(nil, domain.ErrForbidden)
	h := NewSessionHandler(svc, newTestJWTProvider(t))

	body, _ := json.Marshal(map[string]interface{}{
		"email": "nikos@example.com", "password": "secret123",
		"allowed_types": []string{"renter"},
	})
	r := httptest.NewRequest(http.MethodPost, "/v1/sessions/login", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Login(rr, r)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestLogin_HappyPath(t *testing.T) {
	svc := &mockIdentitySvc{}
	ident := &domain.Identity{ID: "l1", Kind: domain.KindLister, Name: "Nikos", Email: "nikos@example.com"}
	svc.On("Authenticate", mock.Anything, "nikos@example.com", "secret123", mock.Anything).
		Return(ident, nil)
	p := newTestJWTProvider(t)
	h := NewSessionHandler(svc, p)

	body, _ := json.Marshal(map[string]string{"email": "nikos@example.com", "password": "secret123"})
	r := httptest.NewRequest(http.MethodPost, "/v1/sessions/login", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Login(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp AuthEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.NotEmpty(t, resp.Bearer)
	assert.Equal(t, "l1", resp.Identity.ID)

	// The issued token round-trips through the provider.
	claims, err := p.Parse(resp.Bearer)
	require.NoError(t, err)
	assert.Equal(t, "l1", claims.UserID)
	assert.Equal(t, domain.KindLister, claims.Kind)
	svc.AssertExpectations(t)
}
