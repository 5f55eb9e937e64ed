package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"toolbase/globals"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func okHandler(captured *string) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		if captured != nil {
			email, _ := r.Context().Value(globals.EmailKey).(string)
			*captured = email
		}
		w.WriteHeader(http.StatusOK)
	}
}

func TestAuthenticateMissingToken(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)

	Authenticate(okHandler(nil))(rec, req, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Missing token"}`, rec.Body.String())
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Token abcdef")

	Authenticate(okHandler(nil))(rec, req, nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")

	Authenticate(okHandler(nil))(rec, req, nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Invalid token"}`, rec.Body.String())
}

func TestAuthenticateExpiredToken(t *testing.T) {
	token, err := CreateToken("buyer@example.com", -time.Minute)
	assert.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	Authenticate(okHandler(nil))(rec, req, nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthenticateValidTokenSetsEmail(t *testing.T) {
	token, err := CreateToken("buyer@example.com", time.Hour)
	assert.NoError(t, err)

	var gotEmail string
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	Authenticate(okHandler(&gotEmail))(rec, req, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "buyer@example.com", gotEmail)
}

func TestRequireSelfMismatch(t *testing.T) {
	token, _ := CreateToken("y@example.com", time.Hour)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/myOrders?email=x@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	Chain(Authenticate, RequireSelf)(okHandler(nil))(rec, req, nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Forbidden"}`, rec.Body.String())
}

func TestRequireSelfMatch(t *testing.T) {
	token, _ := CreateToken("x@example.com", time.Hour)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/myOrders?email=x@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	Chain(Authenticate, RequireSelf)(okHandler(nil))(rec, req, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := CreateToken("buyer@example.com", time.Hour)
	assert.NoError(t, err)

	claims, err := ValidateJWT("Bearer " + token)
	assert.NoError(t, err)
	assert.Equal(t, "buyer@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}
