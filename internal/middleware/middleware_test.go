package middleware

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AlenaMolokova/cardauth/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	secret := "test-secret"

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID, ok := GetClientID(r)
		if !ok {
			utils.WriteJSONError(w, http.StatusInternalServerError, "ClientID not found")
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(fmt.Sprintf(`{"client":%q}`, clientID)))
	})

	validToken := generateTestToken(t, jwt.MapClaims{"sub": "stats", "exp": float64(time.Now().Add(time.Hour).Unix())}, secret)
	expiredToken := generateTestToken(t, jwt.MapClaims{"sub": "stats", "exp": float64(time.Now().Add(-time.Hour).Unix())}, secret)
	foreignToken := generateTestToken(t, jwt.MapClaims{"sub": "stats", "exp": float64(time.Now().Add(time.Hour).Unix())}, "other-secret")
	noSubjectToken := generateTestToken(t, jwt.MapClaims{"exp": float64(time.Now().Add(time.Hour).Unix())}, secret)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer " + validToken,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"client":"stats"}`,
		},
		{
			name:           "missing Authorization header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Missing or invalid Authorization header"}`,
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic token",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Missing or invalid Authorization header"}`,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer " + expiredToken,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Invalid token"}`,
		},
		{
			name:           "token signed with another secret",
			authHeader:     "Bearer " + foreignToken,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Invalid token"}`,
		},
		{
			name:           "garbage token",
			authHeader:     "Bearer invalid.token.here",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Invalid token"}`,
		},
		{
			name:           "token without subject",
			authHeader:     "Bearer " + noSubjectToken,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Invalid token claims"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			handler := AuthMiddleware(secret)(nextHandler)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestGetClientID(t *testing.T) {
	tests := []struct {
		name       string
		ctxValue   interface{}
		expectedID ClientID
		expectedOK bool
	}{
		{
			name:       "client present",
			ctxValue:   ClientID("stats"),
			expectedID: "stats",
			expectedOK: true,
		},
		{
			name:       "client missing",
			ctxValue:   nil,
			expectedOK: false,
		},
		{
			name:       "wrong type",
			ctxValue:   "stats",
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.ctxValue != nil {
				req = req.WithContext(context.WithValue(context.Background(), clientKey{}, tt.ctxValue))
			}
			clientID, ok := GetClientID(req)
			assert.Equal(t, tt.expectedID, clientID)
			assert.Equal(t, tt.expectedOK, ok)
		})
	}
}

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	logger := log.StandardLogger()
	prevOut, prevLevel := logger.Out, logger.GetLevel()
	logger.SetOutput(&buf)
	logger.SetLevel(log.InfoLevel)
	defer func() {
		logger.SetOutput(prevOut)
		logger.SetLevel(prevLevel)
	}()

	handler := Log(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/card/authenticate", bytes.NewBufferString(`{"number":"4539571147647251"}`))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), "statusCode=400")
	assert.Contains(t, buf.String(), "path=/api/card/authenticate")
	assert.Contains(t, buf.String(), "level=warning")
	assert.NotContains(t, buf.String(), "4539571147647251")
}

func generateTestToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return tokenString
}
