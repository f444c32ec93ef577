package http

import (
	"net/http"
	"testing"
	"time"

	"orderflow/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestParseActorRoundTrip(t *testing.T) {
	actor := kernel.Actor{Role: kernel.RoleDeliveryAgent, ID: kernel.NewUUID()}

	tok, err := SignActor(actor, testSecret)
	require.NoError(t, err)
	got, err := ParseActor(tok, testSecret)

	require.NoError(t, err)
	assert.Equal(t, actor, got)
}

func TestParseActorRejects(t *testing.T) {
	sign := func(method jwt.SigningMethod, claims Claims, secret []byte) string {
		tok, err := jwt.NewWithClaims(method, claims).SignedString(secret)
		require.NoError(t, err)
		return tok
	}
	subject := kernel.NewUUID().String()

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"wrong secret", sign(jwt.SigningMethodHS256, Claims{Role: "customer", RegisteredClaims: jwt.RegisteredClaims{Subject: subject}}, []byte("other"))},
		{"other algorithm", sign(jwt.SigningMethodHS512, Claims{Role: "customer", RegisteredClaims: jwt.RegisteredClaims{Subject: subject}}, testSecret)},
		{"expired", sign(jwt.SigningMethodHS256, Claims{Role: "customer", RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}}, testSecret)},
		{"unknown role", sign(jwt.SigningMethodHS256, Claims{Role: "driver", RegisteredClaims: jwt.RegisteredClaims{Subject: subject}}, testSecret)},
		{"system role is internal", sign(jwt.SigningMethodHS256, Claims{Role: "system", RegisteredClaims: jwt.RegisteredClaims{Subject: subject}}, testSecret)},
		{"subject is not an id", sign(jwt.SigningMethodHS256, Claims{Role: "vendor", RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"}}, testSecret)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseActor(tt.token, testSecret)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestParseActorRequiresSecret(t *testing.T) {
	_, err := ParseActor("whatever", nil)

	assert.Error(t, err)
}

func TestAuthenticateRejectsMissingOrBadHeader(t *testing.T) {
	api := newTestAPI(t)

	for _, header := range []string{"", "Basic dXNlcjpwYXNz", "Bearer nonsense"} {
		req := newRequest(http.MethodGet, "/api/v1/orders")
		if header != "" {
			req.Header.Set("Authorization", header)
		}

		rec := serve(api, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
	}
	api.mocks.listOrders.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestSwaggerIsPublic(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/swagger/doc.json", nil, nil)

	statusOK(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), "orderflow")
}
