package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	j := NewJWT("test-secret")

	token, err := j.Sign(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := j.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), got)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := NewJWT("secret-a").Sign(42)
	require.NoError(t, err)

	_, err = NewJWT("secret-b").Verify(token)
	assert.Error(t, err)
}

func TestJWTRejectsGarbage(t *testing.T) {
	_, err := NewJWT("test-secret").Verify("not.a.token")
	assert.Error(t, err)
}

func TestOptionalAuth(t *testing.T) {
	j := NewJWT("test-secret")
	var gotID uint64
	var gotOK bool
	h := OptionalAuth(j)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = UserIDFromContext(r.Context())
	}))

	// no token: request passes through anonymously
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, gotOK)

	// invalid token: still anonymous, not rejected
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, gotOK)

	// valid token: user id attached
	token, err := j.Sign(7)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.True(t, gotOK)
	assert.Equal(t, uint64(7), gotID)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3nha-forte")
	require.NoError(t, err)
	require.NotEqual(t, "s3nha-forte", hash)

	assert.True(t, ComparePassword(hash, "s3nha-forte"))
	assert.False(t, ComparePassword(hash, "outra"))
}
