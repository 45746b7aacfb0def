package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"github.com/akarpenko/fashion-gateway/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIssuer = "fashion-gateway-test"

func generateTestKeyPair(t *testing.T) KeyPair {
	t.Helper()

	public, private, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	return KeyPair{Private: private, Public: public}
}

func newTestCodec(t *testing.T) (TokenCodec, KeyPair, KeyPair) {
	t.Helper()

	access := generateTestKeyPair(t)
	refresh := generateTestKeyPair(t)

	codec, err := NewTokenCodec(access, refresh, testIssuer)
	require.NoError(t, err)

	return codec, access, refresh
}

func TestNewTokenCodec_MissingKeys(t *testing.T) {
	access := generateTestKeyPair(t)

	_, err := NewTokenCodec(access, KeyPair{}, testIssuer)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidKeyMaterial)

	_, err = NewTokenCodec(KeyPair{}, access, testIssuer)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidKeyMaterial)
}

func TestTokenCodec_SignAndVerify(t *testing.T) {
	codec, _, _ := newTestCodec(t)

	signed, err := codec.Sign(models.TokenClaims{Username: "anna@example.com", UserID: 42}, PurposeAccess, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := codec.Verify(signed, PurposeAccess)
	require.NoError(t, err)

	assert.Equal(t, "anna@example.com", claims.Username)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, "42", claims.Subject)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestTokenCodec_Sign_InvalidParams(t *testing.T) {
	codec, _, _ := newTestCodec(t)

	_, err := codec.Sign(models.TokenClaims{Username: "", UserID: 42}, PurposeAccess, time.Hour)
	require.Error(t, err)

	_, err = codec.Sign(models.TokenClaims{Username: "anna@example.com", UserID: 0}, PurposeAccess, time.Hour)
	require.Error(t, err)

	_, err = codec.Sign(models.TokenClaims{Username: "anna@example.com", UserID: 42}, PurposeAccess, 0)
	require.Error(t, err)
}

func TestTokenCodec_Sign_UnknownPurpose(t *testing.T) {
	codec, _, _ := newTestCodec(t)

	_, err := codec.Sign(models.TokenClaims{Username: "anna@example.com", UserID: 42}, KeyPurpose("session"), time.Hour)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidKeyMaterial)
}

func TestTokenCodec_Verify_CrossPurposeRejected(t *testing.T) {
	codec, _, _ := newTestCodec(t)

	refreshToken, err := codec.Sign(models.TokenClaims{Username: "anna@example.com", UserID: 42}, PurposeRefresh, time.Hour)
	require.NoError(t, err)

	// signed with the refresh key, so the access public key must reject it
	_, err = codec.Verify(refreshToken, PurposeAccess)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.NotErrorIs(t, err, ErrTokenExpired)
}

func TestTokenCodec_Verify_TamperedToken(t *testing.T) {
	codec, _, _ := newTestCodec(t)

	signed, err := codec.Sign(models.TokenClaims{Username: "anna@example.com", UserID: 42}, PurposeAccess, time.Hour)
	require.NoError(t, err)

	last := "A"
	if signed[len(signed)-1] == 'A' {
		last = "B"
	}
	tampered := signed[:len(signed)-1] + last

	_, err = codec.Verify(tampered, PurposeAccess)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenCodec_Verify_Garbage(t *testing.T) {
	codec, _, _ := newTestCodec(t)

	_, err := codec.Verify("not.a.token", PurposeAccess)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = codec.Verify("", PurposeAccess)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenCodec_Verify_Expired(t *testing.T) {
	codec, access, _ := newTestCodec(t)

	// sign an already expired token with the codec's own access key
	expired := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
		Username: "anna@example.com",
		UserID:   42,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, &expired).SignedString(access.Private)
	require.NoError(t, err)

	_, err = codec.Verify(signed, PurposeAccess)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenCodec_Verify_WrongIssuer(t *testing.T) {
	codec, access, _ := newTestCodec(t)

	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "some-other-service",
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Username: "anna@example.com",
		UserID:   42,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, &claims).SignedString(access.Private)
	require.NoError(t, err)

	_, err = codec.Verify(signed, PurposeAccess)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenCodec_Verify_MissingSubjectClaims(t *testing.T) {
	codec, access, _ := newTestCodec(t)

	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, &claims).SignedString(access.Private)
	require.NoError(t, err)

	_, err = codec.Verify(signed, PurposeAccess)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenCodec_ExtractSubject(t *testing.T) {
	codec, _, _ := newTestCodec(t)

	signed, err := codec.Sign(models.TokenClaims{Username: "anna@example.com", UserID: 42}, PurposeRefresh, time.Hour)
	require.NoError(t, err)

	username, userID, err := codec.ExtractSubject(signed, PurposeRefresh)
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", username)
	assert.Equal(t, int64(42), userID)

	_, _, err = codec.ExtractSubject(signed, PurposeAccess)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
