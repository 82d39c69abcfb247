package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	iss := NewIssuer([]byte("test-secret"))

	tok, err := iss.Issue("ana@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	email, err := iss.Validate(tok)
	require.NoError(t, err)
	require.Equal(t, "ana@x.com", email)
}

func TestValidateExpired(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	iss := NewIssuer([]byte("test-secret"))
	iss.now = func() time.Time { return base }

	tok, err := iss.Issue("ana@x.com")
	require.NoError(t, err)

	// Still valid just inside the window
	iss.now = func() time.Time { return base.Add(59 * time.Minute) }
	_, err = iss.Validate(tok)
	require.NoError(t, err)

	iss.now = func() time.Time { return base.Add(time.Hour + time.Second) }
	_, err = iss.Validate(tok)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateTampered(t *testing.T) {
	iss := NewIssuer([]byte("test-secret"))

	tok, err := iss.Issue("ana@x.com")
	require.NoError(t, err)

	_, err = iss.Validate(tok + "x")
	require.ErrorIs(t, err, ErrTokenMalformed)

	_, err = iss.Validate("not-a-token")
	require.ErrorIs(t, err, ErrTokenMalformed)
}

func TestValidateWrongSecret(t *testing.T) {
	tok, err := NewIssuer([]byte("secret-a")).Issue("ana@x.com")
	require.NoError(t, err)

	_, err = NewIssuer([]byte("secret-b")).Validate(tok)
	require.ErrorIs(t, err, ErrTokenMalformed)
}
