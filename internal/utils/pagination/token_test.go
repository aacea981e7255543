package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateBasedTokenRoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.UTC)

	token := EncodeDateBasedToken(at)
	decoded, err := DecodeDateBasedToken(token)
	require.NoError(t, err)
	assert.True(t, at.Equal(decoded))
}

func TestDecodeDateBasedTokenRejectsGarbage(t *testing.T) {
	_, err := DecodeDateBasedToken("not-base64!!")
	assert.Error(t, err)

	_, err = DecodeDateBasedToken("aGVsbG8=") // valid base64, not a timestamp
	assert.Error(t, err)
}
