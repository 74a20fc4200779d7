package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	assert.True(t, h.Verify(hash, "s3cret!"))
	assert.False(t, h.Verify(hash, "s3cret"))
	assert.False(t, h.Verify("not-a-hash", "s3cret!"))
}

func TestPasswordHasher_Salted(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestPasswordHasher_TooLong(t *testing.T) {
	_, err := NewPasswordHasher(bcrypt.MinCost).Hash(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	h := NewPasswordHasher(1000).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}

// ─────────────────────────────────────────────

func TestTempPassword(t *testing.T) {
	g := NewCredentialGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		pw, err := g.TempPassword()
		require.NoError(t, err)
		require.Len(t, pw, TempPasswordLength)

		for _, r := range pw {
			assert.True(t, strings.ContainsRune(TempPasswordAlphabet, r), "unexpected rune %q", r)
		}
		seen[pw] = struct{}{}
	}

	assert.Greater(t, len(seen), 1)
}

func TestTempPasswordAlphabet_HasNoConfusables(t *testing.T) {
	for _, r := range "01IO" {
		assert.NotContains(t, TempPasswordAlphabet, string(r))
	}
}

func TestUsernameBase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Maria Souza", want: "maria"},
		{name: "accented", in: "João da Silva", want: "joao"},
		{name: "cedilla", in: "Conceição", want: "conceicao"},
		{name: "leading spaces", in: "   Ana  ", want: "ana"},
		{name: "punctuation", in: "D'Ávila Neto", want: "davila"},
		{name: "digits dropped", in: "R2D2 Droid", want: "rd"},
		{name: "empty", in: "", want: "vendedor"},
		{name: "no ascii", in: "李 小龍", want: "vendedor"},
	}

	g := NewCredentialGenerator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.UsernameBase(tt.in))
		})
	}
}
