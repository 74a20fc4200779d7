package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// TempPasswordAlphabet omits 0/O and 1/I so that generated passwords can be
	// read aloud or retyped without ambiguity.
	TempPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	TempPasswordLength   = 6

	// fallbackUsername is used when the first name has no ASCII letters at all.
	fallbackUsername = "vendedor"
)

type credentialGenerator struct{}

// NewCredentialGenerator returns a [CredentialGenerator] backed by crypto/rand.
func NewCredentialGenerator() CredentialGenerator {
	return credentialGenerator{}
}

// TempPassword implements [CredentialGenerator].
func (credentialGenerator) TempPassword() (string, error) {
	max := big.NewInt(int64(len(TempPasswordAlphabet)))

	var sb strings.Builder
	sb.Grow(TempPasswordLength)
	for i := 0; i < TempPasswordLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("reading random index: %w", err)
		}
		sb.WriteByte(TempPasswordAlphabet[n.Int64()])
	}

	return sb.String(), nil
}

// UsernameBase implements [CredentialGenerator].
//
// "João da Silva" becomes "joao". Accents are removed through NFD
// decomposition; every remaining rune outside a-z is dropped.
func (credentialGenerator) UsernameBase(name string) string {
	first := strings.Fields(name)
	if len(first) == 0 {
		return fallbackUsername
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, first[0])
	if err != nil {
		plain = first[0]
	}

	var sb strings.Builder
	for _, r := range strings.ToLower(plain) {
		if r >= 'a' && r <= 'z' {
			sb.WriteRune(r)
		}
	}

	if sb.Len() == 0 {
		return fallbackUsername
	}
	return sb.String()
}
