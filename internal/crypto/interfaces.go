package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher hashes and verifies user passwords.
// Cleartext passwords never leave the process and are never logged.
type PasswordHasher interface {
	// Hash returns an encoded, salted hash of password.
	Hash(password string) (string, error)

	// Verify reports whether password matches the encoded hash.
	// A malformed hash verifies as false.
	Verify(hash, password string) bool
}

// CredentialGenerator produces credentials for accounts created or reset by
// the server.
type CredentialGenerator interface {
	// TempPassword returns a random password drawn from [TempPasswordAlphabet]
	// of length [TempPasswordLength].
	TempPassword() (string, error)

	// UsernameBase derives the lowercase a-z slug of the first word of name.
	UsernameBase(name string) string
}
