package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns account passwords into stored credentials and checks
// typed passwords against them. It is only used when password hashing is
// enabled; by default passwords are stored as typed.
type PasswordHasher interface {
	// Hash returns the credential to store for password.
	Hash(password string) (string, error)

	// Compare reports whether password produces the stored credential.
	// A mismatch is (false, nil); an error means the stored value is unusable.
	Compare(stored, password string) (bool, error)
}
