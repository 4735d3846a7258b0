package service

// PasswordHasher hashes the passwords of locally managed accounts.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
