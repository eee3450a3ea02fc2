package service

// PasswordHasher defines the interface for hashing and checking passwords.
// Implementations decide the algorithm and cost.
type PasswordHasher interface {
	// Hash creates a hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password against a stored hash.
	Check(password, hash string) error
}
