package authenticator

// TokenEngine generates and verifies signed tokens which carry an object of
// type T besides the standard claims.
type TokenEngine[T any] interface {
	Generate(sub string, obj T) (string, error)
	Verify(token string) (T, error)
}
