package configs

// Auth configures bearer-token checks on state-changing endpoints. Tokens
// are HMAC-signed JWTs. With an empty Secret every action request is
// rejected.
type Auth struct {
	Secret string `env:"JWT_SECRET"`
}
