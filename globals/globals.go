package globals

import (
	"os"

	"github.com/joho/godotenv"
)

var JwtSecret []byte

func init() {
	// .env is optional; system environment wins when both are present
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// dev fallback; set JWT_SECRET in production
		secret = "toolbase_dev_secret"
	}
	JwtSecret = []byte(secret)
}

// Context keys
type ContextKey string

const EmailKey ContextKey = "email"
const RoleKey ContextKey = "role"
