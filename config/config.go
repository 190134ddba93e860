package config

import "os"

const (
	// MaxUploadSize caps a single uploaded file at 5 MiB.
	MaxUploadSize = 5 * 1024 * 1024

	SessionCookieName = "news_portal_session"
	// SessionMaxAge is the session cookie lifetime in seconds (24 hours).
	SessionMaxAge = 24 * 60 * 60
)

// SessionSecret signs the session cookie.
func SessionSecret() []byte {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "news-portal-secret-key"
	}
	return []byte(secret)
}

// UploadDir is the directory uploaded files are written to.
func UploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return dir
}
