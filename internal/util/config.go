// Package util provides the ambient pieces shared across goflix: logging,
// configuration, HTTP plumbing and styled terminal output.
package util

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

var IsDebug bool

// SetDebugMode sets the debug mode
func SetDebugMode(debug bool) {
	IsDebug = debug
}

// LoadEnv loads a .env file from the working directory if present.
// A missing file is not an error; the environment simply stays as-is.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		Debug("no .env file loaded", "error", err)
	}
}

// CatalogAPIKey returns the metadata catalog API key.
// Get a free key at https://www.themoviedb.org/settings/api
func CatalogAPIKey() string {
	return os.Getenv("TMDB_API_KEY")
}

// DataDir returns the directory used for local state (watch-later database,
// session profile), creating it if needed. GOFLIX_DATA_DIR overrides the
// per-user default.
func DataDir() (string, error) {
	if dir := os.Getenv("GOFLIX_DATA_DIR"); dir != "" {
		return dir, os.MkdirAll(dir, 0o700)
	}
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	dir := filepath.Join(base, "goflix")
	return dir, os.MkdirAll(dir, 0o700)
}
