// Package envconfig bootstraps process environment variables from a .env
// file at process start; a missing file is not an error.
package envconfig

import "github.com/joho/godotenv"

// Load loads a .env file from the current directory if one is present.
// A missing .env is fine — most environments configure alphalink purely
// through flags and YAML run manifests.
func Load() {
	_ = godotenv.Load()
}
