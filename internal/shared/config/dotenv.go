package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// loadEnvFiles applies each existing file without overriding variables
// already present in the process environment. Missing files are skipped so
// one absent path does not stop the others from loading.
func loadEnvFiles(paths ...string) error {
	var errs []error
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
