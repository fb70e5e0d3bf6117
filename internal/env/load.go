package env

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// DefaultPath is the dotenv file read at startup, relative to the working directory.
const DefaultPath = ".env"

// Load reads the given dotenv file and sets an environment variable for each KEY=VALUE line.
// Variables already present in the environment win over the file. The file may be missing;
// that is not an error.
func Load(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}
