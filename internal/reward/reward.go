// Package reward resolves the flag revealed on the victory screen.
package reward

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/config"
)

const (
	// FileName is looked up next to the executable.
	FileName = "flag.txt"
	// EnvVar is consulted when the file does not exist.
	EnvVar = "CTF_FLAG"
	// ReadFailure replaces the flag when the file exists but cannot be read.
	ReadFailure = "FLAG{could_not_read_flag_file}"
	// Placeholder is returned when neither the file nor the variable is set.
	Placeholder = "Cyberfellas123"
)

// Provider returns the flag. It is called once per victory.
type Provider func() string

// FromDir returns a Provider reading FileName from dir, falling back to
// EnvVar and then Placeholder.
func FromDir(dir string) Provider {
	return func() string {
		return Load(dir)
	}
}

// Load resolves the flag: the trimmed contents of dir/flag.txt if the file
// exists, ReadFailure if it exists but cannot be read, otherwise CTF_FLAG
// when non-empty, otherwise Placeholder.
func Load(dir string) string {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil || !errors.Is(err, fs.ErrNotExist) {
		data, err := os.ReadFile(path)
		if err != nil {
			return ReadFailure
		}
		return strings.TrimSpace(string(data))
	}
	return config.GetEnv(EnvVar, Placeholder)
}

// ExecutableDir returns the directory holding the running binary, or the
// working directory if it cannot be determined.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
