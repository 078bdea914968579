package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// DirStatus is the outcome of probing a directory.
type DirStatus struct {
	Exists   bool
	Writable bool
	Error    error
}

// FileExists reports whether path can be stat'ed.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates dirPath and its parents if missing.
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0o755)
}

// SaveTOMLFile encodes data as TOML into filePath, truncating it.
func SaveTOMLFile(data any, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		log.Errorf("Failed to create %s: %v", filePath, err)
		return err
	}
	defer file.Close()
	return toml.NewEncoder(file).Encode(data)
}

// ExecutableDir returns the directory holding the running binary.
func ExecutableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(execPath), nil
}

// CheckDir creates dirPath if needed and probes it for write access.
func CheckDir(dirPath string) DirStatus {
	status := DirStatus{}
	if err := EnsureDir(dirPath); err != nil {
		log.Warnf("Cannot create directory %s: %v", dirPath, err)
		status.Error = err
		return status
	}
	status.Exists = true
	status.Writable = canWrite(dirPath)
	return status
}

func canWrite(dirPath string) bool {
	probe := filepath.Join(dirPath, ".write_test")
	file, err := os.Create(probe)
	if err != nil {
		log.Warnf("Cannot write to directory %s: %v", dirPath, err)
		return false
	}
	file.Close()
	os.Remove(probe)
	return true
}
