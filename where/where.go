// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/decor-cli/decor/constant"
	"github.com/decor-cli/decor/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "DECOR_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// The path can be overridden via the DECOR_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Decor))
}

// Logs resolves the absolute path to the directory used for diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Sheet resolves the first existing style sheet in the configuration directory.
// When none exists the TOML location is returned so that callers can create it.
func Sheet() string {
	dir := Config()

	for _, ext := range constant.SheetTypes {
		path := filepath.Join(dir, constant.SheetName+"."+ext)
		if exists, _ := filesystem.API().Exists(path); exists {
			return path
		}
	}

	return filepath.Join(dir, constant.SheetName+"."+constant.SheetTypes[0])
}
