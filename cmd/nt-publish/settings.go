package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/julien-sobczak/nt-publish/internal/settings"
)

// SettingsEnv overrides the default settings location.
const SettingsEnv = "NT_PUBLISH_SETTINGS"

// resolveSettingsPath determines the settings file to use.
// The --settings flag wins over $NT_PUBLISH_SETTINGS that wins over ./settings.json.
func resolveSettingsPath(flag string) string {
	path := flag
	if path == "" {
		if value, ok := os.LookupEnv(SettingsEnv); ok && value != "" {
			path = value
		}
	}
	if path == "" {
		path = settings.DefaultFileName
	}
	if abspath, err := filepath.Abs(path); err == nil {
		return abspath
	}
	return path
}

func currentSettingsStore() *settings.FileStore {
	return settings.NewFileStore(resolveSettingsPath(settingsPath))
}

func loadSettings() *settings.Settings {
	s, err := currentSettingsStore().Load(context.Background())
	if err != nil {
		fail("%v", err)
	}
	return s
}
