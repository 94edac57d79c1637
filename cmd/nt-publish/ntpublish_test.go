package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/julien-sobczak/nt-publish/internal/document"
	"github.com/julien-sobczak/nt-publish/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettings() *settings.Settings {
	return &settings.Settings{
		ServerAPI: "https://h/api",
		Customer:  "acme",
		Workflow:  "w1",
		Username:  "u",
		Password:  "p",
	}
}

func TestResolveSettingsPath(t *testing.T) {
	t.Run("Flag", func(t *testing.T) {
		t.Setenv(SettingsEnv, "/etc/nt-publish/settings.yaml")
		assert.Equal(t, "/tmp/settings.toml", resolveSettingsPath("/tmp/settings.toml"))
	})

	t.Run("Environment", func(t *testing.T) {
		t.Setenv(SettingsEnv, "/etc/nt-publish/settings.yaml")
		assert.Equal(t, "/etc/nt-publish/settings.yaml", resolveSettingsPath(""))
	})

	t.Run("Default", func(t *testing.T) {
		t.Setenv(SettingsEnv, "")
		cwd, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cwd, "settings.json"), resolveSettingsPath(""))
	})
}

func TestPrintURLs(t *testing.T) {
	var out bytes.Buffer
	err := printURLs(&out, newSettings())
	require.NoError(t, err)
	expected := "" +
		"workflow: https://h/api/workflows/w1?customer=acme\n" +
		"files:    https://h/api/files/?customer=acme\n"
	assert.Equal(t, expected, out.String())
}

func TestPrintSettings(t *testing.T) {
	t.Run("Single value", func(t *testing.T) {
		var out bytes.Buffer
		err := printSettings(&out, newSettings(), ".customer")
		require.NoError(t, err)
		assert.Equal(t, "acme\n", out.String())
	})

	t.Run("All settings", func(t *testing.T) {
		var out bytes.Buffer
		err := printSettings(&out, newSettings(), ".")
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"serverApi": "https://h/api",
			"customer": "acme",
			"workflow": "w1",
			"username": "u",
			"password": "********"
		}`, out.String())
	})

	t.Run("Invalid expression", func(t *testing.T) {
		var out bytes.Buffer
		err := printSettings(&out, newSettings(), ".[")
		assert.Error(t, err)
	})
}

func TestWritePreview(t *testing.T) {
	dir := t.TempDir()
	path, err := writePreview(dir, &document.Document{Name: "guide.md", Text: "# Guide\n"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nt-publish-guide.html"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Guide</h1>")
}
