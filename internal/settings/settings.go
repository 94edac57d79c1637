package settings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/julien-sobczak/nt-publish/internal/logger"
	"github.com/julien-sobczak/nt-publish/pkg/text"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is searched in the working directory when no path is given.
const DefaultFileName = "settings.json"

// Settings is an immutable snapshot of the publishing service configuration.
// Note: Fields must be public for the decoders to unmarshall
type Settings struct {
	ServerAPI string `json:"serverApi" yaml:"serverApi" toml:"serverApi"`
	Customer  string `json:"customer" yaml:"customer" toml:"customer"`
	Workflow  string `json:"workflow" yaml:"workflow" toml:"workflow"`
	Username  string `json:"username" yaml:"username" toml:"username"`
	Password  string `json:"password" yaml:"password" toml:"password"`
}

// Store loads the settings. Each call may read the underlying resource again.
type Store interface {
	Load(ctx context.Context) (*Settings, error)
}

// FileStore reads settings from a JSON, YAML or TOML file.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		Path: path,
	}
}

func (s *FileStore) Load(ctx context.Context) (*Settings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.CurrentLogger().Debugf("Reading settings %s", s.Path)
	content, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &ConfigError{Path: s.Path, Reason: "file not found"}
	}
	if err != nil {
		return nil, &ConfigError{Path: s.Path, Reason: "failed to read file", Err: err}
	}

	result, err := Parse(filepath.Ext(s.Path), content)
	if err != nil {
		var configErr *ConfigError
		if errors.As(err, &configErr) {
			configErr.Path = s.Path
			return nil, configErr
		}
		return nil, &ConfigError{Path: s.Path, Reason: "failed to parse file", Err: err}
	}
	return result, nil
}

// Parse decodes settings using the format matching the file extension.
// JSON is assumed for unknown extensions.
func Parse(ext string, content []byte) (*Settings, error) {
	var result Settings
	var err error
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		d := yaml.NewDecoder(bytes.NewReader(content))
		d.KnownFields(true)
		err = d.Decode(&result)
		if err == nil {
			err = expectEOF(d.Decode(&struct{}{}))
		}
	case "toml":
		d := toml.NewDecoder(bytes.NewReader(content))
		d.DisallowUnknownFields()
		err = d.Decode(&result)
	default:
		d := json.NewDecoder(bytes.NewReader(content))
		d.DisallowUnknownFields()
		err = d.Decode(&result)
		if err == nil {
			err = expectEOF(d.Decode(&struct{}{}))
		}
	}
	if err != nil {
		return nil, err
	}
	if err := result.Check(); err != nil {
		return nil, err
	}
	return &result, nil
}

// expectEOF checks the decoder consumed the whole file after the first value.
func expectEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("unexpected content after settings: %w", err)
	}
	return errors.New("unexpected content after settings")
}

// Check ensures all required keys are present.
func (s *Settings) Check() error {
	var missing []string
	for _, field := range []struct {
		key   string
		value string
	}{
		{"serverApi", s.ServerAPI},
		{"customer", s.Customer},
		{"workflow", s.Workflow},
		{"username", s.Username},
		{"password", s.Password},
	} {
		if text.IsBlank(field.value) {
			missing = append(missing, field.key)
		}
	}
	if len(missing) > 0 {
		return NewConfigError(fmt.Sprintf("missing required keys %s", strings.Join(missing, ", ")), nil)
	}
	return nil
}

// WithWorkflow returns a copy using a different workflow.
func (s Settings) WithWorkflow(workflow string) *Settings {
	s.Workflow = workflow
	return &s
}
