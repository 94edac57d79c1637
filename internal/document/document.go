package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julien-sobczak/nt-publish/internal/logger"
	"golang.org/x/exp/slices"
)

// DefaultExtensions lists the file extensions considered as Markdown.
var DefaultExtensions = []string{"md", "markdown"}

var ErrNotMarkdown = errors.New("not a Markdown document")

// Document is a read-only snapshot of the document to publish.
type Document struct {
	// Name used to label the uploaded part (ex: "guide.md")
	Name string
	// Path on disk, empty when the document is not backed by a file
	Path string
	Text string
}

func (d Document) String() string {
	return fmt.Sprintf("document %q", d.Name)
}

// Provider gives access to the document currently being edited.
type Provider interface {
	// CurrentDocument returns nil when no document is available.
	CurrentDocument() (*Document, error)
	// CurrentDocumentName returns the name of the current document, even when its content is not available.
	CurrentDocumentName() string
}

// FileProvider exposes a file on disk as the current document.
type FileProvider struct {
	Path string
}

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{
		Path: path,
	}
}

func (p *FileProvider) CurrentDocumentName() string {
	if p.Path == "" {
		return ""
	}
	return filepath.Base(p.Path)
}

func (p *FileProvider) CurrentDocument() (*Document, error) {
	if p.Path == "" {
		return nil, nil
	}
	content, err := os.ReadFile(p.Path)
	if errors.Is(err, os.ErrNotExist) {
		logger.CurrentLogger().Debugf("No document found at %s", p.Path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", p.Path, err)
	}
	return &Document{
		Name: p.CurrentDocumentName(),
		Path: p.Path,
		Text: string(content),
	}, nil
}

// SupportExtension checks if the given file has one of the extensions (case-insensitive).
func SupportExtension(path string, extensions []string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".") // ".md" => "md"
	return slices.ContainsFunc(extensions, func(extension string) bool {
		return strings.EqualFold(extension, ext)
	})
}

// CheckMarkdown returns ErrNotMarkdown when the path is not a Markdown file.
func CheckMarkdown(path string, extensions []string) error {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	if !SupportExtension(path, extensions) {
		return fmt.Errorf("%s: %w (supported extensions: %s)", filepath.Base(path), ErrNotMarkdown, strings.Join(extensions, ", "))
	}
	return nil
}
