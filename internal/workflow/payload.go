package workflow

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/julien-sobczak/nt-publish/internal/document"
	"golang.org/x/exp/slices"
)

var ErrNoDocument = errors.New("no document to publish")

// Payload is a multipart/form-data body ready to be submitted.
type Payload struct {
	contentType string
	body        []byte
	parts       []string
}

// ContentType returns the header value including the boundary.
func (p *Payload) ContentType() string {
	return p.contentType
}

func (p *Payload) Bytes() []byte {
	return p.body
}

// Reader returns a new reader over the body on every call.
func (p *Payload) Reader() io.Reader {
	return bytes.NewReader(p.body)
}

// Parts returns a copy of the part names in order.
func (p *Payload) Parts() []string {
	return slices.Clone(p.parts)
}

func (p *Payload) Len() int {
	return len(p.body)
}

// Builder creates payloads. The zero value uses a random boundary.
type Builder struct {
	// Boundary forces the multipart boundary (useful to reproduce payloads)
	Boundary string
}

// Build creates a payload with a random boundary.
func Build(doc *document.Document) (*Payload, error) {
	return Builder{}.Build(doc)
}

// Build creates the payload containing the document followed by the workflow override.
func (b Builder) Build(doc *document.Document) (*Payload, error) {
	if doc == nil || doc.Name == "" {
		return nil, ErrNoDocument
	}

	override, err := NewMarkdownOverride(doc.Name).Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workflow override: %w", err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if b.Boundary != "" {
		if err := w.SetBoundary(b.Boundary); err != nil {
			return nil, fmt.Errorf("invalid boundary %q: %w", b.Boundary, err)
		}
	}

	parts := []struct {
		name    string
		content []byte
	}{
		{doc.Name, []byte(doc.Text)},
		{OverrideFileName, override},
	}
	var names []string
	for _, part := range parts {
		// Field name and file name are identical
		fw, err := w.CreateFormFile(part.name, part.name)
		if err != nil {
			return nil, fmt.Errorf("failed to create part %q: %w", part.name, err)
		}
		if _, err := fw.Write(part.content); err != nil {
			return nil, fmt.Errorf("failed to write part %q: %w", part.name, err)
		}
		names = append(names, part.name)
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return &Payload{
		contentType: w.FormDataContentType(),
		body:        buf.Bytes(),
		parts:       names,
	}, nil
}
