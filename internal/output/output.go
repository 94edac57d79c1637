package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/julien-sobczak/nt-publish/internal/servlet"
	"github.com/julien-sobczak/nt-publish/internal/settings"
	"github.com/julien-sobczak/nt-publish/pkg/urls"
	"golang.org/x/exp/slices"
)

// PreferredExtension is selected first among the job outputs.
const PreferredExtension = "pdf"

var ErrMalformedResponse = errors.New("malformed job response")

// MalformedResponseError is returned when a successful response cannot be used.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", ErrMalformedResponse, e.Reason, e.Err)
	}
	return fmt.Sprintf("%v: %s", ErrMalformedResponse, e.Reason)
}

func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// JobResponse is returned by the server after a successful submission.
type JobResponse struct {
	Path string `json:"path"`
	// Order is determined by the server and must be preserved
	Outputs []string `json:"outputs"`
}

// ParseJobResponse decodes the response body.
func ParseJobResponse(body string) (*JobResponse, error) {
	var result JobResponse
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		return nil, &MalformedResponseError{Reason: "invalid JSON", Err: err}
	}
	return &result, nil
}

// IsPDF checks the file extension ignoring the case.
func IsPDF(filename string) bool {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) == PreferredExtension
}

// SelectOutput returns the first PDF output or the first output when no PDF exists.
func SelectOutput(response *JobResponse) (string, error) {
	if response == nil || len(response.Outputs) == 0 {
		return "", &MalformedResponseError{Reason: "no outputs"}
	}
	if i := slices.IndexFunc(response.Outputs, IsPDF); i >= 0 {
		return response.Outputs[i], nil
	}
	return response.Outputs[0], nil
}

// LocalPath returns the path of the selected output relative to the files servlet.
func LocalPath(response *JobResponse) (string, error) {
	selected, err := SelectOutput(response)
	if err != nil {
		return "", err
	}
	return urls.ResolveAsLocal(response.Path, selected), nil
}

// ResolveOutputURL returns the download URL of the selected output.
// Ex: https://h/api/files/jobs/42/out.pdf?customer=acme
func ResolveOutputURL(s *settings.Settings, response *JobResponse) (*url.URL, error) {
	localPath, err := LocalPath(response)
	if err != nil {
		return nil, err
	}
	return servlet.FilesURL(s, localPath)
}
