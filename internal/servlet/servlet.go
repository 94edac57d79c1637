// Package servlet resolves the endpoints of the publishing service API.
package servlet

import (
	"fmt"
	"net/url"

	"github.com/julien-sobczak/nt-publish/internal/settings"
	"github.com/julien-sobczak/nt-publish/pkg/urls"
)

// Servlets
const (
	FilesServlet     = "files/"
	WorkflowsServlet = "workflows/"
)

// CustomerParam is the query parameter identifying the customer on every request.
const CustomerParam = "customer"

// WorkflowURL returns the URL to submit a document to the default workflow.
// Ex: https://h/api/workflows/w1?customer=acme
func WorkflowURL(s *settings.Settings) (*url.URL, error) {
	return WorkflowURLFor(s, s.Workflow)
}

// WorkflowURLFor returns the URL to submit a document to the given workflow.
func WorkflowURLFor(s *settings.Settings, workflowID string) (*url.URL, error) {
	return resolve(s, WorkflowsServlet, workflowID)
}

// FilesURL returns the URL to download a job file.
// Ex: https://h/api/files/jobs/42/out.pdf?customer=acme
func FilesURL(s *settings.Settings, localPath string) (*url.URL, error) {
	return resolve(s, FilesServlet, localPath)
}

// FilesAPI returns the base URL of the files servlet.
func FilesAPI(s *settings.Settings) (*url.URL, error) {
	return resolve(s, FilesServlet, "")
}

// resolve appends the servlet and the resource to the path of the server API.
// The resource is an unescaped path: reserved characters are escaped when the URL is printed.
func resolve(s *settings.Settings, servlet, resource string) (*url.URL, error) {
	u, err := url.Parse(s.ServerAPI)
	if err != nil {
		return nil, settings.NewConfigError(fmt.Sprintf("invalid serverApi %q", s.ServerAPI), err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, settings.NewConfigError(fmt.Sprintf("serverApi %q must be an absolute URL", s.ServerAPI), nil)
	}

	path := urls.Resolve(u.Path, servlet)
	if resource != "" {
		path = urls.Resolve(path, resource)
	}
	result := *u
	result.Path = path
	result.RawPath = ""
	result.Fragment = ""
	result.RawFragment = ""
	return urls.AddQueryParam(&result, CustomerParam, s.Customer), nil
}
