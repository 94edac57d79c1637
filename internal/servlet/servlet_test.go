package servlet

import (
	"testing"

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

func TestWorkflowURL(t *testing.T) {
	actual, err := WorkflowURL(newSettings())
	require.NoError(t, err)
	assert.Equal(t, "https://h/api/workflows/w1?customer=acme", actual.String())

	t.Run("Trailing separator", func(t *testing.T) {
		s := newSettings()
		s.ServerAPI = "https://h/api/"
		actual, err := WorkflowURL(s)
		require.NoError(t, err)
		assert.Equal(t, "https://h/api/workflows/w1?customer=acme", actual.String())
	})

	t.Run("Override", func(t *testing.T) {
		actual, err := WorkflowURLFor(newSettings(), "w2")
		require.NoError(t, err)
		assert.Equal(t, "https://h/api/workflows/w2?customer=acme", actual.String())
	})
}

func TestFilesURL(t *testing.T) {
	actual, err := FilesURL(newSettings(), "jobs/42/out.pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://h/api/files/jobs/42/out.pdf?customer=acme", actual.String())

	base, err := FilesAPI(newSettings())
	require.NoError(t, err)
	assert.Equal(t, "https://h/api/files/?customer=acme", base.String())

	t.Run("Reserved characters", func(t *testing.T) {
		var tests = []struct {
			localPath string
			expected  string
		}{
			{"jobs/42/50% off.pdf", "https://h/api/files/jobs/42/50%25%20off.pdf?customer=acme"},
			{"jobs/42/my guide.pdf", "https://h/api/files/jobs/42/my%20guide.pdf?customer=acme"},
			{"jobs/42/a#1.pdf", "https://h/api/files/jobs/42/a%231.pdf?customer=acme"},
			{"jobs/42/what?.pdf", "https://h/api/files/jobs/42/what%3F.pdf?customer=acme"},
		}
		for _, tt := range tests {
			actual, err := FilesURL(newSettings(), tt.localPath)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual.String())
			assert.Equal(t, "/api/files/"+tt.localPath, actual.Path)
		}
	})

	t.Run("Escaped server API", func(t *testing.T) {
		s := newSettings()
		s.ServerAPI = "https://h/my%20api"
		actual, err := FilesURL(s, "jobs/42/out.pdf")
		require.NoError(t, err)
		assert.Equal(t, "https://h/my%20api/files/jobs/42/out.pdf?customer=acme", actual.String())
	})
}

func TestWorkflowURLEscapesWorkflow(t *testing.T) {
	actual, err := WorkflowURLFor(newSettings(), "w 1#draft")
	require.NoError(t, err)
	assert.Equal(t, "https://h/api/workflows/w%201%23draft?customer=acme", actual.String())
}

func TestInvalidServerAPI(t *testing.T) {
	for _, serverAPI := range []string{"not a url", "h/api", "http://[::1"} {
		t.Run(serverAPI, func(t *testing.T) {
			s := newSettings()
			s.ServerAPI = serverAPI
			_, err := WorkflowURL(s)
			assert.ErrorIs(t, err, settings.ErrConfig)
		})
	}
}
