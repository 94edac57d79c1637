package submission

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/julien-sobczak/nt-publish/internal/logger"
	"github.com/julien-sobczak/nt-publish/internal/workflow"
)

// RequestIDHeader correlates a submission with the server logs.
const RequestIDHeader = "X-Request-Id"

type Kind int

const (
	Success Kind = iota
	Failure
	TransportFailure
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Failure:
		return "failure"
	case TransportFailure:
		return "transport failure"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Outcome is the result of a submission. It is never an error by itself.
type Outcome struct {
	Kind       Kind
	StatusCode int
	Body       string
	RequestID  string
	// Cause of a transport failure
	Cause error
}

// Err converts an unsuccessful outcome to an error.
func (o Outcome) Err() error {
	switch o.Kind {
	case Success:
		return nil
	case Failure:
		return &ServerError{StatusCode: o.StatusCode, Body: o.Body}
	default:
		return &TransportError{Err: o.Cause}
	}
}

type Credentials struct {
	Username string
	Password string
}

// Client submits workflow payloads to the publishing service.
type Client struct {
	httpClient *http.Client
}

func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
	}
}

// Submit sends exactly one POST request.
func (c *Client) Submit(ctx context.Context, target *url.URL, payload *workflow.Payload, credentials Credentials) Outcome {
	requestID := uuid.NewString()
	transportFailure := func(err error) Outcome {
		logger.CurrentLogger().Debugf("Request %s failed: %v", requestID, err)
		return Outcome{Kind: TransportFailure, RequestID: requestID, Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), payload.Reader())
	if err != nil {
		return transportFailure(err)
	}
	req.ContentLength = int64(payload.Len())
	req.Header.Set("Content-Type", payload.ContentType())
	req.Header.Set(RequestIDHeader, requestID)
	req.SetBasicAuth(credentials.Username, credentials.Password)

	logger.CurrentLogger().Tracef("POST %s (%d bytes, request %s)", target.Redacted(), payload.Len(), requestID)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportFailure(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportFailure(fmt.Errorf("read response: %w", err))
	}
	logger.CurrentLogger().Tracef("Response %s: %s", requestID, resp.Status)

	if resp.StatusCode != http.StatusOK {
		return Outcome{Kind: Failure, StatusCode: resp.StatusCode, Body: string(body), RequestID: requestID}
	}
	return Outcome{Kind: Success, StatusCode: resp.StatusCode, Body: string(body), RequestID: requestID}
}
