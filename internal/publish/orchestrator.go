package publish

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/julien-sobczak/nt-publish/internal/document"
	"github.com/julien-sobczak/nt-publish/internal/logger"
	"github.com/julien-sobczak/nt-publish/internal/output"
	"github.com/julien-sobczak/nt-publish/internal/servlet"
	"github.com/julien-sobczak/nt-publish/internal/settings"
	"github.com/julien-sobczak/nt-publish/internal/submission"
	"github.com/julien-sobczak/nt-publish/internal/workflow"
)

// ErrBusy is returned when a publication is triggered while another one is running.
var ErrBusy = errors.New("a publication is already in progress")

// UI is notified at well-defined points of a publication.
type UI interface {
	// ShowBusy is called when a submission starts.
	ShowBusy()
	// Restore is called exactly once per started submission, whatever the outcome.
	Restore()
	// Alert is called exactly once per failed publication.
	Alert(message string)
}

// Opener opens the produced output.
type Opener interface {
	OpenURL(url string) error
}

// Submitter sends a payload to the publishing service.
type Submitter interface {
	Submit(ctx context.Context, target *url.URL, payload *workflow.Payload, credentials submission.Credentials) submission.Outcome
}

// Result describes a successful publication.
type Result struct {
	RequestID string
	Response  *output.JobResponse
	// Selected output file name
	Output string
	URL    *url.URL
}

// Orchestrator sequences a publication: settings, workflow URL, payload, submission, output.
type Orchestrator struct {
	store     settings.Store
	documents document.Provider
	client    Submitter
	ui        UI
	opener    Opener

	workflowID string
	builder    workflow.Builder
	observer   StateObserver

	running atomic.Bool
	mu      sync.Mutex
	state   State
}

type Option func(*Orchestrator)

// WithWorkflow overrides the workflow defined in settings.
func WithWorkflow(workflowID string) Option {
	return func(o *Orchestrator) {
		o.workflowID = workflowID
	}
}

// WithBuilder replaces the default payload builder.
func WithBuilder(builder workflow.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

func WithStateObserver(observer StateObserver) Option {
	return func(o *Orchestrator) {
		o.observer = observer
	}
}

func NewOrchestrator(store settings.Store, documents document.Provider, client Submitter, ui UI, opener Opener, options ...Option) *Orchestrator {
	result := &Orchestrator{
		store:     store,
		documents: documents,
		client:    client,
		ui:        ui,
		opener:    opener,
		state:     Idle,
	}
	for _, option := range options {
		option(result)
	}
	return result
}

// State returns the current state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Run publishes the current document. Failures are reported to the UI
// before being returned. There is no retry.
func (o *Orchestrator) Run(ctx context.Context) (*Result, error) {
	if !o.running.CompareAndSwap(false, true) {
		o.ui.Alert(ErrBusy.Error())
		return nil, ErrBusy
	}
	defer o.running.Store(false)

	o.transition(Submitting)
	result, err := func() (*Result, error) {
		o.ui.ShowBusy()
		defer o.ui.Restore()
		return o.publish(ctx)
	}()
	if err != nil {
		o.transition(ShowingError)
		logger.CurrentLogger().Debugf("Publication failed: %v", err)
		o.ui.Alert(AlertMessage(err))
		o.transition(Idle)
		return nil, err
	}
	o.transition(Idle)
	return result, nil
}

func (o *Orchestrator) publish(ctx context.Context) (*Result, error) {
	log := logger.CurrentLogger()

	// A single snapshot is used for the whole publication
	log.Debugf("Loading settings...")
	s, err := o.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if o.workflowID != "" {
		s = s.WithWorkflow(o.workflowID)
	}

	target, err := servlet.WorkflowURL(s)
	if err != nil {
		return nil, err
	}
	log.Debugf("Resolved workflow URL %s", target)

	doc, err := o.currentDocument()
	if err != nil {
		return nil, err
	}
	payload, err := o.builder.Build(doc)
	if err != nil {
		return nil, err
	}
	log.Debugf("Submitting %s (%d bytes)...", doc, payload.Len())

	outcome := o.client.Submit(ctx, target, payload, submission.Credentials{
		Username: s.Username,
		Password: s.Password,
	})
	log.Debugf("Submission %s completed: %s", outcome.RequestID, outcome.Kind)
	if err := outcome.Err(); err != nil {
		return nil, err
	}

	response, err := output.ParseJobResponse(outcome.Body)
	if err != nil {
		return nil, err
	}
	selected, err := output.SelectOutput(response)
	if err != nil {
		return nil, err
	}
	outputURL, err := output.ResolveOutputURL(s, response)
	if err != nil {
		return nil, err
	}

	o.transition(Opening)
	log.Infof("Opening %s", outputURL.Redacted())
	if err := o.opener.OpenURL(outputURL.String()); err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", outputURL.Redacted(), err)
	}

	return &Result{
		RequestID: outcome.RequestID,
		Response:  response,
		Output:    selected,
		URL:       outputURL,
	}, nil
}

// currentDocument falls back to an empty document when only the name is known.
func (o *Orchestrator) currentDocument() (*document.Document, error) {
	doc, err := o.documents.CurrentDocument()
	if err != nil {
		return nil, err
	}
	if doc != nil {
		return doc, nil
	}
	name := o.documents.CurrentDocumentName()
	if name == "" {
		return nil, workflow.ErrNoDocument
	}
	return &document.Document{Name: name}, nil
}

func (o *Orchestrator) transition(to State) {
	o.mu.Lock()
	from := o.state
	o.state = to
	observer := o.observer
	o.mu.Unlock()

	logger.CurrentLogger().Tracef("Publication state %s -> %s", from, to)
	if observer != nil {
		observer(from, to)
	}
}

// AlertMessage returns the text shown to the user for a failed publication.
func AlertMessage(err error) string {
	var serverErr *submission.ServerError
	if errors.As(err, &serverErr) {
		if strings.TrimSpace(serverErr.Body) != "" {
			return serverErr.Body
		}
		return serverErr.Error()
	}
	if errors.Is(err, submission.ErrTransport) {
		return submission.TransportMessage
	}
	return err.Error()
}
