package submission

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// TransportMessage is shown to the user when the server cannot be reached.
const TransportMessage = "Error sending workflow to server"

var (
	ErrServer    = errors.New("server rejected workflow")
	ErrTransport = errors.New("transport failure")
)

// ServerError is returned when the server answers with a status other than 200.
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	if strings.TrimSpace(e.Body) == "" {
		return fmt.Sprintf("server status: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return strings.TrimSpace(e.Body)
}

func (e *ServerError) Is(target error) bool {
	return target == ErrServer
}

// TransportError is returned when the request cannot be sent or the response cannot be read.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", TransportMessage, e.Err)
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
