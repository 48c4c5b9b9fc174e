package panlex

import "fmt"

// RemoteRequestError reports a failed exchange with the PanLex API: a
// transport error, a timeout, a non-2xx status or an undecodable body.
type RemoteRequestError struct {
	Op         string // "resolve" or "translate"
	StatusCode int    // 0 when no response was received
	Body       string // leading part of the response body for non-2xx statuses
	Err        error
}

func (e *RemoteRequestError) Error() string {
	switch {
	case e.Err != nil && e.StatusCode != 0:
		return fmt.Sprintf("panlex %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("panlex %s: %v", e.Op, e.Err)
	case e.Body != "":
		return fmt.Sprintf("panlex %s: unexpected status %d: %s", e.Op, e.StatusCode, e.Body)
	default:
		return fmt.Sprintf("panlex %s: unexpected status %d", e.Op, e.StatusCode)
	}
}

func (e *RemoteRequestError) Unwrap() error {
	return e.Err
}

// EncodingError indicates a word that cannot be carried in a JSON request.
type EncodingError struct {
	Word string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("panlex: word %q is not valid UTF-8", e.Word)
}
