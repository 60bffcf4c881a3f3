package searchapi

import (
	"fmt"
	"net/http"

	"github.com/kailas-cloud/searchprov/internal/domain"
)

// Op constants name the management API operations for error context and metrics.
const (
	OpCreateIndex      = "create_index"
	OpUpsertDataSource = "upsert_datasource"
	OpGetIndexer       = "get_indexer"
	OpResetIndexer     = "reset_indexer"
	OpUpsertIndexer    = "upsert_indexer"
	OpRunIndexer       = "run_indexer"
)

// Error wraps a failed management API call.
// StatusCode is zero when the request never got a response.
type Error struct {
	Op         string
	StatusCode int
	Code       string
	Message    string
	Err        error
}

// NewStatusError builds an Error for a non-success HTTP status.
// 404 and 429 unwrap to domain.ErrNotFound and domain.ErrRateLimited.
func NewStatusError(op string, status int, code, message string) *Error {
	e := &Error{Op: op, StatusCode: status, Code: code, Message: message}
	switch status {
	case http.StatusNotFound:
		e.Err = domain.ErrNotFound
	case http.StatusTooManyRequests:
		e.Err = domain.ErrRateLimited
	}
	return e
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		if e.Err == nil {
			return e.Op + ": request failed"
		}
		return e.Op + ": " + e.Err.Error()
	}
	msg := fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
	if e.Code != "" {
		msg += " " + e.Code
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }
