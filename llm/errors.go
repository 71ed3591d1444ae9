package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
)

var (
	// ErrUpstreamExhausted matches an *ExhaustedError via errors.Is
	ErrUpstreamExhausted = errors.New("no candidate model produced a completion")

	// ErrNoCandidates means neither a resolved nor a fallback model was available
	ErrNoCandidates = errors.New("no candidate models configured")

	// ErrEmptyResponse means the provider answered without any text
	ErrEmptyResponse = errors.New("provider returned empty content")
)

// ErrorKind classifies a failed generation attempt
type ErrorKind string

const (
	KindQuota            ErrorKind = "quota"
	KindBilling          ErrorKind = "billing"
	KindUnsupportedModel ErrorKind = "unsupported_model"
	KindTimeout          ErrorKind = "timeout"
	KindBlocked          ErrorKind = "blocked"
	KindEmptyResponse    ErrorKind = "empty_response"
	KindTransport        ErrorKind = "transport"
)

// GenerationError is one failed attempt against one model
type GenerationError struct {
	Model      string
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *GenerationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("model %s: %s (status %d): %v", e.Model, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("model %s: %s: %v", e.Model, e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// ExhaustedError is returned when every candidate model failed.
// It lists the candidates in the order they were tried.
type ExhaustedError struct {
	Attempted []string
	Last      error
}

func (e *ExhaustedError) Error() string {
	tried := "none"
	if len(e.Attempted) > 0 {
		tried = strings.Join(e.Attempted, ", ")
	}
	return fmt.Sprintf("no models available, tried: %s; last error: %v", tried, e.Last)
}

func (e *ExhaustedError) Is(target error) bool {
	return target == ErrUpstreamExhausted
}

func (e *ExhaustedError) Unwrap() error {
	return e.Last
}

// Classify wraps err in a GenerationError with a kind derived from the HTTP
// status and the error text. An error that is already classified is returned
// unchanged.
func Classify(model string, err error) *GenerationError {
	if err == nil {
		return nil
	}

	var genErr *GenerationError
	if errors.As(err, &genErr) {
		if genErr.Model == "" {
			genErr.Model = model
		}
		return genErr
	}

	ge := &GenerationError{Model: model, Kind: KindTransport, Err: err}

	var blocked *genai.BlockedError
	switch {
	case errors.Is(err, ErrEmptyResponse):
		ge.Kind = KindEmptyResponse
		return ge
	case errors.As(err, &blocked):
		ge.Kind = KindBlocked
		return ge
	case errors.Is(err, context.DeadlineExceeded):
		ge.Kind = KindTimeout
		return ge
	}

	msg := strings.ToLower(err.Error())

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		ge.StatusCode = apiErr.Code
		msg = strings.ToLower(apiErr.Message + " " + msg)
		switch apiErr.Code {
		case http.StatusTooManyRequests:
			ge.Kind = KindQuota
			if strings.Contains(msg, "billing") {
				ge.Kind = KindBilling
			}
			return ge
		case http.StatusPaymentRequired:
			ge.Kind = KindBilling
			return ge
		case http.StatusNotFound:
			ge.Kind = KindUnsupportedModel
			return ge
		case http.StatusRequestTimeout, http.StatusGatewayTimeout:
			ge.Kind = KindTimeout
			return ge
		}
	}

	switch {
	case strings.Contains(msg, "billing"):
		ge.Kind = KindBilling
	case strings.Contains(msg, "quota"),
		strings.Contains(msg, "resource_exhausted"),
		strings.Contains(msg, "resource exhausted"),
		strings.Contains(msg, "rate limit"):
		ge.Kind = KindQuota
	case strings.Contains(msg, "not found"),
		strings.Contains(msg, "not supported"),
		strings.Contains(msg, "unsupported"):
		ge.Kind = KindUnsupportedModel
	case strings.Contains(msg, "deadline exceeded"),
		strings.Contains(msg, "timeout"),
		strings.Contains(msg, "timed out"):
		ge.Kind = KindTimeout
	}
	return ge
}
