package genai

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
var (
	// ErrNoCredential is returned when no API key is available.
	ErrNoCredential = errors.New("genai: no credential")

	// ErrNoPayload is returned when a response carries neither an image
	// nor SVG markup.
	ErrNoPayload = errors.New("genai: response has no image payload")

	// ErrSuperseded is returned by Pipeline.Generate when a newer request
	// replaced this one before it finished.
	ErrSuperseded = errors.New("genai: superseded by a newer request")
)

// Kind classifies a service failure by how a user interface reacts to it.
type Kind uint8

const (
	// KindServiceError is any failure not covered by another kind.
	KindServiceError Kind = iota

	// KindInvalidCredential means the stored key should be discarded and
	// the user asked for a new one.
	KindInvalidCredential

	// KindQuotaExceeded means the user should retry later. There is no
	// automatic retry.
	KindQuotaExceeded

	// KindMalformedResponse means the service answered without a usable
	// image or SVG payload.
	KindMalformedResponse

	// KindAnalysisError means an uploaded image could not be described.
	KindAnalysisError
)

func (k Kind) String() string {
	switch k {
	case KindServiceError:
		return "service error"
	case KindInvalidCredential:
		return "invalid credential"
	case KindQuotaExceeded:
		return "quota exceeded"
	case KindMalformedResponse:
		return "malformed response"
	case KindAnalysisError:
		return "analysis error"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Error is a classified service failure.
type Error struct {
	Op   string // operation, e.g. "generate vector"
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "genai: " + e.Op + ": " + e.Kind.String()
	}
	return "genai: " + e.Op + ": " + e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of the first *Error in err's chain, or
// KindServiceError when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindServiceError
}

// classify maps an HTTP status and error text to a Kind.
func classify(status int, msg string) Kind {
	m := strings.ToLower(msg)
	switch {
	case status == 401 || status == 403,
		strings.Contains(m, "api key not valid"),
		strings.Contains(m, "permission"),
		strings.Contains(m, "invalid api key"):
		return KindInvalidCredential
	case status == 429,
		strings.Contains(m, "quota"),
		strings.Contains(m, "429"):
		return KindQuotaExceeded
	default:
		return KindServiceError
	}
}
