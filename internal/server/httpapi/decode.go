package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/spende/internal/common"
)

const maxBodyBytes = 1 << 20

// bodyError is a request body that could not be turned into the expected
// shape. msg is shown to the client.
type bodyError struct {
	msg string
}

func (e *bodyError) Error() string { return "invalid body: " + e.msg }
func (e *bodyError) Unwrap() error { return common.ErrInvalidBody }

// validator is implemented by request types with required fields.
type validator interface {
	validate() error
}

// decodeBody reads a single JSON object into dst, rejecting unknown fields
// and trailing data, then runs dst's validation if it has one.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return &bodyError{"request body is empty"}
		}
		return &bodyError{err.Error()}
	}
	if dec.More() {
		return &bodyError{"request body must contain a single JSON object"}
	}

	if v, ok := dst.(validator); ok {
		if err := v.validate(); err != nil {
			return &bodyError{err.Error()}
		}
	}
	return nil
}

func missingField(name string) error {
	return fmt.Errorf("missing field `%s`", name)
}
