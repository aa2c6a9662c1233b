// Package lob defines the large-object locator accessor.
//
// A locator is a handle to a payload that may live out of row. The comparison
// engine reads payloads only through Locator.Payload and treats any failure as
// an incomparable operand.
package lob

import "errors"

// ErrNoPayload is returned by locators that have nothing to hand back.
var ErrNoPayload = errors.New("lob: locator has no payload")

// Locator gives access to a large object's bytes.
type Locator interface {
	Payload() ([]byte, error)
}

// Inline is a locator whose payload is held in row.
type Inline []byte

// Payload returns the inline bytes.
func (l Inline) Payload() ([]byte, error) {
	if l == nil {
		return nil, ErrNoPayload
	}
	return l, nil
}

// Func adapts a fetch function to the Locator interface.
// Used for out-of-row payloads fetched on demand.
type Func func() ([]byte, error)

// Payload calls f.
func (f Func) Payload() ([]byte, error) {
	return f()
}

// Failing is a locator that always reports Err.
// A nil Err reports ErrNoPayload.
type Failing struct {
	Err error
}

// Payload returns the configured error.
func (l Failing) Payload() ([]byte, error) {
	if l.Err == nil {
		return nil, ErrNoPayload
	}
	return nil, l.Err
}
