package devicemanager

import (
	"errors"
)

var (
	// ErrMissingMAC rejects entities without a source MAC; the normalizer
	// should have dropped these already.
	ErrMissingMAC = errors.New("entity has no MAC address")

	// ErrAmbiguousIdentity reports a data-model invariant violation: an
	// entity's identity projection resolved to more than one device.
	ErrAmbiguousIdentity = errors.New("entity identity maps to multiple devices")

	errNilEntity = errors.New("nil entity")
)
