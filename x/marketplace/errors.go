package marketplace

import (
	"github.com/iov-one/weave/errors"
)

var (
	// ErrUnknownCollection is returned when an offer or a bid references
	// a collection that is not present in the marketplace registry.
	ErrUnknownCollection = errors.Register(1100, "unknown collection")

	// ErrNotApproved is returned when the marketplace operator is not
	// approved to transfer the token being listed.
	ErrNotApproved = errors.Register(1101, "operator not approved")
)
