package marketplace

import (
	"github.com/iov-one/weave"
)

// TokenLedger is the token registry the marketplace trades against. The
// ledger is authoritative: handlers re-query ownership on every state
// transition and never cache the answers.
//
// Transfer must authorize the move against the current token state. Any
// error returned from Transfer aborts the settlement that requested it.
type TokenLedger interface {
	// TokenOwner returns the current owner of the token, or nil if the
	// token does not exist.
	TokenOwner(db weave.ReadOnlyKVStore, collection, tokenID []byte) (weave.Address, error)

	// IsApprovedForAll returns true if the operator is approved to
	// transfer all of the owner's tokens within the collection.
	IsApprovedForAll(db weave.ReadOnlyKVStore, collection []byte, owner, operator weave.Address) (bool, error)

	// Transfer moves the token to the destination address on behalf of
	// the operator.
	Transfer(db weave.KVStore, collection, tokenID []byte, operator, to weave.Address) error
}
