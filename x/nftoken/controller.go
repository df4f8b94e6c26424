package nftoken

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
)

// Controller exposes the token ledger to other extensions without routing
// messages through them. The marketplace uses it to resolve ownership and
// to move sold tokens.
type Controller struct {
	tokens    orm.ModelBucket
	approvals orm.ModelBucket
}

// NewController returns a controller operating on the token buckets of
// this package.
func NewController() Controller {
	return Controller{
		tokens:    NewTokenBucket(),
		approvals: NewApprovalBucket(),
	}
}

// TokenOwner returns the current owner of a token, or a nil address when
// the token does not exist.
func (c Controller) TokenOwner(db weave.ReadOnlyKVStore, collection, tokenID []byte) (weave.Address, error) {
	var token Token
	switch err := c.tokens.One(db, tokenKey(collection, tokenID), &token); {
	case err == nil:
		return token.Owner, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, errors.Wrap(err, "cannot load token")
	}
}

// IsApprovedForAll returns whether the owner granted the operator transfer
// rights over all of their tokens within the collection.
func (c Controller) IsApprovedForAll(db weave.ReadOnlyKVStore, collection []byte, owner, operator weave.Address) (bool, error) {
	var approval OperatorApproval
	switch err := c.approvals.One(db, approvalKey(collection, owner, operator), &approval); {
	case err == nil:
		return true, nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, errors.Wrap(err, "cannot load approval")
	}
}

// Transfer moves a token to a new owner on behalf of the operator. The
// operator must be the current owner or approved by the current owner at
// the time of the call.
func (c Controller) Transfer(db weave.KVStore, collection, tokenID []byte, operator, to weave.Address) error {
	var token Token
	key := tokenKey(collection, tokenID)
	if err := c.tokens.One(db, key, &token); err != nil {
		return errors.Wrap(err, "token")
	}
	if !operator.Equals(token.Owner) {
		ok, err := c.IsApprovedForAll(db, collection, token.Owner, operator)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Wrap(errors.ErrUnauthorized, "operator is not approved by the owner")
		}
	}
	token.Owner = to
	if _, err := c.tokens.Put(db, key, &token); err != nil {
		return errors.Wrap(err, "cannot store token")
	}
	return nil
}
