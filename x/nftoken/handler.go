package nftoken

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
)

const (
	createCollectionCost int64 = 100
	issueTokenCost       int64 = 100
	transferTokenCost    int64 = 100
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r weave.Registry, auth x.Authenticator) {
	r = migration.SchemaMigratingRegistry("nftoken", r)

	collections := NewCollectionBucket()
	tokens := NewTokenBucket()
	approvals := NewApprovalBucket()

	r.Handle(&CreateCollectionMsg{}, CreateCollectionHandler{
		auth:        auth,
		collections: collections,
	})
	r.Handle(&IssueTokenMsg{}, IssueTokenHandler{
		auth:        auth,
		collections: collections,
		tokens:      tokens,
	})
	r.Handle(&TransferTokenMsg{}, TransferTokenHandler{
		auth:      auth,
		tokens:    tokens,
		approvals: approvals,
	})
	r.Handle(&ApproveOperatorMsg{}, ApproveOperatorHandler{
		auth:        auth,
		collections: collections,
		approvals:   approvals,
	})
	r.Handle(&RevokeOperatorMsg{}, RevokeOperatorHandler{
		auth:      auth,
		approvals: approvals,
	})
}

// RegisterQuery will register this bucket as "/nftcollections", "/nfts"
// and "/nftapprovals".
func RegisterQuery(qr weave.QueryRouter) {
	NewCollectionBucket().Register("nftcollections", qr)
	NewTokenBucket().Register("nfts", qr)
	NewApprovalBucket().Register("nftapprovals", qr)
}

// CreateCollectionHandler will register a new collection owned by the main
// transaction signer.
type CreateCollectionHandler struct {
	auth        x.Authenticator
	collections orm.ModelBucket
}

var _ weave.Handler = CreateCollectionHandler{}

func (h CreateCollectionHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: createCollectionCost}, nil
}

func (h CreateCollectionHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	collection := &Collection{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    owner,
		Name:     msg.Name,
	}
	key, err := h.collections.Put(db, nil, collection)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store collection")
	}
	return &weave.DeliverResult{Data: key}, nil
}

func (h CreateCollectionHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateCollectionMsg, weave.Address, error) {
	var msg CreateCollectionMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	signer := x.AnySigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	return &msg, signer.Address(), nil
}

// IssueTokenHandler will mint a token into a collection. Only the
// collection owner can issue and each token ID can be used once.
type IssueTokenHandler struct {
	auth        x.Authenticator
	collections orm.ModelBucket
	tokens      orm.ModelBucket
}

var _ weave.Handler = IssueTokenHandler{}

func (h IssueTokenHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: issueTokenCost}, nil
}

func (h IssueTokenHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, collection, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	owner := msg.Owner
	if len(owner) == 0 {
		owner = collection.Owner
	}
	token := &Token{
		Metadata:   &weave.Metadata{Schema: 1},
		Collection: msg.Collection,
		TokenId:    msg.TokenId,
		Owner:      owner,
	}
	key := tokenKey(msg.Collection, msg.TokenId)
	if _, err := h.tokens.Put(db, key, token); err != nil {
		return nil, errors.Wrap(err, "cannot store token")
	}
	return &weave.DeliverResult{Data: key}, nil
}

func (h IssueTokenHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*IssueTokenMsg, *Collection, error) {
	var msg IssueTokenMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var collection Collection
	if err := h.collections.One(db, msg.Collection, &collection); err != nil {
		return nil, nil, errors.Wrap(err, "collection")
	}
	if !h.auth.HasAddress(ctx, collection.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the collection owner can issue")
	}
	switch err := h.tokens.Has(db, tokenKey(msg.Collection, msg.TokenId)); {
	case err == nil:
		return nil, nil, errors.Wrap(errors.ErrDuplicate, "token already issued")
	case errors.ErrNotFound.Is(err):
		// All good, the ID is free.
	default:
		return nil, nil, errors.Wrap(err, "cannot check token")
	}
	return &msg, &collection, nil
}

// TransferTokenHandler will move a token to a new owner. The signer must
// be the current owner or an operator approved by the current owner.
type TransferTokenHandler struct {
	auth      x.Authenticator
	tokens    orm.ModelBucket
	approvals orm.ModelBucket
}

var _ weave.Handler = TransferTokenHandler{}

func (h TransferTokenHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: transferTokenCost}, nil
}

func (h TransferTokenHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, token, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	token.Owner = msg.To
	key := tokenKey(msg.Collection, msg.TokenId)
	if _, err := h.tokens.Put(db, key, token); err != nil {
		return nil, errors.Wrap(err, "cannot store token")
	}
	return &weave.DeliverResult{}, nil
}

func (h TransferTokenHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*TransferTokenMsg, *Token, error) {
	var msg TransferTokenMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var token Token
	if err := h.tokens.One(db, tokenKey(msg.Collection, msg.TokenId), &token); err != nil {
		return nil, nil, errors.Wrap(err, "token")
	}
	if h.auth.HasAddress(ctx, token.Owner) {
		return &msg, &token, nil
	}
	signer := x.AnySigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "signature required")
	}
	var approval OperatorApproval
	key := approvalKey(msg.Collection, token.Owner, signer.Address())
	switch err := h.approvals.One(db, key, &approval); {
	case err == nil:
		return &msg, &token, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "not the owner or an approved operator")
	default:
		return nil, nil, errors.Wrap(err, "cannot check approval")
	}
}

// ApproveOperatorHandler will grant an operator transfer rights over all of
// the signers tokens within a collection.
type ApproveOperatorHandler struct {
	auth        x.Authenticator
	collections orm.ModelBucket
	approvals   orm.ModelBucket
}

var _ weave.Handler = ApproveOperatorHandler{}

func (h ApproveOperatorHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h ApproveOperatorHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	approval := &OperatorApproval{
		Metadata:   &weave.Metadata{Schema: 1},
		ApprovedAt: weave.AsUnixTime(now),
	}
	key := approvalKey(msg.Collection, owner, msg.Operator)
	if _, err := h.approvals.Put(db, key, approval); err != nil {
		return nil, errors.Wrap(err, "cannot store approval")
	}
	return &weave.DeliverResult{Data: key}, nil
}

func (h ApproveOperatorHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ApproveOperatorMsg, weave.Address, error) {
	var msg ApproveOperatorMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if err := h.collections.Has(db, msg.Collection); err != nil {
		return nil, nil, errors.Wrap(err, "collection")
	}
	signer := x.AnySigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	owner := signer.Address()
	if msg.Operator.Equals(owner) {
		return nil, nil, errors.Wrap(errors.ErrInput, "cannot approve self")
	}
	return &msg, owner, nil
}

// RevokeOperatorHandler will withdraw an approval granted by the signer.
type RevokeOperatorHandler struct {
	auth      x.Authenticator
	approvals orm.ModelBucket
}

var _ weave.Handler = RevokeOperatorHandler{}

func (h RevokeOperatorHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h RevokeOperatorHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	key := approvalKey(msg.Collection, owner, msg.Operator)
	if err := h.approvals.Delete(db, key); err != nil {
		return nil, errors.Wrap(err, "cannot delete approval")
	}
	return &weave.DeliverResult{}, nil
}

func (h RevokeOperatorHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RevokeOperatorMsg, weave.Address, error) {
	var msg RevokeOperatorMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	signer := x.AnySigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	return &msg, signer.Address(), nil
}
