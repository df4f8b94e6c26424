package nftoken

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Collection{}, migration.NoModification)
	migration.MustRegister(1, &Token{}, migration.NoModification)
	migration.MustRegister(1, &OperatorApproval{}, migration.NoModification)
}

var _ orm.CloneableData = (*Collection)(nil)

func (c *Collection) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := c.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if c.Name == "" {
		return errors.Wrap(errors.ErrEmpty, "name")
	}
	return nil
}

func (c *Collection) Copy() orm.CloneableData {
	return &Collection{
		Metadata: c.Metadata.Copy(),
		Owner:    c.Owner.Clone(),
		Name:     c.Name,
	}
}

var _ orm.CloneableData = (*Token)(nil)

func (t *Token) Validate() error {
	if err := t.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(t.Collection) == 0 {
		return errors.Wrap(errors.ErrEmpty, "collection")
	}
	if len(t.TokenId) == 0 {
		return errors.Wrap(errors.ErrEmpty, "token id")
	}
	if err := t.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return nil
}

func (t *Token) Copy() orm.CloneableData {
	return &Token{
		Metadata:   t.Metadata.Copy(),
		Collection: append([]byte(nil), t.Collection...),
		TokenId:    append([]byte(nil), t.TokenId...),
		Owner:      t.Owner.Clone(),
	}
}

var _ orm.CloneableData = (*OperatorApproval)(nil)

func (a *OperatorApproval) Validate() error {
	if err := a.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return nil
}

func (a *OperatorApproval) Copy() orm.CloneableData {
	return &OperatorApproval{
		Metadata:   a.Metadata.Copy(),
		ApprovedAt: a.ApprovedAt,
	}
}

// tokenKey is the raw store key of a token. Token IDs are unique only
// within their collection, so the key is the concatenation of both.
func tokenKey(collection, tokenID []byte) []byte {
	key := make([]byte, 0, len(collection)+len(tokenID))
	key = append(key, collection...)
	return append(key, tokenID...)
}

// approvalKey is the raw store key of an operator approval. Keying by the
// granting owner makes an approval void as soon as the token changes
// hands.
func approvalKey(collection []byte, owner, operator weave.Address) []byte {
	key := make([]byte, 0, len(collection)+len(owner)+len(operator))
	key = append(key, collection...)
	key = append(key, owner...)
	return append(key, operator...)
}

// NewCollectionBucket returns a bucket for keeping collections, keyed by a
// sequence assigned ID.
func NewCollectionBucket() orm.ModelBucket {
	b := orm.NewModelBucket("nftcol", &Collection{},
		orm.WithIDSequence(collectionSeq),
		orm.WithIndex("owner", idxCollectionOwner, false),
	)
	return migration.NewModelBucket("nftoken", b)
}

var collectionSeq = orm.NewSequence("nftoken", "collection")

// NewTokenBucket returns a bucket for keeping tokens, keyed by collection
// and token ID.
func NewTokenBucket() orm.ModelBucket {
	b := orm.NewModelBucket("nft", &Token{},
		orm.WithIndex("owner", idxTokenOwner, false),
	)
	return migration.NewModelBucket("nftoken", b)
}

// NewApprovalBucket returns a bucket for keeping operator approvals, keyed
// by collection, owner and operator.
func NewApprovalBucket() orm.ModelBucket {
	b := orm.NewModelBucket("nftappr", &OperatorApproval{})
	return migration.NewModelBucket("nftoken", b)
}

func idxCollectionOwner(obj orm.Object) ([]byte, error) {
	c, err := asCollection(obj)
	if err != nil {
		return nil, err
	}
	return c.Owner, nil
}

func idxTokenOwner(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	t, ok := obj.Value().(*Token)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Token")
	}
	return t.Owner, nil
}

func asCollection(obj orm.Object) (*Collection, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	c, ok := obj.Value().(*Collection)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Collection")
	}
	return c, nil
}
