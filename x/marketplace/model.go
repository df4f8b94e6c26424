package marketplace

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &SellOffer{}, migration.NoModification)
	migration.MustRegister(1, &Bid{}, migration.NoModification)
	migration.MustRegister(1, &CollectionInfo{}, migration.NoModification)
}

var _ orm.CloneableData = (*SellOffer)(nil)

func (o *SellOffer) Validate() error {
	if err := o.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(o.Collection) == 0 {
		return errors.Wrap(errors.ErrEmpty, "collection")
	}
	if len(o.TokenId) == 0 {
		return errors.Wrap(errors.ErrEmpty, "token id")
	}
	if err := o.Seller.Validate(); err != nil {
		return errors.Wrap(err, "seller")
	}
	if !o.Price.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "price must be positive")
	}
	if err := o.Price.Validate(); err != nil {
		return errors.Wrap(err, "price")
	}
	if o.ExpiresAt == 0 {
		return errors.Wrap(errors.ErrInput, "expiration is required")
	}
	if err := o.ExpiresAt.Validate(); err != nil {
		return errors.Wrap(err, "expires at")
	}
	return nil
}

func (o *SellOffer) Copy() orm.CloneableData {
	return &SellOffer{
		Metadata:   o.Metadata.Copy(),
		Collection: append([]byte(nil), o.Collection...),
		TokenId:    append([]byte(nil), o.TokenId...),
		Seller:     o.Seller.Clone(),
		Price:      o.Price,
		CreatedAt:  o.CreatedAt,
		ExpiresAt:  o.ExpiresAt,
		CronTaskId: append([]byte(nil), o.CronTaskId...),
	}
}

var _ orm.CloneableData = (*Bid)(nil)

func (b *Bid) Validate() error {
	if err := b.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := b.Bidder.Validate(); err != nil {
		return errors.Wrap(err, "bidder")
	}
	if !b.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "amount must be positive")
	}
	if err := b.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	return nil
}

func (b *Bid) Copy() orm.CloneableData {
	return &Bid{
		Metadata:  b.Metadata.Copy(),
		Bidder:    b.Bidder.Clone(),
		Amount:    b.Amount,
		CreatedAt: b.CreatedAt,
	}
}

var _ orm.CloneableData = (*CollectionInfo)(nil)

func (c *CollectionInfo) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(c.Collection) == 0 {
		return errors.Wrap(errors.ErrEmpty, "collection")
	}
	if c.Name == "" {
		return errors.Wrap(errors.ErrEmpty, "name")
	}
	return nil
}

func (c *CollectionInfo) Copy() orm.CloneableData {
	return &CollectionInfo{
		Metadata:    c.Metadata.Copy(),
		Collection:  append([]byte(nil), c.Collection...),
		Name:        c.Name,
		Description: c.Description,
		Website:     c.Website,
		ImageUrl:    c.ImageUrl,
	}
}

// offerKey is the raw store key of a sell offer. The collection ID is
// length prefixed, so two different (collection, token) pairs can never
// map to the same key no matter how the ID lengths line up. Collection
// IDs are capped at maxIDSize and always fit a single length byte. Offer
// uniqueness per (collection, token) pair is the uniqueness of this key.
func offerKey(collection, tokenID []byte) []byte {
	key := make([]byte, 0, 1+len(collection)+len(tokenID))
	key = append(key, byte(len(collection)))
	key = append(key, collection...)
	return append(key, tokenID...)
}

// bidKey is the raw store key of a bid. It extends the offer key with the
// bidder address, so that each bidder holds exactly one slot per token and
// all bids on a token share the offer key prefix.
func bidKey(collection, tokenID []byte, bidder weave.Address) []byte {
	return append(offerKey(collection, tokenID), bidder...)
}

// NewOfferBucket returns a bucket for keeping sell offers, keyed by
// collection and token ID.
func NewOfferBucket() orm.ModelBucket {
	b := orm.NewModelBucket("offer", &SellOffer{})
	return migration.NewModelBucket("marketplace", b)
}

// NewBidBucket returns a bucket for keeping bids. The "offer" index groups
// bids by the offer key so that all bids on a token can be enumerated when
// the offer is settled or removed.
func NewBidBucket() orm.ModelBucket {
	b := orm.NewModelBucket("bid", &Bid{},
		orm.WithIndex("offer", idxBidOffer, false),
	)
	return migration.NewModelBucket("marketplace", b)
}

// NewCollectionInfoBucket returns a bucket for keeping the collection
// registry, keyed by collection ID.
func NewCollectionInfoBucket() orm.ModelBucket {
	b := orm.NewModelBucket("collinfo", &CollectionInfo{})
	return migration.NewModelBucket("marketplace", b)
}

// idxBidOffer indexes a bid by the offer it belongs to. The bid key is the
// offer key followed by the bidder address, so the offer key is the bid
// key with the trailing address cut off.
func idxBidOffer(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	if _, ok := obj.Value().(*Bid); !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Bid")
	}
	key := obj.Key()
	if len(key) <= weave.AddressLength {
		return nil, errors.Wrap(errors.ErrHuman, "bid key too short")
	}
	return key[:len(key)-weave.AddressLength], nil
}
