package marketplace

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"
)

const (
	createOfferCost  int64 = 300
	releaseOfferCost int64 = 0
	buyOfferCost     int64 = 100
	placeBidCost     int64 = 100
	cancelBidCost    int64 = 0
	acceptBidCost    int64 = 100
	adminOpCost      int64 = 0
)

// OperatorCondition is the marketplace identity that acts on tokens.
// Sellers must approve this condition as an operator in the token ledger
// before listing, and scheduled expiration tasks authenticate with it.
func OperatorCondition() weave.Condition {
	return weave.NewCondition("marketplace", "operator", []byte("tokens"))
}

// OperatorAddr is the address of the marketplace operator condition.
func OperatorAddr() weave.Address {
	return OperatorCondition().Address()
}

// EscrowCondition is the marketplace account holding all bid deposits.
func EscrowCondition() weave.Condition {
	return weave.NewCondition("marketplace", "escrow", []byte("bids"))
}

// EscrowAddr is the address of the bid escrow account.
func EscrowAddr() weave.Address {
	return EscrowCondition().Address()
}

// RegisterRoutes will instantiate and register all handlers in this
// package that can be reached through a signed transaction.
func RegisterRoutes(
	r weave.Registry,
	auth x.Authenticator,
	ctrl cash.Controller,
	ledger TokenLedger,
	scheduler weave.Scheduler,
) {
	r = migration.SchemaMigratingRegistry("marketplace", r)
	offers := NewOfferBucket()
	bids := NewBidBucket()
	collections := NewCollectionInfoBucket()

	r.Handle(&CreateOfferMsg{}, CreateOfferHandler{
		auth:        auth,
		offers:      offers,
		collections: collections,
		ledger:      ledger,
		scheduler:   scheduler,
	})
	r.Handle(&ReleaseOfferMsg{}, ReleaseOfferHandler{
		auth:      auth,
		offers:    offers,
		bids:      bids,
		ledger:    ledger,
		ctrl:      ctrl,
		scheduler: scheduler,
	})
	r.Handle(&BuyOfferMsg{}, BuyOfferHandler{
		auth:      auth,
		offers:    offers,
		bids:      bids,
		ledger:    ledger,
		ctrl:      ctrl,
		scheduler: scheduler,
	})
	r.Handle(&PlaceBidMsg{}, PlaceBidHandler{
		auth:        auth,
		offers:      offers,
		bids:        bids,
		collections: collections,
		ctrl:        ctrl,
	})
	r.Handle(&CancelBidMsg{}, CancelBidHandler{
		auth: auth,
		bids: bids,
		ctrl: ctrl,
	})
	r.Handle(&AcceptBidMsg{}, AcceptBidHandler{
		auth:      auth,
		offers:    offers,
		bids:      bids,
		ledger:    ledger,
		ctrl:      ctrl,
		scheduler: scheduler,
	})

	r.Handle(&RegisterCollectionMsg{}, RegisterCollectionHandler{
		auth:        auth,
		collections: collections,
	})
	r.Handle(&DeregisterCollectionMsg{}, DeregisterCollectionHandler{
		auth:        auth,
		collections: collections,
	})
	r.Handle(&DeleteOfferMsg{}, DeleteOfferHandler{
		auth:      auth,
		offers:    offers,
		bids:      bids,
		ctrl:      ctrl,
		scheduler: scheduler,
	})
	r.Handle(&DeleteBidMsg{}, DeleteBidHandler{
		auth: auth,
		bids: bids,
		ctrl: ctrl,
	})
	r.Handle(&TransferFundsMsg{}, TransferFundsHandler{
		auth: auth,
		ctrl: ctrl,
	})
	r.Handle(&UpdateConfigurationMsg{}, gconf.NewUpdateConfigurationHandler(
		"marketplace", &Configuration{}, auth, migration.CurrentAdmin))
}

// RegisterCronRoutes registers the handlers that only the cron ticker is
// allowed to execute. ExpireOfferMsg is deliberately absent from the main
// router so that no transaction can carry it.
func RegisterCronRoutes(
	r weave.Registry,
	auth x.Authenticator,
	ctrl cash.Controller,
) {
	offers := NewOfferBucket()
	bids := NewBidBucket()

	r.Handle(&ExpireOfferMsg{}, ExpireOfferHandler{
		auth:   auth,
		offers: offers,
		bids:   bids,
		ctrl:   ctrl,
	})
}

// RegisterQuery will register marketplace buckets for queries.
func RegisterQuery(qr weave.QueryRouter) {
	NewOfferBucket().Register("offers", qr)
	NewBidBucket().Register("bids", qr)
	NewCollectionInfoBucket().Register("collections", qr)
}

// CreateOfferHandler lists a token for sale and schedules the offer
// expiration.
type CreateOfferHandler struct {
	auth        x.Authenticator
	offers      orm.ModelBucket
	collections orm.ModelBucket
	ledger      TokenLedger
	scheduler   weave.Scheduler
}

var _ weave.Handler = CreateOfferHandler{}

func (h CreateOfferHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: createOfferCost}, nil
}

func (h CreateOfferHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, seller, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	createdAt := weave.AsUnixTime(now)
	expiresAt := weave.AsUnixTime(now.Add(msg.ExpireIn.Duration()))

	taskID, err := h.scheduler.Schedule(db, expiresAt.Time(),
		[]weave.Condition{OperatorCondition()},
		&ExpireOfferMsg{
			Metadata:   &weave.Metadata{Schema: 1},
			Collection: msg.Collection,
			TokenId:    msg.TokenId,
		})
	if err != nil {
		return nil, errors.Wrap(err, "cannot schedule expiration")
	}

	offer := &SellOffer{
		Metadata:   &weave.Metadata{Schema: 1},
		Collection: msg.Collection,
		TokenId:    msg.TokenId,
		Seller:     seller,
		Price:      msg.Price,
		CreatedAt:  createdAt,
		ExpiresAt:  expiresAt,
		CronTaskId: taskID,
	}
	key := offerKey(msg.Collection, msg.TokenId)
	if _, err := h.offers.Put(db, key, offer); err != nil {
		return nil, errors.Wrap(err, "cannot store offer")
	}
	return &weave.DeliverResult{Data: key}, nil
}

func (h CreateOfferHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateOfferMsg, weave.Address, error) {
	var msg CreateOfferMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	if err := registeredCollection(db, h.collections, msg.Collection); err != nil {
		return nil, nil, err
	}

	key := offerKey(msg.Collection, msg.TokenId)
	switch err := h.offers.Has(db, key); {
	case err == nil:
		return nil, nil, errors.Wrap(errors.ErrDuplicate, "token already listed")
	case errors.ErrNotFound.Is(err):
		// No offer yet. Continue.
	default:
		return nil, nil, errors.Wrap(err, "cannot check offer existence")
	}

	owner, err := h.ledger.TokenOwner(db, msg.Collection, msg.TokenId)
	if err != nil {
		return nil, nil, errors.Wrap(err, "token owner")
	}
	if owner == nil {
		return nil, nil, errors.Wrap(errors.ErrNotFound, "token")
	}
	if !h.auth.HasAddress(ctx, owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the token owner can list")
	}
	approved, err := h.ledger.IsApprovedForAll(db, msg.Collection, owner, OperatorAddr())
	if err != nil {
		return nil, nil, errors.Wrap(err, "approval check")
	}
	if !approved {
		return nil, nil, errors.Wrap(ErrNotApproved, "marketplace operator")
	}
	return &msg, owner, nil
}

// ReleaseOfferHandler cancels an offer on demand of its creator.
type ReleaseOfferHandler struct {
	auth      x.Authenticator
	offers    orm.ModelBucket
	bids      orm.ModelBucket
	ledger    TokenLedger
	ctrl      cash.Controller
	scheduler weave.Scheduler
}

var _ weave.Handler = ReleaseOfferHandler{}

func (h ReleaseOfferHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: releaseOfferCost}, nil
}

func (h ReleaseOfferHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, offer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := removeOffer(db, h.offers, h.bids, h.ctrl, h.scheduler, msg.Collection, msg.TokenId, offer, nil); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h ReleaseOfferHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ReleaseOfferMsg, *SellOffer, error) {
	var msg ReleaseOfferMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var offer SellOffer
	if err := h.offers.One(db, offerKey(msg.Collection, msg.TokenId), &offer); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load offer")
	}
	if !h.auth.HasAddress(ctx, offer.Seller) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the offer creator can release")
	}
	// The creator must still own the token. An offer left behind by an
	// off-market transfer is removed by expiry or by the admin instead.
	owner, err := h.ledger.TokenOwner(db, msg.Collection, msg.TokenId)
	if err != nil {
		return nil, nil, errors.Wrap(err, "token owner")
	}
	if !offer.Seller.Equals(owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "offer creator no longer owns the token")
	}
	return &msg, &offer, nil
}

// BuyOfferHandler settles a purchase at the asking price.
type BuyOfferHandler struct {
	auth      x.Authenticator
	offers    orm.ModelBucket
	bids      orm.ModelBucket
	ledger    TokenLedger
	ctrl      cash.Controller
	scheduler weave.Scheduler
}

var _ weave.Handler = BuyOfferHandler{}

func (h BuyOfferHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: buyOfferCost}, nil
}

func (h BuyOfferHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, offer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	buyer := x.AnySigner(ctx, h.auth).Address()

	// Ownership is re-fetched at settlement time. The proceeds go to
	// whoever gives up the token now, not to the offer creator of
	// record.
	owner, err := h.ledger.TokenOwner(db, msg.Collection, msg.TokenId)
	if err != nil {
		return nil, errors.Wrap(err, "token owner")
	}
	if owner == nil {
		return nil, errors.Wrap(errors.ErrNotFound, "token")
	}
	if owner.Equals(buyer) {
		return nil, errors.Wrap(errors.ErrState, "buyer already owns the token")
	}

	// The ledger transfer is the first mutation. If the marketplace lost
	// its approval or the token moved, this fails and aborts the whole
	// purchase before any funds move.
	if err := h.ledger.Transfer(db, msg.Collection, msg.TokenId, OperatorAddr(), buyer); err != nil {
		return nil, errors.Wrap(err, "ledger transfer")
	}

	if err := settle(db, h.ctrl, buyer, owner, offer.Price); err != nil {
		return nil, err
	}

	if err := removeOffer(db, h.offers, h.bids, h.ctrl, h.scheduler, msg.Collection, msg.TokenId, offer, nil); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h BuyOfferHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*BuyOfferMsg, *SellOffer, error) {
	var msg BuyOfferMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if x.AnySigner(ctx, h.auth) == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "buyer signature required")
	}
	var offer SellOffer
	if err := h.offers.One(db, offerKey(msg.Collection, msg.TokenId), &offer); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load offer")
	}
	if weave.IsExpired(ctx, offer.ExpiresAt) {
		return nil, nil, errors.Wrapf(errors.ErrExpired, "offer expired %v", offer.ExpiresAt)
	}
	return &msg, &offer, nil
}

// PlaceBidHandler deposits a bid in the marketplace escrow.
type PlaceBidHandler struct {
	auth        x.Authenticator
	offers      orm.ModelBucket
	bids        orm.ModelBucket
	collections orm.ModelBucket
	ctrl        cash.Controller
}

var _ weave.Handler = PlaceBidHandler{}

func (h PlaceBidHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: placeBidCost}, nil
}

func (h PlaceBidHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	bidder := x.AnySigner(ctx, h.auth).Address()
	key := bidKey(msg.Collection, msg.TokenId, bidder)

	// A previous bid is refunded before the new deposit is taken, so a
	// bidder is never exposed for two deposits on the same token.
	var prev Bid
	switch err := h.bids.One(db, key, &prev); {
	case err == nil:
		if err := h.ctrl.MoveCoins(db, EscrowAddr(), bidder, prev.Amount); err != nil {
			return nil, errors.Wrap(err, "cannot refund previous bid")
		}
	case errors.ErrNotFound.Is(err):
		// First bid by this bidder.
	default:
		return nil, errors.Wrap(err, "cannot check previous bid")
	}

	if err := h.ctrl.MoveCoins(db, bidder, EscrowAddr(), msg.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot escrow deposit")
	}

	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	bid := &Bid{
		Metadata:  &weave.Metadata{Schema: 1},
		Bidder:    bidder,
		Amount:    msg.Amount,
		CreatedAt: weave.AsUnixTime(now),
	}
	if _, err := h.bids.Put(db, key, bid); err != nil {
		return nil, errors.Wrap(err, "cannot store bid")
	}
	return &weave.DeliverResult{Data: key}, nil
}

func (h PlaceBidHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*PlaceBidMsg, error) {
	var msg PlaceBidMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if x.AnySigner(ctx, h.auth) == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "bidder signature required")
	}
	if err := registeredCollection(db, h.collections, msg.Collection); err != nil {
		return nil, err
	}
	// Bids require a listed token. Expiration is not checked here; a bid
	// on an expired but still present offer is refunded when the expiry
	// task fires.
	if err := h.offers.Has(db, offerKey(msg.Collection, msg.TokenId)); err != nil {
		return nil, errors.Wrap(err, "offer")
	}
	return &msg, nil
}

// CancelBidHandler refunds and deletes the signer's own bid.
type CancelBidHandler struct {
	auth x.Authenticator
	bids orm.ModelBucket
	ctrl cash.Controller
}

var _ weave.Handler = CancelBidHandler{}

func (h CancelBidHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: cancelBidCost}, nil
}

func (h CancelBidHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	_, key, bid, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.MoveCoins(db, EscrowAddr(), bid.Bidder, bid.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot refund bid")
	}
	if err := h.bids.Delete(db, key); err != nil {
		return nil, errors.Wrap(err, "cannot delete bid")
	}
	return &weave.DeliverResult{}, nil
}

func (h CancelBidHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CancelBidMsg, []byte, *Bid, error) {
	var msg CancelBidMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	signer := x.AnySigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "bidder signature required")
	}
	key := bidKey(msg.Collection, msg.TokenId, signer.Address())
	var bid Bid
	if err := h.bids.One(db, key, &bid); err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot load bid")
	}
	return &msg, key, &bid, nil
}

// AcceptBidHandler sells the token to a chosen bidder at the bid amount.
type AcceptBidHandler struct {
	auth      x.Authenticator
	offers    orm.ModelBucket
	bids      orm.ModelBucket
	ledger    TokenLedger
	ctrl      cash.Controller
	scheduler weave.Scheduler
}

var _ weave.Handler = AcceptBidHandler{}

func (h AcceptBidHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: acceptBidCost}, nil
}

func (h AcceptBidHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, offer, bid, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	owner, err := h.ledger.TokenOwner(db, msg.Collection, msg.TokenId)
	if err != nil {
		return nil, errors.Wrap(err, "token owner")
	}
	if owner == nil {
		return nil, errors.Wrap(errors.ErrNotFound, "token")
	}

	if err := h.ledger.Transfer(db, msg.Collection, msg.TokenId, OperatorAddr(), bid.Bidder); err != nil {
		return nil, errors.Wrap(err, "ledger transfer")
	}

	// The accepted deposit already sits in the escrow, so the settlement
	// pays out of the escrow account. The winner is excluded from the
	// refund round below; their deposit became the proceeds.
	if err := settle(db, h.ctrl, EscrowAddr(), owner, bid.Amount); err != nil {
		return nil, err
	}

	if err := removeOffer(db, h.offers, h.bids, h.ctrl, h.scheduler, msg.Collection, msg.TokenId, offer, bid.Bidder); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h AcceptBidHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*AcceptBidMsg, *SellOffer, *Bid, error) {
	var msg AcceptBidMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	var offer SellOffer
	if err := h.offers.One(db, offerKey(msg.Collection, msg.TokenId), &offer); err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot load offer")
	}
	var bid Bid
	if err := h.bids.One(db, bidKey(msg.Collection, msg.TokenId, msg.Bidder), &bid); err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot load bid")
	}
	// Acceptance is the owner's decision, valid even past the offer
	// expiration as long as the expiry task has not fired yet.
	owner, err := h.ledger.TokenOwner(db, msg.Collection, msg.TokenId)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "token owner")
	}
	if owner == nil {
		return nil, nil, nil, errors.Wrap(errors.ErrNotFound, "token")
	}
	if !h.auth.HasAddress(ctx, owner) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the token owner can accept a bid")
	}
	return &msg, &offer, &bid, nil
}

// ExpireOfferHandler removes a stale offer. It is registered only in the
// cron router and every scheduled task carries the marketplace operator
// condition, which is verified here again.
type ExpireOfferHandler struct {
	auth   x.Authenticator
	offers orm.ModelBucket
	bids   orm.ModelBucket
	ctrl   cash.Controller
}

var _ weave.Handler = ExpireOfferHandler{}

func (h ExpireOfferHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h ExpireOfferHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	var offer SellOffer
	switch err := h.offers.One(db, offerKey(msg.Collection, msg.TokenId), &offer); {
	case err == nil:
		// Offer still present.
	case errors.ErrNotFound.Is(err):
		// The offer was bought, accepted or released before the task
		// fired. Nothing left to do.
		return &weave.DeliverResult{}, nil
	default:
		return nil, errors.Wrap(err, "cannot load offer")
	}

	if !weave.IsExpired(ctx, offer.ExpiresAt) {
		return nil, errors.Wrapf(errors.ErrState, "offer not expired %v", offer.ExpiresAt)
	}

	if err := resetBids(db, h.bids, h.ctrl, msg.Collection, msg.TokenId, nil); err != nil {
		return nil, err
	}
	if err := h.offers.Delete(db, offerKey(msg.Collection, msg.TokenId)); err != nil {
		return nil, errors.Wrap(err, "cannot delete offer")
	}
	return &weave.DeliverResult{}, nil
}

func (h ExpireOfferHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ExpireOfferMsg, error) {
	var msg ExpireOfferMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, OperatorAddr()) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "expiration is a system operation")
	}
	return &msg, nil
}

// RegisterCollectionHandler creates or updates a registry entry.
type RegisterCollectionHandler struct {
	auth        x.Authenticator
	collections orm.ModelBucket
}

var _ weave.Handler = RegisterCollectionHandler{}

func (h RegisterCollectionHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: adminOpCost}, nil
}

func (h RegisterCollectionHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	info := &CollectionInfo{
		Metadata:    &weave.Metadata{Schema: 1},
		Collection:  msg.Collection,
		Name:        msg.Name,
		Description: msg.Description,
		Website:     msg.Website,
		ImageUrl:    msg.ImageUrl,
	}
	if _, err := h.collections.Put(db, msg.Collection, info); err != nil {
		return nil, errors.Wrap(err, "cannot store collection info")
	}
	return &weave.DeliverResult{Data: msg.Collection}, nil
}

func (h RegisterCollectionHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RegisterCollectionMsg, error) {
	var msg RegisterCollectionMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := confOwnerSigned(ctx, db, h.auth); err != nil {
		return nil, err
	}
	return &msg, nil
}

// DeregisterCollectionHandler removes a registry entry. Existing offers
// and bids are left in place; they can still be settled or cancelled but
// no new ones can be created.
type DeregisterCollectionHandler struct {
	auth        x.Authenticator
	collections orm.ModelBucket
}

var _ weave.Handler = DeregisterCollectionHandler{}

func (h DeregisterCollectionHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: adminOpCost}, nil
}

func (h DeregisterCollectionHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.collections.Delete(db, msg.Collection); err != nil {
		return nil, errors.Wrap(err, "cannot delete collection info")
	}
	return &weave.DeliverResult{}, nil
}

func (h DeregisterCollectionHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*DeregisterCollectionMsg, error) {
	var msg DeregisterCollectionMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := confOwnerSigned(ctx, db, h.auth); err != nil {
		return nil, err
	}
	return &msg, nil
}

// DeleteOfferHandler force removes an offer, refunding all bids.
type DeleteOfferHandler struct {
	auth      x.Authenticator
	offers    orm.ModelBucket
	bids      orm.ModelBucket
	ctrl      cash.Controller
	scheduler weave.Scheduler
}

var _ weave.Handler = DeleteOfferHandler{}

func (h DeleteOfferHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: adminOpCost}, nil
}

func (h DeleteOfferHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, offer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := removeOffer(db, h.offers, h.bids, h.ctrl, h.scheduler, msg.Collection, msg.TokenId, offer, nil); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h DeleteOfferHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*DeleteOfferMsg, *SellOffer, error) {
	var msg DeleteOfferMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if err := confOwnerSigned(ctx, db, h.auth); err != nil {
		return nil, nil, err
	}
	var offer SellOffer
	if err := h.offers.One(db, offerKey(msg.Collection, msg.TokenId), &offer); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load offer")
	}
	return &msg, &offer, nil
}

// DeleteBidHandler force removes a single bid, refunding the bidder.
type DeleteBidHandler struct {
	auth x.Authenticator
	bids orm.ModelBucket
	ctrl cash.Controller
}

var _ weave.Handler = DeleteBidHandler{}

func (h DeleteBidHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: adminOpCost}, nil
}

func (h DeleteBidHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	_, key, bid, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.MoveCoins(db, EscrowAddr(), bid.Bidder, bid.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot refund bid")
	}
	if err := h.bids.Delete(db, key); err != nil {
		return nil, errors.Wrap(err, "cannot delete bid")
	}
	return &weave.DeliverResult{}, nil
}

func (h DeleteBidHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*DeleteBidMsg, []byte, *Bid, error) {
	var msg DeleteBidMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	if err := confOwnerSigned(ctx, db, h.auth); err != nil {
		return nil, nil, nil, err
	}
	key := bidKey(msg.Collection, msg.TokenId, msg.Bidder)
	var bid Bid
	if err := h.bids.One(db, key, &bid); err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot load bid")
	}
	return &msg, key, &bid, nil
}

// TransferFundsHandler moves coins out of the marketplace escrow. This is
// an emergency override: it can leave recorded bids without backing.
type TransferFundsHandler struct {
	auth x.Authenticator
	ctrl cash.Controller
}

var _ weave.Handler = TransferFundsHandler{}

func (h TransferFundsHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: adminOpCost}, nil
}

func (h TransferFundsHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.MoveCoins(db, EscrowAddr(), msg.Destination, msg.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot move funds")
	}
	return &weave.DeliverResult{}, nil
}

func (h TransferFundsHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*TransferFundsMsg, error) {
	var msg TransferFundsMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := confOwnerSigned(ctx, db, h.auth); err != nil {
		return nil, err
	}
	return &msg, nil
}

// registeredCollection fails with ErrUnknownCollection unless the
// collection is present in the registry.
func registeredCollection(db weave.KVStore, collections orm.ModelBucket, collection []byte) error {
	switch err := collections.Has(db, collection); {
	case err == nil:
		return nil
	case errors.ErrNotFound.Is(err):
		return errors.Wrapf(ErrUnknownCollection, "%X", collection)
	default:
		return errors.Wrap(err, "cannot check collection registry")
	}
}

// confOwnerSigned ensures the configured marketplace owner authorized the
// transaction.
func confOwnerSigned(ctx weave.Context, db weave.KVStore, auth x.Authenticator) error {
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	if !auth.HasAddress(ctx, conf.Owner) {
		return errors.Wrap(errors.ErrUnauthorized, "marketplace owner signature required")
	}
	return nil
}

// saleFee is the marketplace cut of a sale: floor(price * percent / 100).
func saleFee(price coin.Coin, percent uint32) (coin.Coin, error) {
	total, err := price.Multiply(int64(percent))
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "fee multiply")
	}
	fee, _, err := total.Divide(100)
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "fee divide")
	}
	return fee, nil
}

// settle pays a sale price from the source account: the fee share to the
// configuration owner and the rest to the seller. The two payouts always
// sum up to the full price.
func settle(db weave.KVStore, ctrl cash.Controller, source, seller weave.Address, price coin.Coin) error {
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	fee, err := saleFee(price, conf.FeePercent)
	if err != nil {
		return err
	}
	proceeds, err := price.Subtract(fee)
	if err != nil {
		return errors.Wrap(err, "proceeds")
	}
	if proceeds.IsPositive() {
		if err := ctrl.MoveCoins(db, source, seller, proceeds); err != nil {
			return errors.Wrap(err, "cannot pay seller")
		}
	}
	if fee.IsPositive() {
		if err := ctrl.MoveCoins(db, source, conf.Owner, fee); err != nil {
			return errors.Wrap(err, "cannot pay fee")
		}
	}
	return nil
}

// resetBids refunds and deletes every bid on the given token. The skip
// address, if set, is deleted without a refund; its deposit was consumed
// by the settlement.
func resetBids(db weave.KVStore, bids orm.ModelBucket, bank cash.CoinMover, collection, tokenID []byte, skip weave.Address) error {
	var all []*Bid
	keys, err := bids.ByIndex(db, "offer", offerKey(collection, tokenID), &all)
	if err != nil {
		return errors.Wrap(err, "cannot list bids")
	}
	for i, b := range all {
		if skip == nil || !b.Bidder.Equals(skip) {
			if err := bank.MoveCoins(db, EscrowAddr(), b.Bidder, b.Amount); err != nil {
				return errors.Wrapf(err, "cannot refund bid of %s", b.Bidder)
			}
		}
		if err := bids.Delete(db, keys[i]); err != nil {
			return errors.Wrap(err, "cannot delete bid")
		}
	}
	return nil
}

// removeOffer clears all bids, deletes the offer and cancels the pending
// expiration task. Used by every deletion path except the expiration task
// itself.
func removeOffer(
	db weave.KVStore,
	offers orm.ModelBucket,
	bids orm.ModelBucket,
	ctrl cash.Controller,
	scheduler weave.Scheduler,
	collection, tokenID []byte,
	offer *SellOffer,
	skipRefund weave.Address,
) error {
	if err := resetBids(db, bids, ctrl, collection, tokenID, skipRefund); err != nil {
		return err
	}
	if err := offers.Delete(db, offerKey(collection, tokenID)); err != nil {
		return errors.Wrap(err, "cannot delete offer")
	}
	// The scheduled task might have fired already (and found the offer
	// gone), so a missing task is not an error.
	if len(offer.CronTaskId) != 0 {
		if err := scheduler.Delete(db, offer.CronTaskId); err != nil && !errors.ErrNotFound.Is(err) {
			return errors.Wrap(err, "cannot cancel expiration task")
		}
	}
	return nil
}
