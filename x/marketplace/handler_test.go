package marketplace_test

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/nftmarket/x/marketplace"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"
)

var (
	blockNow = time.Now().UTC()
	collID   = []byte("kitties")
	tokID    = []byte("token-1")
)

const feePercent = 5

type testEnv struct {
	seller weave.Condition
	buyer  weave.Condition
	bidder weave.Condition
	loser  weave.Condition
	admin  weave.Condition

	ledger        *memLedger
	bank          cash.Bucket
	ctrl          cash.Controller
	authenticator *weavetest.CtxAuth
	router        *app.Router
	cronRouter    *app.Router
}

func newTestEnv() *testEnv {
	env := &testEnv{
		seller:        weavetest.NewCondition(),
		buyer:         weavetest.NewCondition(),
		bidder:        weavetest.NewCondition(),
		loser:         weavetest.NewCondition(),
		admin:         weavetest.NewCondition(),
		ledger:        newMemLedger(),
		bank:          cash.NewBucket(),
		authenticator: &weavetest.CtxAuth{Key: "auth"},
	}
	env.ctrl = cash.NewController(env.bank)
	auth := x.ChainAuth(env.authenticator)

	env.router = app.NewRouter()
	marketplace.RegisterRoutes(env.router, auth, env.ctrl, env.ledger, &weavetest.Cron{})
	env.cronRouter = app.NewRouter()
	marketplace.RegisterCronRoutes(env.cronRouter, auth, env.ctrl)
	return env
}

// newDB returns a store with the schema initialized, the marketplace
// configured with a 5% fee owned by admin and the test collection
// registered.
func (env *testEnv) newDB(t testing.TB) weave.CacheableKVStore {
	t.Helper()
	db := store.MemStore()
	migration.MustInitPkg(db, "marketplace", "cash")
	conf := marketplace.Configuration{
		Metadata:   &weave.Metadata{Schema: 1},
		Owner:      env.admin.Address(),
		FeePercent: feePercent,
	}
	assert.Nil(t, gconf.Save(db, "marketplace", &conf))
	info := &marketplace.CollectionInfo{
		Metadata:   &weave.Metadata{Schema: 1},
		Collection: collID,
		Name:       "Kitties",
	}
	_, err := marketplace.NewCollectionInfoBucket().Put(db, collID, info)
	assert.Nil(t, err)
	return db
}

func (env *testEnv) setBalance(t testing.TB, db weave.KVStore, addr weave.Address, c coin.Coin) {
	t.Helper()
	wallet, err := cash.WalletWith(addr, &c)
	assert.Nil(t, err)
	assert.Nil(t, env.bank.Save(db, wallet))
}

func (env *testEnv) assertBalance(t testing.TB, db weave.KVStore, addr weave.Address, want coin.Coin) {
	t.Helper()
	acct, err := env.bank.Get(db, addr)
	assert.Nil(t, err)
	var got coin.Coins
	if acct != nil {
		got = cash.AsCoins(acct)
	}
	if want.IsZero() {
		if !got.IsEmpty() {
			t.Fatalf("want empty balance for %s, got %v", addr, got)
		}
		return
	}
	expected, err := coin.CombineCoins(want)
	assert.Nil(t, err)
	if !got.Equals(expected) {
		t.Fatalf("want balance %v for %s, got %v", expected, addr, got)
	}
}

func (env *testEnv) putOffer(t testing.TB, db weave.KVStore, expiresAt weave.UnixTime) {
	t.Helper()
	offer := &marketplace.SellOffer{
		Metadata:   &weave.Metadata{Schema: 1},
		Collection: collID,
		TokenId:    tokID,
		Seller:     env.seller.Address(),
		Price:      coin.NewCoin(1000, 0, "PURR"),
		CreatedAt:  weave.AsUnixTime(blockNow.Add(-time.Hour)),
		ExpiresAt:  expiresAt,
	}
	_, err := marketplace.NewOfferBucket().Put(db, rawOfferKey(collID, tokID), offer)
	assert.Nil(t, err)
}

func (env *testEnv) putBid(t testing.TB, db weave.KVStore, bidder weave.Condition, amount coin.Coin) {
	t.Helper()
	bid := &marketplace.Bid{
		Metadata:  &weave.Metadata{Schema: 1},
		Bidder:    bidder.Address(),
		Amount:    amount,
		CreatedAt: weave.AsUnixTime(blockNow.Add(-time.Minute)),
	}
	key := append(rawOfferKey(collID, tokID), bidder.Address()...)
	_, err := marketplace.NewBidBucket().Put(db, key, bid)
	assert.Nil(t, err)
}

// rawOfferKey mirrors the store layout: offers are keyed by the length
// prefixed collection ID followed by the token ID, bids extend that key
// with the bidder address.
func rawOfferKey(collection, tokenID []byte) []byte {
	key := make([]byte, 0, 1+len(collection)+len(tokenID))
	key = append(key, byte(len(collection)))
	key = append(key, collection...)
	return append(key, tokenID...)
}

func (env *testEnv) runTx(ctx weave.Context, db weave.CacheableKVStore, r *app.Router, msg weave.Msg, wantCheckErr, wantDeliverErr *errors.Error, t *testing.T) {
	t.Helper()
	tx := &weavetest.Tx{Msg: msg}
	cache := db.CacheWrap()
	if _, err := r.Check(ctx, cache, tx); !wantCheckErr.Is(err) {
		t.Fatalf("check expected: %+v but got %+v", wantCheckErr, err)
	}
	cache.Discard()
	if _, err := r.Deliver(ctx, db, tx); !wantDeliverErr.Is(err) {
		t.Fatalf("deliver expected: %+v but got %+v", wantDeliverErr, err)
	}
}

func TestCreateOfferHandler(t *testing.T) {
	env := newTestEnv()

	cases := map[string]struct {
		setup          func(ctx weave.Context, db weave.KVStore) weave.Context
		mutator        func(msg *marketplace.CreateOfferMsg)
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		check          func(t *testing.T, db weave.KVStore)
	}{
		"happy path": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.ledger.setOwner(collID, tokID, env.seller.Address())
				env.ledger.approveOperator(collID, env.seller.Address(), marketplace.OperatorAddr())
				return env.authenticator.SetConditions(ctx, env.seller)
			},
			check: func(t *testing.T, db weave.KVStore) {
				var offer marketplace.SellOffer
				err := marketplace.NewOfferBucket().One(db, rawOfferKey(collID, tokID), &offer)
				assert.Nil(t, err)
				assert.Equal(t, env.seller.Address(), offer.Seller)
				assert.Equal(t, coin.NewCoin(1000, 0, "PURR"), offer.Price)
				assert.Equal(t, weave.AsUnixTime(blockNow.Add(time.Hour)), offer.ExpiresAt)
				if len(offer.CronTaskId) == 0 {
					t.Fatal("expiration task was not scheduled")
				}
			},
		},
		"unknown collection": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.ledger.setOwner(collID, tokID, env.seller.Address())
				env.ledger.approveOperator(collID, env.seller.Address(), marketplace.OperatorAddr())
				return env.authenticator.SetConditions(ctx, env.seller)
			},
			mutator: func(msg *marketplace.CreateOfferMsg) {
				msg.Collection = []byte("doggies")
			},
			wantCheckErr:   marketplace.ErrUnknownCollection,
			wantDeliverErr: marketplace.ErrUnknownCollection,
		},
		"token does not exist": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				return env.authenticator.SetConditions(ctx, env.seller)
			},
			wantCheckErr:   errors.ErrNotFound,
			wantDeliverErr: errors.ErrNotFound,
		},
		"only the owner can list": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.ledger.setOwner(collID, tokID, env.buyer.Address())
				return env.authenticator.SetConditions(ctx, env.seller)
			},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"operator not approved": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.ledger.setOwner(collID, tokID, env.seller.Address())
				return env.authenticator.SetConditions(ctx, env.seller)
			},
			wantCheckErr:   marketplace.ErrNotApproved,
			wantDeliverErr: marketplace.ErrNotApproved,
		},
		"token already listed": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.ledger.setOwner(collID, tokID, env.seller.Address())
				env.ledger.approveOperator(collID, env.seller.Address(), marketplace.OperatorAddr())
				env.putOffer(t, db, weave.AsUnixTime(blockNow.Add(time.Hour)))
				return env.authenticator.SetConditions(ctx, env.seller)
			},
			wantCheckErr:   errors.ErrDuplicate,
			wantDeliverErr: errors.ErrDuplicate,
		},
	}

	for name, spec := range cases {
		t.Run(name, func(t *testing.T) {
			env.ledger.reset()
			db := env.newDB(t)
			ctx := weave.WithHeight(context.Background(), 100)
			ctx = weave.WithBlockTime(ctx, blockNow)
			if spec.setup != nil {
				ctx = spec.setup(ctx, db)
			}
			msg := &marketplace.CreateOfferMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: collID,
				TokenId:    tokID,
				Price:      coin.NewCoin(1000, 0, "PURR"),
				ExpireIn:   weave.AsUnixDuration(time.Hour),
			}
			if spec.mutator != nil {
				spec.mutator(msg)
			}
			env.runTx(ctx, db, env.router, msg, spec.wantCheckErr, spec.wantDeliverErr, t)
			if spec.check != nil {
				spec.check(t, db)
			}
		})
	}
}

func TestOffersWithMixedLengthCollectionIDs(t *testing.T) {
	env := newTestEnv()
	env.ledger.reset()
	db := env.newDB(t)

	// Two registered collections where one ID is a prefix of the other.
	// The (collection, token) pairs below concatenate to the same bytes,
	// so they only stay apart because offer keys length prefix the
	// collection ID.
	shortColl, shortTok := []byte("kittiesX"), []byte("YZ")
	longColl, longTok := []byte("kittiesXY"), []byte("Z")
	collections := marketplace.NewCollectionInfoBucket()
	for _, id := range [][]byte{shortColl, longColl} {
		info := &marketplace.CollectionInfo{
			Metadata:   &weave.Metadata{Schema: 1},
			Collection: id,
			Name:       "Kitties",
		}
		_, err := collections.Put(db, id, info)
		assert.Nil(t, err)
	}

	env.ledger.setOwner(shortColl, shortTok, env.seller.Address())
	env.ledger.setOwner(longColl, longTok, env.seller.Address())
	env.ledger.approveOperator(shortColl, env.seller.Address(), marketplace.OperatorAddr())
	env.ledger.approveOperator(longColl, env.seller.Address(), marketplace.OperatorAddr())

	ctx := weave.WithHeight(context.Background(), 100)
	ctx = weave.WithBlockTime(ctx, blockNow)
	sellerCtx := env.authenticator.SetConditions(ctx, env.seller)

	list := func(collection, tokenID []byte, price coin.Coin) {
		t.Helper()
		msg := &marketplace.CreateOfferMsg{
			Metadata:   &weave.Metadata{Schema: 1},
			Collection: collection,
			TokenId:    tokenID,
			Price:      price,
			ExpireIn:   weave.AsUnixDuration(time.Hour),
		}
		env.runTx(sellerCtx, db, env.router, msg, nil, nil, t)
	}
	list(shortColl, shortTok, coin.NewCoin(1000, 0, "PURR"))
	// the second pair is not a duplicate of the first
	list(longColl, longTok, coin.NewCoin(500, 0, "PURR"))

	// buying the second pair settles its own offer: its price, its token
	env.setBalance(t, db, env.buyer.Address(), coin.NewCoin(500, 0, "PURR"))
	buy := &marketplace.BuyOfferMsg{
		Metadata:   &weave.Metadata{Schema: 1},
		Collection: longColl,
		TokenId:    longTok,
	}
	buyerCtx := env.authenticator.SetConditions(ctx, env.buyer)
	env.runTx(buyerCtx, db, env.router, buy, nil, nil, t)

	env.assertBalance(t, db, env.seller.Address(), coin.NewCoin(475, 0, "PURR"))
	env.assertBalance(t, db, env.admin.Address(), coin.NewCoin(25, 0, "PURR"))
	assert.Equal(t, env.buyer.Address(), env.ledger.owner(longColl, longTok))
	assert.Equal(t, env.seller.Address(), env.ledger.owner(shortColl, shortTok))

	var offer marketplace.SellOffer
	assert.Nil(t, marketplace.NewOfferBucket().One(db, rawOfferKey(shortColl, shortTok), &offer))
	assert.Equal(t, coin.NewCoin(1000, 0, "PURR"), offer.Price)
	if err := marketplace.NewOfferBucket().Has(db, rawOfferKey(longColl, longTok)); !errors.ErrNotFound.Is(err) {
		t.Fatalf("bought offer was not deleted: %+v", err)
	}
}

func TestReleaseOfferHandler(t *testing.T) {
	env := newTestEnv()

	cases := map[string]struct {
		setup          func(ctx weave.Context, db weave.KVStore) weave.Context
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		check          func(t *testing.T, db weave.KVStore)
	}{
		"happy path refunds pending bids": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.ledger.setOwner(collID, tokID, env.seller.Address())
				env.putOffer(t, db, weave.AsUnixTime(blockNow.Add(time.Hour)))
				env.putBid(t, db, env.bidder, coin.NewCoin(300, 0, "PURR"))
				env.setBalance(t, db, marketplace.EscrowAddr(), coin.NewCoin(300, 0, "PURR"))
				return env.authenticator.SetConditions(ctx, env.seller)
			},
			check: func(t *testing.T, db weave.KVStore) {
				err := marketplace.NewOfferBucket().Has(db, rawOfferKey(collID, tokID))
				if !errors.ErrNotFound.Is(err) {
					t.Fatalf("offer was not deleted: %+v", err)
				}
				env.assertBalance(t, db, env.bidder.Address(), coin.NewCoin(300, 0, "PURR"))
				env.assertBalance(t, db, marketplace.EscrowAddr(), coin.Coin{})
			},
		},
		"only the creator can release": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.ledger.setOwner(collID, tokID, env.seller.Address())
				env.putOffer(t, db, weave.AsUnixTime(blockNow.Add(time.Hour)))
				return env.authenticator.SetConditions(ctx, env.buyer)
			},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"creator no longer owns the token": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.ledger.setOwner(collID, tokID, env.buyer.Address())
				env.putOffer(t, db, weave.AsUnixTime(blockNow.Add(time.Hour)))
				return env.authenticator.SetConditions(ctx, env.seller)
			},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"no offer": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				return env.authenticator.SetConditions(ctx, env.seller)
			},
			wantCheckErr:   errors.ErrNotFound,
			wantDeliverErr: errors.ErrNotFound,
		},
	}

	for name, spec := range cases {
		t.Run(name, func(t *testing.T) {
			env.ledger.reset()
			db := env.newDB(t)
			ctx := weave.WithHeight(context.Background(), 100)
			ctx = weave.WithBlockTime(ctx, blockNow)
			if spec.setup != nil {
				ctx = spec.setup(ctx, db)
			}
			msg := &marketplace.ReleaseOfferMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: collID,
				TokenId:    tokID,
			}
			env.runTx(ctx, db, env.router, msg, spec.wantCheckErr, spec.wantDeliverErr, t)
			if spec.check != nil {
				spec.check(t, db)
			}
		})
	}
}

func TestBuyOfferHandler(t *testing.T) {
	env := newTestEnv()

	cases := map[string]struct {
		setup          func(ctx weave.Context, db weave.KVStore) weave.Context
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		check          func(t *testing.T, db weave.KVStore)
	}{
		"happy path splits the price into proceeds and fee": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.ledger.setOwner(collID, tokID, env.seller.Address())
				env.ledger.approveOperator(collID, env.seller.Address(), marketplace.OperatorAddr())
				env.putOffer(t, db, weave.AsUnixTime(blockNow.Add(time.Hour)))
				env.setBalance(t, db, env.buyer.Address(), coin.NewCoin(1000, 0, "PURR"))
				return env.authenticator.SetConditions(ctx, env.buyer)
			},
			check: func(t *testing.T, db weave.KVStore) {
				// 5% of 1000 goes to the marketplace owner, the rest
				// to the seller. Together they make the full price.
				env.assertBalance(t, db, env.seller.Address(), coin.NewCoin(950, 0, "PURR"))
				env.assertBalance(t, db, env.admin.Address(), coin.NewCoin(50, 0, "PURR"))
				env.assertBalance(t, db, env.buyer.Address(), coin.Coin{})
				assert.Equal(t, env.buyer.Address(), env.ledger.owner(collID, tokID))
				err := marketplace.NewOfferBucket().Has(db, rawOfferKey(collID, tokID))
				if !errors.ErrNotFound.Is(err) {
					t.Fatalf("offer was not deleted: %+v", err)
				}
			},
		},
		"proceeds go to the current owner": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				// The token moved off market after listing, but the new
				// owner kept the operator approval in place.
				env.ledger.setOwner(collID, tokID, env.loser.Address())
				env.ledger.approveOperator(collID, env.loser.Address(), marketplace.OperatorAddr())
				env.putOffer(t, db, weave.AsUnixTime(blockNow.Add(time.Hour)))
				env.setBalance(t, db, env.buyer.Address(), coin.NewCoin(1000, 0, "PURR"))
				return env.authenticator.SetConditions(ctx, env.buyer)
			},
			check: func(t *testing.T, db weave.KVStore) {
				env.assertBalance(t, db, env.loser.Address(), coin.NewCoin(950, 0, "PURR"))
				env.assertBalance(t, db, env.seller.Address(), coin.Coin{})
			},
		},
		"off market transfer aborts the purchase": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				// New owner never approved the marketplace operator, so
				// the ledger transfer fails before any funds move.
				env.ledger.setOwner(collID, tokID, env.loser.Address())
				env.putOffer(t, db, weave.AsUnixTime(blockNow.Add(time.Hour)))
				env.setBalance(t, db, env.buyer.Address(), coin.NewCoin(1000, 0, "PURR"))
				return env.authenticator.SetConditions(ctx, env.buyer)
			},
			wantDeliverErr: errors.ErrUnauthorized,
			check: func(t *testing.T, db weave.KVStore) {
				env.assertBalance(t, db, env.buyer.Address(), coin.NewCoin(1000, 0, "PURR"))
				env.assertBalance(t, db, env.loser.Address(), coin.Coin{})
			},
		},
		"expired offer cannot be bought": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.ledger.setOwner(collID, tokID, env.seller.Address())
				env.ledger.approveOperator(collID, env.seller.Address(), marketplace.OperatorAddr())
				env.putOffer(t, db, weave.AsUnixTime(blockNow.Add(-time.Minute)))
				env.setBalance(t, db, env.buyer.Address(), coin.NewCoin(1000, 0, "PURR"))
				return env.authenticator.SetConditions(ctx, env.buyer)
			},
			wantCheckErr:   errors.ErrExpired,
			wantDeliverErr: errors.ErrExpired,
		},
		"buyer already owns the token": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.ledger.setOwner(collID, tokID, env.buyer.Address())
				env.putOffer(t, db, weave.AsUnixTime(blockNow.Add(time.Hour)))
				return env.authenticator.SetConditions(ctx, env.buyer)
			},
			wantDeliverErr: errors.ErrState,
		},
		"signature required": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.putOffer(t, db, weave.AsUnixTime(blockNow.Add(time.Hour)))
				return ctx
			},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"no offer": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				return env.authenticator.SetConditions(ctx, env.buyer)
			},
			wantCheckErr:   errors.ErrNotFound,
			wantDeliverErr: errors.ErrNotFound,
		},
	}

	for name, spec := range cases {
		t.Run(name, func(t *testing.T) {
			env.ledger.reset()
			db := env.newDB(t)
			ctx := weave.WithHeight(context.Background(), 100)
			ctx = weave.WithBlockTime(ctx, blockNow)
			if spec.setup != nil {
				ctx = spec.setup(ctx, db)
			}
			msg := &marketplace.BuyOfferMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: collID,
				TokenId:    tokID,
			}
			env.runTx(ctx, db, env.router, msg, spec.wantCheckErr, spec.wantDeliverErr, t)
			if spec.check != nil {
				spec.check(t, db)
			}
		})
	}
}

func TestPlaceBidHandler(t *testing.T) {
	env := newTestEnv()

	cases := map[string]struct {
		setup          func(ctx weave.Context, db weave.KVStore) weave.Context
		mutator        func(msg *marketplace.PlaceBidMsg)
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		check          func(t *testing.T, db weave.KVStore)
	}{
		"happy path moves the deposit into escrow": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.putOffer(t, db, weave.AsUnixTime(blockNow.Add(time.Hour)))
				env.setBalance(t, db, env.bidder.Address(), coin.NewCoin(500, 0, "PURR"))
				return env.authenticator.SetConditions(ctx, env.bidder)
			},
			check: func(t *testing.T, db weave.KVStore) {
				env.assertBalance(t, db, env.bidder.Address(), coin.NewCoin(200, 0, "PURR"))
				env.assertBalance(t, db, marketplace.EscrowAddr(), coin.NewCoin(300, 0, "PURR"))
				var bid marketplace.Bid
				key := append(rawOfferKey(collID, tokID), env.bidder.Address()...)
				assert.Nil(t, marketplace.NewBidBucket().One(db, key, &bid))
				assert.Equal(t, coin.NewCoin(300, 0, "PURR"), bid.Amount)
			},
		},
		"replacing a bid refunds the previous deposit first": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.putOffer(t, db, weave.AsUnixTime(blockNow.Add(time.Hour)))
				env.putBid(t, db, env.bidder, coin.NewCoin(300, 0, "PURR"))
				env.setBalance(t, db, marketplace.EscrowAddr(), coin.NewCoin(300, 0, "PURR"))
				env.setBalance(t, db, env.bidder.Address(), coin.NewCoin(100, 0, "PURR"))
				return env.authenticator.SetConditions(ctx, env.bidder)
			},
			mutator: func(msg *marketplace.PlaceBidMsg) {
				msg.Amount = coin.NewCoin(400, 0, "PURR")
			},
			check: func(t *testing.T, db weave.KVStore) {
				// The 300 refund covers the 400 deposit together with
				// the 100 balance. Without the refund first, the bidder
				// could not afford the raise.
				env.assertBalance(t, db, env.bidder.Address(), coin.Coin{})
				env.assertBalance(t, db, marketplace.EscrowAddr(), coin.NewCoin(400, 0, "PURR"))
				var bid marketplace.Bid
				key := append(rawOfferKey(collID, tokID), env.bidder.Address()...)
				assert.Nil(t, marketplace.NewBidBucket().One(db, key, &bid))
				assert.Equal(t, coin.NewCoin(400, 0, "PURR"), bid.Amount)
			},
		},
		"unknown collection": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				return env.authenticator.SetConditions(ctx, env.bidder)
			},
			mutator: func(msg *marketplace.PlaceBidMsg) {
				msg.Collection = []byte("doggies")
			},
			wantCheckErr:   marketplace.ErrUnknownCollection,
			wantDeliverErr: marketplace.ErrUnknownCollection,
		},
		"bids require a listed token": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				return env.authenticator.SetConditions(ctx, env.bidder)
			},
			wantCheckErr:   errors.ErrNotFound,
			wantDeliverErr: errors.ErrNotFound,
		},
		"insufficient funds": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.putOffer(t, db, weave.AsUnixTime(blockNow.Add(time.Hour)))
				return env.authenticator.SetConditions(ctx, env.bidder)
			},
			wantDeliverErr: errors.ErrEmpty,
		},
	}

	for name, spec := range cases {
		t.Run(name, func(t *testing.T) {
			env.ledger.reset()
			db := env.newDB(t)
			ctx := weave.WithHeight(context.Background(), 100)
			ctx = weave.WithBlockTime(ctx, blockNow)
			if spec.setup != nil {
				ctx = spec.setup(ctx, db)
			}
			msg := &marketplace.PlaceBidMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: collID,
				TokenId:    tokID,
				Amount:     coin.NewCoin(300, 0, "PURR"),
			}
			if spec.mutator != nil {
				spec.mutator(msg)
			}
			env.runTx(ctx, db, env.router, msg, spec.wantCheckErr, spec.wantDeliverErr, t)
			if spec.check != nil {
				spec.check(t, db)
			}
		})
	}
}

func TestCancelBidHandler(t *testing.T) {
	env := newTestEnv()

	cases := map[string]struct {
		setup          func(ctx weave.Context, db weave.KVStore) weave.Context
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		check          func(t *testing.T, db weave.KVStore)
	}{
		"happy path": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.putOffer(t, db, weave.AsUnixTime(blockNow.Add(time.Hour)))
				env.putBid(t, db, env.bidder, coin.NewCoin(300, 0, "PURR"))
				env.setBalance(t, db, marketplace.EscrowAddr(), coin.NewCoin(300, 0, "PURR"))
				return env.authenticator.SetConditions(ctx, env.bidder)
			},
			check: func(t *testing.T, db weave.KVStore) {
				env.assertBalance(t, db, env.bidder.Address(), coin.NewCoin(300, 0, "PURR"))
				env.assertBalance(t, db, marketplace.EscrowAddr(), coin.Coin{})
				key := append(rawOfferKey(collID, tokID), env.bidder.Address()...)
				err := marketplace.NewBidBucket().Has(db, key)
				if !errors.ErrNotFound.Is(err) {
					t.Fatalf("bid was not deleted: %+v", err)
				}
			},
		},
		"no bid to cancel": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				return env.authenticator.SetConditions(ctx, env.bidder)
			},
			wantCheckErr:   errors.ErrNotFound,
			wantDeliverErr: errors.ErrNotFound,
		},
		"signature required": {
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
	}

	for name, spec := range cases {
		t.Run(name, func(t *testing.T) {
			env.ledger.reset()
			db := env.newDB(t)
			ctx := weave.WithHeight(context.Background(), 100)
			ctx = weave.WithBlockTime(ctx, blockNow)
			if spec.setup != nil {
				ctx = spec.setup(ctx, db)
			}
			msg := &marketplace.CancelBidMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: collID,
				TokenId:    tokID,
			}
			env.runTx(ctx, db, env.router, msg, spec.wantCheckErr, spec.wantDeliverErr, t)
			if spec.check != nil {
				spec.check(t, db)
			}
		})
	}
}

func TestAcceptBidHandler(t *testing.T) {
	env := newTestEnv()

	cases := map[string]struct {
		setup          func(ctx weave.Context, db weave.KVStore) weave.Context
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		check          func(t *testing.T, db weave.KVStore)
	}{
		"happy path pays the winner deposit out and refunds the rest": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.ledger.setOwner(collID, tokID, env.seller.Address())
				env.ledger.approveOperator(collID, env.seller.Address(), marketplace.OperatorAddr())
				env.putOffer(t, db, weave.AsUnixTime(blockNow.Add(time.Hour)))
				env.putBid(t, db, env.bidder, coin.NewCoin(400, 0, "PURR"))
				env.putBid(t, db, env.loser, coin.NewCoin(250, 0, "PURR"))
				env.setBalance(t, db, marketplace.EscrowAddr(), coin.NewCoin(650, 0, "PURR"))
				return env.authenticator.SetConditions(ctx, env.seller)
			},
			check: func(t *testing.T, db weave.KVStore) {
				// The winning 400 deposit splits 380/20, the losing 250
				// is refunded and the escrow ends up empty.
				env.assertBalance(t, db, env.seller.Address(), coin.NewCoin(380, 0, "PURR"))
				env.assertBalance(t, db, env.admin.Address(), coin.NewCoin(20, 0, "PURR"))
				env.assertBalance(t, db, env.loser.Address(), coin.NewCoin(250, 0, "PURR"))
				env.assertBalance(t, db, env.bidder.Address(), coin.Coin{})
				env.assertBalance(t, db, marketplace.EscrowAddr(), coin.Coin{})
				assert.Equal(t, env.bidder.Address(), env.ledger.owner(collID, tokID))
				err := marketplace.NewOfferBucket().Has(db, rawOfferKey(collID, tokID))
				if !errors.ErrNotFound.Is(err) {
					t.Fatalf("offer was not deleted: %+v", err)
				}
				var leftover []*marketplace.Bid
				keys, err := marketplace.NewBidBucket().ByIndex(db, "offer", rawOfferKey(collID, tokID), &leftover)
				assert.Nil(t, err)
				if len(keys) != 0 {
					t.Fatalf("want no bids left, got %d", len(keys))
				}
			},
		},
		"acceptance survives offer expiration": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.ledger.setOwner(collID, tokID, env.seller.Address())
				env.ledger.approveOperator(collID, env.seller.Address(), marketplace.OperatorAddr())
				env.putOffer(t, db, weave.AsUnixTime(blockNow.Add(-time.Minute)))
				env.putBid(t, db, env.bidder, coin.NewCoin(400, 0, "PURR"))
				env.setBalance(t, db, marketplace.EscrowAddr(), coin.NewCoin(400, 0, "PURR"))
				return env.authenticator.SetConditions(ctx, env.seller)
			},
			check: func(t *testing.T, db weave.KVStore) {
				assert.Equal(t, env.bidder.Address(), env.ledger.owner(collID, tokID))
			},
		},
		"only the token owner can accept": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.ledger.setOwner(collID, tokID, env.seller.Address())
				env.putOffer(t, db, weave.AsUnixTime(blockNow.Add(time.Hour)))
				env.putBid(t, db, env.bidder, coin.NewCoin(400, 0, "PURR"))
				return env.authenticator.SetConditions(ctx, env.loser)
			},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"no such bid": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.ledger.setOwner(collID, tokID, env.seller.Address())
				env.putOffer(t, db, weave.AsUnixTime(blockNow.Add(time.Hour)))
				return env.authenticator.SetConditions(ctx, env.seller)
			},
			wantCheckErr:   errors.ErrNotFound,
			wantDeliverErr: errors.ErrNotFound,
		},
	}

	for name, spec := range cases {
		t.Run(name, func(t *testing.T) {
			env.ledger.reset()
			db := env.newDB(t)
			ctx := weave.WithHeight(context.Background(), 100)
			ctx = weave.WithBlockTime(ctx, blockNow)
			if spec.setup != nil {
				ctx = spec.setup(ctx, db)
			}
			msg := &marketplace.AcceptBidMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: collID,
				TokenId:    tokID,
				Bidder:     env.bidder.Address(),
			}
			env.runTx(ctx, db, env.router, msg, spec.wantCheckErr, spec.wantDeliverErr, t)
			if spec.check != nil {
				spec.check(t, db)
			}
		})
	}
}

func TestExpireOfferHandler(t *testing.T) {
	env := newTestEnv()

	cases := map[string]struct {
		setup          func(ctx weave.Context, db weave.KVStore) weave.Context
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		check          func(t *testing.T, db weave.CacheableKVStore)
	}{
		"expired offer is removed and bids are refunded": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.ledger.setOwner(collID, tokID, env.seller.Address())
				env.putOffer(t, db, weave.AsUnixTime(blockNow.Add(-time.Minute)))
				env.putBid(t, db, env.bidder, coin.NewCoin(300, 0, "PURR"))
				env.setBalance(t, db, marketplace.EscrowAddr(), coin.NewCoin(300, 0, "PURR"))
				return env.authenticator.SetConditions(ctx, marketplace.OperatorCondition())
			},
			check: func(t *testing.T, db weave.CacheableKVStore) {
				err := marketplace.NewOfferBucket().Has(db, rawOfferKey(collID, tokID))
				if !errors.ErrNotFound.Is(err) {
					t.Fatalf("offer was not deleted: %+v", err)
				}
				env.assertBalance(t, db, env.bidder.Address(), coin.NewCoin(300, 0, "PURR"))
				env.assertBalance(t, db, marketplace.EscrowAddr(), coin.Coin{})

				// A purchase after expiration must not find the offer.
				ctx := weave.WithHeight(context.Background(), 101)
				ctx = weave.WithBlockTime(ctx, blockNow)
				ctx = env.authenticator.SetConditions(ctx, env.buyer)
				buy := &weavetest.Tx{Msg: &marketplace.BuyOfferMsg{
					Metadata:   &weave.Metadata{Schema: 1},
					Collection: collID,
					TokenId:    tokID,
				}}
				if _, err := env.router.Deliver(ctx, db, buy); !errors.ErrNotFound.Is(err) {
					t.Fatalf("buy after expiration: want not found, got %+v", err)
				}
			},
		},
		"a task outliving its offer is a no-op": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				return env.authenticator.SetConditions(ctx, marketplace.OperatorCondition())
			},
		},
		"present but unexpired offer is not removed": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.putOffer(t, db, weave.AsUnixTime(blockNow.Add(time.Hour)))
				return env.authenticator.SetConditions(ctx, marketplace.OperatorCondition())
			},
			wantDeliverErr: errors.ErrState,
		},
		"expiration requires the operator condition": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.putOffer(t, db, weave.AsUnixTime(blockNow.Add(-time.Minute)))
				return env.authenticator.SetConditions(ctx, env.seller)
			},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
	}

	for name, spec := range cases {
		t.Run(name, func(t *testing.T) {
			env.ledger.reset()
			db := env.newDB(t)
			ctx := weave.WithHeight(context.Background(), 100)
			ctx = weave.WithBlockTime(ctx, blockNow)
			if spec.setup != nil {
				ctx = spec.setup(ctx, db)
			}
			msg := &marketplace.ExpireOfferMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: collID,
				TokenId:    tokID,
			}
			env.runTx(ctx, db, env.cronRouter, msg, spec.wantCheckErr, spec.wantDeliverErr, t)
			if spec.check != nil {
				spec.check(t, db)
			}
		})
	}
}

func TestExpireOfferNotRoutedForTransactions(t *testing.T) {
	env := newTestEnv()
	db := env.newDB(t)
	env.putOffer(t, db, weave.AsUnixTime(blockNow.Add(-time.Minute)))

	ctx := weave.WithHeight(context.Background(), 100)
	ctx = weave.WithBlockTime(ctx, blockNow)
	ctx = env.authenticator.SetConditions(ctx, marketplace.OperatorCondition())

	tx := &weavetest.Tx{Msg: &marketplace.ExpireOfferMsg{
		Metadata:   &weave.Metadata{Schema: 1},
		Collection: collID,
		TokenId:    tokID,
	}}
	if _, err := env.router.Deliver(ctx, db, tx); err == nil {
		t.Fatal("expiration must not be deliverable through the transaction router")
	}
}

func TestAdminHandlers(t *testing.T) {
	env := newTestEnv()

	t.Run("register and deregister collection", func(t *testing.T) {
		db := env.newDB(t)
		ctx := weave.WithHeight(context.Background(), 100)
		ctx = weave.WithBlockTime(ctx, blockNow)
		adminCtx := env.authenticator.SetConditions(ctx, env.admin)

		register := &marketplace.RegisterCollectionMsg{
			Metadata:   &weave.Metadata{Schema: 1},
			Collection: []byte("doggies"),
			Name:       "Doggies",
		}
		env.runTx(adminCtx, db, env.router, register, nil, nil, t)
		var info marketplace.CollectionInfo
		assert.Nil(t, marketplace.NewCollectionInfoBucket().One(db, []byte("doggies"), &info))
		assert.Equal(t, "Doggies", info.Name)

		sellerCtx := env.authenticator.SetConditions(ctx, env.seller)
		env.runTx(sellerCtx, db, env.router, register, errors.ErrUnauthorized, errors.ErrUnauthorized, t)

		deregister := &marketplace.DeregisterCollectionMsg{
			Metadata:   &weave.Metadata{Schema: 1},
			Collection: []byte("doggies"),
		}
		env.runTx(adminCtx, db, env.router, deregister, nil, nil, t)
		err := marketplace.NewCollectionInfoBucket().Has(db, []byte("doggies"))
		if !errors.ErrNotFound.Is(err) {
			t.Fatalf("collection was not deleted: %+v", err)
		}
	})

	t.Run("delete offer refunds all bids", func(t *testing.T) {
		db := env.newDB(t)
		env.putOffer(t, db, weave.AsUnixTime(blockNow.Add(time.Hour)))
		env.putBid(t, db, env.bidder, coin.NewCoin(300, 0, "PURR"))
		env.setBalance(t, db, marketplace.EscrowAddr(), coin.NewCoin(300, 0, "PURR"))

		ctx := weave.WithHeight(context.Background(), 100)
		ctx = weave.WithBlockTime(ctx, blockNow)
		adminCtx := env.authenticator.SetConditions(ctx, env.admin)

		msg := &marketplace.DeleteOfferMsg{
			Metadata:   &weave.Metadata{Schema: 1},
			Collection: collID,
			TokenId:    tokID,
		}
		env.runTx(adminCtx, db, env.router, msg, nil, nil, t)
		err := marketplace.NewOfferBucket().Has(db, rawOfferKey(collID, tokID))
		if !errors.ErrNotFound.Is(err) {
			t.Fatalf("offer was not deleted: %+v", err)
		}
		env.assertBalance(t, db, env.bidder.Address(), coin.NewCoin(300, 0, "PURR"))
	})

	t.Run("delete bid refunds the bidder", func(t *testing.T) {
		db := env.newDB(t)
		env.putOffer(t, db, weave.AsUnixTime(blockNow.Add(time.Hour)))
		env.putBid(t, db, env.bidder, coin.NewCoin(300, 0, "PURR"))
		env.setBalance(t, db, marketplace.EscrowAddr(), coin.NewCoin(300, 0, "PURR"))

		ctx := weave.WithHeight(context.Background(), 100)
		ctx = weave.WithBlockTime(ctx, blockNow)
		adminCtx := env.authenticator.SetConditions(ctx, env.admin)

		msg := &marketplace.DeleteBidMsg{
			Metadata:   &weave.Metadata{Schema: 1},
			Collection: collID,
			TokenId:    tokID,
			Bidder:     env.bidder.Address(),
		}
		env.runTx(adminCtx, db, env.router, msg, nil, nil, t)
		env.assertBalance(t, db, env.bidder.Address(), coin.NewCoin(300, 0, "PURR"))
		env.assertBalance(t, db, marketplace.EscrowAddr(), coin.Coin{})
	})

	t.Run("transfer funds drains the escrow", func(t *testing.T) {
		db := env.newDB(t)
		env.setBalance(t, db, marketplace.EscrowAddr(), coin.NewCoin(100, 0, "PURR"))

		ctx := weave.WithHeight(context.Background(), 100)
		ctx = weave.WithBlockTime(ctx, blockNow)

		msg := &marketplace.TransferFundsMsg{
			Metadata:    &weave.Metadata{Schema: 1},
			Destination: env.buyer.Address(),
			Amount:      coin.NewCoin(60, 0, "PURR"),
		}
		sellerCtx := env.authenticator.SetConditions(ctx, env.seller)
		env.runTx(sellerCtx, db, env.router, msg, errors.ErrUnauthorized, errors.ErrUnauthorized, t)

		adminCtx := env.authenticator.SetConditions(ctx, env.admin)
		env.runTx(adminCtx, db, env.router, msg, nil, nil, t)
		env.assertBalance(t, db, env.buyer.Address(), coin.NewCoin(60, 0, "PURR"))
		env.assertBalance(t, db, marketplace.EscrowAddr(), coin.NewCoin(40, 0, "PURR"))
	})
}

// memLedger is an in memory token ledger used to drive the handlers
// without the full token extension.
type memLedger struct {
	owners   map[string]weave.Address
	approved map[string]bool
}

var _ marketplace.TokenLedger = (*memLedger)(nil)

func newMemLedger() *memLedger {
	l := &memLedger{}
	l.reset()
	return l
}

func (l *memLedger) reset() {
	l.owners = make(map[string]weave.Address)
	l.approved = make(map[string]bool)
}

func (l *memLedger) setOwner(collection, tokenID []byte, owner weave.Address) {
	l.owners[tokenRef(collection, tokenID)] = owner
}

func (l *memLedger) owner(collection, tokenID []byte) weave.Address {
	return l.owners[tokenRef(collection, tokenID)]
}

func (l *memLedger) approveOperator(collection []byte, owner, operator weave.Address) {
	l.approved[approvalRef(collection, owner, operator)] = true
}

func (l *memLedger) TokenOwner(db weave.ReadOnlyKVStore, collection, tokenID []byte) (weave.Address, error) {
	return l.owners[tokenRef(collection, tokenID)], nil
}

func (l *memLedger) IsApprovedForAll(db weave.ReadOnlyKVStore, collection []byte, owner, operator weave.Address) (bool, error) {
	return l.approved[approvalRef(collection, owner, operator)], nil
}

func (l *memLedger) Transfer(db weave.KVStore, collection, tokenID []byte, operator, to weave.Address) error {
	ref := tokenRef(collection, tokenID)
	owner, ok := l.owners[ref]
	if !ok {
		return errors.Wrap(errors.ErrNotFound, "token")
	}
	if !owner.Equals(operator) && !l.approved[approvalRef(collection, owner, operator)] {
		return errors.Wrap(errors.ErrUnauthorized, "operator is not approved by the owner")
	}
	l.owners[ref] = to
	return nil
}

func tokenRef(collection, tokenID []byte) string {
	return string(collection) + "\x00" + string(tokenID)
}

func approvalRef(collection []byte, owner, operator weave.Address) string {
	return string(collection) + "\x00" + owner.String() + "\x00" + operator.String()
}
