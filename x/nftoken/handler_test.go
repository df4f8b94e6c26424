package nftoken_test

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/nftmarket/x/nftoken"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x"
)

var blockNow = time.Now().UTC()

type testEnv struct {
	alice weave.Condition
	bob   weave.Condition
	carl  weave.Condition

	authenticator *weavetest.CtxAuth
	router        *app.Router
}

func newTestEnv() *testEnv {
	env := &testEnv{
		alice:         weavetest.NewCondition(),
		bob:           weavetest.NewCondition(),
		carl:          weavetest.NewCondition(),
		authenticator: &weavetest.CtxAuth{Key: "auth"},
	}
	env.router = app.NewRouter()
	nftoken.RegisterRoutes(env.router, x.ChainAuth(env.authenticator))
	return env
}

func (env *testEnv) newDB(t testing.TB) weave.CacheableKVStore {
	t.Helper()
	db := store.MemStore()
	migration.MustInitPkg(db, "nftoken")
	return db
}

// putCollection stores a collection under the given sequence ID, the way
// the create handler would.
func (env *testEnv) putCollection(t testing.TB, db weave.KVStore, id []byte, owner weave.Condition) {
	t.Helper()
	collection := &nftoken.Collection{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    owner.Address(),
		Name:     "Kitties",
	}
	_, err := nftoken.NewCollectionBucket().Put(db, id, collection)
	assert.Nil(t, err)
}

func (env *testEnv) putToken(t testing.TB, db weave.KVStore, collection, tokenID []byte, owner weave.Condition) {
	t.Helper()
	token := &nftoken.Token{
		Metadata:   &weave.Metadata{Schema: 1},
		Collection: collection,
		TokenId:    tokenID,
		Owner:      owner.Address(),
	}
	key := append(append([]byte{}, collection...), tokenID...)
	_, err := nftoken.NewTokenBucket().Put(db, key, token)
	assert.Nil(t, err)
}

func (env *testEnv) putApproval(t testing.TB, db weave.KVStore, collection []byte, owner, operator weave.Condition) {
	t.Helper()
	approval := &nftoken.OperatorApproval{
		Metadata:   &weave.Metadata{Schema: 1},
		ApprovedAt: weave.AsUnixTime(blockNow.Add(-time.Hour)),
	}
	key := append(append([]byte{}, collection...), owner.Address()...)
	key = append(key, operator.Address()...)
	_, err := nftoken.NewApprovalBucket().Put(db, key, approval)
	assert.Nil(t, err)
}

func (env *testEnv) runTx(ctx weave.Context, db weave.CacheableKVStore, msg weave.Msg, wantCheckErr, wantDeliverErr *errors.Error, t *testing.T) {
	t.Helper()
	tx := &weavetest.Tx{Msg: msg}
	cache := db.CacheWrap()
	if _, err := env.router.Check(ctx, cache, tx); !wantCheckErr.Is(err) {
		t.Fatalf("check expected: %+v but got %+v", wantCheckErr, err)
	}
	cache.Discard()
	if _, err := env.router.Deliver(ctx, db, tx); !wantDeliverErr.Is(err) {
		t.Fatalf("deliver expected: %+v but got %+v", wantDeliverErr, err)
	}
}

func newCtx() weave.Context {
	ctx := weave.WithHeight(context.Background(), 100)
	return weave.WithBlockTime(ctx, blockNow)
}

func TestCreateCollectionHandler(t *testing.T) {
	env := newTestEnv()

	t.Run("signer becomes the owner", func(t *testing.T) {
		db := env.newDB(t)
		ctx := env.authenticator.SetConditions(newCtx(), env.alice)
		msg := &nftoken.CreateCollectionMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Name:     "Kitties",
		}
		env.runTx(ctx, db, msg, nil, nil, t)

		var collection nftoken.Collection
		err := nftoken.NewCollectionBucket().One(db, weavetest.SequenceID(1), &collection)
		assert.Nil(t, err)
		assert.Equal(t, env.alice.Address(), collection.Owner)
		assert.Equal(t, "Kitties", collection.Name)
	})

	t.Run("signature required", func(t *testing.T) {
		db := env.newDB(t)
		msg := &nftoken.CreateCollectionMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Name:     "Kitties",
		}
		env.runTx(newCtx(), db, msg, errors.ErrUnauthorized, errors.ErrUnauthorized, t)
	})
}

func TestIssueTokenHandler(t *testing.T) {
	env := newTestEnv()
	collID := weavetest.SequenceID(1)

	cases := map[string]struct {
		setup          func(ctx weave.Context, db weave.KVStore) weave.Context
		mutator        func(msg *nftoken.IssueTokenMsg)
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		check          func(t *testing.T, db weave.KVStore)
	}{
		"issued to the collection owner by default": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.putCollection(t, db, collID, env.alice)
				return env.authenticator.SetConditions(ctx, env.alice)
			},
			check: func(t *testing.T, db weave.KVStore) {
				ctrl := nftoken.NewController()
				owner, err := ctrl.TokenOwner(db, collID, []byte("token-1"))
				assert.Nil(t, err)
				assert.Equal(t, env.alice.Address(), owner)
			},
		},
		"issued to an explicit owner": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.putCollection(t, db, collID, env.alice)
				return env.authenticator.SetConditions(ctx, env.alice)
			},
			mutator: func(msg *nftoken.IssueTokenMsg) {
				msg.Owner = env.bob.Address()
			},
			check: func(t *testing.T, db weave.KVStore) {
				ctrl := nftoken.NewController()
				owner, err := ctrl.TokenOwner(db, collID, []byte("token-1"))
				assert.Nil(t, err)
				assert.Equal(t, env.bob.Address(), owner)
			},
		},
		"only the collection owner can issue": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.putCollection(t, db, collID, env.alice)
				return env.authenticator.SetConditions(ctx, env.bob)
			},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"token ID can be used only once": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.putCollection(t, db, collID, env.alice)
				env.putToken(t, db, collID, []byte("token-1"), env.bob)
				return env.authenticator.SetConditions(ctx, env.alice)
			},
			wantCheckErr:   errors.ErrDuplicate,
			wantDeliverErr: errors.ErrDuplicate,
		},
		"unknown collection": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				return env.authenticator.SetConditions(ctx, env.alice)
			},
			wantCheckErr:   errors.ErrNotFound,
			wantDeliverErr: errors.ErrNotFound,
		},
	}

	for name, spec := range cases {
		t.Run(name, func(t *testing.T) {
			db := env.newDB(t)
			ctx := newCtx()
			if spec.setup != nil {
				ctx = spec.setup(ctx, db)
			}
			msg := &nftoken.IssueTokenMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: collID,
				TokenId:    []byte("token-1"),
			}
			if spec.mutator != nil {
				spec.mutator(msg)
			}
			env.runTx(ctx, db, msg, spec.wantCheckErr, spec.wantDeliverErr, t)
			if spec.check != nil {
				spec.check(t, db)
			}
		})
	}
}

func TestTransferTokenHandler(t *testing.T) {
	env := newTestEnv()
	collID := weavetest.SequenceID(1)

	cases := map[string]struct {
		setup          func(ctx weave.Context, db weave.KVStore) weave.Context
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		check          func(t *testing.T, db weave.KVStore)
	}{
		"owner can transfer": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.putToken(t, db, collID, []byte("token-1"), env.alice)
				return env.authenticator.SetConditions(ctx, env.alice)
			},
			check: func(t *testing.T, db weave.KVStore) {
				owner, err := nftoken.NewController().TokenOwner(db, collID, []byte("token-1"))
				assert.Nil(t, err)
				assert.Equal(t, env.bob.Address(), owner)
			},
		},
		"approved operator can transfer": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.putToken(t, db, collID, []byte("token-1"), env.alice)
				env.putApproval(t, db, collID, env.alice, env.carl)
				return env.authenticator.SetConditions(ctx, env.carl)
			},
			check: func(t *testing.T, db weave.KVStore) {
				owner, err := nftoken.NewController().TokenOwner(db, collID, []byte("token-1"))
				assert.Nil(t, err)
				assert.Equal(t, env.bob.Address(), owner)
			},
		},
		"stranger cannot transfer": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				env.putToken(t, db, collID, []byte("token-1"), env.alice)
				return env.authenticator.SetConditions(ctx, env.carl)
			},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"no such token": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				return env.authenticator.SetConditions(ctx, env.alice)
			},
			wantCheckErr:   errors.ErrNotFound,
			wantDeliverErr: errors.ErrNotFound,
		},
	}

	for name, spec := range cases {
		t.Run(name, func(t *testing.T) {
			db := env.newDB(t)
			ctx := newCtx()
			if spec.setup != nil {
				ctx = spec.setup(ctx, db)
			}
			msg := &nftoken.TransferTokenMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: collID,
				TokenId:    []byte("token-1"),
				To:         env.bob.Address(),
			}
			env.runTx(ctx, db, msg, spec.wantCheckErr, spec.wantDeliverErr, t)
			if spec.check != nil {
				spec.check(t, db)
			}
		})
	}
}

func TestApproveAndRevokeOperatorHandlers(t *testing.T) {
	env := newTestEnv()
	collID := weavetest.SequenceID(1)

	t.Run("approval round trip", func(t *testing.T) {
		db := env.newDB(t)
		env.putCollection(t, db, collID, env.alice)
		ctx := env.authenticator.SetConditions(newCtx(), env.alice)

		approve := &nftoken.ApproveOperatorMsg{
			Metadata:   &weave.Metadata{Schema: 1},
			Collection: collID,
			Operator:   env.carl.Address(),
		}
		env.runTx(ctx, db, approve, nil, nil, t)

		ctrl := nftoken.NewController()
		ok, err := ctrl.IsApprovedForAll(db, collID, env.alice.Address(), env.carl.Address())
		assert.Nil(t, err)
		assert.Equal(t, true, ok)

		revoke := &nftoken.RevokeOperatorMsg{
			Metadata:   &weave.Metadata{Schema: 1},
			Collection: collID,
			Operator:   env.carl.Address(),
		}
		env.runTx(ctx, db, revoke, nil, nil, t)

		ok, err = ctrl.IsApprovedForAll(db, collID, env.alice.Address(), env.carl.Address())
		assert.Nil(t, err)
		assert.Equal(t, false, ok)
	})

	t.Run("cannot approve self", func(t *testing.T) {
		db := env.newDB(t)
		env.putCollection(t, db, collID, env.alice)
		ctx := env.authenticator.SetConditions(newCtx(), env.alice)

		approve := &nftoken.ApproveOperatorMsg{
			Metadata:   &weave.Metadata{Schema: 1},
			Collection: collID,
			Operator:   env.alice.Address(),
		}
		env.runTx(ctx, db, approve, errors.ErrInput, errors.ErrInput, t)
	})

	t.Run("unknown collection", func(t *testing.T) {
		db := env.newDB(t)
		ctx := env.authenticator.SetConditions(newCtx(), env.alice)

		approve := &nftoken.ApproveOperatorMsg{
			Metadata:   &weave.Metadata{Schema: 1},
			Collection: collID,
			Operator:   env.carl.Address(),
		}
		env.runTx(ctx, db, approve, errors.ErrNotFound, errors.ErrNotFound, t)
	})

	t.Run("revoking an absent approval fails", func(t *testing.T) {
		db := env.newDB(t)
		ctx := env.authenticator.SetConditions(newCtx(), env.alice)

		revoke := &nftoken.RevokeOperatorMsg{
			Metadata:   &weave.Metadata{Schema: 1},
			Collection: collID,
			Operator:   env.carl.Address(),
		}
		env.runTx(ctx, db, revoke, nil, errors.ErrNotFound, t)
	})
}

func TestControllerTransfer(t *testing.T) {
	env := newTestEnv()
	collID := weavetest.SequenceID(1)
	ctrl := nftoken.NewController()

	t.Run("approval does not survive an ownership change", func(t *testing.T) {
		db := env.newDB(t)
		env.putToken(t, db, collID, []byte("token-1"), env.alice)
		env.putApproval(t, db, collID, env.alice, env.carl)

		err := ctrl.Transfer(db, collID, []byte("token-1"), env.carl.Address(), env.bob.Address())
		assert.Nil(t, err)
		owner, err := ctrl.TokenOwner(db, collID, []byte("token-1"))
		assert.Nil(t, err)
		assert.Equal(t, env.bob.Address(), owner)

		// The approval was granted by alice and is void for bob.
		err = ctrl.Transfer(db, collID, []byte("token-1"), env.carl.Address(), env.alice.Address())
		if !errors.ErrUnauthorized.Is(err) {
			t.Fatalf("want unauthorized, got %+v", err)
		}
	})

	t.Run("missing token owner is nil", func(t *testing.T) {
		db := env.newDB(t)
		owner, err := ctrl.TokenOwner(db, collID, []byte("token-1"))
		assert.Nil(t, err)
		if owner != nil {
			t.Fatalf("want nil owner, got %s", owner)
		}
	})
}
