/*
Package nftmarket links together all the various components to construct
the marketplace ABCI application.
*/
package nftmarket

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/iov-one/nftmarket/x/marketplace"
	"github.com/iov-one/nftmarket/x/nftoken"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/store/iavl"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/cron"
	"github.com/iov-one/weave/x/sigs"
	"github.com/iov-one/weave/x/utils"
)

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return sigs.Authenticate{}
}

// CashControl returns a controller for cash functions
func CashControl() cash.Controller {
	return cash.NewController(cash.NewBucket())
}

// Chain returns a chain of decorators, to handle authentication,
// fees, logging, and recovery
func Chain(authFn x.Authenticator) app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewKeyTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		cash.NewFeeDecorator(authFn, CashControl()),
		// on DeliverTx, bad tx will increment nonce and take fee
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
		utils.NewActionTagger(),
	)
}

// Router returns a default router, dispatching to the token ledger, the
// marketplace and the supporting extensions.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()

	scheduler := cron.NewScheduler(CronTaskMarshaler)

	cash.RegisterRoutes(r, authFn, CashControl())
	sigs.RegisterRoutes(r, authFn)
	migration.RegisterRoutes(r, authFn)
	nftoken.RegisterRoutes(r, authFn)
	marketplace.RegisterRoutes(r, authFn, CashControl(), nftoken.NewController(), scheduler)
	return r
}

// CronStack returns a stack for processing cron tasks. Tasks are executed
// outside of transactions so no fee and no signature handling is done
// here. Only messages scheduled by the marketplace handlers are routed.
func CronStack() weave.Handler {
	rt := app.NewRouter()

	// Cron tasks are authenticated by the conditions attached to the
	// task, not by transaction signatures.
	authFn := cron.Authenticator{}

	marketplace.RegisterCronRoutes(rt, authFn, CashControl())

	decorators := app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewKeyTagger(),
		utils.NewActionTagger(),
		// No fee decorators.
	)
	return decorators.WithHandler(rt)
}

// QueryRouter returns a default query router,
// allowing access to "/wallets", "/auth", "/offers", "/bids",
// "/collections", "/nfts" and "/"
func QueryRouter() weave.QueryRouter {
	r := weave.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		sigs.RegisterQuery,
		migration.RegisterQuery,
		nftoken.RegisterQuery,
		marketplace.RegisterQuery,
		orm.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack(authFn x.Authenticator) weave.Handler {
	return Chain(authFn).WithHandler(Router(authFn))
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h weave.Handler,
	tx weave.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {

	ctx := context.Background()
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, errors.Wrap(err, "cannot create store")
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	ticker := cron.NewTicker(CronStack(), CronTaskMarshaler)
	base := app.NewBaseApp(store, tx, h, ticker, debug)
	return base, nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (weave.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", path)
	}

	// Some external calls accidently add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}
