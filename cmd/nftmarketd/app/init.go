package nftmarket

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/iov-one/nftmarket/x/marketplace"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/cron"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode
//
// You can set
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := "IOV"
	if len(args) > 0 {
		ticker = args[0]
		if !coin.IsCC(ticker) {
			return nil, fmt.Errorf("Invalid ticker %s", ticker)
		}
	}

	var addr string
	if len(args) > 1 {
		addr = args[1]
	} else {
		// if no address provided, auto-generate one
		// and print out a recovery phrase
		bz, secret, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = hex.EncodeToString(bz)
		fmt.Println(secret)
	}

	opts := fmt.Sprintf(`
          {
            "cash": [
              {
                "address": "%s",
                "coins": [
                  {"whole": 123456789, "ticker": "%s"}
                ]
              }
            ],
            "conf": {
              "cash": {
                "collector_address": "%s",
                "minimal_fee": {}
              },
              "migration": {
                "admin": "%s"
              },
              "marketplace": {
                "owner": "%s",
                "fee_percent": 2
              }
            },
            "collections": [],
            "initialize_schema": [
              {"pkg": "migration", "ver": 1},
              {"pkg": "cash", "ver": 1},
              {"pkg": "sigs", "ver": 1},
              {"pkg": "marketplace", "ver": 1},
              {"pkg": "nftoken", "ver": 1}
            ]
          }
	`, addr, ticker, addr, addr, addr)
	return []byte(opts), nil
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "nftmarket.db")
	}

	stack := Stack(Authenticator())
	application, err := Application("nftmarket", stack, TxDecoder, dbPath, debug)
	if err != nil {
		return nil, err
	}

	return DecorateApp(application, logger), nil
}

// DecorateApp adds initializers and Logger to app
func DecorateApp(application app.BaseApp, logger log.Logger) app.BaseApp {
	application.WithInit(app.ChainInitializers(
		&migration.Initializer{},
		&cash.Initializer{},
		&marketplace.Initializer{},
	))
	application.WithLogger(logger)
	return application
}

// InlineApp will take a previously prepared CommitStore and return a complete Application
func InlineApp(kv weave.CommitKVStore, logger log.Logger, debug bool) abci.Application {
	authFn := Authenticator()
	stack := Stack(authFn)
	ctx := context.Background()
	store := app.NewStoreApp("nftmarket", kv, QueryRouter(), ctx)
	ticker := cron.NewTicker(CronStack(), CronTaskMarshaler)
	base := app.NewBaseApp(store, TxDecoder, stack, ticker, debug)
	return DecorateApp(base, logger)
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a public key, along with a json
// representation of the keys. You can give coins to this address and
// import the keys in a client to use them.
func GenerateCoinKey() (weave.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", err
	}

	return addr, string(keys), nil
}
