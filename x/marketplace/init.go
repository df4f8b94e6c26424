package marketplace

import (
	"encoding/hex"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis will parse the marketplace configuration and the initial
// collection registry from genesis and save them in the database.
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, db weave.KVStore) error {
	if err := gconf.InitConfig(db, opts, "marketplace", &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}

	var collections []struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Website     string `json:"website"`
		ImageUrl    string `json:"image_url"`
	}
	if err := opts.ReadOptions("collections", &collections); err != nil {
		return errors.Wrap(err, "read collections")
	}

	bucket := NewCollectionInfoBucket()
	for i, c := range collections {
		id, err := hex.DecodeString(c.ID)
		if err != nil {
			return errors.Wrapf(errors.ErrInput, "collection #%d ID is not valid hex", i)
		}
		info := &CollectionInfo{
			Metadata:    &weave.Metadata{Schema: 1},
			Collection:  id,
			Name:        c.Name,
			Description: c.Description,
			Website:     c.Website,
			ImageUrl:    c.ImageUrl,
		}
		if err := info.Validate(); err != nil {
			return errors.Wrapf(err, "collection #%d is invalid", i)
		}
		if _, err := bucket.Put(db, id, info); err != nil {
			return errors.Wrapf(err, "cannot store collection #%d", i)
		}
	}
	return nil
}
