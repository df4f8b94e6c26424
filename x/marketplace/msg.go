package marketplace

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &CreateOfferMsg{}, migration.NoModification)
	migration.MustRegister(1, &ReleaseOfferMsg{}, migration.NoModification)
	migration.MustRegister(1, &BuyOfferMsg{}, migration.NoModification)
	migration.MustRegister(1, &ExpireOfferMsg{}, migration.NoModification)
	migration.MustRegister(1, &PlaceBidMsg{}, migration.NoModification)
	migration.MustRegister(1, &CancelBidMsg{}, migration.NoModification)
	migration.MustRegister(1, &AcceptBidMsg{}, migration.NoModification)
	migration.MustRegister(1, &RegisterCollectionMsg{}, migration.NoModification)
	migration.MustRegister(1, &DeregisterCollectionMsg{}, migration.NoModification)
	migration.MustRegister(1, &DeleteOfferMsg{}, migration.NoModification)
	migration.MustRegister(1, &DeleteBidMsg{}, migration.NoModification)
	migration.MustRegister(1, &TransferFundsMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ weave.Msg = (*CreateOfferMsg)(nil)
var _ weave.Msg = (*ReleaseOfferMsg)(nil)
var _ weave.Msg = (*BuyOfferMsg)(nil)
var _ weave.Msg = (*ExpireOfferMsg)(nil)
var _ weave.Msg = (*PlaceBidMsg)(nil)
var _ weave.Msg = (*CancelBidMsg)(nil)
var _ weave.Msg = (*AcceptBidMsg)(nil)
var _ weave.Msg = (*RegisterCollectionMsg)(nil)
var _ weave.Msg = (*DeregisterCollectionMsg)(nil)
var _ weave.Msg = (*DeleteOfferMsg)(nil)
var _ weave.Msg = (*DeleteBidMsg)(nil)
var _ weave.Msg = (*TransferFundsMsg)(nil)
var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (CreateOfferMsg) Path() string {
	return "marketplace/create_offer"
}

func (m *CreateOfferMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateTokenRef(m.Collection, m.TokenId); err != nil {
		return err
	}
	if !m.Price.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "price must be positive")
	}
	if err := m.Price.Validate(); err != nil {
		return errors.Wrap(err, "price")
	}
	if m.ExpireIn <= 0 {
		return errors.Wrap(errors.ErrInput, "expire in must be positive")
	}
	return nil
}

func (ReleaseOfferMsg) Path() string {
	return "marketplace/release_offer"
}

func (m *ReleaseOfferMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return validateTokenRef(m.Collection, m.TokenId)
}

func (BuyOfferMsg) Path() string {
	return "marketplace/buy_offer"
}

func (m *BuyOfferMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return validateTokenRef(m.Collection, m.TokenId)
}

func (ExpireOfferMsg) Path() string {
	return "marketplace/expire_offer"
}

func (m *ExpireOfferMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return validateTokenRef(m.Collection, m.TokenId)
}

func (PlaceBidMsg) Path() string {
	return "marketplace/place_bid"
}

func (m *PlaceBidMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateTokenRef(m.Collection, m.TokenId); err != nil {
		return err
	}
	if !m.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "amount must be positive")
	}
	if err := m.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	return nil
}

func (CancelBidMsg) Path() string {
	return "marketplace/cancel_bid"
}

func (m *CancelBidMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return validateTokenRef(m.Collection, m.TokenId)
}

func (AcceptBidMsg) Path() string {
	return "marketplace/accept_bid"
}

func (m *AcceptBidMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateTokenRef(m.Collection, m.TokenId); err != nil {
		return err
	}
	if err := m.Bidder.Validate(); err != nil {
		return errors.Wrap(err, "bidder")
	}
	return nil
}

func (RegisterCollectionMsg) Path() string {
	return "marketplace/register_collection"
}

func (m *RegisterCollectionMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(m.Collection) == 0 {
		return errors.Wrap(errors.ErrEmpty, "collection")
	}
	if m.Name == "" {
		return errors.Wrap(errors.ErrEmpty, "name")
	}
	return nil
}

func (DeregisterCollectionMsg) Path() string {
	return "marketplace/deregister_collection"
}

func (m *DeregisterCollectionMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(m.Collection) == 0 {
		return errors.Wrap(errors.ErrEmpty, "collection")
	}
	return nil
}

func (DeleteOfferMsg) Path() string {
	return "marketplace/delete_offer"
}

func (m *DeleteOfferMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return validateTokenRef(m.Collection, m.TokenId)
}

func (DeleteBidMsg) Path() string {
	return "marketplace/delete_bid"
}

func (m *DeleteBidMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateTokenRef(m.Collection, m.TokenId); err != nil {
		return err
	}
	if err := m.Bidder.Validate(); err != nil {
		return errors.Wrap(err, "bidder")
	}
	return nil
}

func (TransferFundsMsg) Path() string {
	return "marketplace/transfer_funds"
}

func (m *TransferFundsMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if !m.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "amount must be positive")
	}
	if err := m.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	return nil
}

func (UpdateConfigurationMsg) Path() string {
	return "marketplace/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	return nil
}

const maxIDSize = 64

// validateTokenRef ensures the collection and token identifiers are
// present and of a sane size. IDs are opaque to the marketplace.
func validateTokenRef(collection, tokenID []byte) error {
	if len(collection) == 0 {
		return errors.Wrap(errors.ErrEmpty, "collection")
	}
	if len(collection) > maxIDSize {
		return errors.Wrapf(errors.ErrInput, "collection ID longer than %d bytes", maxIDSize)
	}
	if len(tokenID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "token id")
	}
	if len(tokenID) > maxIDSize {
		return errors.Wrapf(errors.ErrInput, "token ID longer than %d bytes", maxIDSize)
	}
	return nil
}
