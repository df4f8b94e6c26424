package nftoken

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &CreateCollectionMsg{}, migration.NoModification)
	migration.MustRegister(1, &IssueTokenMsg{}, migration.NoModification)
	migration.MustRegister(1, &TransferTokenMsg{}, migration.NoModification)
	migration.MustRegister(1, &ApproveOperatorMsg{}, migration.NoModification)
	migration.MustRegister(1, &RevokeOperatorMsg{}, migration.NoModification)
}

var _ weave.Msg = (*CreateCollectionMsg)(nil)
var _ weave.Msg = (*IssueTokenMsg)(nil)
var _ weave.Msg = (*TransferTokenMsg)(nil)
var _ weave.Msg = (*ApproveOperatorMsg)(nil)
var _ weave.Msg = (*RevokeOperatorMsg)(nil)

func (CreateCollectionMsg) Path() string {
	return "nftoken/create_collection"
}

func (m *CreateCollectionMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Name == "" {
		return errors.Wrap(errors.ErrEmpty, "name")
	}
	if len(m.Name) > maxNameSize {
		return errors.Wrapf(errors.ErrInput, "name longer than %d characters", maxNameSize)
	}
	return nil
}

func (IssueTokenMsg) Path() string {
	return "nftoken/issue_token"
}

func (m *IssueTokenMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateTokenRef(m.Collection, m.TokenId); err != nil {
		return err
	}
	if len(m.Owner) != 0 {
		if err := m.Owner.Validate(); err != nil {
			return errors.Wrap(err, "owner")
		}
	}
	return nil
}

func (TransferTokenMsg) Path() string {
	return "nftoken/transfer_token"
}

func (m *TransferTokenMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateTokenRef(m.Collection, m.TokenId); err != nil {
		return err
	}
	if err := m.To.Validate(); err != nil {
		return errors.Wrap(err, "to")
	}
	return nil
}

func (ApproveOperatorMsg) Path() string {
	return "nftoken/approve_operator"
}

func (m *ApproveOperatorMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(m.Collection) == 0 {
		return errors.Wrap(errors.ErrEmpty, "collection")
	}
	if err := m.Operator.Validate(); err != nil {
		return errors.Wrap(err, "operator")
	}
	return nil
}

func (RevokeOperatorMsg) Path() string {
	return "nftoken/revoke_operator"
}

func (m *RevokeOperatorMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(m.Collection) == 0 {
		return errors.Wrap(errors.ErrEmpty, "collection")
	}
	if err := m.Operator.Validate(); err != nil {
		return errors.Wrap(err, "operator")
	}
	return nil
}

const (
	maxIDSize   = 64
	maxNameSize = 128
)

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
