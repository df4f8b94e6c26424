package nftmarket

import (
	"github.com/iov-one/nftmarket/x/marketplace"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/x/cron"
)

// CronTaskMarshaler is a task marshaler implementation to be used by the
// marketplace application when dealing with cron tasks.
var CronTaskMarshaler = taskMarshaler{}

type taskMarshaler struct{}

var _ cron.TaskMarshaler = taskMarshaler{}

// MarshalTask implements cron.TaskMarshaler interface.
func (taskMarshaler) MarshalTask(auth []weave.Condition, msg weave.Msg) ([]byte, error) {
	t := CronTask{
		Authenticators: auth,
	}

	switch msg := msg.(type) {
	default:
		return nil, errors.Wrapf(errors.ErrType, "unsupported message type: %T", msg)
	case *marketplace.ExpireOfferMsg:
		t.Sum = &CronTask_MarketplaceExpireOfferMsg{
			MarketplaceExpireOfferMsg: msg,
		}
	}

	raw, err := t.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "cannot marshal task")
	}
	return raw, nil
}

// UnmarshalTask implements cron.TaskMarshaler interface.
func (taskMarshaler) UnmarshalTask(raw []byte) ([]weave.Condition, weave.Msg, error) {
	var t CronTask
	if err := t.Unmarshal(raw); err != nil {
		return nil, nil, errors.Wrap(err, "cannot unmarshal task")
	}
	msg, err := weave.ExtractMsgFromSum(t.GetSum())
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot extract message")
	}
	return t.Authenticators, msg, nil
}
