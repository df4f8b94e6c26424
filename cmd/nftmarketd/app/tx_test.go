package nftmarket

import (
	"bytes"
	"testing"

	"github.com/iov-one/nftmarket/x/marketplace"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
)

func TestTxGetMsg(t *testing.T) {
	msg := &marketplace.CreateOfferMsg{
		Metadata:   &weave.Metadata{Schema: 1},
		Collection: []byte("kitties"),
		TokenId:    []byte("token-1"),
		Price:      coin.NewCoin(1000, 0, "IOV"),
		ExpireIn:   weave.AsUnixDuration(3600e9),
	}

	tx := &Tx{
		Sum: &Tx_MarketplaceCreateOfferMsg{MarketplaceCreateOfferMsg: msg},
	}
	got, err := tx.GetMsg()
	assert.Nil(t, err)
	assert.Equal(t, weave.Msg(msg), got)

	raw, err := tx.Marshal()
	assert.Nil(t, err)
	var loaded Tx
	assert.Nil(t, loaded.Unmarshal(raw))
	reloaded, err := loaded.GetMsg()
	assert.Nil(t, err)
	if reloaded.Path() != "marketplace/create_offer" {
		t.Fatalf("unexpected message path: %q", reloaded.Path())
	}
}

func TestSignBytesIgnoreSignatures(t *testing.T) {
	source := weavetest.NewCondition().Address()
	destination := weavetest.NewCondition().Address()
	amount := coin.NewCoin(50, 0, "IOV")

	tx := &Tx{
		Sum: &Tx_CashSendMsg{CashSendMsg: &cash.SendMsg{
			Metadata:    &weave.Metadata{Schema: 1},
			Source:      source,
			Destination: destination,
			Amount:      &amount,
		}},
	}
	bz, err := tx.GetSignBytes()
	assert.Nil(t, err)

	tx.Signatures = []*sigs.StdSignature{{Sequence: 17}}
	bz2, err := tx.GetSignBytes()
	assert.Nil(t, err)

	if !bytes.Equal(bz, bz2) {
		t.Fatal("sign bytes must not depend on signatures")
	}
	// signatures are restored after computing the sign bytes
	if len(tx.Signatures) != 1 {
		t.Fatal("signatures not restored")
	}
}

func TestCronTaskMarshaling(t *testing.T) {
	conds := []weave.Condition{marketplace.OperatorCondition()}
	msg := &marketplace.ExpireOfferMsg{
		Metadata:   &weave.Metadata{Schema: 1},
		Collection: []byte("kitties"),
		TokenId:    []byte("token-1"),
	}

	raw, err := CronTaskMarshaler.MarshalTask(conds, msg)
	assert.Nil(t, err)

	gotConds, gotMsg, err := CronTaskMarshaler.UnmarshalTask(raw)
	assert.Nil(t, err)
	assert.Equal(t, conds, gotConds)
	got, ok := gotMsg.(*marketplace.ExpireOfferMsg)
	if !ok {
		t.Fatalf("unexpected message type: %T", gotMsg)
	}
	assert.Equal(t, msg.Collection, got.Collection)
	assert.Equal(t, msg.TokenId, got.TokenId)
}

func TestCronTaskMarshalerRejectsTransactionMessages(t *testing.T) {
	msg := &marketplace.BuyOfferMsg{
		Metadata:   &weave.Metadata{Schema: 1},
		Collection: []byte("kitties"),
		TokenId:    []byte("token-1"),
	}
	if _, err := CronTaskMarshaler.MarshalTask(nil, msg); err == nil {
		t.Fatal("only offer expiration can be scheduled")
	}
}
