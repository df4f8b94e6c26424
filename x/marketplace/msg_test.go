package marketplace

import (
	"bytes"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
)

func TestCreateOfferMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     CreateOfferMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: CreateOfferMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: []byte("kitties"),
				TokenId:    []byte("token-1"),
				Price:      coin.NewCoin(1000, 0, "PURR"),
				ExpireIn:   weave.AsUnixDuration(3600e9),
			},
		},
		"missing metadata": {
			msg: CreateOfferMsg{
				Collection: []byte("kitties"),
				TokenId:    []byte("token-1"),
				Price:      coin.NewCoin(1000, 0, "PURR"),
				ExpireIn:   weave.AsUnixDuration(3600e9),
			},
			wantErr: errors.ErrMetadata,
		},
		"missing collection": {
			msg: CreateOfferMsg{
				Metadata: &weave.Metadata{Schema: 1},
				TokenId:  []byte("token-1"),
				Price:    coin.NewCoin(1000, 0, "PURR"),
				ExpireIn: weave.AsUnixDuration(3600e9),
			},
			wantErr: errors.ErrEmpty,
		},
		"oversized token ID": {
			msg: CreateOfferMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: []byte("kitties"),
				TokenId:    bytes.Repeat([]byte{1}, maxIDSize+1),
				Price:      coin.NewCoin(1000, 0, "PURR"),
				ExpireIn:   weave.AsUnixDuration(3600e9),
			},
			wantErr: errors.ErrInput,
		},
		"zero price": {
			msg: CreateOfferMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: []byte("kitties"),
				TokenId:    []byte("token-1"),
				Price:      coin.NewCoin(0, 0, "PURR"),
				ExpireIn:   weave.AsUnixDuration(3600e9),
			},
			wantErr: errors.ErrAmount,
		},
		"negative price": {
			msg: CreateOfferMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: []byte("kitties"),
				TokenId:    []byte("token-1"),
				Price:      coin.NewCoin(-1, 0, "PURR"),
				ExpireIn:   weave.AsUnixDuration(3600e9),
			},
			wantErr: errors.ErrAmount,
		},
		"missing expiration": {
			msg: CreateOfferMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: []byte("kitties"),
				TokenId:    []byte("token-1"),
				Price:      coin.NewCoin(1000, 0, "PURR"),
			},
			wantErr: errors.ErrInput,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("want %+v, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestPlaceBidMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     PlaceBidMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: PlaceBidMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: []byte("kitties"),
				TokenId:    []byte("token-1"),
				Amount:     coin.NewCoin(300, 0, "PURR"),
			},
		},
		"zero amount": {
			msg: PlaceBidMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: []byte("kitties"),
				TokenId:    []byte("token-1"),
				Amount:     coin.NewCoin(0, 0, "PURR"),
			},
			wantErr: errors.ErrAmount,
		},
		"missing token": {
			msg: PlaceBidMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: []byte("kitties"),
				Amount:     coin.NewCoin(300, 0, "PURR"),
			},
			wantErr: errors.ErrEmpty,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("want %+v, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestAcceptBidMsgValidate(t *testing.T) {
	bidder := weavetest.NewCondition().Address()

	cases := map[string]struct {
		msg     AcceptBidMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: AcceptBidMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: []byte("kitties"),
				TokenId:    []byte("token-1"),
				Bidder:     bidder,
			},
		},
		"invalid bidder": {
			msg: AcceptBidMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: []byte("kitties"),
				TokenId:    []byte("token-1"),
				Bidder:     []byte("too-short"),
			},
			wantErr: errors.ErrInput,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("want %+v, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestBuyOfferMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     BuyOfferMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: BuyOfferMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: []byte("kitties"),
				TokenId:    []byte("token-1"),
			},
		},
		"missing metadata": {
			msg: BuyOfferMsg{
				Collection: []byte("kitties"),
				TokenId:    []byte("token-1"),
			},
			wantErr: errors.ErrMetadata,
		},
		"missing collection": {
			msg: BuyOfferMsg{
				Metadata: &weave.Metadata{Schema: 1},
				TokenId:  []byte("token-1"),
			},
			wantErr: errors.ErrEmpty,
		},
		"oversized collection ID": {
			msg: BuyOfferMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: bytes.Repeat([]byte{1}, maxIDSize+1),
				TokenId:    []byte("token-1"),
			},
			wantErr: errors.ErrInput,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("want %+v, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestReleaseOfferMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     ReleaseOfferMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: ReleaseOfferMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: []byte("kitties"),
				TokenId:    []byte("token-1"),
			},
		},
		"missing metadata": {
			msg: ReleaseOfferMsg{
				Collection: []byte("kitties"),
				TokenId:    []byte("token-1"),
			},
			wantErr: errors.ErrMetadata,
		},
		"missing token": {
			msg: ReleaseOfferMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: []byte("kitties"),
			},
			wantErr: errors.ErrEmpty,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("want %+v, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestCancelBidMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     CancelBidMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: CancelBidMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: []byte("kitties"),
				TokenId:    []byte("token-1"),
			},
		},
		"missing collection": {
			msg: CancelBidMsg{
				Metadata: &weave.Metadata{Schema: 1},
				TokenId:  []byte("token-1"),
			},
			wantErr: errors.ErrEmpty,
		},
		"oversized token ID": {
			msg: CancelBidMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: []byte("kitties"),
				TokenId:    bytes.Repeat([]byte{1}, maxIDSize+1),
			},
			wantErr: errors.ErrInput,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("want %+v, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestDeleteOfferMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     DeleteOfferMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: DeleteOfferMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: []byte("kitties"),
				TokenId:    []byte("token-1"),
			},
		},
		"missing metadata": {
			msg: DeleteOfferMsg{
				Collection: []byte("kitties"),
				TokenId:    []byte("token-1"),
			},
			wantErr: errors.ErrMetadata,
		},
		"missing token": {
			msg: DeleteOfferMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: []byte("kitties"),
			},
			wantErr: errors.ErrEmpty,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("want %+v, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestDeleteBidMsgValidate(t *testing.T) {
	bidder := weavetest.NewCondition().Address()

	cases := map[string]struct {
		msg     DeleteBidMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: DeleteBidMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: []byte("kitties"),
				TokenId:    []byte("token-1"),
				Bidder:     bidder,
			},
		},
		"invalid bidder": {
			msg: DeleteBidMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: []byte("kitties"),
				TokenId:    []byte("token-1"),
				Bidder:     []byte("too-short"),
			},
			wantErr: errors.ErrInput,
		},
		"missing collection": {
			msg: DeleteBidMsg{
				Metadata: &weave.Metadata{Schema: 1},
				TokenId:  []byte("token-1"),
				Bidder:   bidder,
			},
			wantErr: errors.ErrEmpty,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("want %+v, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestTransferFundsMsgValidate(t *testing.T) {
	destination := weavetest.NewCondition().Address()

	cases := map[string]struct {
		msg     TransferFundsMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: TransferFundsMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Destination: destination,
				Amount:      coin.NewCoin(100, 0, "PURR"),
			},
		},
		"missing metadata": {
			msg: TransferFundsMsg{
				Destination: destination,
				Amount:      coin.NewCoin(100, 0, "PURR"),
			},
			wantErr: errors.ErrMetadata,
		},
		"invalid destination": {
			msg: TransferFundsMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Destination: []byte("too-short"),
				Amount:      coin.NewCoin(100, 0, "PURR"),
			},
			wantErr: errors.ErrInput,
		},
		"zero amount": {
			msg: TransferFundsMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Destination: destination,
				Amount:      coin.NewCoin(0, 0, "PURR"),
			},
			wantErr: errors.ErrAmount,
		},
		"negative amount": {
			msg: TransferFundsMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Destination: destination,
				Amount:      coin.NewCoin(-5, 0, "PURR"),
			},
			wantErr: errors.ErrAmount,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("want %+v, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestUpdateConfigurationMsgValidate(t *testing.T) {
	owner := weavetest.NewCondition().Address()

	msg := UpdateConfigurationMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Patch: &Configuration{
			Metadata:   &weave.Metadata{Schema: 1},
			Owner:      owner,
			FeePercent: 5,
		},
	}
	if err := msg.Validate(); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	msg.Patch = nil
	if err := msg.Validate(); !errors.ErrEmpty.Is(err) {
		t.Fatalf("want empty patch error, got %+v", err)
	}
}

func TestConfigurationValidate(t *testing.T) {
	owner := weavetest.NewCondition().Address()

	conf := Configuration{
		Metadata:   &weave.Metadata{Schema: 1},
		Owner:      owner,
		FeePercent: 101,
	}
	if err := conf.Validate(); !errors.ErrInput.Is(err) {
		t.Fatalf("want input error for fee above 100, got %+v", err)
	}
	conf.FeePercent = 100
	if err := conf.Validate(); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
}
