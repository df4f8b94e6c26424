package nftoken

import (
	"strings"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
)

func TestCreateCollectionMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     CreateCollectionMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: CreateCollectionMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Name:     "Kitties",
			},
		},
		"missing name": {
			msg: CreateCollectionMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
			wantErr: errors.ErrEmpty,
		},
		"oversized name": {
			msg: CreateCollectionMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Name:     strings.Repeat("x", maxNameSize+1),
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

func TestTransferTokenMsgValidate(t *testing.T) {
	to := weavetest.NewCondition().Address()

	cases := map[string]struct {
		msg     TransferTokenMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: TransferTokenMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: []byte("kitties"),
				TokenId:    []byte("token-1"),
				To:         to,
			},
		},
		"missing destination": {
			msg: TransferTokenMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: []byte("kitties"),
				TokenId:    []byte("token-1"),
			},
			wantErr: errors.ErrInput,
		},
		"missing token": {
			msg: TransferTokenMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				Collection: []byte("kitties"),
				To:         to,
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

func TestApproveOperatorMsgValidate(t *testing.T) {
	operator := weavetest.NewCondition().Address()

	msg := ApproveOperatorMsg{
		Metadata:   &weave.Metadata{Schema: 1},
		Collection: []byte("kitties"),
		Operator:   operator,
	}
	if err := msg.Validate(); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	msg.Operator = nil
	if err := msg.Validate(); !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %+v", err)
	}
}
