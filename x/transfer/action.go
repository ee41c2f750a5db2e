package transfer

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"

	"gitlab.com/interchain/transfernode/common"
	"gitlab.com/interchain/transfernode/x/transfer/types"
)

// Action is a single deferred ledger mutation produced by the receive
// handler. It is plain data: the caller applies it through ApplyAction only
// after every other validation in the enclosing transaction has passed, and
// discards it otherwise.
type Action interface {
	action()
}

// UnescrowAction releases previously escrowed funds to the receiver.
type UnescrowAction struct {
	From sdk.AccAddress
	To   sdk.AccAddress
	Coin sdk.Coin
}

// MintVoucherAction mints a voucher denomination into the module account and
// forwards it to the receiver, registering the denomination trace first when
// its hash is new.
type MintVoucherAction struct {
	To    sdk.AccAddress
	Coin  sdk.Coin
	Trace common.PrefixedDenom
}

func (UnescrowAction) action()    {}
func (MintVoucherAction) action() {}

// ApplyAction performs the ledger mutation an action describes. Failures are
// reported to the caller; the underlying ledger operations are atomic.
func (k Keeper) ApplyAction(ctx sdk.Context, action Action) error {
	switch a := action.(type) {
	case UnescrowAction:
		k.Logger(ctx).Info("unescrow", "from", a.From.String(), "to", a.To.String(), "coin", a.Coin.String())
		if err := k.bankKeeper.SendCoins(ctx, a.From, a.To, sdk.NewCoins(a.Coin)); err != nil {
			return errors.Wrap(err, "fail to release escrowed funds")
		}
		return nil
	case MintVoucherAction:
		k.Logger(ctx).Info("mint voucher", "to", a.To.String(), "coin", a.Coin.String())
		if !k.HasDenomTrace(ctx, a.Trace.HashString()) {
			if err := k.SetDenomTrace(ctx, a.Trace); err != nil {
				return err
			}
		}
		if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, sdk.NewCoins(a.Coin)); err != nil {
			return errors.Wrap(err, "fail to mint voucher")
		}
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, a.To, sdk.NewCoins(a.Coin)); err != nil {
			return errors.Wrap(err, "fail to credit receiver")
		}
		return nil
	default:
		return errors.Wrapf(types.ErrUnknownAction, "%T", action)
	}
}
