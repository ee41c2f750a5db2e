package transfer

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"

	"gitlab.com/interchain/transfernode/common"
	"gitlab.com/interchain/transfernode/x/transfer/types"
)

// SetDenomTrace registers the hash to denomination mapping of a voucher
func (k Keeper) SetDenomTrace(ctx sdk.Context, denom common.PrefixedDenom) error {
	if denom.Base.IsEmpty() {
		return errors.New("cannot register an empty denomination")
	}
	if denom.IsNative() {
		return errors.Errorf("denomination %s has no hops to register", denom)
	}
	store := ctx.KVStore(k.storeKey)
	key := getKey(prefixDenomTrace, denom.HashString())
	store.Set([]byte(key), []byte(denom.String()))
	return nil
}

// HasDenomTrace checks whether a trace hash is already registered
func (k Keeper) HasDenomTrace(ctx sdk.Context, hash string) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has([]byte(getKey(prefixDenomTrace, hash)))
}

// GetDenomTrace resolves a registered trace hash back to its denomination
func (k Keeper) GetDenomTrace(ctx sdk.Context, hash string) (common.PrefixedDenom, error) {
	store := ctx.KVStore(k.storeKey)
	key := getKey(prefixDenomTrace, hash)
	if !store.Has([]byte(key)) {
		return common.PrefixedDenom{}, errors.Wrap(types.ErrTraceNotFound, hash)
	}
	denom, err := common.NewPrefixedDenom(string(store.Get([]byte(key))))
	if err != nil {
		return common.PrefixedDenom{}, errors.Wrapf(err, "fail to parse stored denomination trace %s", hash)
	}
	return denom, nil
}

// GetDenomTraces returns every registered denomination, used for genesis export
func (k Keeper) GetDenomTraces(ctx sdk.Context) ([]common.PrefixedDenom, error) {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, []byte(prefixDenomTrace))
	defer iterator.Close()

	var traces []common.PrefixedDenom
	for ; iterator.Valid(); iterator.Next() {
		denom, err := common.NewPrefixedDenom(string(iterator.Value()))
		if err != nil {
			return nil, errors.Wrapf(err, "fail to parse stored denomination trace %s", iterator.Key())
		}
		traces = append(traces, denom)
	}
	return traces, nil
}
