package transfer

import (
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"
	"github.com/tendermint/tendermint/crypto"

	"gitlab.com/interchain/transfernode/common"
	"gitlab.com/interchain/transfernode/x/transfer/types"
)

// SetChannel registers a (port, channel) endpoint so its escrow account can
// be resolved. Registration happens when the channel layer completes a
// handshake on the transfer port.
func (k Keeper) SetChannel(ctx sdk.Context, portID common.PortID, channelID common.ChannelID) {
	store := ctx.KVStore(k.storeKey)
	key := getKey(prefixChannel, fmt.Sprintf("%s/%s", portID, channelID))
	store.Set([]byte(key), []byte{1})
}

// HasChannel checks whether a (port, channel) endpoint is registered
func (k Keeper) HasChannel(ctx sdk.Context, portID common.PortID, channelID common.ChannelID) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has([]byte(getKey(prefixChannel, fmt.Sprintf("%s/%s", portID, channelID))))
}

// GetChannelEscrowAddress resolves the escrow account bound to a registered
// (port, channel) endpoint. The derivation is fixed: existing escrow balances
// are keyed by it.
func (k Keeper) GetChannelEscrowAddress(ctx sdk.Context, portID common.PortID, channelID common.ChannelID) (sdk.AccAddress, error) {
	if !k.HasChannel(ctx, portID, channelID) {
		return nil, errors.Wrapf(types.ErrUnknownChannel, "%s/%s", portID, channelID)
	}
	return sdk.AccAddress(crypto.AddressHash([]byte(fmt.Sprintf("%s/%s", portID, channelID)))), nil
}

// GetChannels returns every registered endpoint, used for genesis export
func (k Keeper) GetChannels(ctx sdk.Context) ([]types.ChannelPair, error) {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, []byte(prefixChannel))
	defer iterator.Close()

	var channels []types.ChannelPair
	for ; iterator.Valid(); iterator.Next() {
		raw := strings.TrimPrefix(string(iterator.Key()), string(prefixChannel))
		parts := strings.SplitN(raw, "/", 2)
		if len(parts) != 2 {
			return nil, errors.Errorf("malformed channel key %s", raw)
		}
		portID, err := common.NewPortID(parts[0])
		if err != nil {
			return nil, errors.Wrapf(err, "malformed channel key %s", raw)
		}
		channelID, err := common.NewChannelID(parts[1])
		if err != nil {
			return nil, errors.Wrapf(err, "malformed channel key %s", raw)
		}
		channels = append(channels, types.ChannelPair{PortID: portID, ChannelID: channelID})
	}
	return channels, nil
}
