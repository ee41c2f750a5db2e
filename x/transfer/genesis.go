package transfer

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"

	"gitlab.com/interchain/transfernode/common"
	"gitlab.com/interchain/transfernode/x/transfer/types"
)

// InitGenesis installs the exported state
func InitGenesis(ctx sdk.Context, keeper Keeper, state types.GenesisState) error {
	keeper.SetParams(ctx, state.Params)
	for _, trace := range state.DenomTraces {
		denom, err := common.NewPrefixedDenom(trace)
		if err != nil {
			return errors.Wrapf(err, "invalid denomination trace %q", trace)
		}
		if err := keeper.SetDenomTrace(ctx, denom); err != nil {
			return err
		}
	}
	for _, ch := range state.Channels {
		keeper.SetChannel(ctx, ch.PortID, ch.ChannelID)
	}
	return nil
}

// ExportGenesis exports the module state
func ExportGenesis(ctx sdk.Context, keeper Keeper) (types.GenesisState, error) {
	traces, err := keeper.GetDenomTraces(ctx)
	if err != nil {
		return types.GenesisState{}, err
	}
	rendered := make([]string, 0, len(traces))
	for _, trace := range traces {
		rendered = append(rendered, trace.String())
	}
	channels, err := keeper.GetChannels(ctx)
	if err != nil {
		return types.GenesisState{}, err
	}
	return types.NewGenesisState(keeper.GetParams(ctx), rendered, channels), nil
}
