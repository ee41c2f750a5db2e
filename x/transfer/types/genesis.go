package types

import (
	"github.com/pkg/errors"

	"gitlab.com/interchain/transfernode/common"
)

// ChannelPair is a registered (port, channel) endpoint whose escrow account
// the module may resolve.
type ChannelPair struct {
	PortID    common.PortID    `json:"port_id"`
	ChannelID common.ChannelID `json:"channel_id"`
}

// GenesisState is the exported module state
type GenesisState struct {
	Params      Params        `json:"params"`
	DenomTraces []string      `json:"denom_traces"`
	Channels    []ChannelPair `json:"channels"`
}

// NewGenesisState create a new GenesisState
func NewGenesisState(params Params, traces []string, channels []ChannelPair) GenesisState {
	return GenesisState{
		Params:      params,
		DenomTraces: traces,
		Channels:    channels,
	}
}

// DefaultGenesisState returns an empty state with default params
func DefaultGenesisState() GenesisState {
	return NewGenesisState(DefaultParams(), nil, nil)
}

// Validate checks params, every registered trace and every channel endpoint
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	for _, trace := range gs.DenomTraces {
		denom, err := common.NewPrefixedDenom(trace)
		if err != nil {
			return errors.Wrapf(err, "invalid denomination trace %q", trace)
		}
		if denom.IsNative() {
			return errors.Errorf("denomination trace %q has no hops", trace)
		}
	}
	for _, ch := range gs.Channels {
		if _, err := common.NewPortID(ch.PortID.String()); err != nil {
			return err
		}
		if _, err := common.NewChannelID(ch.ChannelID.String()); err != nil {
			return err
		}
	}
	return nil
}
