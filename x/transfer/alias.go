package transfer

import (
	"gitlab.com/interchain/transfernode/x/transfer/types"
)

const (
	ModuleName    = types.ModuleName
	StoreKey      = types.StoreKey
	RouterKey     = types.RouterKey
	DefaultPortID = types.DefaultPortID
)

var (
	NewPacket           = types.NewPacket
	NewPacketData       = types.NewPacketData
	DecodePacketData    = types.DecodePacketData
	NewParams           = types.NewParams
	DefaultParams       = types.DefaultParams
	ParamKeyTable       = types.ParamKeyTable
	NewGenesisState     = types.NewGenesisState
	DefaultGenesisState = types.DefaultGenesisState

	ErrReceiveDisabled     = types.ErrReceiveDisabled
	ErrParseAccountFailure = types.ErrParseAccountFailure
	ErrUnauthorisedReceive = types.ErrUnauthorisedReceive
	ErrUnknownChannel      = types.ErrUnknownChannel
)
