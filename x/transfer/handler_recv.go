package transfer

import (
	"github.com/blang/semver"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"

	"gitlab.com/interchain/transfernode/common"
	"gitlab.com/interchain/transfernode/x/transfer/types"
)

// RecvHandler decides how an inbound transfer packet settles: funds are
// released from escrow when this chain is their source, or minted as a
// voucher when the sending chain is. It never mutates state itself; on
// success it returns exactly one deferred Action for the caller to apply once
// the enclosing transaction is fully validated.
type RecvHandler struct {
	keeper Keeper
}

// NewRecvHandler create a new instance of RecvHandler
func NewRecvHandler(keeper Keeper) RecvHandler {
	return RecvHandler{
		keeper: keeper,
	}
}

// Run validates the packet against current state and produces the deferred
// settlement action.
func (h RecvHandler) Run(ctx sdk.Context, packet types.Packet, data types.PacketData, version semver.Version) (Action, error) {
	receiver, err := h.validate(ctx, data, version)
	if err != nil {
		return nil, err
	}
	return h.handle(ctx, packet, data, receiver, version)
}

func (h RecvHandler) validate(ctx sdk.Context, data types.PacketData, version semver.Version) (sdk.AccAddress, error) {
	if version.GTE(semver.MustParse("0.1.0")) {
		return h.validateV1(ctx, data)
	}
	ctx.Logger().Error(types.ErrBadVersion.Error())
	return nil, types.ErrBadVersion
}

func (h RecvHandler) validateV1(ctx sdk.Context, data types.PacketData) (sdk.AccAddress, error) {
	if !h.keeper.IsReceiveEnabled(ctx) {
		return nil, types.ErrReceiveDisabled
	}
	receiver, err := sdk.AccAddressFromBech32(data.Receiver)
	if err != nil {
		return nil, errors.Wrap(types.ErrParseAccountFailure, data.Receiver)
	}
	return receiver, nil
}

func (h RecvHandler) handle(ctx sdk.Context, packet types.Packet, data types.PacketData, receiver sdk.AccAddress, version semver.Version) (Action, error) {
	h.keeper.Logger(ctx).Info("receive transfer packet",
		"sequence", packet.Sequence,
		"denom", data.Token.Denom.String(),
		"amount", data.Token.Amount.String(),
		"receiver", data.Receiver)
	if version.GTE(semver.MustParse("0.1.0")) {
		return h.handleV1(ctx, packet, data, receiver)
	}
	ctx.Logger().Error(types.ErrBadVersion.Error())
	return nil, types.ErrBadVersion
}

func (h RecvHandler) handleV1(ctx sdk.Context, packet types.Packet, data types.PacketData, receiver sdk.AccAddress) (Action, error) {
	prefix := common.NewTracePrefix(packet.SourcePort, packet.SourceChannel)

	if common.IsReceiverChainSource(packet.SourcePort, packet.SourceChannel, data.Token.Denom) {
		// these funds left this chain through the packet's source channel,
		// release them from escrow
		if h.keeper.IsBlockedAccount(ctx, receiver) {
			return nil, errors.Wrap(types.ErrUnauthorisedReceive, data.Receiver)
		}
		coin := common.NewPrefixedCoin(data.Token.Denom.RemoveTracePrefix(prefix), data.Token.Amount)
		native, err := coin.Native()
		if err != nil {
			return nil, err
		}
		escrow, err := h.keeper.GetChannelEscrowAddress(ctx, packet.DestinationPort, packet.DestinationChannel)
		if err != nil {
			return nil, err
		}
		return UnescrowAction{
			From: escrow,
			To:   receiver,
			Coin: native,
		}, nil
	}

	// the sending chain is the source, mint a voucher under the trace
	// extended with the packet's destination hop
	voucher := data.Token.Denom.AddTracePrefix(common.NewTracePrefix(packet.DestinationPort, packet.DestinationChannel))
	native, err := common.NewPrefixedCoin(voucher, data.Token.Amount).Native()
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDenomTrace,
			sdk.NewAttribute(types.AttributeKeyTraceHash, voucher.HashString()),
			sdk.NewAttribute(types.AttributeKeyDenom, voucher.String()),
		),
	)

	return MintVoucherAction{
		To:    receiver,
		Coin:  native,
		Trace: voucher,
	}, nil
}
