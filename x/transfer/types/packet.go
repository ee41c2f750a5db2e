package types

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"gitlab.com/interchain/transfernode/common"
)

// Packet is the inbound packet metadata the transfer application consumes.
// Commitments, timeouts and relay bookkeeping stay with the channel layer.
type Packet struct {
	Sequence           uint64           `json:"sequence"`
	SourcePort         common.PortID    `json:"source_port"`
	SourceChannel      common.ChannelID `json:"source_channel"`
	DestinationPort    common.PortID    `json:"destination_port"`
	DestinationChannel common.ChannelID `json:"destination_channel"`
}

// NewPacket create a new Packet
func NewPacket(sequence uint64, sourcePort common.PortID, sourceChannel common.ChannelID, destinationPort common.PortID, destinationChannel common.ChannelID) Packet {
	return Packet{
		Sequence:           sequence,
		SourcePort:         sourcePort,
		SourceChannel:      sourceChannel,
		DestinationPort:    destinationPort,
		DestinationChannel: destinationChannel,
	}
}

// FungibleTokenPacketData is the wire form of a transfer payload. Field order
// and encoding are fixed for interoperability.
type FungibleTokenPacketData struct {
	Denom    string `json:"denom"`
	Amount   string `json:"amount"`
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
}

// PacketData is the parsed transfer payload. The receiver stays in wire form:
// resolving it into a local account is the receive handler's job.
type PacketData struct {
	Token    common.PrefixedCoin
	Sender   common.Address
	Receiver string
}

// NewPacketData parses a wire payload, propagating the denomination and
// amount parser errors.
func NewPacketData(raw FungibleTokenPacketData) (PacketData, error) {
	token, err := common.NewPrefixedCoinFromWire(raw.Denom, raw.Amount)
	if err != nil {
		return PacketData{}, err
	}
	sender, err := common.NewAddress(raw.Sender)
	if err != nil {
		return PacketData{}, errors.Wrap(ErrInvalidPacketData, err.Error())
	}
	if sender.IsEmpty() {
		return PacketData{}, errors.Wrap(ErrInvalidPacketData, "sender cannot be empty")
	}
	if strings.TrimSpace(raw.Receiver) == "" {
		return PacketData{}, errors.Wrap(ErrInvalidPacketData, "receiver cannot be empty")
	}
	return PacketData{
		Token:    token,
		Sender:   sender,
		Receiver: raw.Receiver,
	}, nil
}

// DecodePacketData parses the raw JSON bytes of a transfer payload.
func DecodePacketData(bz []byte) (PacketData, error) {
	var raw FungibleTokenPacketData
	if err := json.Unmarshal(bz, &raw); err != nil {
		return PacketData{}, errors.Wrap(ErrInvalidPacketData, err.Error())
	}
	return NewPacketData(raw)
}

// Wire renders the payload back to its wire form. Rendering the wire form of
// a parsed payload reproduces the original exactly.
func (d PacketData) Wire() FungibleTokenPacketData {
	denom, amount := d.Token.Wire()
	return FungibleTokenPacketData{
		Denom:    denom,
		Amount:   amount,
		Sender:   d.Sender.String(),
		Receiver: d.Receiver,
	}
}
