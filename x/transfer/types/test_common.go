// Please put all the test related function to here
package types

import (
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"gitlab.com/interchain/transfernode/common"
)

// GetRandomBech32Addr is an account address used for test
func GetRandomBech32Addr() sdk.AccAddress {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
}

// GetRandomTransferPacket create an inbound packet used for test purpose
func GetRandomTransferPacket(sourceChannel, destinationChannel string) Packet {
	port, _ := common.NewPortID(DefaultPortID)
	sc, _ := common.NewChannelID(sourceChannel)
	dc, _ := common.NewChannelID(destinationChannel)
	return NewPacket(1, port, sc, port, dc)
}

// GetTransferPayload create a parsed transfer payload used for test purpose
func GetTransferPayload(denom, amount string, receiver sdk.AccAddress) PacketData {
	data, err := NewPacketData(FungibleTokenPacketData{
		Denom:    denom,
		Amount:   amount,
		Sender:   GetRandomBech32Addr().String(),
		Receiver: receiver.String(),
	})
	if err != nil {
		panic(err)
	}
	return data
}
