package common

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcutil/bech32"
)

// Address is a loosely validated counterparty address. Transfer payloads
// carry sender addresses minted by other chains, so only the two encodings
// seen on the wire are checked; local receiver accounts are parsed strictly
// elsewhere.
type Address string

var NoAddress = Address("")

// NewAddress create a new Address
// Sample: cosmos1lejrrtta9cgr49fuh7ktu3sddhe0ff7wergk5n
func NewAddress(address string) (Address, error) {
	if len(address) == 0 {
		return NoAddress, nil
	}

	// Check is eth address
	if strings.HasPrefix(address, "0x") {
		if len(address) != 42 {
			return NoAddress, fmt.Errorf("0x address must be 42 characters (%d/42)", len(address))
		}
		return Address(address), nil
	}

	_, _, err := bech32.Decode(address)
	if err != nil {
		return NoAddress, err
	}

	return Address(address), nil
}

func (addr Address) Equals(addr2 Address) bool {
	return strings.EqualFold(addr.String(), addr2.String())
}

func (addr Address) IsEmpty() bool {
	return strings.TrimSpace(addr.String()) == ""
}

func (addr Address) String() string {
	return string(addr)
}
