package types

import (
	"fmt"

	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
)

// KeyReceiveEnabled is the store key for the ReceiveEnabled parameter
var KeyReceiveEnabled = []byte("ReceiveEnabled")

// Params holds the module behaviour flags, owned by the host app's params
// subspace.
type Params struct {
	// ReceiveEnabled gates the processing of all inbound transfer packets
	ReceiveEnabled bool `json:"receive_enabled" yaml:"receive_enabled"`
}

var _ paramtypes.ParamSet = (*Params)(nil)

// NewParams create a new Params
func NewParams(receiveEnabled bool) Params {
	return Params{
		ReceiveEnabled: receiveEnabled,
	}
}

// DefaultParams returns the default set: receiving enabled
func DefaultParams() Params {
	return NewParams(true)
}

// ParamKeyTable type declaration for parameters
func ParamKeyTable() paramtypes.KeyTable {
	return paramtypes.NewKeyTable().RegisterParamSet(&Params{})
}

// ParamSetPairs implements paramtypes.ParamSet
func (p *Params) ParamSetPairs() paramtypes.ParamSetPairs {
	return paramtypes.ParamSetPairs{
		paramtypes.NewParamSetPair(KeyReceiveEnabled, &p.ReceiveEnabled, validateEnabled),
	}
}

// Validate checks every parameter value
func (p Params) Validate() error {
	return validateEnabled(p.ReceiveEnabled)
}

func validateEnabled(i interface{}) error {
	if _, ok := i.(bool); !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	return nil
}
