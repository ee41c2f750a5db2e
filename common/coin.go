package common

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BaseCoin pairs an amount with an untraced denomination.
type BaseCoin struct {
	Denom  BaseDenom `json:"denom"`
	Amount Amount    `json:"amount"`
}

// PrefixedCoin pairs an amount with a fully qualified denomination.
type PrefixedCoin struct {
	Denom  PrefixedDenom `json:"denom"`
	Amount Amount        `json:"amount"`
}

// NewBaseCoin return a new instance of BaseCoin
func NewBaseCoin(denom BaseDenom, amount Amount) BaseCoin {
	return BaseCoin{
		Denom:  denom,
		Amount: amount,
	}
}

// NewPrefixedCoin return a new instance of PrefixedCoin
func NewPrefixedCoin(denom PrefixedDenom, amount Amount) PrefixedCoin {
	return PrefixedCoin{
		Denom:  denom,
		Amount: amount,
	}
}

// NewBaseCoinFromWire parses the {denom, amount} string pair of an untraced
// coin, propagating the denomination and amount parser errors.
func NewBaseCoinFromWire(denom, amount string) (BaseCoin, error) {
	d, err := NewBaseDenom(denom)
	if err != nil {
		return BaseCoin{}, err
	}
	a, err := NewAmountFromString(amount)
	if err != nil {
		return BaseCoin{}, err
	}
	return NewBaseCoin(d, a), nil
}

// NewPrefixedCoinFromWire parses the {denom, amount} string pair carried in
// transfer payloads, propagating the denomination and amount parser errors.
func NewPrefixedCoinFromWire(denom, amount string) (PrefixedCoin, error) {
	d, err := NewPrefixedDenom(denom)
	if err != nil {
		return PrefixedCoin{}, err
	}
	a, err := NewAmountFromString(amount)
	if err != nil {
		return PrefixedCoin{}, err
	}
	return NewPrefixedCoin(d, a), nil
}

// Prefixed upgrades a base coin to a prefixed coin with an empty trace.
func (c BaseCoin) Prefixed() PrefixedCoin {
	return PrefixedCoin{
		Denom:  PrefixedDenom{Base: c.Denom},
		Amount: c.Amount,
	}
}

func (c BaseCoin) IsEmpty() bool {
	return c.Denom.IsEmpty()
}

func (c BaseCoin) String() string {
	return fmt.Sprintf("%s%s", c.Amount, c.Denom)
}

func (c PrefixedCoin) Equals(c2 PrefixedCoin) bool {
	return c.Denom.Equals(c2.Denom) && c.Amount.Equals(c2.Amount)
}

func (c PrefixedCoin) IsEmpty() bool {
	return c.Denom.Base.IsEmpty()
}

// Wire renders the coin back to its {denom, amount} string pair.
func (c PrefixedCoin) Wire() (denom, amount string) {
	return c.Denom.String(), c.Amount.String()
}

// Native converts the coin to the ledger's coin type, with the canonical
// denomination string as the bank denomination.
func (c PrefixedCoin) Native() (sdk.Coin, error) {
	amt, err := c.Amount.Int()
	if err != nil {
		return sdk.Coin{}, err
	}
	coin := sdk.Coin{
		Denom:  c.Denom.String(),
		Amount: amt,
	}
	if err := coin.Validate(); err != nil {
		return sdk.Coin{}, err
	}
	return coin, nil
}

func (c PrefixedCoin) String() string {
	return fmt.Sprintf("%s%s", c.Amount, c.Denom)
}
