package common

import (
	"math/big"

	sdkmath "cosmossdk.io/math"
	"github.com/pkg/errors"
)

// maximum width of a transfer amount
const maxAmountBits = 256

var ErrInvalidAmount = errors.New("invalid transfer amount")

// Amount is an unsigned 256 bit transfer quantity. All arithmetic is checked,
// never wrapping; an overflowing operation reports failure instead of a
// truncated value.
type Amount struct {
	value sdkmath.Uint
}

// NewAmountFromString parses a non-negative decimal string
func NewAmountFromString(amount string) (Amount, error) {
	i, ok := new(big.Int).SetString(amount, 10)
	if !ok || i.Sign() < 0 || i.BitLen() > maxAmountBits {
		return Amount{}, errors.Wrapf(ErrInvalidAmount, "%q", amount)
	}
	return Amount{value: sdkmath.NewUintFromBigInt(i)}, nil
}

func NewAmountFromUint64(amount uint64) Amount {
	return Amount{value: sdkmath.NewUint(amount)}
}

func ZeroAmount() Amount {
	return Amount{value: sdkmath.ZeroUint()}
}

// MaxAmount is the largest representable amount, 2^256 - 1.
func MaxAmount() Amount {
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), maxAmountBits), big.NewInt(1))
	return Amount{value: sdkmath.NewUintFromBigInt(max)}
}

// CheckedAdd returns a + b, reporting false on overflow. Callers must treat a
// false result as a hard rejection of the operation that produced it.
func (a Amount) CheckedAdd(b Amount) (Amount, bool) {
	sum := new(big.Int).Add(a.value.BigInt(), b.value.BigInt())
	if sum.BitLen() > maxAmountBits {
		return Amount{}, false
	}
	return Amount{value: sdkmath.NewUintFromBigInt(sum)}, true
}

// CheckedSub returns a - b, reporting false on underflow.
func (a Amount) CheckedSub(b Amount) (Amount, bool) {
	if a.value.LT(b.value) {
		return Amount{}, false
	}
	return Amount{value: a.value.Sub(b.value)}, true
}

func (a Amount) Equals(b Amount) bool {
	return a.value.Equal(b.value)
}

func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// Uint exposes the raw unsigned value
func (a Amount) Uint() sdkmath.Uint {
	return a.value
}

// Int converts the amount to the signed integer the ledger's coins carry.
func (a Amount) Int() (sdkmath.Int, error) {
	i := a.value.BigInt()
	if i.BitLen() > maxAmountBits {
		return sdkmath.Int{}, errors.Wrapf(ErrInvalidAmount, "%s exceeds the ledger integer range", a)
	}
	return sdkmath.NewIntFromBigInt(i), nil
}

func (a Amount) String() string {
	return a.value.String()
}
