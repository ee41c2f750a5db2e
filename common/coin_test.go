package common

import (
	"github.com/pkg/errors"
	. "gopkg.in/check.v1"
)

type CoinSuite struct{}

var _ = Suite(&CoinSuite{})

func (s CoinSuite) TestWireConversion(c *C) {
	coin, err := NewPrefixedCoinFromWire("transfer/channel-0/uatom", "100")
	c.Assert(err, IsNil)
	c.Check(coin.Denom.Base.String(), Equals, "uatom")
	c.Check(coin.Amount.Equals(NewAmountFromUint64(100)), Equals, true)

	denom, amount := coin.Wire()
	c.Check(denom, Equals, "transfer/channel-0/uatom")
	c.Check(amount, Equals, "100")

	// parser errors propagate unchanged
	_, err = NewPrefixedCoinFromWire("", "100")
	c.Check(errors.Is(err, ErrEmptyBaseDenom), Equals, true)
	_, err = NewPrefixedCoinFromWire("transfer/uatom", "100")
	c.Check(errors.Is(err, ErrInvalidTraceLength), Equals, true)
	_, err = NewPrefixedCoinFromWire("uatom", "abc")
	c.Check(errors.Is(err, ErrInvalidAmount), Equals, true)
}

func (s CoinSuite) TestBaseCoin(c *C) {
	coin, err := NewBaseCoinFromWire("uatom", "12")
	c.Assert(err, IsNil)
	c.Check(coin.IsEmpty(), Equals, false)

	prefixed := coin.Prefixed()
	c.Check(prefixed.Denom.IsNative(), Equals, true)
	c.Check(prefixed.Denom.Base.Equals(coin.Denom), Equals, true)
	c.Check(prefixed.Amount.Equals(coin.Amount), Equals, true)
}

func (s CoinSuite) TestNative(c *C) {
	coin, err := NewPrefixedCoinFromWire("transfer/channel-7/uatom", "100")
	c.Assert(err, IsNil)

	native, err := coin.Native()
	c.Assert(err, IsNil)
	c.Check(native.Denom, Equals, "transfer/channel-7/uatom")
	c.Check(native.Amount.String(), Equals, "100")

	// a denomination the ledger cannot carry is rejected, not passed through
	coin, err = NewPrefixedCoinFromWire("u", "100")
	c.Assert(err, IsNil)
	_, err = coin.Native()
	c.Check(err, NotNil)
}
