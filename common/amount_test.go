package common

import (
	"github.com/pkg/errors"
	. "gopkg.in/check.v1"
)

type AmountSuite struct{}

var _ = Suite(&AmountSuite{})

func (s AmountSuite) TestParse(c *C) {
	amount, err := NewAmountFromString("100")
	c.Assert(err, IsNil)
	c.Check(amount.String(), Equals, "100")
	c.Check(amount.Equals(NewAmountFromUint64(100)), Equals, true)

	amount, err = NewAmountFromString("0")
	c.Assert(err, IsNil)
	c.Check(amount.IsZero(), Equals, true)

	// full 256 bit range round-trips
	max := MaxAmount()
	amount, err = NewAmountFromString(max.String())
	c.Assert(err, IsNil)
	c.Check(amount.Equals(max), Equals, true)

	for _, input := range []string{
		"",
		"abc",
		"-1",
		"1.5",
		"10 ",
		"0x10",
		"115792089237316195423570985008687907853269984665640564039457584007913129639936", // 2^256
	} {
		_, err := NewAmountFromString(input)
		c.Assert(err, NotNil, Commentf(input))
		c.Check(errors.Is(err, ErrInvalidAmount), Equals, true, Commentf(input))
	}
}

func (s AmountSuite) TestCheckedArithmetic(c *C) {
	one := NewAmountFromUint64(1)
	two := NewAmountFromUint64(2)

	sum, ok := one.CheckedAdd(two)
	c.Assert(ok, Equals, true)
	c.Check(sum.Equals(NewAmountFromUint64(3)), Equals, true)

	diff, ok := two.CheckedSub(one)
	c.Assert(ok, Equals, true)
	c.Check(diff.Equals(one), Equals, true)

	// overflow yields no result
	_, ok = MaxAmount().CheckedAdd(one)
	c.Check(ok, Equals, false)

	sum, ok = MaxAmount().CheckedAdd(ZeroAmount())
	c.Assert(ok, Equals, true)
	c.Check(sum.Equals(MaxAmount()), Equals, true)

	// underflow yields no result
	_, ok = ZeroAmount().CheckedSub(one)
	c.Check(ok, Equals, false)

	diff, ok = one.CheckedSub(one)
	c.Assert(ok, Equals, true)
	c.Check(diff.IsZero(), Equals, true)
}

func (s AmountSuite) TestLedgerConversion(c *C) {
	amount, err := NewAmountFromString("123456789")
	c.Assert(err, IsNil)
	i, err := amount.Int()
	c.Assert(err, IsNil)
	c.Check(i.String(), Equals, "123456789")
}
