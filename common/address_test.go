package common

import (
	. "gopkg.in/check.v1"
)

type AddressSuite struct{}

var _ = Suite(&AddressSuite{})

func (s AddressSuite) TestAddress(c *C) {
	// bech32
	addr, err := NewAddress("bnb1lejrrtta9cgr49fuh7ktu3sddhe0ff7wenlpn6")
	c.Assert(err, IsNil)
	c.Check(addr.IsEmpty(), Equals, false)
	c.Check(addr.Equals(Address("bnb1lejrrtta9cgr49fuh7ktu3sddhe0ff7wenlpn6")), Equals, true)

	// eth style
	addr, err = NewAddress("0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1")
	c.Assert(err, IsNil)
	c.Check(addr.IsEmpty(), Equals, false)

	_, err = NewAddress("0x90f8bf6a479f320ead074411a4b0e7944ea8c9")
	c.Check(err, NotNil)

	_, err = NewAddress("bogus")
	c.Check(err, NotNil)

	// empty input is tolerated at this layer
	addr, err = NewAddress("")
	c.Assert(err, IsNil)
	c.Check(addr.IsEmpty(), Equals, true)
}
