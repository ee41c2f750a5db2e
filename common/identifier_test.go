package common

import (
	"strings"

	. "gopkg.in/check.v1"
)

type IdentifierSuite struct{}

var _ = Suite(&IdentifierSuite{})

func (s IdentifierSuite) TestPortID(c *C) {
	port, err := NewPortID("transfer")
	c.Assert(err, IsNil)
	c.Check(port.String(), Equals, "transfer")
	c.Check(port.IsEmpty(), Equals, false)
	c.Check(port.Equals(PortID("transfer")), Equals, true)

	for _, input := range []string{
		"",
		" ",
		"p", // too short
		strings.Repeat("p", 129),
		"(transfer)",
		"trans/fer",
		"transfer ",
	} {
		_, err := NewPortID(input)
		c.Check(err, NotNil, Commentf(input))
	}
}

func (s IdentifierSuite) TestChannelID(c *C) {
	channel, err := NewChannelID("channel-0")
	c.Assert(err, IsNil)
	c.Check(channel.String(), Equals, "channel-0")

	_, err = NewChannelID("channelToA")
	c.Assert(err, IsNil)

	for _, input := range []string{
		"",
		"chan", // too short
		strings.Repeat("c", 65),
		"(channel-0)",
		"channel/0",
	} {
		_, err := NewChannelID(input)
		c.Check(err, NotNil, Commentf(input))
	}
}
