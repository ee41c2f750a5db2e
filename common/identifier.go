package common

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	portIDMinLength = 2
	portIDMaxLength = 128

	channelIDMinLength = 8
	channelIDMaxLength = 64
)

// charset shared by port and channel identifiers
var isValidIdentifier = regexp.MustCompile(`^[a-zA-Z0-9\.\_\+\-\#\[\]\<\>]+$`).MatchString

// PortID identifies a port on this chain.
type PortID string

// ChannelID identifies a channel bound to a port.
type ChannelID string

var (
	EmptyPortID    = PortID("")
	EmptyChannelID = ChannelID("")
)

// NewPortID validates and creates a port identifier
func NewPortID(id string) (PortID, error) {
	if err := validateIdentifier(id, portIDMinLength, portIDMaxLength); err != nil {
		return EmptyPortID, fmt.Errorf("invalid port identifier: %w", err)
	}
	return PortID(id), nil
}

func (p PortID) Equals(p2 PortID) bool {
	return p == p2
}

func (p PortID) IsEmpty() bool {
	return strings.TrimSpace(string(p)) == ""
}

func (p PortID) String() string {
	return string(p)
}

// NewChannelID validates and creates a channel identifier
func NewChannelID(id string) (ChannelID, error) {
	if err := validateIdentifier(id, channelIDMinLength, channelIDMaxLength); err != nil {
		return EmptyChannelID, fmt.Errorf("invalid channel identifier: %w", err)
	}
	return ChannelID(id), nil
}

func (c ChannelID) Equals(c2 ChannelID) bool {
	return c == c2
}

func (c ChannelID) IsEmpty() bool {
	return strings.TrimSpace(string(c)) == ""
}

func (c ChannelID) String() string {
	return string(c)
}

func validateIdentifier(id string, min, max int) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("identifier cannot be blank")
	}
	if len(id) < min || len(id) > max {
		return fmt.Errorf("identifier %s has invalid length %d, must be between %d-%d characters", id, len(id), min, max)
	}
	if !isValidIdentifier(id) {
		return fmt.Errorf("identifier %s contains characters outside the allowed charset", id)
	}
	return nil
}
