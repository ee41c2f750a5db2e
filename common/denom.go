package common

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/tendermint/tendermint/crypto/tmhash"
)

var (
	ErrEmptyBaseDenom        = errors.New("base denomination cannot be empty")
	ErrInvalidTraceLength    = errors.New("invalid denomination trace length")
	ErrInvalidTracePortID    = errors.New("invalid port identifier in denomination trace")
	ErrInvalidTraceChannelID = errors.New("invalid channel identifier in denomination trace")
)

// BaseDenom is the leaf token symbol of a denomination, stripped of any
// source tracing information.
type BaseDenom string

// NewBaseDenom validates and creates a base denomination
func NewBaseDenom(denom string) (BaseDenom, error) {
	if strings.TrimSpace(denom) == "" {
		return "", ErrEmptyBaseDenom
	}
	return BaseDenom(denom), nil
}

func (d BaseDenom) Equals(d2 BaseDenom) bool {
	return d == d2
}

func (d BaseDenom) IsEmpty() bool {
	return strings.TrimSpace(string(d)) == ""
}

func (d BaseDenom) String() string {
	return string(d)
}

// TracePrefix is a single hop in a denomination trace: the port and channel
// a token traversed on its way to this chain.
type TracePrefix struct {
	PortID    PortID    `json:"port_id"`
	ChannelID ChannelID `json:"channel_id"`
}

// NewTracePrefix create a new TracePrefix
func NewTracePrefix(portID PortID, channelID ChannelID) TracePrefix {
	return TracePrefix{
		PortID:    portID,
		ChannelID: channelID,
	}
}

func (p TracePrefix) Equals(p2 TracePrefix) bool {
	return p.PortID.Equals(p2.PortID) && p.ChannelID.Equals(p2.ChannelID)
}

func (p TracePrefix) String() string {
	return fmt.Sprintf("%s/%s", p.PortID, p.ChannelID)
}

// TracePath records the hops a token has travelled. In its textual form the
// leftmost hop is the most recently traversed one. Hops are stored in reverse
// so the current hop always sits at the tail of the slice, making prepend and
// strip cheap.
type TracePath []TracePrefix

// NewTracePath parses a '/'-joined list of port/channel pairs. An empty or
// blank string yields an empty path.
func NewTracePath(path string) (TracePath, error) {
	if strings.TrimSpace(path) == "" {
		return TracePath{}, nil
	}
	return tracePathFromParts(strings.Split(path, "/"))
}

// tracePathFromParts builds a trace path from the '/'-split segments of a
// denomination string. Pairs are read right to left so that the oldest hop is
// stored first.
func tracePathFromParts(parts []string) (TracePath, error) {
	if len(parts)%2 != 0 {
		return nil, errors.Wrapf(ErrInvalidTraceLength, "%d segments", len(parts))
	}
	path := make(TracePath, 0, len(parts)/2)
	for i := len(parts) - 2; i >= 0; i -= 2 {
		pos := (len(parts) - 2 - i) / 2
		portID, err := NewPortID(parts[i])
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidTracePortID, "hop %d: %s", pos, err)
		}
		channelID, err := NewChannelID(parts[i+1])
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidTraceChannelID, "hop %d: %s", pos, err)
		}
		path = append(path, NewTracePrefix(portID, channelID))
	}
	return path, nil
}

// StartsWith returns true iff the current hop equals the given prefix. Deeper
// hops are never inspected.
func (p TracePath) StartsWith(prefix TracePrefix) bool {
	if len(p) == 0 {
		return false
	}
	return p[len(p)-1].Equals(prefix)
}

// AddPrefix returns the path with prefix pushed as the new current hop.
func (p TracePath) AddPrefix(prefix TracePrefix) TracePath {
	return append(p[:len(p):len(p)], prefix)
}

// RemovePrefix strips the current hop when it matches the given prefix,
// otherwise the path is returned unchanged.
func (p TracePath) RemovePrefix(prefix TracePrefix) TracePath {
	if !p.StartsWith(prefix) {
		return p
	}
	return p[:len(p)-1]
}

func (p TracePath) IsEmpty() bool {
	return len(p) == 0
}

func (p TracePath) Equals(p2 TracePath) bool {
	if len(p) != len(p2) {
		return false
	}
	for i := range p {
		if !p[i].Equals(p2[i]) {
			return false
		}
	}
	return true
}

func (p TracePath) String() string {
	hops := make([]string, 0, len(p))
	for i := len(p) - 1; i >= 0; i-- {
		hops = append(hops, p[i].String())
	}
	return strings.Join(hops, "/")
}

// PrefixedDenom is the canonical on-ledger token identity: a base
// denomination plus the trace of the channels it arrived through.
type PrefixedDenom struct {
	Trace TracePath `json:"trace_path"`
	Base  BaseDenom `json:"base_denom"`
}

// NewPrefixedDenom parses a denomination string. The final '/'-delimited
// segment is always the base denomination; everything before it is the trace.
func NewPrefixedDenom(denom string) (PrefixedDenom, error) {
	parts := strings.Split(denom, "/")
	base, err := NewBaseDenom(parts[len(parts)-1])
	if err != nil {
		return PrefixedDenom{}, err
	}
	if len(parts) == 1 {
		return PrefixedDenom{Base: base}, nil
	}
	trace, err := tracePathFromParts(parts[:len(parts)-1])
	if err != nil {
		return PrefixedDenom{}, err
	}
	return PrefixedDenom{Trace: trace, Base: base}, nil
}

// AddTracePrefix returns the denomination with prefix pushed as its new
// current hop.
func (d PrefixedDenom) AddTracePrefix(prefix TracePrefix) PrefixedDenom {
	d.Trace = d.Trace.AddPrefix(prefix)
	return d
}

// RemoveTracePrefix strips the current hop when it matches the given prefix,
// otherwise the denomination is returned unchanged.
func (d PrefixedDenom) RemoveTracePrefix(prefix TracePrefix) PrefixedDenom {
	d.Trace = d.Trace.RemovePrefix(prefix)
	return d
}

// IsNative returns true when the token never left this chain, i.e. the trace
// is empty.
func (d PrefixedDenom) IsNative() bool {
	return d.Trace.IsEmpty()
}

func (d PrefixedDenom) Equals(d2 PrefixedDenom) bool {
	return d.Base.Equals(d2.Base) && d.Trace.Equals(d2.Trace)
}

// Hash returns the SHA-256 digest of the canonical denomination string. The
// input encoding is fixed; registered ledger state references these digests.
func (d PrefixedDenom) Hash() []byte {
	return tmhash.Sum([]byte(d.String()))
}

// HashString is the uppercase hex form of Hash, used as the registry key.
func (d PrefixedDenom) HashString() string {
	return strings.ToUpper(hex.EncodeToString(d.Hash()))
}

// IBCDenom is the hashed display form of a traced denomination.
func (d PrefixedDenom) IBCDenom() string {
	if d.IsNative() {
		return d.Base.String()
	}
	return fmt.Sprintf("ibc/%s", d.HashString())
}

func (d PrefixedDenom) String() string {
	if d.Trace.IsEmpty() {
		return d.Base.String()
	}
	return fmt.Sprintf("%s/%s", d.Trace, d.Base)
}

// IsReceiverChainSource returns true when the receiving chain is the source
// of the funds for a transfer arriving through (sourcePort, sourceChannel):
// the denomination's current hop records that it previously left this chain
// through that exact channel, so this chain holds the escrowed originals.
func IsReceiverChainSource(sourcePort PortID, sourceChannel ChannelID, denom PrefixedDenom) bool {
	return denom.Trace.StartsWith(NewTracePrefix(sourcePort, sourceChannel))
}

// IsSenderChainSource is the exact complement of IsReceiverChainSource: when
// the receiving chain holds no matching escrow, the sending chain escrows and
// this chain mints a voucher.
func IsSenderChainSource(sourcePort PortID, sourceChannel ChannelID, denom PrefixedDenom) bool {
	return !IsReceiverChainSource(sourcePort, sourceChannel, denom)
}
