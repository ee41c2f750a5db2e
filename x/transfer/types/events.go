package types

const (
	// EventTypeDenomTrace announces the registration of a voucher
	// denomination, carrying its hash and full canonical form.
	EventTypeDenomTrace = "denomination_trace"

	AttributeKeyTraceHash = "trace_hash"
	AttributeKeyDenom     = "denom"

	AttributeValueCategory = ModuleName
)
