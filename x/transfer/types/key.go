package types

const (
	// module names
	ModuleName = "transfer"

	// StoreKey to be used when creating the KVStore
	StoreKey = ModuleName

	RouterKey = ModuleName

	// DefaultPortID is the port the module binds by default
	DefaultPortID = "transfer"
)
