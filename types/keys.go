package types

const (
	// ModuleName defines the module name
	ModuleName = "wadexp"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)
