package keeper

import (
	"cosmossdk.io/log"

	"github.com/bllu404/wadexp/types"
)

// Keeper exposes the module's read-only query surface. The evaluator itself
// is pure and parameter-free, so the keeper holds no store.
type Keeper struct {
	logger log.Logger
}

// NewKeeper creates a new Keeper.
func NewKeeper(logger log.Logger) *Keeper {
	return &Keeper{
		logger: logger.With("module", "x/"+types.ModuleName),
	}
}

// Logger returns the module-scoped logger.
func (k Keeper) Logger() log.Logger {
	return k.logger
}
