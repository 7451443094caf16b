package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/bllu404/wadexp"
	"github.com/bllu404/wadexp/types"
)

var _ types.QueryServer = &queryServer{}

type queryServer struct {
	*Keeper
}

// NewQueryServer creates a new QueryServer for the module.
func NewQueryServer(keeper *Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

// Exp evaluates e^x for an 18-decimal fixed-point exponent. It is a thin
// forwarder around the evaluator: no state is read or written.
func (k queryServer) Exp(goCtx context.Context, req *types.QueryExpRequest) (*types.QueryExpResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.Exponent.IsNil() {
		return nil, status.Error(codes.InvalidArgument, "exponent must be provided")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	res, err := wadexp.Exp(req.Exponent)
	switch {
	case err == nil:
	case types.ErrExponentOutOfRange.Is(err):
		return nil, status.Errorf(codes.InvalidArgument, "invalid exponent: %v", err)
	default:
		return nil, status.Errorf(codes.Internal, "failed to evaluate exponential: %v", err)
	}

	return &types.QueryExpResponse{
		Result: res,
		Height: ctx.BlockHeight(),
		Time:   ctx.BlockTime().UTC(),
	}, nil
}
