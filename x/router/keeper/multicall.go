package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/router/types"
)

// Multicall executes an ordered list of packet calls as one atomic unit: the
// branched store is committed only if every call succeeds, so a relayer can
// submit many packets in one transaction with all-or-nothing semantics.
// Replay noops inside the batch are not failures.
func (k Keeper) Multicall(ctx sdk.Context, calls []types.MulticallMsg) ([]*types.Acknowledgement, error) {
	if len(calls) == 0 {
		return nil, errorsmod.Wrap(types.ErrInvalidMulticall, "batch cannot be empty")
	}

	cacheCtx, writeFn := ctx.CacheContext()
	acks := make([]*types.Acknowledgement, len(calls))

	for i, call := range calls {
		switch {
		case call.RecvPacket != nil:
			msg := call.RecvPacket
			relayer, err := sdk.AccAddressFromBech32(msg.Relayer)
			if err != nil {
				return nil, errorsmod.Wrapf(types.ErrInvalidSigner, "call %d: %s", i, err)
			}
			ack, err := k.RecvPacket(cacheCtx, msg.Packet, msg.Proof, msg.ProofHeight, relayer)
			if err != nil {
				return nil, errorsmod.Wrapf(err, "multicall aborted at call %d", i)
			}
			acks[i] = ack

		case call.AckPacket != nil:
			msg := call.AckPacket
			relayer, err := sdk.AccAddressFromBech32(msg.Relayer)
			if err != nil {
				return nil, errorsmod.Wrapf(types.ErrInvalidSigner, "call %d: %s", i, err)
			}
			if err := k.AcknowledgePacket(cacheCtx, msg.Packet, msg.Acknowledgement, msg.Proof, msg.ProofHeight, relayer); err != nil {
				return nil, errorsmod.Wrapf(err, "multicall aborted at call %d", i)
			}

		case call.TimeoutPacket != nil:
			msg := call.TimeoutPacket
			relayer, err := sdk.AccAddressFromBech32(msg.Relayer)
			if err != nil {
				return nil, errorsmod.Wrapf(types.ErrInvalidSigner, "call %d: %s", i, err)
			}
			if err := k.TimeoutPacket(cacheCtx, msg.Packet, msg.Proof, msg.ProofHeight, relayer); err != nil {
				return nil, errorsmod.Wrapf(err, "multicall aborted at call %d", i)
			}

		default:
			return nil, errorsmod.Wrapf(types.ErrInvalidMulticall, "call %d is empty", i)
		}
	}

	writeFn()
	return acks, nil
}
