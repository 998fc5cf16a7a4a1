package keeper

import (
	"encoding/hex"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/router/types"
)

// InitGenesis initializes the router state from a genesis state. Light-client
// handles are not genesis state; the application re-attaches them via
// AttachLightClient when wiring routes.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(fmt.Sprintf("invalid router genesis state: %s", err))
	}

	for _, client := range genState.Clients {
		k.setCounterparty(ctx, client.ClientID, client.Counterparty)
	}
	for _, seq := range genState.Sequences {
		k.SetNextSequenceSend(ctx, seq.ClientID, seq.Sequence)
	}
	for _, commitment := range genState.Commitments {
		bz, _ := hex.DecodeString(commitment.Data)
		k.SetPacketCommitment(ctx, commitment.ClientID, commitment.Sequence, bz)
	}
	for _, receipt := range genState.Receipts {
		k.SetPacketReceipt(ctx, receipt.ClientID, receipt.Sequence)
	}
	for _, ack := range genState.Acknowledgements {
		bz, _ := hex.DecodeString(ack.Data)
		k.SetPacketAcknowledgement(ctx, ack.ClientID, ack.Sequence, bz)
	}

	k.Logger(ctx).Info("router genesis initialized",
		"clients", len(genState.Clients),
		"commitments", len(genState.Commitments),
	)
}

// ExportGenesis exports the router state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	genState := types.GenesisState{}

	store := k.getStore(ctx)

	counterpartyIter := storetypes.KVStorePrefixIterator(store, types.CounterpartyPrefix)
	defer counterpartyIter.Close()
	for ; counterpartyIter.Valid(); counterpartyIter.Next() {
		clientID := string(counterpartyIter.Key()[len(types.CounterpartyPrefix):])
		counterparty, found := k.GetCounterparty(ctx, clientID)
		if !found {
			continue
		}
		genState.Clients = append(genState.Clients, types.ClientGenesis{
			ClientID:     clientID,
			Counterparty: counterparty,
		})
	}

	seqIter := storetypes.KVStorePrefixIterator(store, types.NextSequenceSendPrefix)
	defer seqIter.Close()
	for ; seqIter.Valid(); seqIter.Next() {
		genState.Sequences = append(genState.Sequences, types.PacketSequence{
			ClientID: string(seqIter.Key()[len(types.NextSequenceSendPrefix):]),
			Sequence: sdk.BigEndianToUint64(seqIter.Value()),
		})
	}

	genState.Commitments = k.exportPacketStates(ctx, types.PacketCommitmentPrefix)
	genState.Receipts = k.exportPacketStates(ctx, types.PacketReceiptPrefix)
	genState.Acknowledgements = k.exportPacketStates(ctx, types.PacketAcknowledgementPrefix)

	return &genState
}

func (k Keeper) exportPacketStates(ctx sdk.Context, prefix []byte) []types.PacketState {
	var states []types.PacketState

	iter := storetypes.KVStorePrefixIterator(k.getStore(ctx), prefix)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		clientID, sequence, ok := parsePacketKey(iter.Key(), prefix)
		if !ok {
			continue
		}
		states = append(states, types.PacketState{
			ClientID: clientID,
			Sequence: sequence,
			Data:     hex.EncodeToString(iter.Value()),
		})
	}
	return states
}

// parsePacketKey inverts packetKey: prefix, client id, zero separator, then
// the big-endian sequence.
func parsePacketKey(key, prefix []byte) (string, uint64, bool) {
	if len(key) < len(prefix)+1+8+1 {
		return "", 0, false
	}
	body := key[len(prefix):]
	sep := len(body) - 9
	if body[sep] != 0 {
		return "", 0, false
	}
	return string(body[:sep]), sdk.BigEndianToUint64(body[sep+1:]), true
}
