package types

// Event types for the router module
const (
	EventTypeSendPacket           = "send_packet"
	EventTypeRecvPacket           = "recv_packet"
	EventTypeWriteAcknowledgement = "write_acknowledgement"
	EventTypeAcknowledgePacket    = "acknowledge_packet"
	EventTypeTimeoutPacket        = "timeout_packet"
	EventTypeAddClient            = "add_client"
	EventTypeUpdateClient         = "update_client"
	EventTypeMisbehaviour         = "client_misbehaviour"

	// EventTypeNoop distinguishes the idempotent replay response from real
	// processing: the second delivery of an already-finalized message emits
	// this and changes nothing.
	EventTypeNoop = "noop"
)

// Attribute keys for router events
const (
	AttributeKeySourceClient     = "source_client"
	AttributeKeyDestClient       = "destination_client"
	AttributeKeySequence         = "sequence"
	AttributeKeyTimeoutTimestamp = "timeout_timestamp"
	AttributeKeyClientID         = "client_id"
	AttributeKeyCounterpartyID   = "counterparty_client_id"
	AttributeKeyAckSuccess       = "ack_success"
	AttributeKeyOperation        = "operation"
	AttributeKeyUpdateResult     = "update_result"
)
