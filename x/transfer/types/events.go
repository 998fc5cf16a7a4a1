package types

// Transfer module event types and attribute keys
const (
	EventTypeTransfer        = "transfer_send"
	EventTypeReceive         = "transfer_receive"
	EventTypeAcknowledgement = "transfer_acknowledgement"
	EventTypeTimeout         = "transfer_timeout"
	EventTypeRefund          = "transfer_refund"
	EventTypeDenomRegistered = "denom_registered"
	EventTypeRateLimitSet    = "rate_limit_set"

	AttributeKeySender       = "sender"
	AttributeKeyReceiver     = "receiver"
	AttributeKeyTokens       = "tokens"
	AttributeKeyMemo         = "memo"
	AttributeKeySourceClient = "source_client"
	AttributeKeyDestClient   = "dest_client"
	AttributeKeySequence     = "sequence"
	AttributeKeyAckSuccess   = "success"
	AttributeKeyDenom        = "denom"
	AttributeKeyDenomPath    = "denom_path"
	AttributeKeyVoucherDenom = "voucher_denom"
	AttributeKeyDailyLimit   = "daily_limit"
)
