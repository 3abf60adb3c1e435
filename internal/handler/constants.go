package handler

// Log messages
const (
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgRequestRejected   = "Weapon request rejected"
	LogMsgRequestFailed     = "Weapon request failed"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgBodyDecodeFailed  = "Failed to decode weapon request"
	LogMsgSchemaUnavailable = "Weapon request schema unavailable"
)

// URL parameter names
const (
	ParamTeam     = "team"
	ParamDefindex = "defindex"
	ParamSteamID  = "steamId"
)

// Operation names used in logs
const (
	opList   = "list"
	opSave   = "save"
	opDelete = "delete"
)

const maxPooledBufferBytes = 64 << 10
