package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeCheckViolation is raised when a row breaks a CHECK constraint
	PgErrorCodeCheckViolation = "23514"
)

// Error Messages - Weapon Operations
const (
	ErrMsgFailedToQueryWeapons = "failed to query weapons"
	ErrMsgFailedToScanWeapon   = "failed to scan weapon"
	ErrMsgFailedToDecodeWeapon = "failed to decode weapon"
	ErrMsgFailedToEncodeWeapon = "failed to encode weapon"
	ErrMsgFailedToUpsertWeapon = "failed to upsert weapon"
	ErrMsgFailedToDeleteWeapon = "failed to delete weapon"
	ErrMsgFailedToPing         = "failed to ping database"
)
