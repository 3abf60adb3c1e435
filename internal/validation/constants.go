package validation

// Client-facing validation messages
const (
	ErrMsgInvalidTeam          = "Team must be 2 (T) or 3 (CT)"
	ErrMsgInvalidDefindex      = "Weapon defindex must be a positive 32-bit integer"
	ErrMsgInvalidPaintID       = "Paint ID must be a non-negative 32-bit integer"
	ErrMsgInvalidWear          = "Wear must be a number between 0 and 1"
	ErrMsgInvalidSeed          = "Seed must be an integer between 0 and 1000"
	ErrMsgNametagTooLong       = "Nametag must be at most 128 characters"
	ErrMsgNametagInvalidChars  = "Nametag contains invalid characters"
	ErrMsgInvalidStatTrakCount = "StatTrak counter must be a non-negative integer"
	ErrMsgTooManyStickers      = "Maximum 5 stickers allowed"
	ErrMsgInvalidOwner         = "Player id must be between 1 and 64 characters"
	ErrMsgInvalidRequestBody   = "Invalid request body"
)

// Embedded JSON schema names
const (
	SchemaWeaponRequest = "weapon_request.schema.json"
)

// schemaBaseURL is the resource location prefix used when compiling embedded schemas
const schemaBaseURL = "https://weaponpaints.local/schemas/"
