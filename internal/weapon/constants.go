package weapon

// Log Messages
const (
	LogMsgWeaponSaved         = "Weapon configuration saved"
	LogMsgWeaponDeleted       = "Weapon configuration deleted"
	LogMsgWeaponRejected      = "Weapon request rejected"
	LogMsgWeaponStorageFailed = "Weapon storage operation failed"
)

// Validation field and message for a save without a paint id
const (
	fieldPaintID         = "paintId"
	errMsgPaintIDMissing = "Paint ID is required"
)
