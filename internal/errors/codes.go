package errors

// Error code constants, CATEGORY_SPECIFIC_DETAIL. Clients map these to
// display messages; the message field is a human-readable fallback.

const (
	// Validation
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID    = "VALIDATION_INVALID_ID"
	ValidationRequired     = "VALIDATION_REQUIRED"
	ValidationInvalidRange = "VALIDATION_INVALID_RANGE"

	// Resources
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// Customers
	CustomerEmailExists = "CUSTOMER_EMAIL_EXISTS"
	CustomerPhoneExists = "CUSTOMER_PHONE_EXISTS"

	// Referential integrity (delete guards)
	CollectionHasProducts = "COLLECTION_HAS_PRODUCTS"
	ProductHasOrderItems  = "PRODUCT_HAS_ORDER_ITEMS"
	CustomerHasOrders     = "CUSTOMER_HAS_ORDERS"
	OrderHasItems         = "ORDER_HAS_ITEMS"

	// Internal
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)
