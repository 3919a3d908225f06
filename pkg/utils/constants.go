package utils

// Context

const (
	RequestIDKey = "requestid"
	ValidatorKey = "validator"
	LocalizerKey = "localizer"
)
