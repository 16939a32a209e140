package ports

// DenialHandler is called when the sandbox rejects an operation.
// Implementations can log, collect metrics, or take other actions.
type DenialHandler interface {
	// OnDenial is called when an operation is rejected.
	// kind: "method", "staticMethod", "new", "field", "staticField"
	// signature: canonical signature text of the rejected operation
	// reason: human-readable denial reason
	OnDenial(kind string, signature string, reason string)
}
