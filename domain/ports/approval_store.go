package ports

import "github.com/reglet-dev/script-sandbox/domain/entities"

// ApprovalStore provides persistence for approved and pending signatures.
type ApprovalStore interface {
	// Load retrieves the approval state.
	// Returns an empty ApprovalSet (not error) if nothing was stored yet.
	Load() (*entities.ApprovalSet, error)

	// Save persists the approval state.
	Save(set *entities.ApprovalSet) error

	// ConfigPath returns the path to the backing store (for user messaging).
	ConfigPath() string
}

// ApprovalQueue receives signatures of rejected operations so that an
// administrator can approve them later.
type ApprovalQueue interface {
	Offer(signature string)
}
