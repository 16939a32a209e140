package entities

import "slices"

// ApprovalSet is the persisted state of the approval workflow: canonical
// signature lines that were approved, and those still awaiting a decision.
type ApprovalSet struct {
	Approved []string `json:"approved,omitempty" yaml:"approved,omitempty"`
	Pending  []string `json:"pending,omitempty" yaml:"pending,omitempty"`
}

// IsEmpty returns true if nothing is approved or pending.
func (a *ApprovalSet) IsEmpty() bool {
	return a == nil || (len(a.Approved) == 0 && len(a.Pending) == 0)
}

// IsApproved reports whether sig is in the approved list.
func (a *ApprovalSet) IsApproved(sig string) bool {
	return a != nil && slices.Contains(a.Approved, sig)
}

// IsPending reports whether sig is waiting for a decision.
func (a *ApprovalSet) IsPending(sig string) bool {
	return a != nil && slices.Contains(a.Pending, sig)
}

// Merge unions other into a, keeping first-seen order.
func (a *ApprovalSet) Merge(other *ApprovalSet) {
	if other == nil {
		return
	}
	for _, s := range other.Approved {
		if !slices.Contains(a.Approved, s) {
			a.Approved = append(a.Approved, s)
		}
	}
	for _, s := range other.Pending {
		if !slices.Contains(a.Pending, s) && !slices.Contains(a.Approved, s) {
			a.Pending = append(a.Pending, s)
		}
	}
}
