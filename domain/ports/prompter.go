package ports

// Prompter handles interactive review of pending signatures.
type Prompter interface {
	// IsInteractive returns true if running in an interactive terminal.
	IsInteractive() bool

	// PromptForApproval asks whether a pending signature should be approved.
	// Returns: approved, skip (leave pending), error.
	PromptForApproval(signature string) (approved bool, skip bool, err error)
}
