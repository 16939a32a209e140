package approval

import (
	"github.com/reglet-dev/script-sandbox/domain/ports"
)

// ReviewResult counts the decisions taken during a review.
type ReviewResult struct {
	Approved int
	Denied   int
	Skipped  int
}

// Review asks p about every pending signature and saves the outcome.
func (s *Service) Review(p ports.Prompter) (ReviewResult, error) {
	var res ReviewResult
	for _, sig := range s.Pending() {
		approved, skip, err := p.PromptForApproval(sig)
		if err != nil {
			return res, err
		}
		switch {
		case skip:
			res.Skipped++
		case approved:
			if err := s.Approve(sig); err != nil {
				return res, err
			}
			res.Approved++
		default:
			s.Deny(sig)
			res.Denied++
		}
	}
	return res, s.Save()
}
