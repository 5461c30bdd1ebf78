package services

import "errors"

// The four eligibility outcomes. They are expected results of casting a
// vote, not faults: handlers turn them into user-facing responses and the
// write path logs them below error level. A unique-constraint loss on the
// vote insert surfaces as the same ErrDuplicateVote the advisory gate
// reports.
var (
	ErrElectionNotActive = errors.New("election is not active")
	ErrVoterNotVerified  = errors.New("voter is not verified")
	ErrDuplicateVote     = errors.New("voter has already cast a vote in this election")
	ErrVotingDisabled    = errors.New("voting is disabled for this voter")
)

// Validation and lookup failures. These reject a malformed request before
// the eligibility gate runs.
var (
	ErrVoterNotFound     = errors.New("voter not found")
	ErrElectionNotFound  = errors.New("election not found")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrCandidateMismatch = errors.New("candidate does not belong to this election")
	ErrWalletRequired    = errors.New("a wallet address is required to cast a vote")
)

// Account and session failures.
var (
	ErrVoterExists             = errors.New("voter with this email or student id already exists")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrInvalidVerificationCode = errors.New("invalid verification code")
	ErrVerificationCodeExpired = errors.New("verification code has expired")
	ErrInvalidToken            = errors.New("invalid or expired token")
	ErrWalletAlreadyBound      = errors.New("a wallet address is already bound to this voter")
)

// IsEligibilityError reports whether err is one of the four gate outcomes.
func IsEligibilityError(err error) bool {
	return errors.Is(err, ErrElectionNotActive) ||
		errors.Is(err, ErrVoterNotVerified) ||
		errors.Is(err, ErrDuplicateVote) ||
		errors.Is(err, ErrVotingDisabled)
}
