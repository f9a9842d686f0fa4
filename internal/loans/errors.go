package loans

import "errors"

// RejectionMessage is shown when the submission backend refuses an application
const RejectionMessage = "We couldn't process your application at this time. Please check your details or try again later."

// IncompleteLoanMessage is shown when a tracked loan is missing details
const IncompleteLoanMessage = "Please fill out all fields."

var (
	ErrSubmissionRejected = errors.New("submission rejected")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrIncompleteLoan     = errors.New("incomplete loan details")
	ErrInvalidTerm        = errors.New("loan term must be a positive number of months")
)
