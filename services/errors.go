package services

import "errors"

var (
	ErrInvalidPackage  = errors.New("invalid package type")
	ErrUserNotFound    = errors.New("user not found")
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrPaymentMismatch rejects a verified notification whose unsigned
	// identifiers name a payment the signed fields do not describe.
	ErrPaymentMismatch = errors.New("notification does not match the payment record")

	// ErrInvalidSignature rejects a notification whose signature does not match
	// the recomputed digest. Nothing may be mutated on this path.
	ErrInvalidSignature = errors.New("invalid signature")
	// ErrDuplicateNotification marks a replayed notification that was already
	// reconciled; re-delivery is a no-op.
	ErrDuplicateNotification = errors.New("notification already processed")

	ErrQuestionNotFound    = errors.New("question not found")
	ErrChoiceNotFound      = errors.New("selected choice not found")
	ErrSubmissionNotFound  = errors.New("no answers found for this user and slot")
	ErrDuplicateSubmission = errors.New("answers already submitted for this slot")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrForbidden           = errors.New("not allowed")
)
