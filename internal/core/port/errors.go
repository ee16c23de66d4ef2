package port

import "errors"

// Failure taxonomy for the orchestrators. Every error is terminal for the
// attempt that produced it: nothing retries automatically, and a failed
// attempt leaves no partial campaign or pledge behind. Codecs and the status
// function never report to the user themselves; only orchestrators translate
// one of these into user-visible feedback.
var (
	// ErrIncompleteForm reports a create request missing one of image,
	// title, description, target amount or deadline.
	ErrIncompleteForm = errors.New("incomplete form")

	// ErrPinningFailed reports a content-pinning failure. When it occurs no
	// ledger call has been made, so no on-chain campaign can reference the
	// missing image.
	ErrPinningFailed = errors.New("pinning failed")

	// ErrTransactionFailed reports a failed signed ledger call, for either
	// campaign creation or a pledge.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrQueryFailed reports a failed read-only ledger query. Callers keep
	// whatever projection they already hold rather than clearing it.
	ErrQueryFailed = errors.New("query failed")
)
