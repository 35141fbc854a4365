package multisig

import "github.com/covault-io/covault/errors"

// multisig takes the 1030-1035 error code block
var (
	// ErrNotEnoughConfirmations is returned when execution is
	// attempted below the activation threshold.
	ErrNotEnoughConfirmations = errors.Register(1030, "not enough confirmations")

	// ErrAlreadyConfirmed is returned when an owner confirms the same
	// transaction twice.
	ErrAlreadyConfirmed = errors.Register(1031, "already confirmed")

	// ErrNotConfirmed is returned when an owner revokes a
	// confirmation that was never given.
	ErrNotConfirmed = errors.Register(1032, "not confirmed")

	// ErrAlreadyExecuted is returned when a terminal transaction is
	// mutated or executed again.
	ErrAlreadyExecuted = errors.Register(1033, "already executed")

	// ErrCallFailed is returned when the external call did not report
	// success. The transaction stays unexecuted and may be retried.
	ErrCallFailed = errors.Register(1034, "external call failed")

	// ErrReentrancy is returned to any state changing operation
	// attempted while the vault is in the middle of an execution.
	ErrReentrancy = errors.Register(1035, "vault is executing")
)
