package balance

// RecoveryPolicy decides what the stack scanner does with a closer that does
// not match the top of the stack.
type RecoveryPolicy int

const (
	// RecoveryTruncateOnMismatch pops every entry above the nearest matching
	// opener, treating the closer as closing all of them.
	RecoveryTruncateOnMismatch RecoveryPolicy = iota

	// RecoveryStrict never truncates. A closer that does not match the top
	// of the stack is treated as a stray closer.
	RecoveryStrict
)

// String returns the policy name used in reports.
func (p RecoveryPolicy) String() string {
	switch p {
	case RecoveryTruncateOnMismatch:
		return "truncate-on-mismatch"
	case RecoveryStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// NegativePolicy decides what the counter scanner does once the running
// balance drops below zero.
type NegativePolicy int

const (
	// NegativeResetToZero reports the line and resets the balance to zero,
	// so one extra closer does not make every later line look negative.
	// The final balance is then not comparable to a whole-file count.
	NegativeResetToZero NegativePolicy = iota

	// NegativeKeep reports the line and keeps the negative balance, so the
	// final balance equals opens - selfClosed - closes for the whole file.
	NegativeKeep
)

// String returns the policy name used in reports.
func (p NegativePolicy) String() string {
	switch p {
	case NegativeResetToZero:
		return "reset-on-negative"
	case NegativeKeep:
		return "keep-negative"
	default:
		return "unknown"
	}
}
