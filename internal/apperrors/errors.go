package apperrors

import "errors"

// ErrAccountNotFound indicates that an account is missing or inactive.
// The two cases are deliberately indistinguishable to callers so that
// account existence is never leaked.
var ErrAccountNotFound = errors.New("account not found")

// ErrInvalidAmount indicates that a transaction amount failed validation.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInsufficientBalance indicates that an account balance cannot cover a withdrawal or transfer.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrTransactionNotFound indicates that no ledger record exists for a transaction ID.
var ErrTransactionNotFound = errors.New("transaction not found")

// ErrAlreadyReversed indicates an attempt to reverse a ledger record a second time.
var ErrAlreadyReversed = errors.New("transaction already reversed")

// ErrStorage indicates a failure in the underlying table files. It is fatal
// to the operation in progress; state committed before the failing step stays committed.
var ErrStorage = errors.New("storage error")
