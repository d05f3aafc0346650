package supplychain

import (
	"github.com/xraph/supplychain/id"
	"github.com/xraph/supplychain/identity"
)

// Small pure predicates shared by every operation. Each handler
// re-derives the checks it depends on from these instead of restating
// the condition inline.

// requireRole fails unless the identity carries the expected role.
func requireRole(ident *identity.Identity, role identity.Role) error {
	if ident.Role != role {
		return ErrUnauthorized
	}
	return nil
}

// requireOwner fails unless the caller is the record's owner.
func requireOwner(recordOwner, caller id.Address) error {
	if recordOwner != caller {
		return ErrUnauthorized
	}
	return nil
}

// matchID fails when a caller-supplied sequence id does not match the
// record it names.
func matchID(got, want uint64) error {
	if got != want {
		return ErrIDMismatch
	}
	return nil
}

// boundedField fails when a string field exceeds its length bound.
func boundedField(field, value string, maxLen int) error {
	if len(value) > maxLen {
		return ValidationError{Field: field, Message: "exceeds maximum length"}
	}
	return nil
}

// checkedIncr increments a counter, surfacing overflow instead of wrapping.
func checkedIncr(n uint64) (uint64, error) {
	if n == ^uint64(0) {
		return 0, ErrOverflow
	}
	return n + 1, nil
}

// checkedAdd adds two stock quantities, surfacing overflow instead of
// wrapping.
func checkedAdd(a, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, ErrOverflow
	}
	return sum, nil
}
