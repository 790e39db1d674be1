package tsd

import "errors"

// Kind is a stable category for programmatic error handling.
//
// These categories are intended to remain stable across versions.
// Callers should branch on Kind/RuleID rather than matching error strings.
//
// NOTE: Error() strings are intentionally kept human-readable and may evolve.
// Use errors.As to extract *Error for structured handling.
type Kind string

const (
	// KindRegistration covers malformed struct type definitions
	// (identifiers, scalar widths, array lengths, duplicates).
	KindRegistration Kind = "Registration"
	// KindUnresolvedType: a struct member names a type that is not
	// registered. Fatal at registration time.
	KindUnresolvedType Kind = "UnresolvedTypeReference"
	// KindCyclicType: the struct reference graph contains a cycle.
	// Fatal at registration time; cyclic definitions are never constructible.
	KindCyclicType Kind = "CyclicTypeDefinition"
	// KindTypeMismatch: a value's shape disagrees with its declared type.
	KindTypeMismatch Kind = "TypeMismatch"
	// KindValueOutOfRange: a numeric value exceeds its declared bit width.
	KindValueOutOfRange Kind = "ValueOutOfRange"
	// KindInvalidText: a character-sequence value is not valid UTF-8.
	KindInvalidText Kind = "InvalidTextEncoding"
	KindCrypto      Kind = "Crypto"
	KindInternal    Kind = "Internal"
)

// Error is the library's structured error type.
//
// RuleID is a stable identifier (e.g., TSD-REG-008, TSD-ENC-104) that
// names the violated invariant or validation rule.
//
// Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

func wrapError(kind Kind, ruleID, msg string, cause error) error {
	if cause == nil {
		return newError(kind, ruleID, msg)
	}
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}

// memberContext re-labels an encode error with the struct member it
// occurred under, preserving Kind and RuleID so taxonomy checks still hold.
func memberContext(structName, member string, err error) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	sep := "."
	if len(member) > 0 && member[0] == '[' {
		sep = ""
	}
	return &Error{Kind: e.Kind, RuleID: e.RuleID, Message: structName + sep + member + ": " + e.Message, Cause: err}
}
