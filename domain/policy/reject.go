package policy

import (
	"strings"

	"github.com/reglet-dev/script-sandbox/domain/entities"
	"github.com/reglet-dev/script-sandbox/domain/errors"
)

// RejectMethod builds the rejection of an instance method call. Optional info
// is appended in parentheses.
func RejectMethod(m *entities.Method, info ...string) *errors.SecurityError {
	return reject(entities.MethodOperation(m), info)
}

// RejectStaticMethod builds the rejection of a static method call.
func RejectStaticMethod(m *entities.Method, info ...string) *errors.SecurityError {
	return reject(entities.StaticMethodOperation(m), info)
}

// RejectNew builds the rejection of a constructor call.
func RejectNew(c *entities.Constructor, info ...string) *errors.SecurityError {
	return reject(entities.ConstructorOperation(c), info)
}

// RejectField builds the rejection of an instance field access.
func RejectField(f *entities.Field, info ...string) *errors.SecurityError {
	return reject(entities.FieldOperation(f), info)
}

// RejectStaticField builds the rejection of a static field access.
func RejectStaticField(f *entities.Field, info ...string) *errors.SecurityError {
	return reject(entities.StaticFieldOperation(f), info)
}

// RejectionMessage formats the rejection text for a canonical signature.
func RejectionMessage(signature string, info ...string) string {
	return (&errors.SecurityError{Signature: signature, Info: strings.Join(info, ", ")}).Error()
}

func reject(op entities.Operation, info []string) *errors.SecurityError {
	return &errors.SecurityError{Signature: op.String(), Info: strings.Join(info, ", ")}
}
