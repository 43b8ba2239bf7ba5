// Package validation binds request input into typed structs and validates
// it with go-playground/validator.
//
// Besides the built-in tags it registers:
//   - operand: the string coerces to a finite number (see calc.ParseOperand)
package validation
