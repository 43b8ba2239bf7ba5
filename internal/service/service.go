// Package service contains the business logic.
//
// It sits between the transport layers (echo handlers, the Lambda
// adapter) and the calc core. It receives raw operand text, performs
// the operation and reports domain errors from calc.
package service
