package oracle

import "strconv"

// UnknownFunctionError is an error indicating a name that is not present in
// the catalogue partition for the invoked arity.
type UnknownFunctionError struct {
	// Name is the requested function name.
	Name string
	// Arity is the operand count of the partition that was searched.
	Arity int
}

// Error returns the not-found line in the exact form the invoker commands
// print it. The requested name always appears literally.
func (err *UnknownFunctionError) Error() string {
	return "Function " + err.Name + " not found"
}

// OperandError is an error indicating operand text the decimal conversion
// rejected. It implements InputError.
type OperandError struct {
	// Text is the operand text that failed to parse.
	Text string
}

func (err *OperandError) Error() string {
	return "invalid operand " + strconv.Quote(err.Text)
}

func (err *OperandError) Input() string {
	return err.Text
}

// PrecisionError is an error indicating a precision argument that is not a
// positive integer. It implements InputError.
type PrecisionError struct {
	// Text is the precision text that failed to parse.
	Text string
}

func (err *PrecisionError) Error() string {
	return "invalid precision " + strconv.Quote(err.Text) + ": want a positive integer"
}

func (err *PrecisionError) Input() string {
	return err.Text
}

// InputError is an error carrying the input text that caused it. Every error
// resulting from unparseable argument text implements InputError.
type InputError interface {
	error
	// Input returns the argument text that failed to parse.
	Input() string
}

var (
	_ InputError = (*OperandError)(nil)
	_ InputError = (*PrecisionError)(nil)
	_ error      = (*UnknownFunctionError)(nil)
)
