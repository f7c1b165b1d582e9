package cpu

import (
	"errors"
	"fmt"
)

// ErrNotCovered matches every coverage fault raised while executing.
var ErrNotCovered = errors.New("cpu: instruction not covered")

// UnknownOpcodeError is raised when a byte has no entry in a decode
// table.
type UnknownOpcodeError struct {
	Table  string
	Opcode uint8
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("cpu: unknown opcode 0x%02X in %s table", e.Opcode, e.Table)
}

func (e *UnknownOpcodeError) Is(err error) bool {
	return err == ErrNotCovered
}

// UnhandledOperationError is raised when a decoded operation has no
// handler.
type UnhandledOperationError struct {
	Op Op
}

func (e *UnhandledOperationError) Error() string {
	return fmt.Sprintf("cpu: no handler for operation %s (%d)", e.Op, uint8(e.Op))
}

func (e *UnhandledOperationError) Is(err error) bool {
	return err == ErrNotCovered
}
