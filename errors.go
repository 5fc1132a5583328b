// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

import (
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates a non-blocking operation cannot proceed
// immediately.
//
// For TryAllocate/TryPushValue: the queue is full (backpressure).
// For TryPop/TryPeek: the queue is empty (no data available).
//
// ErrWouldBlock is a control flow signal, not a failure; the blocking
// forms of the same operations (Allocate, Push, Pop, ...) spin instead of
// returning it. This is an alias for [iox.ErrWouldBlock] for ecosystem
// consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}

// Kind identifies one of the queue's fatal error categories. Unlike
// ErrWouldBlock, every Kind is a real failure: the caller's only
// reasonable response is to surface it, not retry.
type Kind int

const (
	// KindCapacityExceeded: Recycle was asked to advance past capacity.
	KindCapacityExceeded Kind = iota + 1
	// KindBadAlignment: alignment was not a multiple of the pointer size.
	KindBadAlignment
	// KindOutOfMemory: the backing allocation failed.
	KindOutOfMemory
	// KindBadSharedMemory: shared-segment creation and open both failed.
	KindBadSharedMemory
	// KindPeerNotReady: the two-party handshake did not complete within
	// the caller's grace period.
	KindPeerNotReady
	// KindContractViolation: an operation was used outside its contract.
	// No operation of this package returns it; Push without a matching
	// Allocate is ignored silently rather than reported.
	KindContractViolation
)

func (k Kind) String() string {
	switch k {
	case KindCapacityExceeded:
		return "CapacityExceeded"
	case KindBadAlignment:
		return "BadAlignment"
	case KindOutOfMemory:
		return "OutOfMemory"
	case KindBadSharedMemory:
		return "BadSharedMemory"
	case KindPeerNotReady:
		return "PeerNotReady"
	case KindContractViolation:
		return "ContractViolation"
	default:
		return "Unknown"
	}
}

// Error is the concrete type behind every fatal error this package
// returns. Use errors.As to recover the Kind.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("spscq: %s: %s", e.Kind, e.Msg)
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
