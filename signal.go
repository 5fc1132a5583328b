// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

// Signal is a tag carried alongside (synchronous) or independently of
// (asynchronous) a queue element. Only three values are valid on the wire;
// the original source's parallel POSIX-signal-flavored enumeration
// (signalvars.hpp) is unrelated to this contract and is not used here.
type Signal uint32

const (
	// SignalNone carries no meaning; the default for every push.
	SignalNone Signal = iota
	// SignalEOF marks the end of the producer's data. Sticky: once sent,
	// GetWriteFinished reports true for the lifetime of the queue.
	SignalEOF
	// SignalQuit asks the consumer to stop reading, independent of EOF.
	SignalQuit
)

func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "NONE"
	case SignalEOF:
		return "RBEOF"
	case SignalQuit:
		return "RBQUIT"
	default:
		return "UNKNOWN"
	}
}
