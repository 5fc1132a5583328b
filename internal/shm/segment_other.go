// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !unix

// Package shm opens named, sized, shareable POSIX shared-memory segments
// with create-or-open semantics. This file is the non-POSIX stub: the
// platform has no /dev/shm-style namespace, so every operation fails.
package shm

import "errors"

// ErrUnsupported is returned by every Segment operation on platforms with
// no POSIX shared-memory namespace.
var ErrUnsupported = errors.New("shm: shared memory is not supported on this platform")

// Segment is the non-POSIX stand-in; it carries no usable mapping.
type Segment struct {
	Data []byte
}

func Open(name string, size int) (*Segment, error) { return nil, ErrUnsupported }

func (s *Segment) Created() bool { return false }

func (s *Segment) Close() error { return ErrUnsupported }

func Unlink(name string) error { return ErrUnsupported }
