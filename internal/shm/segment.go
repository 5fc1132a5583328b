// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix

// Package shm opens named, sized, shareable POSIX shared-memory segments
// with create-or-open semantics: the first party to arrive creates the
// segment, the second attaches to it.
package shm

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Segment is a named shared-memory mapping.
type Segment struct {
	Data    []byte
	created bool
}

// Open creates or opens the shared-memory object named name, sized to
// size bytes, and maps it into this process's address space. Go's
// standard library has no shm_open binding, so this opens a regular file
// under /dev/shm directly, which POSIX shared-memory objects are backed
// by on Linux.
func Open(name string, size int) (*Segment, error) {
	path := "/dev/shm/" + name

	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CREAT|unix.O_EXCL, 0600)
	created := err == nil
	if err != nil {
		if err != unix.EEXIST {
			return nil, fmt.Errorf("shm: create %s: %w", name, err)
		}
		fd, err = unix.Open(path, unix.O_RDWR, 0600)
		if err != nil {
			return nil, fmt.Errorf("shm: open %s: %w", name, err)
		}
	}
	defer func() { _ = unix.Close(fd) }()

	if created {
		if err := unix.Ftruncate(fd, int64(size)); err != nil {
			_ = unix.Unlink(path)
			return nil, fmt.Errorf("shm: truncate %s: %w", name, err)
		}
	}

	data, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("shm: mmap %s: %w", name, err)
	}

	return &Segment{Data: data, created: created}, nil
}

// Created reports whether this call created the segment (true) or
// attached to one that already existed (false).
func (s *Segment) Created() bool {
	return s.created
}

// Close unmaps the segment without unlinking its name.
func (s *Segment) Close() error {
	return unix.Munmap(s.Data)
}

// Unlink removes name from the shared-memory namespace. Safe to call
// after every mapper has closed; existing mappings already made remain
// valid until their own process unmaps them.
func Unlink(name string) error {
	return os.Remove("/dev/shm/" + name)
}
