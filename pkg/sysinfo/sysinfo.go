// Package sysinfo wraps the host lookups shown in the startup banner:
// uname fields, the current user and a memory snapshot.
package sysinfo

import (
	"fmt"
	"os"
	"os/user"

	"github.com/mackerelio/go-osstat/memory"
	"golang.org/x/sys/unix"
)

// Uname holds the subset of utsname fields shown in the banner.
type Uname struct {
	System  string
	Node    string
	Release string
	Machine string
}

// ReadUname queries the kernel via uname(2).
func ReadUname() (*Uname, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return nil, fmt.Errorf("uname: %w", err)
	}
	return &Uname{
		System:  unix.ByteSliceToString(u.Sysname[:]),
		Node:    unix.ByteSliceToString(u.Nodename[:]),
		Release: unix.ByteSliceToString(u.Release[:]),
		Machine: unix.ByteSliceToString(u.Machine[:]),
	}, nil
}

// LoginName resolves the current user's name. The primary lookup goes
// through os/user; when that fails the USER environment variable is
// consulted. fromEnv reports which source answered, ok is false when both
// fail.
func LoginName() (name string, fromEnv bool, ok bool) {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username, false, true
	}
	if name := os.Getenv("USER"); name != "" {
		return name, true, true
	}
	return "", false, false
}

// MemoryUsage returns used and total physical memory in bytes.
func MemoryUsage() (used, total uint64, err error) {
	m, err := memory.Get()
	if err != nil {
		return 0, 0, fmt.Errorf("reading memory stats: %w", err)
	}
	return m.Used, m.Total, nil
}
