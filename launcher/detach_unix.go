//go:build !windows

package launcher

import "syscall"

// detachedProcAttr puts the child in its own session so closing the
// launcher window never takes a running Windows application down with it.
func detachedProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
