//go:build windows

package launcher

import "syscall"

// Wine targets non-Windows hosts; this build exists only so the package
// still compiles there.
func detachedProcAttr() *syscall.SysProcAttr {
	return nil
}
