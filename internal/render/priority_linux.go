//go:build linux

package render

import "syscall"

func setThreadNiceness(niceness int) error {
	// Gettid pins the change to the calling kernel thread.
	return syscall.Setpriority(syscall.PRIO_PROCESS, syscall.Gettid(), niceness)
}
