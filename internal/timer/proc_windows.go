//go:build windows

package timer

import (
	"errors"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"golang.org/x/sys/windows"
)

// Windows has no SIGUSR1/SIGUSR2; pause and resume are unsupported there
// and the control client reports that instead of signalling.
var errSignalsUnsupported = errors.New("pause and resume are not supported on windows")

// Placeholder values so the daemon's signal switch stays well-formed;
// sendSignal never delivers them.
const (
	sigPause  = syscall.Signal(0x10)
	sigResume = syscall.Signal(0x11)
)

func configureDaemonProc(cmd *exec.Cmd) {
	// No Setsid on Windows; a started process is detached enough.
}

// processAlive asks the kernel for the process exit code. os.Process.Signal
// cannot probe for existence on Windows, so the check opens the process
// directly; a live one reports STILL_ACTIVE.
func processAlive(pid int) bool {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(pid))
	if err != nil {
		return false
	}
	defer func() { _ = windows.CloseHandle(h) }()

	var code uint32
	if err := windows.GetExitCodeProcess(h, &code); err != nil {
		return false
	}
	return code == uint32(windows.STILL_ACTIVE)
}

func notifyControlSignals(ch chan<- os.Signal) {
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
}

func sendSignal(pid int, sig os.Signal) error {
	return errSignalsUnsupported
}

// stopProcess kills the daemon outright; Windows cannot deliver SIGTERM,
// so the daemon never runs its shutdown path. The stop poll and the
// status self-heal clean up the marker and state file it leaves behind.
func stopProcess(pid int) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return proc.Kill()
}

func isStopSignal(sig os.Signal) bool {
	return sig == syscall.SIGTERM || sig == syscall.SIGINT
}
