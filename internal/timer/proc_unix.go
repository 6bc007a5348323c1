//go:build !windows

package timer

import (
	"os"
	"os/exec"
	"os/signal"
	"syscall"
)

// Control signals understood by the daemon.
const (
	sigPause  = syscall.SIGUSR1
	sigResume = syscall.SIGUSR2
)

// configureDaemonProc detaches the spawned daemon into its own session
// so it survives the controlling terminal.
func configureDaemonProc(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}

// processAlive reports whether the process exists. Signal 0 performs the
// existence check without delivering anything.
func processAlive(pid int) bool {
	return syscall.Kill(pid, 0) == nil
}

// notifyControlSignals subscribes the daemon to its control signals.
func notifyControlSignals(ch chan<- os.Signal) {
	signal.Notify(ch, sigPause, sigResume, syscall.SIGTERM, syscall.SIGINT)
}

// sendSignal delivers a control signal to the daemon process.
func sendSignal(pid int, sig os.Signal) error {
	return syscall.Kill(pid, sig.(syscall.Signal))
}

// stopProcess asks the daemon to shut down cleanly.
func stopProcess(pid int) error {
	return syscall.Kill(pid, syscall.SIGTERM)
}

// isStopSignal reports whether the signal asks the daemon to shut down.
func isStopSignal(sig os.Signal) bool {
	return sig == syscall.SIGTERM || sig == syscall.SIGINT
}
