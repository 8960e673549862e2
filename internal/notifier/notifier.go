// Package notifier delivers best-effort desktop notifications. Failures are
// logged and swallowed: a missing notification daemon must never break a
// reminder loop.
package notifier

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/julianstephens/dailydash/internal/logger"
)

// execCommand is swapped out by tests.
var execCommand = exec.Command

// Notify sends a desktop notification through whatever the platform offers.
func Notify(title, body string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf("display notification %q with title %q", body, title)
		cmd = execCommand("osascript", "-e", script)
	default:
		cmd = execCommand("notify-send", title, body)
	}

	if err := cmd.Run(); err != nil {
		logger.Debug("desktop notification failed", "title", title, "error", err)
	}
}
