package notifier

import (
	"os/exec"
	"runtime"
	"testing"
)

func TestNotifyInvokesPlatformCommand(t *testing.T) {
	var gotName string
	var gotArgs []string
	execCommand = func(name string, args ...string) *exec.Cmd {
		gotName = name
		gotArgs = args
		// "true" succeeds everywhere, so the error path stays quiet.
		return exec.Command("true")
	}
	defer func() { execCommand = exec.Command }()

	Notify("Stand up", "Stretch!")

	want := "notify-send"
	if runtime.GOOS == "darwin" {
		want = "osascript"
	}
	if gotName != want {
		t.Errorf("command = %q, want %q", gotName, want)
	}
	if len(gotArgs) == 0 {
		t.Fatal("expected arguments to be passed")
	}
}

func TestNotifySwallowsFailure(t *testing.T) {
	execCommand = func(name string, args ...string) *exec.Cmd {
		return exec.Command("false")
	}
	defer func() { execCommand = exec.Command }()

	// Must not panic or propagate the failure.
	Notify("title", "body")
}
