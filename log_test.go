package inputkit

import "testing"

type recordingLogger struct{ lines []string }

func (r *recordingLogger) Printf(format string, args ...any) {
	r.lines = append(r.lines, format)
}

func TestSetLoggerReachesFacadeLogf(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	rl := &recordingLogger{}
	SetLogger(rl)
	logf("listen started")

	if len(rl.lines) != 1 {
		t.Fatalf("facade logf did not reach the installed Logger: got %d lines", len(rl.lines))
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	rl := &recordingLogger{}
	SetLogger(rl)
	SetLogger(nil)
	logf("should be dropped")
	if len(rl.lines) != 0 {
		t.Error("logf after SetLogger(nil) still reached the previously installed Logger")
	}
}

func TestStdLoggerSatisfiesLogger(t *testing.T) {
	var _ Logger = StdLogger(nil)
}
