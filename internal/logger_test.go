package internal

import "testing"

func TestSetVerbose(t *testing.T) {
	defer SetLogLevel(LogLevelWarn)

	SetVerbose(true)
	if logLevel != LogLevelDebug {
		t.Errorf("SetVerbose(true): level = %d, want debug", logLevel)
	}

	SetVerbose(false)
	if logLevel != LogLevelWarn {
		t.Errorf("SetVerbose(false): level = %d, want warn", logLevel)
	}
}
