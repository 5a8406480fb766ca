package timeouts

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	Reset()
	if Ping() != DefaultPing || Short() != DefaultShort || Medium() != DefaultMedium || Long() != DefaultLong {
		t.Fatalf("defaults not in effect: %v %v %v %v", Ping(), Short(), Medium(), Long())
	}
}

func TestConfigureOverridesOnlyPositiveValues(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Configure(Config{Short: 1 * time.Second})
	if Short() != 1*time.Second {
		t.Fatalf("Short = %v", Short())
	}
	if Medium() != DefaultMedium {
		t.Fatalf("zero value must keep the current setting, Medium = %v", Medium())
	}
}
