package platform

import (
	"errors"
	"testing"
)

func TestSingleInstanceGuard(t *testing.T) {
	const appName = "tomatick-test-guard"

	guard, err := AcquireSingleInstance(appName)
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	defer guard.Release()

	if _, err := AcquireSingleInstance(appName); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("second acquire err = %v want ErrAlreadyRunning", err)
	}

	if err := guard.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	reacquired, err := AcquireSingleInstance(appName)
	if err != nil {
		t.Fatalf("reacquire after release: %v", err)
	}
	_ = reacquired.Release()
}

func TestReleaseNilGuard(t *testing.T) {
	var guard *InstanceGuard
	if err := guard.Release(); err != nil {
		t.Fatalf("release nil guard: %v", err)
	}
}
