package sepia2

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoDeviceSpec = `
Devices:
  - { Product: "PDL 828", Serial: "1030427" }
  - { Product: "PDL 828", Serial: "1030431" }
`

func TestWatchFakeSpecReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(DefaultFakeSpec), 0o600))
	fake := newFake(t, DefaultFakeSpec)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- WatchFakeSpec(ctx, path, fake, quietLog) }()

	// the watcher registers asynchronously, so keep rewriting until it sees one
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte(twoDeviceSpec), 0o600)
		devs, err := ListDevices(WithLib(fake), WithLogger(quietLog))
		return err == nil && len(devs) == 2
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchFakeSpecKeepsBusOnBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(DefaultFakeSpec), 0o600))
	require.NoError(t, os.WriteFile(path, []byte("Devices: [unterminated"), 0o600))
	fake := newFake(t, DefaultFakeSpec)

	assert.Error(t, reloadFakeSpec(path, fake))
	devs, err := ListDevices(WithLib(fake), WithLogger(quietLog))
	require.NoError(t, err)
	assert.Len(t, devs, 1)
}

func TestReloadKeepsOpenDevice(t *testing.T) {
	s, fake := openFake(t, DefaultFakeSpec)

	spec, err := ParseFakeSpec([]byte(twoDeviceSpec))
	require.NoError(t, err)
	require.NoError(t, fake.Reload(spec))

	_, err = s.Lasers()[0].GetCurrentStatus()
	assert.NoError(t, err)
	assert.True(t, fake.IsOpen(0))
}

func TestFakeLibFromEnv(t *testing.T) {
	t.Setenv("SEPIA2_FAKE_SPEC_FILE", "")
	t.Setenv("SEPIA2_FAKE_SPEC", twoDeviceSpec)
	fake, err := fakeLibFromEnv()
	require.NoError(t, err)
	devs, err := ListDevices(WithLib(fake), WithLogger(quietLog))
	require.NoError(t, err)
	assert.Len(t, devs, 2)

	path := filepath.Join(t.TempDir(), "bus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(DefaultFakeSpec), 0o600))
	t.Setenv("SEPIA2_FAKE_SPEC_FILE", path)
	fake, err = fakeLibFromEnv()
	require.NoError(t, err)
	devs, err = ListDevices(WithLib(fake), WithLogger(quietLog))
	require.NoError(t, err)
	assert.Len(t, devs, 1)
}
