//go:build !sepia2
// +build !sepia2

package sepia2

import "sync"

var (
	simOnce sync.Once
	simLib  *FakeLib
	simErr  error
)

// defaultLib returns the simulated mainframe when the `sepia2` build tag is
// not used. It is built once from the environment (see fakeLibFromEnv) and
// shared by every ListDevices and Open call, so an open device stays busy.
func defaultLib() (Lib, error) {
	simOnce.Do(func() { simLib, simErr = fakeLibFromEnv() })
	if simErr != nil {
		return nil, simErr
	}
	return simLib, nil
}
