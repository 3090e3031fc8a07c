//go:build !sepia2
// +build !sepia2

package sepia2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLibIsShared(t *testing.T) {
	a, err := defaultLib()
	require.NoError(t, err)
	b, err := defaultLib()
	require.NoError(t, err)
	assert.Same(t, a, b)

	s, err := Open(0, WithLogger(quietLog))
	require.NoError(t, err)
	defer s.Close()

	_, err = Open(0, WithLogger(quietLog))
	var oe *DeviceOpenError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, 0, oe.Index)

	devs, err := ListDevices(WithLogger(quietLog))
	require.NoError(t, err)
	assert.NotContains(t, devs, 0)
}
