package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestWarnDeprecatedArgs(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	*port = 9000
	defer func() { *port = 0 }()

	warnDeprecatedArgs()

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.WarnLevel, entry.Level)
	require.Contains(t, entry.Message, "-port is deprecated")
	require.Contains(t, entry.Message, "-listen-http")
}

func TestWarnDeprecatedArgsSilentByDefault(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	warnDeprecatedArgs()

	require.Nil(t, hook.LastEntry())
}
