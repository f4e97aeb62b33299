package log

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerCarriesName(t *testing.T) {
	hook := test.NewLocal(Base())
	defer hook.Reset()

	logger := NewLogger("Hamming")
	logger.WithField("block", "0110011").Warn("ambiguous")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, "Hamming", entry.Data["name"])
	require.Equal(t, "0110011", entry.Data["block"])
	require.Equal(t, log.WarnLevel, entry.Level)
}

func TestSetLevel(t *testing.T) {
	old := Base().GetLevel()
	defer Base().SetLevel(old)

	require.Nil(t, SetLevel("trace"))
	require.True(t, NewLogger("x").TraceEnabled())
	require.Nil(t, SetLevel("info"))
	require.False(t, NewLogger("x").DebugEnabled())
	require.NotNil(t, SetLevel("loud"))
}

func TestAddTracer(t *testing.T) {
	dir, err := ioutil.TempDir("", "tracer")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	old := Base().GetLevel()
	oldHooks := Base().ReplaceHooks(make(log.LevelHooks))
	defer func() {
		Base().SetLevel(old)
		Base().ReplaceHooks(oldHooks)
	}()
	SetOutput(ioutil.Discard)
	defer SetOutput(os.Stderr)

	Base().SetLevel(log.TraceLevel)
	path := filepath.Join(dir, "run")
	AddTracer(path)
	NewLogger("Decoder").WithField("status", "unique").Trace("block decoded")

	content, err := ioutil.ReadFile(path + ".trace")
	require.Nil(t, err)
	require.True(t, strings.Contains(string(content), `"status":"unique"`))
}
