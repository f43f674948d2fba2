package log

import (
	"bytes"
	"testing"

	"github.com/go-kit/log/level"
	dslog "github.com/grafana/dskit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	var lvl dslog.Level
	require.NoError(t, lvl.Set("info"))

	buf := &bytes.Buffer{}
	logger := InitLogger(buf, "logfmt", lvl)
	assert.Equal(t, logger, Logger)

	level.Debug(logger).Log("msg", "hidden")
	level.Info(logger).Log("msg", "shown", "nodes", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "nodes=3")
	assert.Contains(t, out, "level=info")
}
