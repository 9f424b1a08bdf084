package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestBufferedRecords(t *testing.T) {
	var mirror bytes.Buffer
	log := New(WithLevel(zapcore.InfoLevel), WithOutput(&mirror))

	log.Debug("[sweep] hidden")
	log.Info("[sweep] start", zap.Int("sites", 3))
	log.Warn("[region] open boundary")

	out := log.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[sweep] start")
	assert.Contains(t, out, "sites")
	assert.Contains(t, out, "[region] open boundary")
	assert.Equal(t, out, mirror.String())
	assert.False(t, log.DebugEnabled())

	log.ClearLogs()
	assert.Empty(t, log.String())
}

func TestHTML(t *testing.T) {
	log := New()
	log.Info("[clip] done")
	html := log.HTML()
	assert.Contains(t, html, "<pre>")
	assert.Contains(t, html, `<span style="color: green;">info</span>`)
	assert.NotContains(t, html, "\033[")
	assert.True(t, log.DebugEnabled())
}

func TestAnsiToHTML(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "<pre>plain</pre>"},
		{"\033[31mERROR\033[0m tail", `<pre><span style="color: red;">ERROR</span> tail</pre>`},
		{"\033[33mopen", `<pre><span style="color: yellow;">open</span></pre>`},
		{"\033[35mx\033[0m", "<pre>x</pre>"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ansiToHTML(tt.in))
	}
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info("ignored")
	assert.Empty(t, log.String())
	assert.False(t, log.DebugEnabled())
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
