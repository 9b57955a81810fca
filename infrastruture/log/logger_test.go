package logger

import (
	"bytes"
	"testing"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("APP", config.ColorGreen, &buf)
	require.NoError(t, err)

	t.Run("Levels", func(t *testing.T) {
		l.Info("started")
		l.Warning("slow")
		l.Error("failed")

		out := buf.String()
		assert.Contains(t, out, "[APP]")
		assert.Contains(t, out, "[INFO]"+config.LogColorReset+" started")
		assert.Contains(t, out, "[WARNING]"+config.LogColorReset+" slow")
		assert.Contains(t, out, "[ERROR]"+config.LogColorReset+" failed")
	})

	t.Run("Invalid arguments", func(t *testing.T) {
		_, err := New("", config.ColorGreen, &buf)
		assert.Error(t, err)
		_, err = New("APP", config.ColorGreen, nil)
		assert.Error(t, err)
	})
}
