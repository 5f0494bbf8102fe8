package demo_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"creational/internal/core/domain/model/settings"
	"creational/internal/demo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expectedOutput = `Settings loaded.
Theme: dark
Language: en
Same instance? true
Report:
Report header
Report content
Report footer
Report:
<h1>Report header</h1>
<p>Report content</p>
<footer>Report footer</footer>
Order:
[Product 1: $10.0, Product 2: $15.0]
Delivery Cost: $5.0
Discount: $2.0
Order:
[Product 1: $10.0, Product 2: $15.0]
Delivery Cost: $5.0
Discount: $3.0
`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunner_Run(t *testing.T) {
	t.Run("should write the full walkthrough", func(t *testing.T) {
		var buf bytes.Buffer
		r := demo.NewRunner(settings.NewProvider(), discardLogger())

		err := r.Run(&buf)

		require.NoError(t, err)
		assert.Equal(t, expectedOutput, buf.String())
	})

	t.Run("should be repeatable on the same provider", func(t *testing.T) {
		provider := settings.NewProvider()
		provider.Store().Set(settings.KeyTheme, "light")
		r := demo.NewRunner(provider, discardLogger())

		var first, second bytes.Buffer
		require.NoError(t, r.Run(&first))
		require.NoError(t, r.Run(&second))

		assert.Equal(t, expectedOutput, first.String())
		assert.Equal(t, first.String(), second.String())
	})

	t.Run("should keep logs out of the output", func(t *testing.T) {
		var out, logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

		require.NoError(t, demo.NewRunner(settings.NewProvider(), logger).Run(&out))

		assert.Equal(t, expectedOutput, out.String())
		assert.Contains(t, logs.String(), "order cloned")
		assert.Contains(t, logs.String(), "component=demo")
	})

	t.Run("should return write error", func(t *testing.T) {
		writeErr := errors.New("disk full")
		r := demo.NewRunner(settings.NewProvider(), discardLogger())

		err := r.Run(failingWriter{err: writeErr})

		require.ErrorIs(t, err, writeErr)
	})
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }
