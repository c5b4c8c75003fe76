package runctx

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/ericfmiller/threshold-app-sub000/internal/composite"
)

func TestNewDefaultsToNopLogger(t *testing.T) {
	ctx := New(0.5, composite.VixNormal, [16]byte{})
	if ctx.Logger.GetLevel() != zerolog.Disabled {
		t.Fatalf("expected New to default Logger to zerolog.Nop(), got level %v", ctx.Logger.GetLevel())
	}
}

func TestNewInitializesMaps(t *testing.T) {
	ctx := New(0.5, composite.VixNormal, [16]byte{})
	if ctx.PrevScores == nil || ctx.YFFundamentals == nil || ctx.DrawdownClassifications == nil {
		t.Fatalf("expected New to initialize all lookup maps, got %+v", ctx)
	}
}

func TestLoggerFieldOverridable(t *testing.T) {
	var buf zeroWriter
	ctx := New(0.5, composite.VixNormal, [16]byte{})
	ctx.Logger = zerolog.New(&buf)
	ctx.Logger.Debug().Msg("sentinel fallback")
	if buf.n == 0 {
		t.Fatalf("expected overridden Logger to receive writes")
	}
}

type zeroWriter struct{ n int }

func (w *zeroWriter) Write(p []byte) (int, error) {
	w.n += len(p)
	return len(p), nil
}
