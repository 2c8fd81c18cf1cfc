// SPDX-License-Identifier: Unlicense OR MIT

package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultIsSilent(t *testing.T) {
	Set(nil)
	if Get().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestSet(t *testing.T) {
	var buf bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer Set(nil)
	Get().Debug("pending scale", "scale", 2)
	if got := buf.String(); !strings.Contains(got, "pending scale") || !strings.Contains(got, "scale=2") {
		t.Errorf("got log output %q", got)
	}
}
