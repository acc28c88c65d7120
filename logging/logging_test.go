// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(WithOutput(&buf))

	logger.Debug("filtered")
	assert.Empty(t, buf.String(), "DEBUG should be filtered at INFO level")

	logger.Info("document saved", "path", "clock.skin")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "document saved", entry["msg"])
	assert.Equal(t, "clock.skin", entry["path"])

	ts, ok := entry["time"].(string)
	require.True(t, ok, "time field should be a string")
	_, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err, "timestamp should be valid RFC3339")
}

func TestNew_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(WithOutput(&buf), WithFormat(FormatText), WithLevel(slog.LevelDebug))
	logger.Debug("opened", "editor", "e1")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "msg=opened")
	assert.Contains(t, out, "editor=e1")
}

func TestNew_DynamicLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	var lvl slog.LevelVar
	lvl.Set(slog.LevelWarn)
	logger := New(WithOutput(&buf), WithLevel(&lvl))

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	lvl.Set(slog.LevelInfo)
	logger.Info("shown")
	assert.Equal(t, 1, strings.Count(buf.String(), "shown"))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{" text ", FormatText, false},
		{"xml", FormatJSON, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseFormat(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			again, err := ParseFormat(got.String())
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"info+2", slog.LevelInfo + 2, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLevel(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReplaceAttr(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	got := replaceAttr(nil, slog.Time(slog.TimeKey, now))
	assert.Equal(t, "2026-10-17T09:30:00Z", got.Value.String())

	other := slog.String("path", "clock.skin")
	assert.Equal(t, other, replaceAttr(nil, other))
}
