package history

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewnyc2/LLM/internal/clock"
	"github.com/matthewnyc2/LLM/internal/fsops"
)

func newTestLog(t *testing.T) (*FileLog, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.jsonl")
	clk := clock.NewFakeClock(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))
	return NewFileLog(fsops.NewRealFS(), path, clk), path
}

func TestFileLog_AppendAndTail(t *testing.T) {
	log, _ := newTestLog(t)

	require.NoError(t, log.Append("select", map[string]string{"target": "claude-code"}))
	require.NoError(t, log.Append("deploy", map[string]string{"target": "claude-code", "written": "2"}))

	entries, err := log.Tail(0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "select", entries[0].Event)
	assert.Equal(t, "2024-01-15T10:30:00Z", entries[0].Timestamp)
	assert.Equal(t, map[string]string{"target": "claude-code"}, entries[0].Details)
	assert.Equal(t, "deploy", entries[1].Event)
	assert.Equal(t, "2", entries[1].Details["written"])
}

func TestFileLog_OneJSONObjectPerLine(t *testing.T) {
	log, path := newTestLog(t)

	require.NoError(t, log.Append("init", nil))
	require.NoError(t, log.Append("deploy", map[string]string{"target": "codex"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		`{"timestamp":"2024-01-15T10:30:00Z","event":"init"}`+"\n"+
			`{"timestamp":"2024-01-15T10:30:00Z","event":"deploy","details":{"target":"codex"}}`+"\n",
		string(data))
}

func TestFileLog_TailLimit(t *testing.T) {
	log, _ := newTestLog(t)
	for _, event := range []string{"a", "b", "c", "d"} {
		require.NoError(t, log.Append(event, nil))
	}

	entries, err := log.Tail(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "c", entries[0].Event)
	assert.Equal(t, "d", entries[1].Event)
}

func TestFileLog_MissingFileIsEmpty(t *testing.T) {
	log, _ := newTestLog(t)

	entries, err := log.Tail(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileLog_SkipsCorruptLines(t *testing.T) {
	log, path := newTestLog(t)

	require.NoError(t, log.Append("deploy", nil))
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.WriteString("{truncated\n\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.NoError(t, log.Append("select", nil))

	entries, tailErr := log.Tail(0)
	require.NoError(t, tailErr)
	require.Len(t, entries, 2)
	assert.Equal(t, "deploy", entries[0].Event)
	assert.Equal(t, "select", entries[1].Event)
}

func TestFileLog_AppendAfterMissingNewline(t *testing.T) {
	log, path := newTestLog(t)

	require.NoError(t, os.WriteFile(path, []byte(`{"event":"old"}`), 0644))
	require.NoError(t, log.Append("new", nil))

	entries, err := log.Tail(0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "old", entries[0].Event)
	assert.Equal(t, "new", entries[1].Event)
}

func TestFakeLog(t *testing.T) {
	log := NewFakeLog()

	require.NoError(t, log.Append("deploy", map[string]string{"target": "cursor"}))
	entries, err := log.Tail(0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "deploy", entries[0].Event)

	log.SetAppendError(errors.New("disk full"))
	assert.Error(t, log.Append("select", nil))
}
