package event

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeadLetterWriter_AppendsJSONLEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	w, err := NewDeadLetterWriter(path)
	require.NoError(t, err)

	evt := Event{Version: "1.0", Type: Type("spin.settled"), Payload: "p"}
	require.NoError(t, w.Write(evt, 3, errors.New("bus unavailable")))
	// A nil last error must not panic and leaves the field empty.
	require.NoError(t, w.Write(evt, 1, nil))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var first, second DeadLetterEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, DeadLetterSchemaVersion, first.SchemaVersion)
	assert.Equal(t, Type("spin.settled"), first.Event.Type)
	assert.Equal(t, 3, first.Attempts)
	assert.Equal(t, "bus unavailable", first.LastError)
	assert.Empty(t, second.LastError)
}
