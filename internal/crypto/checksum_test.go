package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum_Deterministic(t *testing.T) {
	a := map[string]any{"type": "cell_edit", "rowId": "row-1", "value": map[string]any{"planned": true, "actual": false}}
	b := map[string]any{"value": map[string]any{"actual": false, "planned": true}, "rowId": "row-1", "type": "cell_edit"}

	sumA, err := Checksum(a)
	require.NoError(t, err)
	sumB, err := Checksum(b)
	require.NoError(t, err)

	// Порядок ключей не влияет на результат
	assert.Equal(t, sumA, sumB)
	assert.Len(t, sumA, 64)
}

func TestChecksum_DiffersOnChange(t *testing.T) {
	sumA, err := Checksum(map[string]any{"value": 1})
	require.NoError(t, err)
	sumB, err := Checksum(map[string]any{"value": 2})
	require.NoError(t, err)

	assert.NotEqual(t, sumA, sumB)
}

func TestVerifyChecksum(t *testing.T) {
	data := map[string]any{"key": "voltage", "value": "220V"}
	sum, err := Checksum(data)
	require.NoError(t, err)

	tests := []struct {
		name     string
		checksum string
		errMsg   string
		wantErr  bool
	}{
		{name: "valid checksum", checksum: sum},
		{name: "empty checksum", checksum: "", wantErr: true, errMsg: "checksum cannot be empty"},
		{name: "wrong checksum", checksum: ChecksumBytes([]byte("other")), wantErr: true, errMsg: "payload checksum mismatch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyChecksum(data, tt.checksum)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}
