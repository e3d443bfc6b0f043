package behaviortree

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "fail", Fail.String())
	assert.Equal(t, "status(9)", Status(9).String())
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, Success.Valid())
	assert.True(t, Running.Valid())
	assert.True(t, Fail.Valid())
	assert.False(t, Status(3).Valid())
}

func TestParseStatus(t *testing.T) {
	for _, s := range []Status{Success, Running, Fail} {
		parsed, err := ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseStatus("SUCCESS")
	assert.True(t, errors.Is(err, ErrInvalidStatus))
}

func TestStatus_JSONText(t *testing.T) {
	type payload struct {
		Status Status `json:"status"`
	}

	data, err := json.Marshal(payload{Status: Running})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"running"}`, string(data))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"status":"fail"}`), &p))
	assert.Equal(t, Fail, p.Status)

	_, err = json.Marshal(payload{Status: Status(7)})
	var invalid *InvalidStatusError
	assert.True(t, errors.As(err, &invalid))
}
