package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveMode(t *testing.T) {
	var buf bytes.Buffer

	r := NewRenderer(&buf, &buf, ModeAuto)
	assert.Equal(t, ModeText, r.EffectiveMode())

	r = NewRenderer(&buf, &buf, ModeJSON)
	assert.Equal(t, ModeJSON, r.EffectiveMode())

	// Unknown modes fall back to auto.
	r = NewRenderer(&buf, &buf, Mode("bogus"))
	assert.Equal(t, ModeText, r.EffectiveMode())
}

func TestPlainOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRenderer(&out, &errOut, ModeText)

	r.Success("all good")
	r.Header("section")
	r.Errorf("bad thing: %d", 7)

	assert.Equal(t, "all good\nsection\n", out.String())
	assert.Equal(t, "bad thing: 7\n", errOut.String())
}

func TestJSON(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, &out, ModeJSON)

	require.NoError(t, r.JSON(map[string]int{"lines": 3}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, 3, decoded["lines"])
}
