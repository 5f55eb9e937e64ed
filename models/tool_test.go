package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToolDecodeKeepsExtraDropsUnknown(t *testing.T) {
	payload := `{
		"toolid": "t1",
		"name": "Hammer Drill",
		"price": 49.99,
		"warranty": "2y",
		"extra": {"material": "alloy", "voltage": 18}
	}`

	var tool Tool
	assert.NoError(t, json.Unmarshal([]byte(payload), &tool))

	assert.Equal(t, "alloy", tool.Extra["material"])
	// top-level keys outside the schema do not survive
	assert.NotContains(t, tool.Extra, "warranty")
}
