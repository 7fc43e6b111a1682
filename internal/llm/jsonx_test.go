package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON_FencedPayload(t *testing.T) {
	raw := "```json\n{\"title\":\"Osmosis\"}\n```"

	payload, err := ExtractJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, `{"title":"Osmosis"}`, payload)
}

func TestExtractJSON_ProseAroundObject(t *testing.T) {
	raw := `Sure! Here is the quiz you asked for:
{"questions":[{"question":"What is 2+2?"}]}
Let me know if you need anything else.`

	payload, err := ExtractJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, `{"questions":[{"question":"What is 2+2?"}]}`, payload)
}

func TestExtractJSON_ArrayPayload(t *testing.T) {
	raw := "Here are the tags: [\"biology\", \"cells\"] for you."

	payload, err := ExtractJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, `["biology", "cells"]`, payload)
}

func TestExtractJSON_NoPayload(t *testing.T) {
	_, err := ExtractJSON("I could not produce a response.")
	assert.Error(t, err)

	_, err = ExtractJSON("unbalanced { opener only")
	assert.Error(t, err)
}

func TestParseJSON_IntoStruct(t *testing.T) {
	var out struct {
		Summary string `json:"summary"`
	}

	err := ParseJSON("```json\n{\"summary\":\"short\"}\n```", &out)
	require.NoError(t, err)
	assert.Equal(t, "short", out.Summary)

	err = ParseJSON("{not valid json}", &out)
	assert.Error(t, err)
}

func TestValidateJSON(t *testing.T) {
	schema := map[string]any{
		"type":     "object",
		"required": []any{"question"},
		"properties": map[string]any{
			"question": map[string]any{"type": "string"},
		},
	}

	err := ValidateJSON("question", schema, map[string]any{"question": "What is ATP?"})
	assert.NoError(t, err)

	err = ValidateJSON("question", schema, map[string]any{"other": 1})
	assert.Error(t, err)
}
