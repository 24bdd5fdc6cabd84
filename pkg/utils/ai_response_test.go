package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liuxinyuan2000/nebula-api/pkg/utils"
)

func TestParseTopicsStrictJSON(t *testing.T) {
	raw := `{"topics": [{"title": "Hiking", "description": "Both wrote about trails"}, {"title": "Coffee"}]}`

	topics := utils.ParseTopics(raw, 8)

	require.Len(t, topics, 2)
	assert.Equal(t, "Hiking", topics[0].Title)
	assert.Equal(t, "Both wrote about trails", topics[0].Description)
	assert.Equal(t, "Coffee", topics[1].Title)
	assert.Empty(t, topics[1].Description)
}

func TestParseTopicsFencedEqualsBare(t *testing.T) {
	bare := `{"topics": [{"title": "Street food"}]}`
	fenced := "```json\n" + bare + "\n```"

	assert.Equal(t, utils.ParseTopics(bare, 8), utils.ParseTopics(fenced, 8))
}

func TestParseTopicsWithBOM(t *testing.T) {
	raw := "\ufeff" + `{"topics": [{"title": "Music"}]}`

	topics := utils.ParseTopics(raw, 8)

	require.Len(t, topics, 1)
	assert.Equal(t, "Music", topics[0].Title)
}

func TestParseTopicsEmbeddedInProse(t *testing.T) {
	raw := `Sure! Based on the notes, here are my suggestions:
{"topics": [{"title": "Photography", "description": "Shared interest"}]}
Hope that helps!`

	topics := utils.ParseTopics(raw, 8)

	require.Len(t, topics, 1)
	assert.Equal(t, "Photography", topics[0].Title)
}

func TestParseTopicsBareArray(t *testing.T) {
	raw := `[{"title": "Travel"}, {"topic": "Books", "reason": "Both read a lot"}]`

	topics := utils.ParseTopics(raw, 8)

	require.Len(t, topics, 2)
	assert.Equal(t, "Travel", topics[0].Title)
	// รองรับ key ทางเลือก topic/reason
	assert.Equal(t, "Books", topics[1].Title)
	assert.Equal(t, "Both read a lot", topics[1].Description)
}

func TestParseTopicsStringElements(t *testing.T) {
	raw := `{"topics": ["Cooking", "Gardening"]}`

	topics := utils.ParseTopics(raw, 8)

	require.Len(t, topics, 2)
	assert.Equal(t, "Cooking", topics[0].Title)
	assert.Equal(t, "Gardening", topics[1].Title)
}

func TestParseTopicsGarbageReturnsDefaults(t *testing.T) {
	topics := utils.ParseTopics("I could not think of anything today.", 8)

	assert.Equal(t, utils.DefaultTopics, topics)
	assert.NotEmpty(t, topics)
}

func TestParseTopicsEmptyReturnsDefaults(t *testing.T) {
	assert.Equal(t, utils.DefaultTopics, utils.ParseTopics("", 8))
}

func TestParseTopicsRespectsMax(t *testing.T) {
	raw := `{"topics": ["a", "b", "c", "d", "e"]}`

	topics := utils.ParseTopics(raw, 3)

	assert.Len(t, topics, 3)
}

func TestParseTopicsNestedBrackets(t *testing.T) {
	// array ซ้อนใน string ต้องไม่ทำให้ bracket scan หลงทาง
	raw := `The model says: {"topics": [{"title": "Puzzles [hard]", "description": "Includes \"escape rooms\""}]} done`

	topics := utils.ParseTopics(raw, 8)

	require.Len(t, topics, 1)
	assert.Equal(t, "Puzzles [hard]", topics[0].Title)
}

func TestParseTagsStrictJSON(t *testing.T) {
	raw := `{"tags": ["into hiking", "coffee lover"]}`

	tags := utils.ParseTags(raw, 3)

	assert.Equal(t, []string{"into hiking", "coffee lover"}, tags)
}

func TestParseTagsFencedAndProse(t *testing.T) {
	fenced := "```\n{\"tags\": [\"night owl\"]}\n```"
	prose := `Here you go: {"tags": ["night owl"]} enjoy`

	assert.Equal(t, []string{"night owl"}, utils.ParseTags(fenced, 3))
	assert.Equal(t, []string{"night owl"}, utils.ParseTags(prose, 3))
}

func TestParseTagsTruncatesToMax(t *testing.T) {
	raw := `{"tags": ["a", "b", "c", "d"]}`

	tags := utils.ParseTags(raw, 3)

	assert.Equal(t, []string{"a", "b", "c"}, tags)
}

func TestParseTagsSkipsBlankEntries(t *testing.T) {
	raw := `{"tags": ["", "  ", "real tag"]}`

	tags := utils.ParseTags(raw, 3)

	assert.Equal(t, []string{"real tag"}, tags)
}

func TestParseTagsGarbageReturnsDefaults(t *testing.T) {
	tags := utils.ParseTags("no json here", 3)

	assert.Equal(t, utils.DefaultTags, tags)
	assert.NotEmpty(t, tags)
}

func TestSanitizeModelOutput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fence with language", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fence without language", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"bom prefix", "\ufeff{\"a\":1}", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, utils.SanitizeModelOutput(tt.input))
		})
	}
}
