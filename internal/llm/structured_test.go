package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fieldPayload struct {
	Text string `json:"text"`
}

type weekPayload map[string]struct {
	Activity string `json:"activity"`
	Care     string `json:"care"`
}

func TestExtractJSON_CleanJSON(t *testing.T) {
	result, err := ExtractJSON[fieldPayload](`{"text":"外遊びを楽しむ。"}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "外遊びを楽しむ。", result.Text)
}

func TestExtractJSON_FencedJSON(t *testing.T) {
	raw := "```json\n{\"text\":\"砂場で遊ぶ\"}\n```"
	result, err := ExtractJSON[fieldPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "砂場で遊ぶ", result.Text)
}

func TestExtractJSON_SurroundingText(t *testing.T) {
	raw := "以下が提案です:\n{\"text\":\"絵本を読む\"}\nよろしくお願いします。"
	result, err := ExtractJSON[fieldPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "絵本を読む", result.Text)
}

func TestExtractJSON_NestedObjects(t *testing.T) {
	raw := `{"月":{"activity":"散歩","care":"水分補給"},"火":{"activity":"製作","care":"はさみの扱い"}}`
	result, err := ExtractJSON[weekPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "散歩", result["月"].Activity)
	assert.Equal(t, "はさみの扱い", result["火"].Care)
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	result, err := ExtractJSON[fieldPayload](`{"text":"a } b { c \"q\""} trailing }`, nil)
	require.NoError(t, err)
	assert.Equal(t, `a } b { c "q"`, result.Text)
}

func TestExtractJSON_Comments(t *testing.T) {
	raw := "{\n  // the suggestion\n  \"text\": \"http://example.com/a\" /* url kept */\n}"
	result, err := ExtractJSON[fieldPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/a", result.Text)
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON[fieldPayload]("ただの文章です", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_Unbalanced(t *testing.T) {
	_, err := ExtractJSON[fieldPayload](`{"text":"unterminated"`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_WrongShape(t *testing.T) {
	_, err := ExtractJSON[fieldPayload](`{"text": 12}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	validator := func(p fieldPayload) error {
		if p.Text == "" {
			return errors.New("text is required")
		}
		return nil
	}
	_, err := ExtractJSON[fieldPayload](`{"text":""}`, validator)
	require.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "text is required")

	result, err := ExtractJSON[fieldPayload](`{"text":"ok"}`, validator)
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Text)
}
