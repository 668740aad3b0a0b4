package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 15000, cfg.TaskTimeout(TaskSuggestField))
	assert.Equal(t, 45000, cfg.TaskTimeout(TaskSuggestWeek))
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HOIKUPLAN_LLM_ENABLED", "true")
	t.Setenv("HOIKUPLAN_LLM_ENDPOINT", "http://gpu-box:11434")
	t.Setenv("HOIKUPLAN_LLM_MODEL", "qwen2.5")
	t.Setenv("HOIKUPLAN_LLM_MAX_RETRIES", "3")
	t.Setenv("HOIKUPLAN_LLM_TIMEOUT_MS", "9000")
	t.Setenv("HOIKUPLAN_LLM_SUGGEST_WEEK_TIMEOUT_MS", "60000")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "http://gpu-box:11434", cfg.Endpoint)
	assert.Equal(t, "qwen2.5", cfg.Model)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 60000, cfg.TaskTimeout(TaskSuggestWeek))
	assert.Equal(t, 15000, cfg.TaskTimeout(TaskSuggestField))
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("HOIKUPLAN_LLM_SUGGEST_FIELD_TIMEOUT_MS", "not-a-number")
	t.Setenv("HOIKUPLAN_LLM_MAX_RETRIES", "-2")
	t.Setenv("HOIKUPLAN_LLM_TIMEOUT_MS", "0")

	cfg := LoadConfig()

	assert.Equal(t, 15000, cfg.TaskTimeout(TaskSuggestField))
	assert.Equal(t, 1, cfg.MaxRetries)
	assert.Equal(t, 15000, cfg.TimeoutMs)
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeoutMs = 1234
	assert.Equal(t, 1234, cfg.TaskTimeout(TaskType("other")))
}
