package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation being requested.
type TaskType string

const (
	// TaskSuggestField drafts the text of a single form field.
	TaskSuggestField TaskType = "suggest_field"
	// TaskSuggestWeek drafts a structured Monday to Saturday plan.
	TaskSuggestWeek TaskType = "suggest_week"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides the global timeout if > 0
}

// LLMConfig holds all configuration for the suggestion backend.
type LLMConfig struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns the built-in configuration. Suggestions are off
// until HOIKUPLAN_LLM_ENABLED is set.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  15000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskSuggestField: {Temperature: 0.7, MaxTokens: 300, TimeoutMs: 15000},
			TaskSuggestWeek:  {Temperature: 0.5, MaxTokens: 1500, TimeoutMs: 45000},
		},
	}
}

// LoadConfig reads HOIKUPLAN_LLM_* environment variables over the defaults.
// Malformed values are ignored.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("HOIKUPLAN_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("HOIKUPLAN_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("HOIKUPLAN_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("HOIKUPLAN_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if n, ok := envInt("HOIKUPLAN_LLM_TIMEOUT_MS"); ok && n > 0 {
		cfg.TimeoutMs = n
	}
	if n, ok := envInt("HOIKUPLAN_LLM_MAX_RETRIES"); ok && n >= 0 {
		cfg.MaxRetries = n
	}

	applyTaskTimeoutEnv(&cfg, TaskSuggestField, "HOIKUPLAN_LLM_SUGGEST_FIELD_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskSuggestWeek, "HOIKUPLAN_LLM_SUGGEST_WEEK_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the per-attempt timeout for task in milliseconds.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	n, ok := envInt(envName)
	if !ok || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}

func envInt(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
