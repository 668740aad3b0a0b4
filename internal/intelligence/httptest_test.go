package intelligence

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/hoikuplan/internal/domain"
	"github.com/alexanderramin/hoikuplan/internal/llm"
)

func newHTTPTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("skipping HTTP integration test: local listener unavailable (%v)", r)
			}
		}()
		srv = httptest.NewServer(handler)
	}()
	return srv
}

func testClientConfig(url string) llm.LLMConfig {
	cfg := llm.DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = url
	cfg.Model = "test-model"
	cfg.MaxRetries = 0
	return cfg
}

// The week request travels through the real Ollama wire format, including
// JSON mode, and comes back flattened into weekly field values.
func TestSuggestionService_GenerateWeek_WithHTTPTestServer(t *testing.T) {
	week := WeekPlan{
		"月": {Activity: "散歩", Care: "水分補給", Supplies: "帽子"},
		"火": {Activity: "粘土遊び", Care: "口に入れないよう見守る", Supplies: "粘土"},
	}
	weekJSON, err := json.Marshal(week)
	require.NoError(t, err)

	srv := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "json", body["format"])
		assert.Equal(t, "test-model", body["model"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"model": "test-model", "response": string(weekJSON)})
	})
	defer srv.Close()

	svc := NewSuggestionService(llm.NewOllamaClient(testClientConfig(srv.URL), llm.NoopObserver{}), llm.NoopObserver{})

	plan, err := svc.GenerateWeek(context.Background(), Request{AgeGroup: "2歳児", Keywords: "春", Doc: domain.KindWeekly})
	require.NoError(t, err)

	values := plan.Apply(nil, []string{"4/7(月)", "4/8(火)", "4/9(水)"}, DefaultWeekLabels())
	assert.Equal(t, "散歩", values.Get("活動内容", 1))
	assert.Equal(t, "粘土", values.Get("準備物", 2))
	assert.Equal(t, "", values.Get("活動内容", 3))
}

func TestSuggestionService_Generate_TimeoutWithHTTPTestServer(t *testing.T) {
	srv := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	defer srv.Close()

	cfg := testClientConfig(srv.URL)
	cfg.TimeoutMs = 50
	cfg.Tasks[llm.TaskSuggestField] = llm.TaskConfig{TimeoutMs: 50}

	svc := NewSuggestionService(llm.NewOllamaClient(cfg, llm.NoopObserver{}), llm.NoopObserver{})

	start := time.Now()
	_, err := svc.Generate(context.Background(), monthlyRequest())
	elapsed := time.Since(start)

	f, ok := AsFailure(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, CodeTimeout, f.Code)
	assert.Less(t, elapsed, time.Second)
}

func TestSuggestionService_Generate_ServerErrorWithHTTPTestServer(t *testing.T) {
	srv := newHTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	})
	defer srv.Close()

	svc := NewSuggestionService(llm.NewOllamaClient(testClientConfig(srv.URL), llm.NoopObserver{}), llm.NoopObserver{})

	_, err := svc.Generate(context.Background(), monthlyRequest())
	f, ok := AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, CodeFailed, f.Code)
	assert.ErrorIs(t, err, llm.ErrRetryExhausted)
}
