package llm

// TaskType identifies the kind of generation task being performed.
type TaskType string

const (
	// TaskAdvise produces a short narrative recommendation for one domain.
	TaskAdvise TaskType = "advise"
	// TaskDaily produces the cross-domain daily summary.
	TaskDaily TaskType = "daily"
	// TaskReview produces the week-over-week review narrative.
	TaskReview TaskType = "review"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides the global timeout if > 0
}

// Config holds all configuration for the generator subsystem.
// Generation is disabled by default; the deterministic recommendation
// tables are always available without it.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults for a local
// Ollama instance.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  10000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskAdvise: {Temperature: 0.3, MaxTokens: 512, TimeoutMs: 8000},
			TaskDaily:  {Temperature: 0.3, MaxTokens: 1024, TimeoutMs: 10000},
			TaskReview: {Temperature: 0.4, MaxTokens: 1024, TimeoutMs: 15000},
		},
	}
}

// TaskTimeout returns the effective timeout for a given task type.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
