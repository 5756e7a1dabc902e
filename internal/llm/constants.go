package llm

// Error message templates
const (
	errRateLimiter          = "rate limiter error: %w"
	errOpenAIChatCompletion = "openai chat completion error: %w"
)

const (
	llmAPIKeyMock  = "mock"
	mockCompletion = "This is a mock health answer. Configure LLM_API_KEY for real completions."

	systemPrompt = "You are a cautious public health assistant. Answer briefly and always recommend professional medical consultation for diagnosis or treatment."
)
