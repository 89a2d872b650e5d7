package generation

import (
	"errors"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Kind classifies a generation outcome for metrics and message selection.
type Kind string

const (
	KindOK         Kind = "ok"
	KindOverloaded Kind = "overloaded"
	KindSafety     Kind = "safety"
	KindEmpty      Kind = "empty"
	KindUnknown    Kind = "unknown"
)

// User-safe messages by failure kind. Raw provider error text is never
// surfaced to end users.
var kindMessages = map[Kind]string{
	KindOverloaded: "AI 모델에 대한 요청이 많아 현재 응답할 수 없습니다. 잠시 후 다시 시도해 주세요.",
	KindSafety:     "생성된 콘텐츠가 안전 기준에 부합하지 않아 차단되었습니다. 질문이나 해석 요청 내용을 수정해 보세요.",
	KindEmpty:      "AI 해석을 생성하는 데 문제가 발생했습니다. 생성된 내용이 없습니다.",
	KindUnknown:    "AI 해석 생성 중 일반 오류가 발생했습니다. 잠시 후 다시 시도해주세요.",
}

// Message returns the user-safe text for a failure kind.
func Message(kind Kind) string {
	if msg, ok := kindMessages[kind]; ok {
		return msg
	}
	return kindMessages[KindUnknown]
}

// Classify maps a provider error to a failure kind, first by message
// substrings and then by HTTP-like status code.
func Classify(err error) Kind {
	if err == nil {
		return KindOK
	}

	msg := strings.ToLower(err.Error())
	if kind, ok := classifyMessage(msg); ok {
		return kind
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case 429, 503, 529:
			return KindOverloaded
		case 400:
			if apiErr.Type == "invalid_request_error" && strings.Contains(msg, "content") {
				return KindSafety
			}
		}
	}

	return KindUnknown
}

func classifyMessage(msg string) (Kind, bool) {
	switch {
	case strings.Contains(msg, "overloaded"),
		strings.Contains(msg, "rate limit"),
		strings.Contains(msg, "resource has been exhausted"),
		strings.Contains(msg, "503"),
		strings.Contains(msg, "try again later"):
		return KindOverloaded, true
	case strings.Contains(msg, "content_filter"),
		strings.Contains(msg, "content filter"),
		strings.Contains(msg, "safety"),
		strings.Contains(msg, "blocked"):
		return KindSafety, true
	case strings.Contains(msg, "no valid candidates"),
		strings.Contains(msg, "empty completion"):
		return KindEmpty, true
	}
	return KindUnknown, false
}

// classifyFinishReason inspects a successful response's finish reason for a
// post-hoc safety block.
func classifyFinishReason(reason string) Kind {
	switch strings.ToLower(reason) {
	case "content_filter", "safety":
		return KindSafety
	default:
		return KindOK
	}
}
