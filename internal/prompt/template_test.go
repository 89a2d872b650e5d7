package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_Placeholders(t *testing.T) {
	t.Parallel()
	out := Render(`질문: "{{{question}}}" / 스프레드: {{cardSpread}}`, Bindings{
		"question":   "올해의 연애운은?",
		"cardSpread": "3카드",
	})
	assert.Equal(t, `질문: "올해의 연애운은?" / 스프레드: 3카드`, out)
}

func TestRender_UnknownPlaceholderRendersEmpty(t *testing.T) {
	t.Parallel()
	out := Render("a {{missing}} b {{{alsoMissing}}} c", Bindings{})
	assert.Equal(t, "a  b  c", out)
	assert.NotContains(t, out, "{{")
}

func TestRender_IfElse(t *testing.T) {
	t.Parallel()
	tmpl := "{{#if isGuestUser}}short{{else}}full{{/if}}"

	assert.Equal(t, "short", Render(tmpl, Bindings{"isGuestUser": true}))
	assert.Equal(t, "full", Render(tmpl, Bindings{"isGuestUser": false}))
	assert.Equal(t, "full", Render(tmpl, Bindings{}))
}

func TestRender_IfWithoutElse(t *testing.T) {
	t.Parallel()
	tmpl := "always{{#if extra}} extra{{/if}}"
	assert.Equal(t, "always extra", Render(tmpl, Bindings{"extra": "yes"}))
	assert.Equal(t, "always", Render(tmpl, Bindings{"extra": "   "}))
	assert.Equal(t, "always", Render(tmpl, Bindings{}))
}

func TestRender_StringTruthiness(t *testing.T) {
	t.Parallel()
	tmpl := "{{#if sajuInfo}}[{{{sajuInfo}}}]{{/if}}"
	assert.Equal(t, "[갑자년생]", Render(tmpl, Bindings{"sajuInfo": "갑자년생"}))
	assert.Equal(t, "", Render(tmpl, Bindings{"sajuInfo": ""}))
}

func TestRender_Each(t *testing.T) {
	t.Parallel()
	tmpl := "{{#each clarifications}}- Q: {{this.question}} A: {{this.answer}}\n{{/each}}"
	out := Render(tmpl, Bindings{
		"clarifications": []map[string]string{
			{"question": "언제?", "answer": "어젯밤"},
			{"question": "어디서?", "answer": "바다"},
		},
	})
	assert.Equal(t, "- Q: 언제? A: 어젯밤\n- Q: 어디서? A: 바다\n", out)
}

func TestRender_EachEmptyListGatesOff(t *testing.T) {
	t.Parallel()
	tmpl := "{{#if clarifications}}has{{#each clarifications}}x{{/each}}{{/if}}"
	assert.Equal(t, "", Render(tmpl, Bindings{"clarifications": []map[string]string{}}))
	assert.Equal(t, "", Render(tmpl, Bindings{}))
}

func TestRender_NestedBlocks(t *testing.T) {
	t.Parallel()
	tmpl := "{{#if isGuestUser}}guest{{else}}member{{#if sajuInfo}} with saju{{/if}}{{/if}}"

	assert.Equal(t, "guest", Render(tmpl, Bindings{"isGuestUser": true, "sajuInfo": "x"}))
	assert.Equal(t, "member with saju", Render(tmpl, Bindings{"isGuestUser": false, "sajuInfo": "x"}))
	assert.Equal(t, "member", Render(tmpl, Bindings{"isGuestUser": false}))
}

func TestRender_MalformedMarkupDegradesToText(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "open {{#if x", Render("open {{#if x", Bindings{"x": true}))
	assert.Contains(t, Render("{{#if x}}never closed", Bindings{"x": true}), "never closed")
}

func TestRender_StrayTerminatorKeepsTrailingText(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a{{/if}}b", Render("a{{/if}}b", nil))
	assert.Equal(t, "a{{else}}b", Render("a{{else}}b", nil))
	assert.Equal(t, "a{{/each}}b", Render("a{{/each}}b", nil))

	// A stray terminator after a well-formed block must not swallow what follows.
	out := Render("{{#if x}}yes{{/if}} tail{{/each}} end", Bindings{"x": true})
	assert.Equal(t, "yes tail{{/each}} end", out)
}

func TestRender_DefaultTarotTemplateLeavesNoTokens(t *testing.T) {
	t.Parallel()
	for _, guest := range []bool{true, false} {
		out := Render(DefaultTarotTemplate, Bindings{
			"question":            "이직해도 될까요?",
			"cardSpread":          "켈틱 크로스",
			"cardInterpretations": "1. 탑(역방향): 급격한 변화…",
			"isGuestUser":         guest,
		})
		assert.NotContains(t, out, "{{", "guest=%v", guest)
		assert.Contains(t, out, "이직해도 될까요?")
	}
}

func TestRender_DefaultDreamTemplateLeavesNoTokens(t *testing.T) {
	t.Parallel()
	out := Render(DefaultDreamTemplate, Bindings{
		"dreamDescription": "높은 탑에서 떨어지는 꿈",
		"clarifications": []map[string]string{
			{"question": "떨어질 때 기분은?", "answer": "무서웠다"},
		},
		"additionalInfo": "최근 이직 준비 중",
		"sajuInfo":       "",
		"isGuestUser":    false,
	})
	assert.NotContains(t, out, "{{")
	assert.Contains(t, out, "높은 탑에서 떨어지는 꿈")
	assert.Contains(t, out, "- Q: 떨어질 때 기분은?")
	assert.NotContains(t, out, "[USER'S SAJU INFORMATION]")
}

func TestRender_GuestModeSwitchesTemplateBranch(t *testing.T) {
	t.Parallel()
	guest := Render(DefaultTarotTemplate, Bindings{
		"question": "q", "cardSpread": "s", "cardInterpretations": "c", "isGuestUser": true,
	})
	member := Render(DefaultTarotTemplate, Bindings{
		"question": "q", "cardSpread": "s", "cardInterpretations": "c", "isGuestUser": false,
	})

	assert.Contains(t, guest, "[GUEST MODE INSTRUCTIONS]")
	assert.NotContains(t, guest, "[FULL INTERPRETATION GUIDELINES")
	assert.Contains(t, member, "[FULL INTERPRETATION GUIDELINES")
	assert.NotContains(t, member, "[GUEST MODE INSTRUCTIONS]")
	assert.True(t, len(guest) < len(member), "guest prompt is the short-form variant")
}
