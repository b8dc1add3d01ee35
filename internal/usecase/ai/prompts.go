package ai

import "fmt"

// Generation settings per stage
const (
	translateTemperature = 0.2
	translateMaxTokens   = 600

	summarizeTemperature = 0.3
	summarizeMaxTokens   = 600

	moderateTemperature = 0
	moderateMaxTokens   = 300

	analyzeTemperature = 0.1
	analyzeMaxTokens   = 700
)

const (
	translateSystemPrompt = "You are a multilingual translation assistant."
	summarizeSystemPrompt = "You write clear, structured summaries."
	moderateSystemPrompt  = "You are a JSON-only moderation classifier."

	analyzeSystemPrompt = "You are an expert Meeting Analysis AI. " +
		"Return ONLY valid JSON (no markdown). Schema:\n" +
		`{"summary":"string","actions":[{"assignee":"string","text":"string"}],"moderation":{"interruptions":0,"notes":["string"]}}` + "\n" +
		"Rules: summary = 1-3 short sentences. " +
		"actions = concrete, imperative, at most 120 chars each. " +
		"If the assignee is obvious from the transcript, include their first name; otherwise use an empty string. " +
		"moderation.notes MUST include brief bullets for any toxic or harassing language (e.g. 'toxic: \"idiot\"'), " +
		"hate, threats, sexual content, or PII (phone/email). If none, return an empty array."
)

func translatePrompt(from, to, text string) string {
	return fmt.Sprintf(
		"You are a professional translator. The user will give you text in %s. "+
			"Translate it into natural, fluent %s. "+
			"If the text is already in %s, just return it as-is. "+
			"Do not explain, comment, or repeat the source. "+
			"Output only the %s translation text.\n\nText:\n%s",
		from, to, to, to, text,
	)
}

func summarizePrompt(text string) string {
	return "You are a precise meeting summarizer. " +
		"Summarize the following transcript into concise, clear English points. " +
		"Focus on key discussion topics, decisions, and outcomes.\n\n" +
		"Transcript:\n" + text + "\n\nSummary:"
}

func moderatePrompt(text string) string {
	return "You are a strict content moderation system. " +
		"Analyze the following text and respond ONLY in valid JSON format with these keys:\n" +
		`{"is_flagged": bool, "categories": {"hate": bool, "violence": bool, "sexual": bool, "self_harm": bool}, "notes": string}` +
		"\n\nText:\n" + text + "\n\nReturn JSON only, no extra words."
}

func analyzePrompt(transcript string) string {
	return "Transcript:\n\"\"\"\n" + transcript + "\n\"\"\"\nReturn JSON only."
}
