package summary

import "os"

// DefaultPromptTemplate is used when no prompt template file is
// available. Keeping a built-in default means a missing file never fails
// the run.
const DefaultPromptTemplate = `You are a helpful personal assistant analyzing a calendar for the week ahead.

Your task is to:
1. Summarize the upcoming week in a conversational, concise tone
2. Group related meetings meaningfully
3. Highlight any scheduling issues or conflicts (back-to-back meetings, etc.)
4. Suggest preparation needs for important events
5. For monthly look-ahead items: surface genuinely important items like deadlines, reminders, birthdays, or special occasions

Keep the tone helpful and conversational - like a smart assistant who knows the schedule well.
Avoid being robotic or overly formal. Be concise but insightful.`

// LoadPromptTemplate reads the prompt template from path. When the file
// cannot be read the built-in default is returned instead; the second
// return value reports whether that fallback was taken.
func LoadPromptTemplate(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultPromptTemplate, true
	}
	return string(data), false
}
