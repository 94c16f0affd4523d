package services

import "strings"

// The literal output formats requested here are load-bearing: the response
// parser splits on the same markers. Change them together or not at all.

func BuildSummaryPrompt(body string) string {
	var b strings.Builder

	b.WriteString("You are an expert study assistant. Write a clear, well-organized summary of the following study material.\n\n")
	b.WriteString("Focus on key concepts, definitions, and takeaways. Use short paragraphs. Return plain text only, no markdown headers.\n")

	b.WriteString("\n---CONTENT---\n")
	b.WriteString(body)
	b.WriteString("\n---END---\n")

	return b.String()
}

func BuildFlashcardPrompt(body string) string {
	var b strings.Builder

	b.WriteString("You are an expert flashcard creator. Create exactly 10 flashcards from the study material below.\n\n")
	b.WriteString("CRITICAL: Return ONLY flashcard lines, one card per line, in this exact format:\n")
	b.WriteString("Q: <question> | A: <answer>\n\n")
	b.WriteString("No numbering, no preamble, no markdown.\n")

	b.WriteString("\n---CONTENT---\n")
	b.WriteString(body)
	b.WriteString("\n---END---\n")

	return b.String()
}

func BuildQuizPrompt(body string) string {
	var b strings.Builder

	b.WriteString("You are an expert educational assessor. Create exactly 5 multiple choice questions from the study material below.\n\n")
	b.WriteString("CRITICAL: Format every question exactly like this block, separated by blank lines:\n\n")
	b.WriteString("Question: <the question>\n")
	b.WriteString("A) <first option>\n")
	b.WriteString("B) <second option>\n")
	b.WriteString("C) <third option>\n")
	b.WriteString("D) <fourth option>\n")
	b.WriteString("Correct: <letter A-D>\n")
	b.WriteString("Explanation: <one sentence on why>\n\n")
	b.WriteString("No preamble, no markdown.\n")

	b.WriteString("\n---CONTENT---\n")
	b.WriteString(body)
	b.WriteString("\n---END---\n")

	return b.String()
}
