package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

// ─── Flashcard Parsing ───

func TestParseFlashcards(t *testing.T) {
	parentID := uuid.New()

	input := "Q: What is 2+2? | A: 4\nQ: Capital of France? | A: Paris"
	cards := ParseFlashcards(input, parentID)

	if len(cards) != 2 {
		t.Fatalf("Expected 2 flashcards, got %d", len(cards))
	}
	if cards[0].Front != "What is 2+2?" {
		t.Errorf("Expected front 'What is 2+2?', got %q", cards[0].Front)
	}
	if cards[0].Back != "4" {
		t.Errorf("Expected back '4', got %q", cards[0].Back)
	}
	if cards[1].Front != "Capital of France?" {
		t.Errorf("Expected front 'Capital of France?', got %q", cards[1].Front)
	}
	if cards[1].Back != "Paris" {
		t.Errorf("Expected back 'Paris', got %q", cards[1].Back)
	}
}

func TestParseFlashcardsFixedDifficulty(t *testing.T) {
	cards := ParseFlashcards("Q: A question? | A: An answer", uuid.New())
	if len(cards) != 1 {
		t.Fatalf("Expected 1 flashcard, got %d", len(cards))
	}
	if cards[0].Difficulty != "medium" {
		t.Errorf("Expected difficulty 'medium', got %q", cards[0].Difficulty)
	}
}

// A line that drops the pipe separator still splits at the first "A:" after
// "Q:".
func TestParseFlashcardsFallsBackWithoutPipe(t *testing.T) {
	cards := ParseFlashcards("Q: What breaks pipes? A: Sloppy model output", uuid.New())

	if len(cards) != 1 {
		t.Fatalf("Expected 1 flashcard, got %d", len(cards))
	}
	if cards[0].Front != "What breaks pipes?" {
		t.Errorf("Expected front 'What breaks pipes?', got %q", cards[0].Front)
	}
	if cards[0].Back != "Sloppy model output" {
		t.Errorf("Expected back 'Sloppy model output', got %q", cards[0].Back)
	}
}

func TestParseFlashcardsDropsMalformedLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"question without answer", "Q: Only a question here", 0},
		{"answer without question", "A: Only an answer here", 0},
		{"answer marker before question", "A: answer then Q: question", 0},
		{"empty front", "Q: | A: an answer", 0},
		{"empty back", "Q: a question? | A:", 0},
		{"valid among malformed", "preamble line\nQ: Good? | A: Yes\nQ: broken line", 1},
		{"empty input", "", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cards := ParseFlashcards(tc.input, uuid.New())
			if len(cards) != tc.expected {
				t.Errorf("Expected %d cards, got %d", tc.expected, len(cards))
			}
		})
	}
}

func TestParseFlashcardsPreservesOrder(t *testing.T) {
	input := "Q: First? | A: 1\nQ: Second? | A: 2\nQ: Third? | A: 3"
	cards := ParseFlashcards(input, uuid.New())

	if len(cards) != 3 {
		t.Fatalf("Expected 3 cards, got %d", len(cards))
	}
	for i, want := range []string{"1", "2", "3"} {
		if cards[i].Back != want {
			t.Errorf("Card %d: expected back %q, got %q", i, want, cards[i].Back)
		}
	}
}

// ─── Quiz Parsing ───

const validQuizBlock = `Question: What is the capital of France?
A) London
B) Berlin
C) Paris
D) Madrid
Correct: C
Explanation: because`

func TestParseQuizValidBlock(t *testing.T) {
	questions := ParseQuiz(validQuizBlock, uuid.New())

	if len(questions) != 1 {
		t.Fatalf("Expected 1 question, got %d", len(questions))
	}

	q := questions[0]
	if q.Question != "What is the capital of France?" {
		t.Errorf("Expected question text, got %q", q.Question)
	}
	if len(q.Options) != 4 {
		t.Fatalf("Expected 4 options, got %d", len(q.Options))
	}
	if q.Options[0] != "London" {
		t.Errorf("Expected option 'London' with prefix stripped, got %q", q.Options[0])
	}
	if q.Options[2] != "Paris" {
		t.Errorf("Expected option 'Paris', got %q", q.Options[2])
	}
	if q.CorrectAnswer != 2 {
		t.Errorf("Expected correctAnswer 2, got %d", q.CorrectAnswer)
	}
	if q.Explanation != "because" {
		t.Errorf("Expected explanation 'because', got %q", q.Explanation)
	}
}

func TestParseQuizMissingCorrectDefaultsToZero(t *testing.T) {
	input := `Question: Pick one
A) one
B) two
C) three
D) four
Explanation: filler line to reach the minimum`

	questions := ParseQuiz(input, uuid.New())
	if len(questions) != 1 {
		t.Fatalf("Expected 1 question, got %d", len(questions))
	}
	if questions[0].CorrectAnswer != 0 {
		t.Errorf("Expected default correctAnswer 0, got %d", questions[0].CorrectAnswer)
	}
}

func TestParseQuizMissingExplanation(t *testing.T) {
	input := `Question: Pick one
A) one
B) two
C) three
D) four
Correct: B`

	questions := ParseQuiz(input, uuid.New())
	if len(questions) != 1 {
		t.Fatalf("Expected 1 question, got %d", len(questions))
	}
	if questions[0].CorrectAnswer != 1 {
		t.Errorf("Expected correctAnswer 1, got %d", questions[0].CorrectAnswer)
	}
	if questions[0].Explanation != "" {
		t.Errorf("Expected empty explanation, got %q", questions[0].Explanation)
	}
}

func TestParseQuizSkipsShortBlocks(t *testing.T) {
	input := `Question: Too short
A) one
B) two

` + validQuizBlock

	questions := ParseQuiz(input, uuid.New())
	if len(questions) != 1 {
		t.Fatalf("Expected short block skipped, got %d questions", len(questions))
	}
	if questions[0].Question != "What is the capital of France?" {
		t.Errorf("Expected the valid block's question, got %q", questions[0].Question)
	}
}

func TestParseQuizCapsAtFiveQuestions(t *testing.T) {
	input := strings.Repeat(validQuizBlock+"\n\n", 8)

	questions := ParseQuiz(input, uuid.New())
	if len(questions) != 5 {
		t.Errorf("Expected at most 5 questions, got %d", len(questions))
	}
}

func TestParseQuizMalformedInputNeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"Question:",
		"Question: Question: Question:",
		"no markers at all\njust text",
		"Correct: Z\nExplanation:",
	}

	for _, input := range inputs {
		if questions := ParseQuiz(input, uuid.New()); len(questions) != 0 {
			t.Errorf("Expected no questions for %q, got %d", input, len(questions))
		}
	}
}

// Runes like U+023A grow by a byte under ToLower, so marker lines carrying
// them must still scan safely and keep the marker's byte position intact.
func TestParseQuizHandlesLengthChangingRunes(t *testing.T) {
	input := `Question: Pick one
A) one
B) two
C) three
D) four
ȺȺȺȺȺȺȺȺ Correct: B
Explanation: Ⱥfine`

	questions := ParseQuiz(input, uuid.New())
	if len(questions) != 1 {
		t.Fatalf("Expected 1 question, got %d", len(questions))
	}
	if questions[0].CorrectAnswer != 1 {
		t.Errorf("Expected correctAnswer 1, got %d", questions[0].CorrectAnswer)
	}
	if questions[0].Explanation != "Ⱥfine" {
		t.Errorf("Expected explanation preserved verbatim, got %q", questions[0].Explanation)
	}
}

// ─── Summary ───

func TestParseSummaryPassThrough(t *testing.T) {
	in := "  The whole response is the summary.  \n"
	if got := ParseSummary(in); got != "The whole response is the summary." {
		t.Errorf("Expected trimmed pass-through, got %q", got)
	}
}

// ─── Prompt / Parser Round Trip ───

// The prompt templates promise the exact formats the parser consumes; a
// response following them to the letter must parse completely.

func TestFlashcardPromptFormatParsesBack(t *testing.T) {
	prompt := BuildFlashcardPrompt("material")
	if !strings.Contains(prompt, "Q: <question> | A: <answer>") {
		t.Fatalf("Flashcard prompt no longer requests the Q/A line format:\n%s", prompt)
	}

	cards := ParseFlashcards("Q: From the format? | A: Exactly", uuid.New())
	if len(cards) != 1 {
		t.Errorf("Expected the promised format to parse, got %d cards", len(cards))
	}
}

func TestQuizPromptFormatParsesBack(t *testing.T) {
	prompt := BuildQuizPrompt("material")
	for _, marker := range []string{"Question: ", "A) ", "Correct: ", "Explanation: "} {
		if !strings.Contains(prompt, marker) {
			t.Errorf("Quiz prompt missing marker %q", marker)
		}
	}

	questions := ParseQuiz(validQuizBlock, uuid.New())
	if len(questions) != 1 {
		t.Errorf("Expected the promised format to parse, got %d questions", len(questions))
	}
}
