package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"studydeck-backend/internal/models"
)

// The model's output format is never guaranteed, so parsing is best-effort:
// malformed lines and short blocks are dropped, never errored.

const maxQuizBlocks = 5

// ParseSummary is a pass-through; the whole response is the summary.
func ParseSummary(response string) string {
	return strings.TrimSpace(response)
}

// ParseFlashcards converts "Q: ... | A: ..." lines into cards. Lines missing
// either marker, or yielding an empty front or back, are discarded. Order is
// preserved and nothing is deduplicated.
func ParseFlashcards(response string, parentID uuid.UUID) []models.Flashcard {
	var cards []models.Flashcard
	for _, line := range strings.Split(response, "\n") {
		if !strings.Contains(line, "Q:") || !strings.Contains(line, "A:") {
			continue
		}

		front, back, ok := splitCardLine(line)
		if !ok {
			continue
		}

		cards = append(cards, models.Flashcard{
			ID:         fmt.Sprintf("%s-%d", parentID, len(cards)),
			Front:      front,
			Back:       back,
			Difficulty: "medium",
		})
	}
	return cards
}

func splitCardLine(line string) (front, back string, ok bool) {
	sep := strings.Index(line, " | A:")
	markerLen := len(" | A:")
	if sep < 0 {
		// Fall back to the first "A:" after "Q:" when the pipe separator is
		// missing from the line.
		q := strings.Index(line, "Q:")
		rel := strings.Index(line[q+len("Q:"):], "A:")
		if rel < 0 {
			return "", "", false
		}
		sep = q + len("Q:") + rel
		markerLen = len("A:")
	}

	front = strings.TrimSpace(strings.Replace(line[:sep], "Q:", "", 1))
	back = strings.TrimSpace(line[sep+markerLen:])
	if front == "" || back == "" {
		return "", "", false
	}
	return front, back, true
}

var (
	optionPrefix      = regexp.MustCompile(`^[A-D][).:]\s*`)
	answerLetter      = regexp.MustCompile(`[A-D]`)
	correctMarker     = regexp.MustCompile(`(?i)correct`)
	explanationMarker = regexp.MustCompile(`(?i)explanation`)
)

// ParseQuiz splits the response into "Question:" blocks and assembles up to
// five questions. A block needs at least six non-empty lines (question, four
// options, a correct-answer line) to qualify; anything shorter is skipped
// silently rather than producing a partial question.
func ParseQuiz(response string, parentID uuid.UUID) []models.QuizQuestion {
	blocks := strings.Split(response, "Question:")

	var questions []models.QuizQuestion
	processed := 0
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if processed >= maxQuizBlocks {
			break
		}
		processed++

		q, ok := parseQuizBlock(block, fmt.Sprintf("%s-%d", parentID, len(questions)))
		if ok {
			questions = append(questions, q)
		}
	}
	return questions
}

func parseQuizBlock(block, id string) (models.QuizQuestion, bool) {
	var lines []string
	for _, raw := range strings.Split(block, "\n") {
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) < 6 {
		return models.QuizQuestion{}, false
	}

	q := models.QuizQuestion{
		ID:       id,
		Question: lines[0],
		Options:  make([]string, 0, 4),
		// Defaults to the first option when no letter is found. This is an
		// explicit fallback, not an error; it is indistinguishable from a
		// genuine "A is correct".
		CorrectAnswer: 0,
	}

	for _, line := range lines[1:5] {
		q.Options = append(q.Options, strings.TrimSpace(optionPrefix.ReplaceAllString(line, "")))
	}

	// Marker scans run a case-insensitive match and slice the same string at
	// the match boundary. Index math on a lowercased shadow is wrong: ToLower
	// can change byte length, so a shadow index may fall outside the line.
	for _, line := range lines {
		if loc := correctMarker.FindStringIndex(line); loc != nil {
			if letter := answerLetter.FindString(line[loc[1]:]); letter != "" {
				q.CorrectAnswer = int(letter[0] - 'A')
			}
			break
		}
	}

	for _, line := range lines {
		if loc := explanationMarker.FindStringIndex(line); loc != nil {
			rest := line[loc[1]:]
			q.Explanation = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rest), ":"))
			break
		}
	}

	return q, true
}
