package services

import (
	"context"
	"strings"
)

// DemoGenerator is the Generator used when the deployment has no local model
// server to talk to. It never touches the network, always reads as
// disconnected, and answers every prompt with fixed placeholder text shaped
// to match the prompt's requested format.
type DemoGenerator struct{}

func NewDemoGenerator() *DemoGenerator { return &DemoGenerator{} }

func (d *DemoGenerator) Probe(ctx context.Context) bool             { return false }
func (d *DemoGenerator) ListModels(ctx context.Context) []ModelInfo { return nil }
func (d *DemoGenerator) Connected() bool                            { return false }
func (d *DemoGenerator) Configure(baseURL, model string)            {}

func (d *DemoGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	switch {
	case strings.Contains(prompt, "flashcard"):
		return demoFlashcardResponse, nil
	case strings.Contains(prompt, "multiple choice"):
		return demoQuizResponse, nil
	default:
		return demoSummaryResponse, nil
	}
}

const demoSummaryResponse = `This is a demonstration summary. Connect a local model server to generate real summaries of your study material.

In demonstration mode the application produces fixed placeholder output so you can explore the interface without a running model.`

const demoFlashcardResponse = `Q: What is demonstration mode? | A: A fallback that returns fixed placeholder responses when no local model server is reachable.
Q: How do you leave demonstration mode? | A: Run a local model server and point the application at it in the connection settings.
Q: What happens to your content in demonstration mode? | A: Nothing. Uploaded content stays in memory for the session and is never sent anywhere.`

const demoQuizResponse = `Question: What does demonstration mode replace?
A) Uploaded documents
B) Calls to the model server
C) The content store
D) The user interface
Correct: B
Explanation: Generation calls are bypassed in favor of fixed placeholder text.

Question: When is demonstration mode selected?
A) Once at startup
B) On every request
C) After each upload
D) Never
Correct: A
Explanation: The generator strategy is chosen once when the server boots.`
