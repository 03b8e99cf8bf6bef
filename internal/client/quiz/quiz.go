// Package quiz holds the mood-quiz question bank and the answer form state
// machine. The form moves between questions one at a time: Next is blocked
// while the current answer is blank, Previous floors at the first question,
// and submission requires every answer to be non-empty.
package quiz

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyAnswer blocks Next while the current answer is blank.
	ErrEmptyAnswer = errors.New("answer this question before proceeding")

	// ErrIncomplete blocks submission while any answer is blank.
	ErrIncomplete = errors.New("answer all questions before submitting")
)

// Questions is the fixed mood-quiz question bank.
var Questions = []string{
	"What kind of mood carried you through the day?",
	"Was there anything that genuinely made you smile or laugh?",
	"How much tension did you carry in your body?",
	"Did your thoughts feel peaceful or restless?",
	"Were there any waves of sadness or emptiness?",
	"How quickly did small things get under your skin?",
	"Did you feel close to others or more distant than usual?",
	"Was it easy to find motivation or did everything feel like a push?",
	"Was your sleep refreshing or draining?",
	"What emotion showed up most during your day?",
	"Did anything feel like too much to handle?",
	"How kind were your thoughts toward yourself?",
	"Were you able to focus on what mattered?",
	"What kind of energy followed you around?",
	"Did you do anything just for yourself — something that felt good?",
	"Did you feel hopeful or stuck when thinking about the future?",
	"How did your body and breath feel throughout the day?",
	"Did any anger or frustration surprise you?",
	"Was it hard to stay present or did you feel grounded?",
	"If your day had a color or weather, what would it be?",
}

// Form is the in-progress quiz: one answer slot per question and a cursor.
type Form struct {
	questions []string
	answers   []string
	current   int
}

// NewForm returns a Form over the standard question bank with blank answers.
func NewForm() *Form {
	return &Form{
		questions: Questions,
		answers:   make([]string, len(Questions)),
	}
}

// Question returns the text of the current question.
func (f *Form) Question() string { return f.questions[f.current] }

// Position returns the one-based number of the current question and the
// total count.
func (f *Form) Position() (current, total int) {
	return f.current + 1, len(f.questions)
}

// Answer returns the current question's answer.
func (f *Form) Answer() string { return f.answers[f.current] }

// SetAnswer records the answer for the current question.
func (f *Form) SetAnswer(text string) { f.answers[f.current] = text }

// Next advances to the following question. It fails with ErrEmptyAnswer
// while the current answer is blank, and is a no-op on the last question.
func (f *Form) Next() error {
	if strings.TrimSpace(f.answers[f.current]) == "" {
		return ErrEmptyAnswer
	}
	if f.current < len(f.questions)-1 {
		f.current++
	}
	return nil
}

// Previous moves back one question, flooring at the first.
func (f *Form) Previous() {
	if f.current > 0 {
		f.current--
	}
}

// AtLast reports whether the cursor is on the final question.
func (f *Form) AtLast() bool { return f.current == len(f.questions)-1 }

// Complete reports whether every answer is non-blank.
func (f *Form) Complete() bool {
	for _, a := range f.answers {
		if strings.TrimSpace(a) == "" {
			return false
		}
	}
	return true
}

// Combined joins all answers into the single text submitted for analysis.
func (f *Form) Combined() string {
	return strings.Join(f.answers, "\n")
}

// Reset blanks every answer and returns the cursor to the first question.
func (f *Form) Reset() {
	for i := range f.answers {
		f.answers[i] = ""
	}
	f.current = 0
}
