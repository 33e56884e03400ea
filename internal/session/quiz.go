package session

import (
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/catalogue"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/questions"
)

// RewardPoints is the score awarded for each correct answer.
const RewardPoints = 10

// AnswerResult is the feedback for one submitted answer.
type AnswerResult struct {
	Correct       bool
	CorrectAnswer string
	Definition    string

	// Awarded is the points this submission added to the score.
	Awarded int

	// Score is the running score after this submission.
	Score int

	// Streak is the number of consecutive correct submissions.
	Streak int
}

// Quiz drives the multiple-choice cycle and owns the running score.
type Quiz struct {
	state *State
}

// NewQuiz returns a quiz over the state's quiz slot and score.
func NewQuiz(state *State) *Quiz {
	return &Quiz{state: state}
}

// DrawRandom replaces the current question with a random pick from pool.
func (q *Quiz) DrawRandom(pool questions.Pool, src questions.Source) error {
	rec, err := pool.Draw(src)
	if err != nil {
		return err
	}
	q.state.Quiz.Current = &rec
	return nil
}

// NextQuestion draws a new question and leaves the score alone.
func (q *Quiz) NextQuestion(pool questions.Pool, src questions.Source) error {
	return q.DrawRandom(pool, src)
}

// SubmitAnswer scores choice against the current question by exact match.
//
// The question stays active after an answer, and every submission is scored
// on its own: answering the same question correctly twice earns the reward
// twice.
func (q *Quiz) SubmitAnswer(choice string) (AnswerResult, error) {
	cur := q.state.Quiz.Current
	if cur == nil {
		return AnswerResult{}, ErrNoActiveQuestion
	}

	res := AnswerResult{
		Correct:       choice == cur.CorrectAnswer,
		CorrectAnswer: cur.CorrectAnswer,
		Definition:    cur.Definition,
	}

	q.state.Quiz.Attempts++
	if res.Correct {
		q.state.Score += RewardPoints
		q.state.Quiz.Correct++
		q.state.Quiz.Streak++
		res.Awarded = RewardPoints
	} else {
		q.state.Quiz.Streak = 0
	}

	res.Score = q.state.Score
	res.Streak = q.state.Quiz.Streak
	return res, nil
}

// ResetScore sets the score back to zero. The current question is kept.
func (q *Quiz) ResetScore() {
	q.state.Score = 0
	q.state.Quiz.Streak = 0
}

// Score returns the running score.
func (q *Quiz) Score() int {
	return q.state.Score
}

// Current returns the active question, if any.
func (q *Quiz) Current() (catalogue.TopicRecord, bool) {
	if q.state.Quiz.Current == nil {
		return catalogue.TopicRecord{}, false
	}
	return *q.state.Quiz.Current, true
}

// Phase returns the quiz's position in its cycle.
func (q *Quiz) Phase() QuizPhase {
	if q.state.Quiz.Current == nil {
		return QuizEmpty
	}
	return QuizAwaiting
}

// Attempts returns the number of answers submitted this session.
func (q *Quiz) Attempts() int {
	return q.state.Quiz.Attempts
}

// CorrectAnswers returns the number of correct submissions this session.
func (q *Quiz) CorrectAnswers() int {
	return q.state.Quiz.Correct
}
