package web

import (
	"slices"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/catalogue"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/session"
)

type categoryDTO struct {
	Name   string         `json:"name"`
	Icon   string         `json:"icon"`
	Slug   string         `json:"slug"`
	Topics []topicItemDTO `json:"topics"`
}

type topicItemDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Quizzable  bool   `json:"quizzable"`
	VisualDemo bool   `json:"visual_demo"`
	Completed  bool   `json:"completed"`
}

type topicDTO struct {
	ID         string `json:"id"`
	Category   string `json:"category"`
	Name       string `json:"name"`
	Definition string `json:"definition"`
	Example    string `json:"example"`
	Quizzable  bool   `json:"quizzable"`
	VisualDemo bool   `json:"visual_demo"`
	Completed  bool   `json:"completed"`
}

type progressDTO struct {
	Completed  []string              `json:"completed"`
	Count      int                   `json:"count"`
	Total      int                   `json:"total"`
	Categories []categoryProgressDTO `json:"categories"`
}

type categoryProgressDTO struct {
	Category  string `json:"category"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

type toggleReq struct {
	ID string `json:"id"`
}

type toggleResp struct {
	ID        string `json:"id"`
	Completed bool   `json:"completed"`
	Count     int    `json:"count"`
}

// questionDTO never carries the correct answer.
type questionDTO struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Topic    string   `json:"topic"`
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
}

type flashcardDTO struct {
	Phase    string       `json:"phase"`
	Card     *questionDTO `json:"card,omitempty"`
	Answer   string       `json:"answer,omitempty"`
	Revealed bool         `json:"revealed"`
}

type quizDTO struct {
	Phase    string       `json:"phase"`
	Question *questionDTO `json:"question,omitempty"`
	Score    int          `json:"score"`
	Attempts int          `json:"attempts"`
	Correct  int          `json:"correct"`
}

type answerReq struct {
	Choice *string `json:"choice"`
}

type answerResp struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
	Definition    string `json:"definition"`
	Awarded       int    `json:"awarded"`
	Score         int    `json:"score"`
	Streak        int    `json:"streak"`
}

func newQuestionDTO(rec catalogue.TopicRecord, withOptions bool) *questionDTO {
	q := &questionDTO{
		ID:       rec.ID().String(),
		Category: rec.Category,
		Topic:    rec.Topic,
		Question: rec.Question,
	}
	if withOptions {
		q.Options = slices.Clone(rec.Options)
	}
	return q
}

func flashcardPhaseName(p session.FlashcardPhase) string {
	switch p {
	case session.FlashcardShowQuestion:
		return "question"
	case session.FlashcardShowAnswer:
		return "answer"
	default:
		return "empty"
	}
}

func quizPhaseName(p session.QuizPhase) string {
	if p == session.QuizAwaiting {
		return "awaiting"
	}
	return "empty"
}
