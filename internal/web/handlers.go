package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/catalogue"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/questions"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/session"
)

/*** Catalogue ***/

func (s *Server) getCatalogue(c *gin.Context) {
	sess := sessionFrom(c)
	cats := s.cat.Categories()
	out := make([]categoryDTO, 0, len(cats))
	for _, cat := range cats {
		topics := make([]topicItemDTO, 0, len(cat.Topics))
		for _, rec := range cat.Topics {
			topics = append(topics, topicItemDTO{
				ID:         rec.ID().String(),
				Name:       rec.Topic,
				Slug:       catalogue.Slug(rec.Topic),
				Quizzable:  rec.Quizzable(),
				VisualDemo: rec.HasVisualDemo,
				Completed:  sess.Progress.IsComplete(rec.ID()),
			})
		}
		out = append(out, categoryDTO{
			Name:   cat.Name,
			Icon:   cat.Icon,
			Slug:   cat.Slug(),
			Topics: topics,
		})
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

// getTopic accepts names or slugs for both path segments.
func (s *Server) getTopic(c *gin.Context) {
	cat, ok := s.cat.FindCategory(c.Param("category"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	query := c.Param("topic")
	for _, rec := range cat.Topics {
		if strings.EqualFold(rec.Topic, query) || catalogue.Slug(rec.Topic) == query {
			c.JSON(http.StatusOK, topicDTO{
				ID:         rec.ID().String(),
				Category:   rec.Category,
				Name:       rec.Topic,
				Definition: rec.Definition,
				Example:    rec.Example,
				Quizzable:  rec.Quizzable(),
				VisualDemo: rec.HasVisualDemo,
				Completed:  sessionFrom(c).Progress.IsComplete(rec.ID()),
			})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "topic not found"})
}

/*** Progress ***/

func (s *Server) getProgress(c *gin.Context) {
	c.JSON(http.StatusOK, s.progress(sessionFrom(c)))
}

func (s *Server) progress(sess *session.Session) progressDTO {
	ids := sess.Progress.Completed()
	completed := make([]string, len(ids))
	for i, id := range ids {
		completed[i] = id.String()
	}

	// Categories only count topics the catalogue still carries.
	sum := session.BuildSummary(sess, s.cat, sess.State.LastSeen)
	cats := make([]categoryProgressDTO, len(sum.Categories))
	for i, cp := range sum.Categories {
		cats[i] = categoryProgressDTO{Category: cp.Category, Completed: cp.Completed, Total: cp.Total}
	}
	return progressDTO{
		Completed:  completed,
		Count:      sess.Progress.Count(),
		Total:      s.cat.Len(),
		Categories: cats,
	}
}

// toggleProgress only accepts IDs the catalogue knows. The tracker itself
// would take anything.
func (s *Server) toggleProgress(c *gin.Context) {
	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	id, err := catalogue.ParseTopicID(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !s.cat.Contains(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "topic not found"})
		return
	}

	sess := sessionFrom(c)
	sess.Progress.Toggle(id)
	c.JSON(http.StatusOK, toggleResp{
		ID:        id.String(),
		Completed: sess.Progress.IsComplete(id),
		Count:     sess.Progress.Count(),
	})
}

func (s *Server) resetProgress(c *gin.Context) {
	sess := sessionFrom(c)
	sess.Progress.Reset()
	c.JSON(http.StatusOK, s.progress(sess))
}

/*** Flashcards ***/

func (s *Server) getFlashcard(c *gin.Context) {
	c.JSON(http.StatusOK, flashcardView(sessionFrom(c)))
}

func (s *Server) drawFlashcard(c *gin.Context) {
	sess := sessionFrom(c)
	if err := sess.Flashcards.Advance(s.pool, sess.Source); err != nil {
		s.coreError(c, err)
		return
	}
	s.metrics.drew("flashcard")
	c.JSON(http.StatusOK, flashcardView(sess))
}

func (s *Server) revealFlashcard(c *gin.Context) {
	sess := sessionFrom(c)
	if err := sess.Flashcards.Reveal(); err != nil {
		s.coreError(c, err)
		return
	}
	c.JSON(http.StatusOK, flashcardView(sess))
}

func flashcardView(sess *session.Session) flashcardDTO {
	out := flashcardDTO{
		Phase:    flashcardPhaseName(sess.Flashcards.Phase()),
		Revealed: sess.Flashcards.Revealed(),
	}
	if rec, ok := sess.Flashcards.Current(); ok {
		out.Card = newQuestionDTO(rec, false)
		if out.Revealed {
			out.Answer = rec.CorrectAnswer
		}
	}
	return out
}

/*** Quiz ***/

func (s *Server) getQuiz(c *gin.Context) {
	c.JSON(http.StatusOK, quizView(sessionFrom(c)))
}

func (s *Server) drawQuestion(c *gin.Context) {
	sess := sessionFrom(c)
	if err := sess.Quiz.NextQuestion(s.pool, sess.Source); err != nil {
		s.coreError(c, err)
		return
	}
	s.metrics.drew("quiz")
	c.JSON(http.StatusOK, quizView(sess))
}

func (s *Server) submitAnswer(c *gin.Context) {
	var req answerReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Choice == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	sess := sessionFrom(c)
	res, err := sess.Quiz.SubmitAnswer(*req.Choice)
	if err != nil {
		s.coreError(c, err)
		return
	}
	s.metrics.answered(res.Correct)
	c.JSON(http.StatusOK, answerResp{
		Correct:       res.Correct,
		CorrectAnswer: res.CorrectAnswer,
		Definition:    res.Definition,
		Awarded:       res.Awarded,
		Score:         res.Score,
		Streak:        res.Streak,
	})
}

func (s *Server) resetScore(c *gin.Context) {
	sess := sessionFrom(c)
	sess.Quiz.ResetScore()
	c.JSON(http.StatusOK, quizView(sess))
}

func quizView(sess *session.Session) quizDTO {
	out := quizDTO{
		Phase:    quizPhaseName(sess.Quiz.Phase()),
		Score:    sess.Quiz.Score(),
		Attempts: sess.Quiz.Attempts(),
		Correct:  sess.Quiz.CorrectAnswers(),
	}
	if rec, ok := sess.Quiz.Current(); ok {
		out.Question = newQuestionDTO(rec, true)
	}
	return out
}

// coreError maps session and pool errors onto HTTP statuses.
func (s *Server) coreError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, session.ErrNoActiveCard), errors.Is(err, session.ErrNoActiveQuestion):
		status = http.StatusConflict
	case errors.Is(err, questions.ErrEmptyPool):
		status = http.StatusServiceUnavailable
	default:
		s.logger.Error("request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
