// Package assistant answers policy questions with keyword-selected canned
// responses and logs every interaction. The responder is a stand-in: it
// can be replaced by a real retrieval system without touching the
// handlers or the interaction log.
package assistant

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyQuery     = errors.New("query is required")
	ErrMissingSession = errors.New("session id is required")
)

// Source describes one document a response claims to be grounded on.
type Source struct {
	Filename       string  `json:"filename"`
	Section        string  `json:"section"`
	RelevanceScore float64 `json:"relevance_score"`
	StorageKey     string  `json:"storage_key"`
	Excerpt        string  `json:"excerpt"`
}

// Interaction is one logged exchange: a query, a feedback submission or a
// refinement request.
type Interaction struct {
	ID           string    `json:"id"`
	SessionID    string    `json:"sessionId"`
	UserID       string    `json:"userId"`
	RecordID     string    `json:"recordId,omitempty"`
	Type         string    `json:"type"` // query, feedback, refine
	Query        string    `json:"query"`
	Response     string    `json:"response"`
	Feedback     string    `json:"feedback,omitempty"`
	Sources      []Source  `json:"sources"`
	SourcesCount int       `json:"sourcesCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Responder turns free text into a response and its source descriptors.
type Responder interface {
	Respond(query, section string) (string, []Source)
}

type Repository interface {
	LogInteraction(ctx context.Context, it *Interaction) error
	Count(ctx context.Context) (int, error)
	CountSessions(ctx context.Context) (int, error)
}

type Service struct {
	repo      Repository
	responder Responder
	now       func() time.Time
}

func NewService(repo Repository, responder Responder) *Service {
	return &Service{repo: repo, responder: responder, now: time.Now}
}

type QueryRequest struct {
	Query     string `json:"query"`
	Section   string `json:"section,omitempty"`
	UserID    string `json:"userId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	RecordID  string `json:"recordId,omitempty"`
}

type QueryResponse struct {
	Success   bool     `json:"success"`
	Response  string   `json:"response"`
	Sources   []Source `json:"sources"`
	SessionID string   `json:"sessionId"`
	Usage     *Usage   `json:"usage,omitempty"`
	Timestamp string   `json:"timestamp"`
	Note      string   `json:"note,omitempty"`
}

const cannedNote = "This is a canned response demonstrating the assistant workflow. Connect a retrieval backend for full capabilities."

// Query answers req with a canned response and logs the interaction. A
// failing log write is reported but never fails the request.
func (s *Service) Query(ctx context.Context, req QueryRequest) (*QueryResponse, error) {
	if req.Query == "" {
		return nil, ErrEmptyQuery
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = "session_" + uuid.NewString()
	}

	slog.InfoContext(ctx, "processing query", "session_id", sessionID, "section", req.Section)

	text, sources := s.responder.Respond(req.Query, req.Section)

	s.log(ctx, &Interaction{
		SessionID:    sessionID,
		UserID:       req.UserID,
		RecordID:     req.RecordID,
		Type:         "query",
		Query:        req.Query,
		Response:     text,
		Sources:      sources,
		SourcesCount: len(sources),
	})

	return &QueryResponse{
		Success:   true,
		Response:  text,
		Sources:   sources,
		SessionID: sessionID,
		Usage:     &Usage{InputTokens: 50, OutputTokens: 200},
		Timestamp: s.now().Format(time.RFC3339),
		Note:      cannedNote,
	}, nil
}

type FeedbackRequest struct {
	SessionID string `json:"sessionId"`
	Query     string `json:"query"`
	Response  string `json:"response"`
	Feedback  string `json:"feedback"`
	UserID    string `json:"userId,omitempty"`
}

// Feedback records a user's feedback on a previous response.
func (s *Service) Feedback(ctx context.Context, req FeedbackRequest) error {
	if req.SessionID == "" {
		return ErrMissingSession
	}
	if req.Feedback == "" {
		return errors.New("feedback is required")
	}

	return s.repo.LogInteraction(ctx, &Interaction{
		SessionID: req.SessionID,
		UserID:    req.UserID,
		Type:      "feedback",
		Query:     req.Query,
		Response:  req.Response,
		Feedback:  req.Feedback,
		Sources:   []Source{},
	})
}

type RefineRequest struct {
	OriginalQuery    string `json:"originalQuery"`
	OriginalResponse string `json:"originalResponse"`
	SessionID        string `json:"sessionId"`
	Section          string `json:"section,omitempty"`
}

type RefineResponse struct {
	Success         bool   `json:"success"`
	RefinedResponse string `json:"refined_response"`
	Usage           *Usage `json:"usage,omitempty"`
	Timestamp       string `json:"timestamp"`
}

// Refine re-answers the original query with additional framing and logs a
// refine interaction.
func (s *Service) Refine(ctx context.Context, req RefineRequest) (*RefineResponse, error) {
	if req.OriginalQuery == "" {
		return nil, ErrEmptyQuery
	}
	if req.SessionID == "" {
		return nil, ErrMissingSession
	}

	text, sources := s.responder.Respond(req.OriginalQuery, req.Section)
	refined := "**Refined Response Based on Your Feedback:**\n\n" + text +
		"\n\n**Additional Context:**\nThis refined response addresses potential gaps in the original answer."

	s.log(ctx, &Interaction{
		SessionID:    req.SessionID,
		Type:         "refine",
		Query:        req.OriginalQuery,
		Response:     refined,
		Sources:      sources,
		SourcesCount: len(sources),
	})

	return &RefineResponse{
		Success:         true,
		RefinedResponse: refined,
		Usage:           &Usage{InputTokens: 75, OutputTokens: 250},
		Timestamp:       s.now().Format(time.RFC3339),
	}, nil
}

func (s *Service) log(ctx context.Context, it *Interaction) {
	if err := s.repo.LogInteraction(ctx, it); err != nil {
		slog.ErrorContext(ctx, "failed to log interaction", "error", err, "session_id", it.SessionID)
	}
}
