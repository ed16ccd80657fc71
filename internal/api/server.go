package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/alexanderramin/tailquest/internal/catalog"
	"github.com/alexanderramin/tailquest/internal/chat"
	"github.com/alexanderramin/tailquest/internal/domain"
	"github.com/alexanderramin/tailquest/internal/progress"
	"github.com/alexanderramin/tailquest/internal/session"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Server exposes the game over HTTP. Sessions live in memory only.
type Server struct {
	catalog  *catalog.Catalog
	progress *progress.Store
	chat     chat.Asker
	sessions *registry
	logger   *slog.Logger
}

// NewServer creates a Server. asker and logger may be nil.
func NewServer(cat *catalog.Catalog, store *progress.Store, asker chat.Asker, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{
		catalog:  cat,
		progress: store,
		chat:     asker,
		sessions: newRegistry(),
		logger:   logger,
	}
}

// Router builds the chi router with all routes registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(chiMiddleware.Heartbeat("/health"))
	s.RegisterRoutes(r)
	return r
}

// RegisterRoutes registers the API routes on r.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/topics", s.ListTopics)
		r.Get("/progress", s.GetProgress)
		r.Get("/home", s.GetHome)
		r.Post("/chat", s.Chat)
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.CreateSession)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.GetSession)
				r.Delete("/", s.DeleteSession)
				r.Post("/answer", s.SubmitAnswer)
				r.Post("/advance", s.Advance)
				r.Post("/restart", s.Restart)
				r.Get("/hint", s.GetHint)
			})
		})
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.InfoContext(r.Context(), "http_request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", chiMiddleware.GetReqID(r.Context()),
		)
	})
}

type topicView struct {
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Summary    string `json:"summary,omitempty"`
	Challenges int    `json:"challenges"`
	Completed  int    `json:"completed"`
	Percent    int    `json:"percent"`
}

type progressView struct {
	Topic     string `json:"topic"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Percent   int    `json:"percent"`
}

func toProgressView(rec domain.ProgressRecord) progressView {
	return progressView{Topic: rec.Topic, Completed: rec.Completed, Total: rec.Total, Percent: rec.Percent()}
}

// ListTopics returns every topic with its progress.
func (s *Server) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics := s.catalog.Topics()
	out := make([]topicView, 0, len(topics))
	for _, t := range topics {
		rec := s.progress.TopicProgress(t.Name)
		out = append(out, topicView{
			Name:       t.Name,
			Slug:       t.Slug,
			Summary:    t.Summary,
			Challenges: t.Len(),
			Completed:  rec.Completed,
			Percent:    rec.Percent(),
		})
	}
	JSON(w, http.StatusOK, map[string]any{"topics": out})
}

// GetProgress returns one topic's record with ?topic=, otherwise all records
// and the overall percentage.
func (s *Server) GetProgress(w http.ResponseWriter, r *http.Request) {
	if arg := r.URL.Query().Get("topic"); arg != "" {
		t, err := s.catalog.Resolve(arg)
		if err != nil {
			Error(w, http.StatusNotFound, err.Error())
			return
		}
		JSON(w, http.StatusOK, toProgressView(s.progress.TopicProgress(t.Name)))
		return
	}
	JSON(w, http.StatusOK, s.progressSummary())
}

func (s *Server) progressSummary() map[string]any {
	recs := s.progress.Records()
	views := make([]progressView, 0, len(recs))
	for _, rec := range recs {
		views = append(views, toProgressView(rec))
	}
	return map[string]any{"overallPercent": s.progress.OverallPercent(), "topics": views}
}

// GetHome echoes the informational topic/completed pair a finished session
// hands back to the home screen, alongside current progress.
func (s *Server) GetHome(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	resp := s.progressSummary()
	if topic := q.Get("topic"); topic != "" {
		resp["topic"] = topic
		resp["knownTopic"] = s.catalog.Has(topic)
	}
	if raw := q.Get("completed"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			Error(w, http.StatusBadRequest, "completed must be a non-negative integer")
			return
		}
		resp["completed"] = n
	}
	JSON(w, http.StatusOK, resp)
}

type chatRequest struct {
	Message string `json:"message"`
	Topic   string `json:"topic"`
}

// Chat relays a question to the chat webhook. Failures come back as the
// fallback reply with status 200.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decode(w, r, &req); err != nil {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		Error(w, http.StatusBadRequest, "message is required")
		return
	}
	if s.chat == nil {
		JSON(w, http.StatusOK, map[string]string{"reply": chat.FallbackReply})
		return
	}
	JSON(w, http.StatusOK, map[string]string{"reply": s.chat.Ask(r.Context(), req.Message, req.Topic)})
}

type createSessionRequest struct {
	Topic      string `json:"topic"`
	StartIndex int    `json:"startIndex"`
}

type sessionResponse struct {
	ID        string           `json:"id"`
	State     session.State    `json:"state"`
	Challenge *challengeView   `json:"challenge,omitempty"`
	Result    *session.Result  `json:"result,omitempty"`
	Stats     *completionStats `json:"stats,omitempty"`
}

type challengeView struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	PreviewContent string `json:"previewContent"`
	PreviewClasses string `json:"previewClasses,omitempty"`
	TargetClasses  string `json:"targetClasses"`
	HintCount      int    `json:"hintCount"`
}

type completionStats struct {
	Score           int `json:"score"`
	Completed       int `json:"completed"`
	AccuracyPercent int `json:"accuracyPercent"`
}

func view(id string, sess *session.Session) sessionResponse {
	resp := sessionResponse{ID: id, State: sess.Snapshot()}
	if ch, err := sess.Current(); err == nil && resp.State.Phase == domain.PhaseInChallenge {
		resp.Challenge = &challengeView{
			Title:          ch.Title,
			Description:    ch.Description,
			PreviewContent: ch.PreviewContent,
			PreviewClasses: ch.PreviewClasses,
			TargetClasses:  ch.TargetClasses(),
			HintCount:      len(ch.Hints),
		}
	}
	if resp.State.Phase == domain.PhaseTopicComplete {
		resp.Stats = &completionStats{
			Score:           resp.State.Score,
			Completed:       resp.State.Completed,
			AccuracyPercent: sess.AccuracyPercent(),
		}
	}
	return resp
}

// CreateSession starts a new session on a topic.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decode(w, r, &req); err != nil {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}
	t, err := s.catalog.Resolve(req.Topic)
	if err != nil {
		Error(w, http.StatusNotFound, err.Error())
		return
	}

	sess := session.New(s.catalog, s.progress)
	if err := sess.Start(t.Name, req.StartIndex); err != nil {
		writeSessionError(w, err)
		return
	}
	id := s.sessions.add(sess)
	s.logger.InfoContext(r.Context(), "session_created", "id", id, "topic", t.Name, "start_index", req.StartIndex)
	JSON(w, http.StatusCreated, view(id, sess))
}

// withSession resolves {id} and runs fn holding the session's lock.
func (s *Server) withSession(w http.ResponseWriter, r *http.Request, fn func(id string, sess *session.Session)) {
	id := chi.URLParam(r, "id")
	e, ok := s.sessions.get(id)
	if !ok {
		Error(w, http.StatusNotFound, "session not found")
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(id, e.session)
}

// GetSession returns the session state and current challenge.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(id string, sess *session.Session) {
		JSON(w, http.StatusOK, view(id, sess))
	})
}

// DeleteSession discards a session, e.g. when the learner leaves the topic.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.sessions.remove(id) {
		Error(w, http.StatusNotFound, "session not found")
		return
	}
	s.logger.InfoContext(r.Context(), "session_deleted", "id", id)
	JSON(w, http.StatusOK, map[string]any{"id": id, "deleted": true})
}

type answerRequest struct {
	Answer string `json:"answer"`
}

// SubmitAnswer checks an answer against the current challenge.
func (s *Server) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := decode(w, r, &req); err != nil {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}
	s.withSession(w, r, func(id string, sess *session.Session) {
		res, err := sess.Submit(r.Context(), req.Answer)
		if err != nil {
			writeSessionError(w, err)
			return
		}
		resp := view(id, sess)
		resp.Result = &res
		JSON(w, http.StatusOK, resp)
	})
}

// Advance moves past a solved challenge.
func (s *Server) Advance(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(id string, sess *session.Session) {
		if _, err := sess.Advance(); err != nil {
			writeSessionError(w, err)
			return
		}
		JSON(w, http.StatusOK, view(id, sess))
	})
}

// Restart goes back to the first challenge of the topic.
func (s *Server) Restart(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(id string, sess *session.Session) {
		if err := sess.Restart(); err != nil {
			writeSessionError(w, err)
			return
		}
		JSON(w, http.StatusOK, view(id, sess))
	})
}

// GetHint returns the hint at the cursor without moving it.
func (s *Server) GetHint(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(_ string, sess *session.Session) {
		hint, err := sess.Hint()
		if err != nil {
			writeSessionError(w, err)
			return
		}
		JSON(w, http.StatusOK, map[string]string{"hint": hint})
	})
}

func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidTopic):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		Error(w, http.StatusConflict, err.Error())
	default:
		Error(w, http.StatusInternalServerError, err.Error())
	}
}
