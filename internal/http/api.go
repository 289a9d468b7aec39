package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"health-chat/internal/compose"
	"health-chat/internal/i18n"
	"health-chat/internal/picker"
	"health-chat/pkg"
)

// handleGetSession returns the snapshot of the requesting device's session.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.session(r).Snapshot())
}

// handleStart ends onboarding.  The body is optional.
func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req pkg.StartRequest
	if err := s.decode(w, r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Language != "" && !i18n.IsKnown(req.Language) {
		s.respondError(w, http.StatusBadRequest, "unknown language: "+req.Language)
		return
	}
	sess := s.session(r)
	sess.Start(r.Context(), req.Language)
	s.respondJSON(w, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleSetLanguage(w http.ResponseWriter, r *http.Request) {
	var req pkg.LanguageRequest
	if err := s.decode(w, r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !i18n.IsKnown(req.Language) {
		s.respondError(w, http.StatusBadRequest, "unknown language: "+req.Language)
		return
	}
	sess := s.session(r)
	sess.SetLanguage(r.Context(), req.Language)
	s.respondJSON(w, http.StatusOK, sess.Snapshot())
}

// handleSendMessage accepts typed text or a quick reply and answers before
// the reply is ready.  The reply arrives on the event stream.
func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req pkg.ChatRequest
	if err := s.decode(w, r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var text string
	if req.QuickReply != "" {
		if !compose.IsQuickReply(req.QuickReply) {
			s.respondError(w, http.StatusBadRequest, "unknown quick reply: "+req.QuickReply)
			return
		}
		text = req.QuickReply
	} else {
		var in compose.Input
		in.SetText(req.Content)
		if !in.CanSend() {
			s.respondError(w, http.StatusBadRequest, "message is empty")
			return
		}
		text, _ = in.Submit()
	}

	sess := s.session(r)
	added := sess.SendUserMessage(r.Context(), text)
	if added == nil {
		s.respondError(w, http.StatusServiceUnavailable, "session is closing")
		return
	}

	resp := pkg.ChatResponse{Messages: added}
	if code, ok := i18n.Detect(text); ok && code != sess.Language() {
		resp.SuggestedLanguage = code
	}
	s.respondJSON(w, http.StatusAccepted, resp)
}

// handleReset clears the conversation once the caller confirmed.  Without
// confirmation it answers 409 with the prompt to show.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req pkg.ResetRequest
	if err := s.decode(w, r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	sess := s.session(r)
	confirmed := sess.StartOver(r.Context(), func(string) bool { return req.Confirm })
	if !confirmed {
		s.respondJSON(w, http.StatusConflict, pkg.ErrorResponse{
			Error:  "confirmation required",
			Prompt: sess.ConfirmPrompt(),
		})
		return
	}
	s.respondJSON(w, http.StatusOK, sess.Snapshot())
}

// handleLanguages lists the language options matching q.
func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, picker.Filter(i18n.Options(), r.URL.Query().Get("q")))
}

// stringsResponse carries a bundle.  Translated is false when the language
// has no strings of its own and the default bundle was used.
type stringsResponse struct {
	Language   string       `json:"languageCode"`
	Document   pkg.Document `json:"document"`
	Translated bool         `json:"translated"`
	Strings    i18n.Bundle  `json:"strings"`
}

func (s *Server) handleStrings(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if !i18n.IsKnown(code) {
		s.respondError(w, http.StatusNotFound, "unknown language: "+code)
		return
	}
	s.respondJSON(w, http.StatusOK, stringsResponse{
		Language:   code,
		Document:   i18n.DocumentFor(code),
		Translated: i18n.HasBundle(code),
		Strings:    i18n.Resolve(code),
	})
}

func (s *Server) handleHelp(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, i18n.Help())
}
