package http

import (
	"html/template"
	"net/http"

	"health-chat/internal/compose"
	"health-chat/internal/i18n"
	"health-chat/internal/picker"
	"health-chat/internal/session"
	"health-chat/pkg"
)

var templateFuncs = template.FuncMap{
	"placeholder": func(m pkg.Message) bool { return m.IsPlaceholder() },
}

// pageData is what every page template receives.  Fields not used by a page
// stay zero.
type pageData struct {
	Doc      pkg.Document
	T        i18n.Bundle
	Snapshot session.Snapshot

	Picker  *picker.Picker
	Options []pkg.LanguageOption
	Common  []pkg.LanguageOption

	QuickReplies []string
	Draft        string
	CanSend      bool
	Help         []i18n.HelpSection
	Prompt       string
}

func newPageData(snap session.Snapshot) pageData {
	return pageData{Doc: snap.Document, T: snap.Strings, Snapshot: snap}
}

// chatData prepares the chat page with draft kept in the input.
func chatData(snap session.Snapshot, draft string) pageData {
	var in compose.Input
	in.SetText(draft)

	data := newPageData(snap)
	data.QuickReplies = compose.QuickReplies
	data.Draft = in.Text()
	data.CanSend = in.CanSend()
	return data
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.Templates.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error("Failed to render page", "template", name, "error", err)
	}
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleIndex renders onboarding until the conversation started, the chat
// afterwards.  On onboarding, lang selects a quick pick and q filters the
// list.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	snap := s.session(r).Snapshot()
	if snap.Started {
		s.render(w, http.StatusOK, "chat.html", chatData(snap, ""))
		return
	}

	query := r.URL.Query()
	p := picker.NewOnboarding(i18n.Options(), snap.Language)
	if code := query.Get("lang"); code != "" {
		p.Select(code)
	}
	p.SetQuery(query.Get("q"))

	data := newPageData(snap)
	data.Picker = p
	data.Options = p.Visible()
	data.Common = p.Common(i18n.CommonCodes())
	s.render(w, http.StatusOK, "onboarding.html", data)
}

func (s *Server) handleStartForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	p := picker.NewOnboarding(i18n.Options(), "")
	if !p.Select(r.PostFormValue("language")) || !p.CanSubmit() {
		http.Error(w, "choose a language", http.StatusBadRequest)
		return
	}
	s.session(r).Start(r.Context(), p.Selected())
	redirectHome(w, r)
}

// handleMessageForm treats the post as an Enter press on the input: plain
// Enter sends, the line break button adds a newline to the draft.  Blank
// text just returns to the chat.
func (s *Server) handleMessageForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	var in compose.Input
	in.SetText(r.PostFormValue("content"))

	sess := s.session(r)
	action, text := in.HandleKey(compose.Key{Name: compose.Enter, Shift: r.PostFormValue("newline") != ""})
	switch action {
	case compose.ActionSubmit:
		if sess.SendUserMessage(r.Context(), text) == nil {
			http.Error(w, "session is closing", http.StatusServiceUnavailable)
			return
		}
	case compose.ActionNewline:
		s.render(w, http.StatusOK, "chat.html", chatData(sess.Snapshot(), in.Text()))
		return
	}
	redirectHome(w, r)
}

func (s *Server) handleQuickReplyForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	label := r.PostFormValue("label")
	if !compose.IsQuickReply(label) {
		http.Error(w, "unknown quick reply", http.StatusBadRequest)
		return
	}
	if s.session(r).SendUserMessage(r.Context(), label) == nil {
		http.Error(w, "session is closing", http.StatusServiceUnavailable)
		return
	}
	redirectHome(w, r)
}

// handleLanguagePage renders the language switcher, pre-selected with the
// active language and filtered by q.
func (s *Server) handleLanguagePage(w http.ResponseWriter, r *http.Request) {
	snap := s.session(r).Snapshot()
	p := picker.NewSwitcher(i18n.Options(), snap.Language)
	p.SetQuery(r.URL.Query().Get("q"))

	data := newPageData(snap)
	data.Picker = p
	data.Options = p.Visible()
	data.Common = p.Common(i18n.CommonCodes())
	s.render(w, http.StatusOK, "language.html", data)
}

func (s *Server) handleLanguageForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	sess := s.session(r)
	p := picker.NewSwitcher(i18n.Options(), sess.Language())
	if !p.Select(r.PostFormValue("language")) {
		http.Error(w, "unknown language", http.StatusBadRequest)
		return
	}
	sess.SetLanguage(r.Context(), p.Selected())
	redirectHome(w, r)
}

// handleStartOverPage asks for confirmation before the reset.
func (s *Server) handleStartOverPage(w http.ResponseWriter, r *http.Request) {
	sess := s.session(r)
	data := newPageData(sess.Snapshot())
	data.Prompt = sess.ConfirmPrompt()
	s.render(w, http.StatusOK, "start_over.html", data)
}

func (s *Server) handleStartOverForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	yes := r.PostFormValue("confirm") == "yes"
	s.session(r).StartOver(r.Context(), func(string) bool { return yes })
	redirectHome(w, r)
}

func (s *Server) handleHelpPage(w http.ResponseWriter, r *http.Request) {
	data := newPageData(s.session(r).Snapshot())
	data.Help = i18n.Help()
	s.render(w, http.StatusOK, "help.html", data)
}
