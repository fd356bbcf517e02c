package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jaminalder/ocean-tic-tac-toe/internal/app"
)

type handlers struct {
	svc    *app.Service
	tpl    *templates
	logger *slog.Logger
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	h.render(w, h.tpl.page, "page", newBoardView(sess.State))
}

func (h *handlers) play(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid cell index", http.StatusBadRequest)
		return
	}
	id := h.session(w, r).ID
	// out of range indexes go through; the engine ignores them
	sess, err := h.svc.Play(id, idx)
	if err != nil {
		h.logger.Error("play", "session", id, "index", idx, "error", err)
		http.Error(w, "failed to play", http.StatusInternalServerError)
		return
	}
	h.respondBoard(w, r, sess)
}

func (h *handlers) reset(w http.ResponseWriter, r *http.Request) {
	id := h.session(w, r).ID
	sess, err := h.svc.Reset(id)
	if err != nil {
		h.logger.Error("reset", "session", id, "error", err)
		http.Error(w, "failed to reset", http.StatusInternalServerError)
		return
	}
	h.respondBoard(w, r, sess)
}

func (h *handlers) state(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(newStateView(sess.State)); err != nil {
		h.logger.Error("encode state", "session", sess.ID, "error", err)
	}
}

func (h *handlers) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// respondBoard sends the board fragment to htmx and redirects plain form
// posts back to the full page.
func (h *handlers) respondBoard(w http.ResponseWriter, r *http.Request, sess *app.Session) {
	if r.Header.Get("HX-Request") != "true" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, h.tpl.board, "board_only", newBoardView(sess.State))
}
