package web

import (
	"net/http"

	"github.com/jaminalder/ocean-tic-tac-toe/internal/app"
)

const sessionCookie = "session_id"

// session resolves the caller's session from its cookie, opening a new one
// (and setting the cookie) when the cookie is missing or stale.
func (h *handlers) session(w http.ResponseWriter, r *http.Request) *app.Session {
	var id string
	if c, err := r.Cookie(sessionCookie); err == nil {
		id = c.Value
	}
	sess := h.svc.Open(id)
	if sess.ID != id {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    sess.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return sess
}
