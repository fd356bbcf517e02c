package web

import (
	"bytes"
	"html/template"
	"net/http"
)

type templates struct {
	page  *template.Template
	board *template.Template
}

func loadTemplates() *templates {
	page := template.Must(template.New("page").Parse(pageTemplate))
	template.Must(page.New("board").Parse(boardTemplate))
	// Standalone board template used for htmx fragment swaps
	board := template.Must(template.New("board_only").Parse(boardTemplate))
	return &templates{page: page, board: board}
}

// render executes t into a buffer first so a failing template never leaves
// a half-written response behind.
func (h *handlers) render(w http.ResponseWriter, t *template.Template, name string, data any) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("render template", "template", name, "error", err)
		http.Error(w, "failed to render", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

const pageTemplate = `<!doctype html>
<html lang="en"><head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>Tic Tac Toe • Ocean Professional</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<style>
  :root { --primary: #2563EB; --secondary: #F59E0B; --error: #EF4444; --text: #111827; --bg: #f9fafb; }
  body { margin: 0; font-family: system-ui, sans-serif; color: var(--text); background: linear-gradient(135deg, #eff6ff, var(--bg)); }
  .wrapper { min-height: 100vh; display: flex; align-items: center; justify-content: center; padding: 1rem; }
  .card { background: #fff; border-radius: 16px; box-shadow: 0 10px 30px rgba(37, 99, 235, .12); padding: 1.5rem; width: min(420px, 100%); }
  .title { margin: 0; color: var(--primary); }
  .subtitle { margin: .25rem 0 1rem; color: #6b7280; font-size: .9rem; }
  .status-bar { display: flex; gap: .5rem; align-items: center; margin-bottom: 1rem; }
  .badge { font-weight: 600; }
  .badge.draw { color: var(--error); }
  .board { display: grid; grid-template-columns: repeat(3, 1fr); gap: .5rem; }
  .cell { aspect-ratio: 1; font-size: 2.5rem; font-weight: 700; border: 1px solid #e5e7eb; border-radius: 12px; background: #fff; cursor: pointer; transition: background .15s, transform .15s; }
  .cell:hover:not([disabled]) { background: #eff6ff; transform: translateY(-1px); }
  .cell[disabled] { cursor: default; }
  .cell.winning { background: #fef3c7; border-color: var(--secondary); }
  .mark-x { color: var(--primary); }
  .mark-o { color: var(--secondary); }
  .controls { margin-top: 1rem; display: flex; justify-content: center; }
  .button { border: 0; border-radius: 999px; padding: .6rem 1.4rem; font-weight: 600; cursor: pointer; }
  .button.primary { background: var(--primary); color: #fff; }
  .footer { margin-top: 1rem; text-align: center; color: #9ca3af; font-size: .8rem; }
</style>
</head><body>
<div class="wrapper">
  <section class="card" aria-label="Tic Tac Toe">
    <header>
      <h1 class="title">Tic Tac Toe</h1>
      <p class="subtitle">Ocean Professional theme • Smooth and simple</p>
    </header>
    {{template "board" .}}
    <footer class="footer">Built with Go • No database required</footer>
  </section>
</div>
</body></html>`

const boardTemplate = `
<div id="game">
  <div class="status-bar" role="status">
    <span class="badge {{.BadgeClass}}" aria-live="polite">• {{.Badge}}</span>
    <span class="status-text">{{.Status}}</span>
  </div>
  <form method="post" class="board" role="grid" aria-label="Game board" aria-rowcount="3" aria-colcount="3">
    {{range .Cells}}
    <button type="submit" role="gridcell" formaction="/play/{{.Index}}"
      hx-post="/play/{{.Index}}" hx-target="#game" hx-swap="outerHTML"
      aria-rowindex="{{.Row}}" aria-colindex="{{.Col}}" aria-label="{{.Label}}"
      class="cell{{if .Winning}} winning{{end}}"{{if .Disabled}} disabled{{end}}>
      <span class="{{.MarkClass}}">{{.Mark}}</span>
    </button>
    {{end}}
  </form>
  <form method="post" action="/reset" class="controls">
    <button type="submit" class="button primary" hx-post="/reset" hx-target="#game" hx-swap="outerHTML">{{.ResetLabel}}</button>
  </form>
</div>
`
