package viewer

import (
	"html/template"
	"net/http"

	"github.com/brensch/snekduel/strategy"
)

type pageData struct {
	Snapshot
	Rows       [][]string
	Strategies []string
}

var page = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>snekduel</title>
<style>
body { background: #111; color: #ddd; font-family: monospace; }
table.board { border-collapse: collapse; border: 1px solid #555; }
table.board td { width: 12px; height: 12px; padding: 0; }
td.s1 { background: #f80; } td.s1.head { background: #fc6; }
td.s2 { background: #0cc; } td.s2.head { background: #9ff; }
td.dead { background: #555; }
td.food { background: #e22; border-radius: 6px; }
</style>
</head>
<body>
<h1>snekduel</h1>
<p id="status" data-match="{{.MatchID}}">turn <span id="turn">{{.Turn}}</span> · {{.Status}}{{if .WinnerId}} · winner {{.WinnerId}}{{end}}</p>
<table class="board" id="board">
{{range $y, $row := .Rows}}<tr>{{range $x, $c := $row}}<td id="c{{$x}}_{{$y}}" class="{{$c}}"></td>{{end}}</tr>
{{end}}</table>
<ul id="snakes">
{{range .Snakes}}<li class="snake" data-id="{{.Id}}">{{.Name}} ({{.Strategy}}) score <span class="score">{{.Score}}</span>{{if not .Alive}} dead{{end}}</li>
{{end}}</ul>
<form id="restart">
<select name="s1">{{range .Strategies}}<option>{{.}}</option>{{end}}</select>
<select name="s2">{{range .Strategies}}<option>{{.}}</option>{{end}}</select>
<button type="submit">restart</button>
</form>
<script>
const board = document.getElementById("board");
function draw(s) {
  for (const td of board.querySelectorAll("td")) td.className = "empty";
  const set = (p, c) => { const td = document.getElementById("c" + p.x + "_" + p.y); if (td) td.className = c; };
  set(s.food, "food");
  s.snakes.forEach((sn, i) => {
    const prefix = sn.alive ? "s" + (i + 1) : "dead";
    for (let j = sn.body.length - 1; j >= 0; j--) set(sn.body[j], prefix + (j === 0 ? " head" : " body"));
  });
  document.getElementById("turn").textContent = s.turn;
  document.querySelectorAll("#snakes .score").forEach((el, i) => { if (s.snakes[i]) el.textContent = s.snakes[i].score; });
}
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
ws.onmessage = (ev) => {
  const s = JSON.parse(ev.data);
  if (s.width * s.height !== board.querySelectorAll("td").length) { location.reload(); return; }
  draw(s);
};
document.getElementById("restart").onsubmit = (ev) => {
  ev.preventDefault();
  const f = new FormData(ev.target);
  fetch("/api/restart?s1=" + f.get("s1") + "&s2=" + f.get("s2"), { method: "POST" });
};
</script>
</body>
</html>
`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if !allow(w, r, http.MethodGet) {
		return
	}
	snap := s.snapshot()
	data := pageData{Snapshot: snap, Rows: snap.cells(), Strategies: strategy.Names()}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Execute(w, data); err != nil {
		s.log.Error("render page", "err", err)
	}
}
