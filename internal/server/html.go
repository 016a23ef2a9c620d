package server

import (
	"bytes"
	"html/template"

	"libbywrapped/internal/slides"
)

// The slide texts carry deliberate inline markup (<b>, <br>, links in
// notes), so they render as trusted HTML. All substituted values come from
// our own computed report, not from request input.
type chipData struct {
	Index int
	Fill  int
}

type pageData struct {
	Subtitle template.HTML
	Title    template.HTML
	Body     template.HTML
	Notes    template.HTML
	Centered bool

	Chips        []chipData
	Index        int
	PrevIndex    int
	NextIndex    int
	BackDisabled bool
}

var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Libby Wrapped</title>
<style>
  body { margin: 0; background: #12041f; color: #f5ecff; font-family: "SF Pro Text", "Segoe UI", sans-serif; }
  .story-chip-row { display: flex; gap: 6px; justify-content: center; padding: 18px 24px 0; }
  .story-chip { flex: 0 1 48px; height: 4px; background: #4a3566; border-radius: 2px; overflow: hidden; }
  .story-chip span { display: block; height: 100%; background: #e6d6ff; }
  .slide { min-height: 80vh; display: flex; padding: 0 10vw; }
  .slide.centered { align-items: center; justify-content: center; text-align: center; }
  .stack h1 { font-size: 1.1rem; text-transform: uppercase; letter-spacing: .12em; color: #c9a7f5; }
  .stack h3 { font-size: 2.2rem; line-height: 1.25; margin: .6em 0; }
  .body { font-size: 1.15rem; color: #d9c8f2; }
  .small { font-size: .8rem; color: #8f7bb0; }
  #footer-nav { position: fixed; bottom: 0; left: 0; right: 0; padding: 16px 24px; }
  .footer-inner { display: flex; justify-content: space-between; align-items: center; }
  .btn { padding: 10px 22px; border-radius: 999px; text-decoration: none; font-weight: 600; }
  .btn.primary { background: #8a5cf5; color: white; }
  .btn.secondary { background: #2c1b45; color: #d9c8f2; }
  .btn.disabled { opacity: .4; pointer-events: none; }
  .badge { font-size: .75rem; letter-spacing: .1em; color: #8f7bb0; text-transform: uppercase; }
</style>
</head>
<body>
  <div class="story-chip-row">
    {{- range .Chips}}
    <a class="story-chip" href="?slide={{.Index}}"><span style="width: {{.Fill}}%"></span></a>
    {{- end}}
  </div>
  <div class="slide{{if .Centered}} centered{{end}}">
    <div class="stack">
      {{if .Subtitle}}<h1>{{.Subtitle}}</h1>{{end}}
      {{if .Title}}<h3>{{.Title}}</h3>{{end}}
      {{if .Body}}<div class="body">{{.Body}}</div>{{end}}
      {{if .Notes}}<p class="small">{{.Notes}}</p>{{end}}
    </div>
  </div>
  <div id="footer-nav">
    <div class="footer-inner">
      <div class="button-row">
        <a class="btn secondary{{if .BackDisabled}} disabled{{end}}" href="?slide={{.PrevIndex}}">&#11013; Back</a>
        <a class="btn primary" href="?slide={{.NextIndex}}">Next &#10145;</a>
      </div>
      <span class="badge">Libby Wrapped</span>
    </div>
  </div>
</body>
</html>
`))

func renderPage(deck []slides.Rendered, idx int) ([]byte, error) {
	if len(deck) == 0 {
		return []byte("<!doctype html><title>Libby Wrapped</title>"), nil
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(deck)-1 {
		idx = len(deck) - 1
	}
	current := deck[idx]

	data := pageData{
		Subtitle:     template.HTML(current.Subtitle),
		Title:        template.HTML(current.Title),
		Body:         template.HTML(current.Body),
		Notes:        template.HTML(current.Notes),
		Centered:     current.Layout == "center",
		Index:        idx,
		PrevIndex:    max(0, idx-1),
		NextIndex:    min(len(deck)-1, idx+1),
		BackDisabled: idx == 0,
	}
	for i := range deck {
		fill := 0
		if i <= idx {
			fill = 100
		}
		data.Chips = append(data.Chips, chipData{Index: i, Fill: fill})
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
