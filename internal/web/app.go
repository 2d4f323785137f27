package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"sync"
)

const assetsPrefix = "/assets/"

var (
	//go:embed templates/index.html assets/styles.css assets/ui.js
	files embed.FS

	indexOnce sync.Once
	indexTmpl *template.Template
)

// Defaults prefill the forms of the index page.
type Defaults struct {
	Base        string
	Ratio       float64
	Direction   string
	MaxAttempts int
}

type indexData struct {
	StylesPath string
	ScriptPath string
	Base       string
	Ratio      string
	Direction  string
	Attempts   int
	Directions []string
}

// Register attaches the UI page and its assets to mux.
func Register(mux *http.ServeMux, def Defaults) {
	mux.Handle("/", indexHandler(def))
	mux.Handle(assetsPrefix, assetsHandler())
}

func indexHandler(def Defaults) http.HandlerFunc {
	data := indexData{
		StylesPath: assetsPrefix + "styles.css",
		ScriptPath: assetsPrefix + "ui.js",
		Base:       def.Base,
		Ratio:      strconv.FormatFloat(def.Ratio, 'f', -1, 64),
		Direction:  def.Direction,
		Attempts:   def.MaxAttempts,
		Directions: []string{"auto", "asc", "desc"},
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		tmpl := loadTemplate()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; style-src 'self'; script-src 'self'; img-src 'self'; connect-src 'self'; form-action 'self'; base-uri 'none'")
		if err := tmpl.Execute(w, data); err != nil {
			http.Error(w, "template rendering failed", http.StatusInternalServerError)
		}
	}
}

func assetsHandler() http.Handler {
	sub, err := fs.Sub(files, "assets")
	if err != nil {
		panic(err)
	}
	fileServer := http.StripPrefix(assetsPrefix, http.FileServerFS(sub))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		fileServer.ServeHTTP(w, r)
	})
}

// Script returns the embedded ui.js source.
func Script() string {
	b, err := files.ReadFile("assets/ui.js")
	if err != nil {
		panic(err)
	}
	return string(b)
}

func loadTemplate() *template.Template {
	indexOnce.Do(func() {
		indexTmpl = template.Must(template.ParseFS(files, "templates/index.html"))
	})
	return indexTmpl
}
