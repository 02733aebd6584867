// Runs the pixelface avatar server

package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/maxhully/pixelface"
	"github.com/maxhully/pixelface/avatargen"
)

type App struct {
	renderer *pixelface.Renderer
}

func timer(name string) func() {
	start := time.Now()
	return func() {
		duration := time.Since(start)
		log.Printf("%s took %s", name, duration)
	}
}

func NewApp() *App {
	renderer, err := pixelface.NewRenderer()
	if err != nil {
		log.Fatalf("error from NewRenderer: %s", err)
	}
	return &App{renderer: renderer}
}

func errorResponse(w http.ResponseWriter, err error) {
	log.Printf("sending 500 error: %s", err)
	http.Error(w, "500 Internal Server Error", http.StatusInternalServerError)
}

func badRequest(w http.ResponseWriter, err error) {
	log.Printf("sending 400 error: %s", err)
	http.Error(w, "400 Bad Request: "+err.Error(), http.StatusBadRequest)
}

func (app *App) RenderTemplate(w http.ResponseWriter, name string, data any) {
	if err := app.renderer.ExecuteTemplate(w, name, data); err != nil {
		errorResponse(w, err)
	}
}

type homepage struct {
	Palettes []string
	Moods    []avatargen.Mood
	Genders  []avatargen.Gender
}

func (app *App) Homepage(w http.ResponseWriter, r *http.Request) {
	app.RenderTemplate(w, "index.html", &homepage{
		Palettes: avatargen.PaletteNames(),
		Moods:    pixelface.Moods(),
		Genders:  pixelface.Genders(),
	})
}

// Avatars are deterministic, so the far-future immutable cache lifetime is
// honest: the bytes behind a given URL can never change.
const avatarCacheControl = "public, max-age=31536000, immutable"

func (app *App) Avatar(w http.ResponseWriter, r *http.Request) {
	params, err := pixelface.ParseParams(r.URL.Query())
	if err != nil {
		badRequest(w, err)
		return
	}
	img, contentType := avatargen.Generate(params.Options())
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", avatarCacheControl)
	w.Write(img)
}

func newServer(app *App) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", app.Homepage)
	mux.HandleFunc("GET /avatar", app.Avatar)

	var server http.Handler = pixelface.SafeHeaderMiddleware(mux)
	server = handlers.RecoveryHandler()(server)
	server = handlers.LoggingHandler(os.Stdout, server)
	return server
}

func main() {
	t := timer("startup")
	addr := flag.String("addr", ":7777", "Address to listen on")
	flag.Parse()

	app := NewApp()
	server := newServer(app)
	t()

	log.Printf("listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, server))
}
