// Command demo runs a small server showing mobile format negotiation:
// desktop browsers get the html views, mobile user agents get the mobile
// variants, and /mobile/* routes pin the behavior for the session.
package main

import (
	"context"
	"embed"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/robinboening/mobylette"
	"github.com/robinboening/mobylette/pkg/config"
	"github.com/robinboening/mobylette/pkg/httpserver"
	"github.com/robinboening/mobylette/pkg/logger"
	"github.com/robinboening/mobylette/pkg/render"
	"github.com/robinboening/mobylette/pkg/session"
)

//go:embed templates
var templatesFS embed.FS

func main() {
	var (
		logCfg  logger.Config
		srvCfg  httpserver.Config
		sessCfg session.Config
		detCfg  mobylette.Config
	)
	config.MustLoad(&logCfg)
	config.MustLoad(&srvCfg)
	config.MustLoad(&sessCfg)
	config.MustLoad(&detCfg)

	log := logger.NewFromConfig(logCfg, logger.WithAttrs(slog.String("app", "mobylette-demo")))

	if sessCfg.Secret == "" {
		// Demo convenience; a real deployment sets SESSION_SECRET
		sessCfg.Secret = "insecure-demo-secret-please-override"
		log.Warn("SESSION_SECRET not set, using insecure demo secret")
	}

	sessions := session.NewFromConfig(sessCfg)
	defer sessions.Close()

	detector := mobylette.NewFromConfig(detCfg, mobylette.WithLogger(log))

	views, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		log.Error("embedded templates missing", slog.Any("error", err))
		os.Exit(1)
	}

	registry := render.NewRegistry()
	registry.AddComponent("banner", mobylette.FormatMobile, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p class="banner">Mobile site — <a href="/mobile/off">switch to desktop</a></p>`)
		return err
	}))
	registry.AddComponent("banner", mobylette.FormatHTML, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p class="banner">Desktop site — <a href="/mobile/on">try the mobile version</a></p>`)
		return err
	}))

	renderer := render.New(
		render.WithResolver(render.NewTemplateDir(views)),
		render.WithFallback(detector.FallbackFormat()),
		render.WithLogger(log),
	)
	renderer.Prepend(registry)

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(sessions.EnsureSession)
	router.Use(detector.Middleware)

	router.Get("/", page(renderer, "home"))
	router.Get("/about", page(renderer, "about"))
	router.Get("/banner", page(renderer, "banner"))

	router.Get("/mobile/on", setOverride(sessions, mobylette.ForceMobile))
	router.Get("/mobile/off", setOverride(sessions, mobylette.IgnoreMobile))
	router.Get("/mobile/reset", setOverride(sessions, mobylette.ResetMobileOverride))

	srv := httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), router); err != nil {
		log.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func page(renderer *render.Renderer, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format, _ := mobylette.FormatFromContext(r.Context())
		data := map[string]any{
			"Format":    string(format),
			"UserAgent": r.UserAgent(),
		}
		if err := renderer.Render(w, r, name, data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

func setOverride(sessions *session.Manager, apply func(*session.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := session.MustFromContext(r.Context())
		apply(sess)
		if err := sessions.Save(r.Context(), sess); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
