// Package web раздает встроенные страницы UI: публичную форму отправки,
// форму логина администратора и дашборд. Страницы статические и ходят в
// JSON API сами.
package web

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Register(mux *chi.Mux) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("web: failed to create sub filesystem: " + err.Error())
	}

	mux.Get("/", servePage(sub, "index.html"))
	mux.Get("/admin", servePage(sub, "admin.html"))
	mux.Get("/admin/dashboard", servePage(sub, "dashboard.html"))

	fileServer := http.FileServer(http.FS(sub))
	mux.Handle("/static/*", http.StripPrefix("/static/", noCache(fileServer)))
}

func servePage(fsys fs.FS, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			http.Error(w, "page not found", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		_, _ = w.Write(data)
	}
}

func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache")
		next.ServeHTTP(w, r)
	})
}
