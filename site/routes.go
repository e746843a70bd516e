package site

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter() *chi.Mux {
	r := chi.NewRouter()

	CORSMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	r.Use(CORSMiddleware.Handler)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(TryPutUserInContextMiddleware)

	r.Get("/", Home)
	r.Get("/about", About)
	r.Get("/contact", Contact)

	r.HandleFunc("/register", Register)
	r.HandleFunc("/login", Login)
	r.Get("/logout", Logout)

	r.HandleFunc("/post/{postID}", ShowPost)

	r.Group(func(r chi.Router) {
		r.Use(RequireAdminMiddleware)

		r.HandleFunc("/new-post", NewPost)
		r.HandleFunc("/edit-post/{postID}", EditPost)
		r.Get("/delete/{postID}", DeletePost)
		r.Get("/deletec/{commentID}", DeleteComment)
	})

	fileServer := http.FileServer(http.Dir("./assets"))
	r.Handle("/assets/*", http.StripPrefix("/assets", fileServer))

	return r
}
