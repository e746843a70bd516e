package site

import (
	"errors"
	"net/http"

	"github.com/Sprachey/Blogspot/database"
	"github.com/Sprachey/Blogspot/templates"
)

func Register(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		if getSignedInUserOrNil(r) != nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		renderPage(w, templates.RegisterPage(layoutProps(w, r, "Register")))
		return
	}

	name := r.FormValue("name")
	email := r.FormValue("email")
	password := r.FormValue("password")

	if name == "" || email == "" || password == "" {
		setFlash(w, "All fields are required.")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	user, err := database.RegisterUser(email, password, name)
	if err != nil {
		if errors.Is(err, database.ErrConflict) {
			setFlash(w, "User already exists, log in instead.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		http.Error(w, "Error creating account", http.StatusInternalServerError)
		return
	}

	// auto-login on registration
	if err := beginSession(w, user); err != nil {
		http.Error(w, "Error creating account", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		if getSignedInUserOrNil(r) != nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		renderPage(w, templates.LoginPage(layoutProps(w, r, "Log In")))
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := database.AuthenticateUser(email, password)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrUnknownEmail):
			setFlash(w, "That email does not exist, please try again.")
		case errors.Is(err, database.ErrWrongPassword):
			setFlash(w, "Password incorrect, please try again.")
		default:
			http.Error(w, "Error signing in", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := beginSession(w, user); err != nil {
		http.Error(w, "Error signing in", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func Logout(w http.ResponseWriter, r *http.Request) {
	endSession(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
