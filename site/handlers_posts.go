package site

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Sprachey/Blogspot/constants"
	"github.com/Sprachey/Blogspot/database"
	"github.com/Sprachey/Blogspot/templates"
	"github.com/go-chi/chi/v5"
)

func urlParamID(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func Home(w http.ResponseWriter, r *http.Request) {
	posts, err := database.ListPosts()
	if err != nil {
		http.Error(w, "Error fetching posts", http.StatusInternalServerError)
		return
	}

	renderPage(w, templates.HomePage(layoutProps(w, r, constants.APP_NAME), posts))
}

func About(w http.ResponseWriter, r *http.Request) {
	renderPage(w, templates.AboutPage(layoutProps(w, r, "About Me")))
}

func Contact(w http.ResponseWriter, r *http.Request) {
	renderPage(w, templates.ContactPage(layoutProps(w, r, "Contact Me")))
}

// ShowPost renders a post with its comments; a POST on the same route adds
// a comment. Commenting requires being signed in but not being the admin,
// so an anonymous attempt is bounced to the login page with a flash rather
// than rejected outright.
func ShowPost(w http.ResponseWriter, r *http.Request) {
	postID, err := urlParamID(r, "postID")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case "GET":
		post, err := database.GetPost(postID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			http.Error(w, "Error fetching post", http.StatusInternalServerError)
			return
		}

		renderPage(w, templates.PostPage(layoutProps(w, r, post.Title), *post))

	case "POST":
		user := getSignedInUserOrNil(r)
		if user == nil {
			setFlash(w, "You need to login or register to comment.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		text := r.FormValue("comment")
		if text == "" || len(text) > constants.MAX_COMMENT_LENGTH {
			setFlash(w, "Comments must be between 1 and "+
				strconv.Itoa(constants.MAX_COMMENT_LENGTH)+" characters.")
			http.Redirect(w, r, fmt.Sprintf("/post/%d", postID), http.StatusSeeOther)
			return
		}

		if _, err := database.AddComment(postID, user, text); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			http.Error(w, "Error adding comment", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/post/%d", postID), http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func buildPostInputFromFormRequest(r *http.Request) (database.PostInput, error) {
	input := database.PostInput{
		Title:    r.FormValue("title"),
		Subtitle: r.FormValue("subtitle"),
		Body:     r.FormValue("body"),
		ImageURL: r.FormValue("img_url"),
	}

	if input.Title == "" || input.Subtitle == "" || input.Body == "" || input.ImageURL == "" {
		return input, errors.New("all fields are required")
	}
	if len(input.Body) > constants.MAX_POST_LENGTH {
		return input, fmt.Errorf("post body must be less than %d characters", constants.MAX_POST_LENGTH)
	}

	return input, nil
}

func NewPost(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		renderPage(w, templates.PostFormPage(layoutProps(w, r, "New Post"), "New Post", nil))

	case "POST":
		input, err := buildPostInputFromFormRequest(r)
		if err != nil {
			setFlash(w, err.Error())
			http.Redirect(w, r, "/new-post", http.StatusSeeOther)
			return
		}

		_, err = database.CreatePost(input, getSignedInUserOrFail(r))
		if err != nil {
			if errors.Is(err, database.ErrConflict) {
				setFlash(w, "A post with that title already exists.")
				http.Redirect(w, r, "/new-post", http.StatusSeeOther)
				return
			}
			http.Error(w, "Error creating post", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func EditPost(w http.ResponseWriter, r *http.Request) {
	postID, err := urlParamID(r, "postID")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case "GET":
		post, err := database.GetPost(postID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			http.Error(w, "Error fetching post", http.StatusInternalServerError)
			return
		}

		renderPage(w, templates.PostFormPage(layoutProps(w, r, "Edit Post"), "Edit Post", post))

	case "POST":
		input, err := buildPostInputFromFormRequest(r)
		if err != nil {
			setFlash(w, err.Error())
			http.Redirect(w, r, fmt.Sprintf("/edit-post/%d", postID), http.StatusSeeOther)
			return
		}

		_, err = database.UpdatePost(postID, input)
		if err != nil {
			switch {
			case errors.Is(err, database.ErrNotFound):
				http.NotFound(w, r)
			case errors.Is(err, database.ErrConflict):
				setFlash(w, "A post with that title already exists.")
				http.Redirect(w, r, fmt.Sprintf("/edit-post/%d", postID), http.StatusSeeOther)
			default:
				http.Error(w, "Error updating post", http.StatusInternalServerError)
			}
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/post/%d", postID), http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := urlParamID(r, "postID")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := database.DeletePost(postID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Error deleting post", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
