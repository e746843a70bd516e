package site

import (
	"errors"
	"net/http"

	"github.com/Sprachey/Blogspot/database"
)

func DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := urlParamID(r, "commentID")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := database.DeleteComment(commentID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Error deleting comment", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
