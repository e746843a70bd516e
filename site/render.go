package site

import (
	"log"
	"net/http"

	"github.com/Sprachey/Blogspot/templates"
	g "github.com/maragudk/gomponents"
)

// layoutProps assembles the data every page shares: the signed-in user (if
// any) and a pending flash message, which is consumed here so it renders
// exactly once.
func layoutProps(w http.ResponseWriter, r *http.Request, title string) templates.LayoutProps {
	props := templates.LayoutProps{
		Title: title,
		Flash: popFlash(w, r),
	}

	if user := getSignedInUserOrNil(r); user != nil {
		props.CurrentUser = user.Name
		props.IsAdmin = user.IsAdmin
	}

	return props
}

func renderPage(w http.ResponseWriter, page g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		log.Printf("Page render error: %v", err)
	}
}
