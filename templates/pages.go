package templates

import (
	"fmt"

	"github.com/Sprachey/Blogspot/database"
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

func HomePage(props LayoutProps, posts []database.Post) g.Node {
	return Layout(props,
		Header(Class("site-header"),
			H1(g.Text("Blogspot")),
			P(Class("subtitle"), g.Text("A collection of random musings.")),
		),
		g.If(props.IsAdmin,
			P(A(Class("button primary"), Href("/new-post"), g.Text("Create New Post"))),
		),
		Div(Class("post-list"),
			g.Group(g.Map(posts, func(post database.Post) g.Node {
				return Div(Class("post-preview"),
					A(Href(fmt.Sprintf("/post/%d", post.ID)),
						H2(g.Text(post.Title)),
						H3(Class("subtitle"), g.Text(post.Subtitle)),
					),
					P(Class("post-meta"),
						g.Textf("Posted by %s on %s", post.Author.Name, formatDate(post.Date)),
					),
					g.If(props.IsAdmin,
						P(Class("admin-controls"),
							A(Href(fmt.Sprintf("/edit-post/%d", post.ID)), g.Text("Edit")),
							g.Text(" "),
							A(Href(fmt.Sprintf("/delete/%d", post.ID)), g.Text("✘ Delete")),
						),
					),
				)
			})),
		),
	)
}

func PostPage(props LayoutProps, post database.Post) g.Node {
	return Layout(props,
		Header(Class("post-header"),
			g.If(post.ImageURL != "",
				Img(Class("post-cover"), Src(post.ImageURL), Alt(post.Title)),
			),
			H1(g.Text(post.Title)),
			H3(Class("subtitle"), g.Text(post.Subtitle)),
			P(Class("post-meta"),
				g.Textf("Posted by %s on %s", post.Author.Name, formatDate(post.Date)),
			),
		),
		Article(Class("post-body"),
			renderMarkdown(post.Body),
		),
		g.If(props.IsAdmin,
			P(A(Class("button"), Href(fmt.Sprintf("/edit-post/%d", post.ID)), g.Text("Edit Post"))),
		),
		Hr(),
		commentSection(props, post),
	)
}

func commentSection(props LayoutProps, post database.Post) g.Node {
	return Section(Class("comments"),
		H3(g.Textf("Comments (%d)", len(post.Comments))),
		g.Group(g.Map(post.Comments, func(comment database.Comment) g.Node {
			return Div(Class("comment"),
				Img(Class("avatar"), Src(gravatarURL(comment.Author.Email, 100)), Alt(comment.Author.Name)),
				Div(Class("comment-body"),
					P(g.Text(comment.Text)),
					Small(g.Textf("— %s", comment.Author.Name)),
					g.If(props.IsAdmin,
						Small(
							g.Text(" "),
							A(Href(fmt.Sprintf("/deletec/%d", comment.ID)), g.Text("✘ Delete")),
						),
					),
				),
			)
		})),
		g.If(props.CurrentUser != "",
			Form(Method("post"), Action(fmt.Sprintf("/post/%d", post.ID)),
				Label(For("comment"), g.Text("Leave a comment")),
				Textarea(ID("comment"), Name("comment"), Rows("4"), Required()),
				Button(Type("submit"), Class("button primary"), g.Text("Submit Comment")),
			),
		),
		g.If(props.CurrentUser == "",
			P(A(Href("/login"), g.Text("Log in to leave a comment."))),
		),
	)
}

// PostFormPage serves both post creation and editing. With a nil post the
// fields start empty.
func PostFormPage(props LayoutProps, heading string, post *database.Post) g.Node {
	var title, subtitle, imageURL, body string
	action := "/new-post"
	if post != nil {
		title = post.Title
		subtitle = post.Subtitle
		imageURL = post.ImageURL
		body = post.Body
		action = fmt.Sprintf("/edit-post/%d", post.ID)
	}

	return Layout(props,
		H1(g.Text(heading)),
		Form(Method("post"), Action(action),
			Label(For("title"), g.Text("Title")),
			Input(Type("text"), ID("title"), Name("title"), Value(title), Required()),

			Label(For("subtitle"), g.Text("Subtitle")),
			Input(Type("text"), ID("subtitle"), Name("subtitle"), Value(subtitle), Required()),

			Label(For("img_url"), g.Text("Cover Image URL")),
			Input(Type("url"), ID("img_url"), Name("img_url"), Value(imageURL), Required()),

			Label(For("body"), g.Text("Body")),
			Textarea(ID("body"), Name("body"), Rows("16"), Required(), g.Text(body)),

			Button(Type("submit"), Class("button primary"), g.Text("Submit Post")),
		),
	)
}

func RegisterPage(props LayoutProps) g.Node {
	return Layout(props,
		H1(g.Text("Register")),
		Form(Method("post"), Action("/register"),
			Label(For("name"), g.Text("Name")),
			Input(Type("text"), ID("name"), Name("name"), Required()),

			Label(For("email"), g.Text("Email")),
			Input(Type("email"), ID("email"), Name("email"), Required()),

			Label(For("password"), g.Text("Password")),
			Input(Type("password"), ID("password"), Name("password"), Required()),

			Button(Type("submit"), Class("button primary"), g.Text("Sign Me Up")),
		),
	)
}

func LoginPage(props LayoutProps) g.Node {
	return Layout(props,
		H1(g.Text("Log In")),
		Form(Method("post"), Action("/login"),
			Label(For("email"), g.Text("Email")),
			Input(Type("email"), ID("email"), Name("email"), Required()),

			Label(For("password"), g.Text("Password")),
			Input(Type("password"), ID("password"), Name("password"), Required()),

			Button(Type("submit"), Class("button primary"), g.Text("Let Me In")),
		),
	)
}

func AboutPage(props LayoutProps) g.Node {
	return Layout(props,
		H1(g.Text("About Me")),
		P(g.Text("Hi! I write here about whatever is on my mind: code, books, and the occasional rant.")),
		P(g.Text("Registered readers can leave comments on any post.")),
	)
}

func ContactPage(props LayoutProps) g.Node {
	return Layout(props,
		H1(g.Text("Contact Me")),
		P(g.Text("Want to get in touch? Reach out by email and I'll get back to you.")),
		P(A(Href("mailto:hello@blogspot.example"), g.Text("hello@blogspot.example"))),
	)
}
