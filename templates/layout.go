package templates

import (
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

type LayoutProps struct {
	Title       string
	CurrentUser string
	IsAdmin     bool
	Flash       string
}

func NavbarComponent(props LayoutProps) g.Node {
	return Nav(Class("nav"),
		Div(Class("nav-left"),
			Div(Class("brand"), A(Href("/"), g.Text("Blogspot"))),
		),
		Div(Class("nav-links nav-right"),
			A(Href("/about"), g.Text("About")),
			A(Href("/contact"), g.Text("Contact")),
			g.If(props.CurrentUser == "",
				Div(
					A(Href("/login"), g.Text("Login")),
					A(Href("/register"), g.Text("Register")),
				),
			),
			g.If(props.CurrentUser != "",
				Div(Class("row"),
					Div(Class("col"), g.Textf("Logged in as %s", props.CurrentUser)),
					Div(Class("col"), A(Href("/logout"), g.Text("Logout"))),
				)),
		),
	)
}

func FooterComponent() g.Node {
	return Footer(Class("footer"),
		P(Class("with-love"),
			Small(g.Text("Blogspot — a small place to write things down.")),
		),
	)
}

func FlashComponent(message string) g.Node {
	return g.If(message != "",
		Div(Class("flash-message"), P(g.Text(message))),
	)
}

func Layout(props LayoutProps, children ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),

				Link(Rel("stylesheet"), Href("/assets/css/chota.min.css")),
				Link(Rel("stylesheet"), Href("/assets/css/main.css")),

				TitleEl(g.Text(props.Title)),
			),
			Body(
				Div(Class("container"), Style("margin-top: 1.5em;"),
					NavbarComponent(props),
					FlashComponent(props.Flash),
					Main(
						g.Group(children),
					),
				),
				FooterComponent(),
			),
		),
	)
}
