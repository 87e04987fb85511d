package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dailyharvest/storefront/internal/services/web/routepath"
)

// Toast is a one-time notice shown above page content.
type Toast struct {
	Kind    string
	Message string
}

// Shell is the chrome around every full page.
type Shell struct {
	Title          string
	Lang           string
	Loc            Localizer
	CurrentPath    string
	CartCount      int
	AdminSignedIn  bool
	Toast          *Toast
	Year           int
	RefreshSeconds int
}

// Layout renders a full document with header, navigation and footer around
// the children in ctx.
func Layout(shell Shell) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		lang := shell.Lang
		if lang == "" {
			lang = "en"
		}
		appName := T(shell.Loc, "core.app_name")
		title := appName
		if shell.Title != "" {
			title = shell.Title + " | " + appName
		}

		m.raw("<!DOCTYPE html>")
		m.open("html", "lang", lang)
		m.raw("<head>")
		m.raw(`<meta charset="utf-8">`)
		m.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		if shell.RefreshSeconds > 0 {
			m.open("meta", "http-equiv", "refresh", "content", strconv.Itoa(shell.RefreshSeconds))
		}
		m.element("title", title)
		m.open("link", "rel", "stylesheet", "href", routepath.Static+"app.css")
		m.raw("</head><body>")

		m.component(ctx, header(shell, appName))
		if shell.Toast != nil {
			m.open("div", "id", "app-toast", "class", "toast toast-"+shell.Toast.Kind, "role", "status")
			m.text(shell.Toast.Message)
			m.close("div")
		}
		m.open("main", "id", "main", "class", "main-content")
		m.component(ctx, templ.GetChildren(ctx))
		m.close("main")
		m.component(ctx, footer(shell))
		m.raw("</body></html>")
	})
}

// MainContent renders only the children, for HTMX swaps.
func MainContent() templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.component(ctx, templ.GetChildren(ctx))
	})
}

type navLink struct {
	href  string
	label string
}

func header(shell Shell, appName string) templ.Component {
	return component(func(_ context.Context, m *markup) {
		links := []navLink{
			{href: routepath.Root, label: T(shell.Loc, "core.nav.home")},
			{href: routepath.Products, label: T(shell.Loc, "core.nav.products")},
			{href: routepath.Cart, label: T(shell.Loc, "core.nav.cart")},
			{href: routepath.Contact, label: T(shell.Loc, "core.nav.contact")},
		}
		if shell.CartCount > 0 {
			links[2].label = T(shell.Loc, "core.nav.cart_count", shell.CartCount)
		}
		if shell.AdminSignedIn {
			links = append(links, navLink{href: routepath.Admin, label: T(shell.Loc, "store.admin.title")})
		} else {
			links = append(links, navLink{href: routepath.Login, label: T(shell.Loc, "core.nav.admin_login")})
		}

		m.open("header", "class", "header")
		m.element("h1", appName)
		m.open("nav", "aria-label", T(shell.Loc, "core.nav.label"))
		m.raw("<ul>")
		for _, link := range links {
			m.raw("<li>")
			if link.href == shell.CurrentPath {
				m.element("a", link.label, "href", link.href, "aria-current", "page")
			} else {
				m.element("a", link.label, "href", link.href)
			}
			m.raw("</li>")
		}
		m.raw("</ul>")
		m.close("nav")
		m.close("header")
	})
}

func footer(shell Shell) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.open("footer", "class", "footer")
		m.element("p", T(shell.Loc, "core.footer.copyright", strconv.Itoa(shell.Year)))
		m.close("footer")
	})
}
