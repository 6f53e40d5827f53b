package ui

import (
	"github.com/a-h/templ"
	"golang.org/x/text/message"
)

// Page is the full-document chrome around a screen's content.
type Page struct {
	Title    string
	Nav      []NavItem
	Flash    *Flash
	Lang     string
	Username string
	Content  templ.Component
}

var langs = []string{"uz", "ru", "en"}

// Component renders the full HTML document.
func (pg Page) Component(p *message.Printer) templ.Component {
	return component(func(b *writer) {
		b.raw(`<!DOCTYPE html><html lang="`)
		b.raw(esc(pg.Lang))
		b.raw(`"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.p(`<title>%s · %s</title>`, esc(pg.Title), esc(p.Sprintf("app.title")))
		b.raw(`<link rel="stylesheet" href="/static/app.css">`)
		b.raw(`<script src="https://unpkg.com/htmx.org@1.9.12" defer></script>`)
		b.raw(`</head><body><div class="shell">`)

		pg.renderSidebar(b, p)

		b.raw(`<div class="main-column"><header class="topbar">`)
		b.p(`<h1>%s</h1><div class="topbar-right">`, esc(pg.Title))
		for _, code := range langs {
			class := "lang-link"
			if code == pg.Lang {
				class += " active"
			}
			b.p(`<a class="%s" href="/lang/%s">%s</a>`, class, code, code)
		}
		if pg.Username != "" {
			b.p(`<span class="user-name">%s</span>`, esc(pg.Username))
			b.p(`<form method="post" action="/logout" class="inline"><button type="submit" class="btn btn-sm">%s</button></form>`,
				esc(p.Sprintf("button.logout")))
		}
		b.raw(`</div></header>`)

		if pg.Flash != nil {
			b.p(`<div class="flash flash-%s">%s</div>`, esc(pg.Flash.Kind), esc(pg.Flash.Message))
		}

		b.raw(`<main>`)
		b.renderChild(pg.Content)
		b.raw(`</main></div></div><div id="modal"></div>`)
		b.raw(searchSelectScript)
		b.raw(`</body></html>`)
	})
}

func (pg Page) renderSidebar(b *writer, p *message.Printer) {
	b.raw(`<aside class="sidebar"><div class="brand">`)
	b.raw(esc(p.Sprintf("app.title")))
	b.raw(`</div><nav>`)
	for _, item := range pg.Nav {
		class := "nav-link"
		if item.Active {
			class += " active"
		}
		b.p(`<a class="%s" href="%s">%s</a>`, class, esc(item.URL), esc(item.Label))
	}
	b.raw(`</nav></aside>`)
}

// LoginPage renders the standalone login screen.
func LoginPage(lang, username, errMsg string, p *message.Printer) templ.Component {
	return component(func(b *writer) {
		b.raw(`<!DOCTYPE html><html lang="`)
		b.raw(esc(lang))
		b.raw(`"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.p(`<title>%s</title>`, esc(p.Sprintf("login.title")))
		b.raw(`<link rel="stylesheet" href="/static/app.css"></head><body class="login-body">`)
		b.p(`<form method="post" action="/login" class="login-card"><h1>%s</h1>`, esc(p.Sprintf("login.title")))
		if errMsg != "" {
			b.p(`<div class="flash flash-error">%s</div>`, esc(errMsg))
		}
		b.p(`<label for="username">%s</label><input type="text" id="username" name="username" value="%s" autofocus>`,
			esc(p.Sprintf("login.username")), esc(username))
		b.p(`<label for="password">%s</label><input type="password" id="password" name="password">`,
			esc(p.Sprintf("login.password")))
		b.p(`<button type="submit" class="btn btn-primary">%s</button>`, esc(p.Sprintf("button.login")))
		b.raw(`</form></body></html>`)
	})
}

// NotFound renders the 404 screen content.
func NotFound(p *message.Printer) templ.Component {
	return component(func(b *writer) {
		b.p(`<div class="not-found"><h2>404</h2><p>%s</p><a class="btn" href="/">%s</a></div>`,
			esc(p.Sprintf("error.not_found")), esc(p.Sprintf("nav.home")))
	})
}

// Home renders the dashboard landing content: one card per screen.
func Home(nav []NavItem) templ.Component {
	return component(func(b *writer) {
		b.raw(`<div class="home-grid">`)
		for _, item := range nav {
			b.p(`<a class="home-card" href="%s">%s</a>`, esc(item.URL), esc(item.Label))
		}
		b.raw(`</div>`)
	})
}

// searchSelectScript wires the searchable-select widgets rendered by forms:
// typing filters the option list, arrow keys move the highlight, Enter or a
// click commits the option value into the hidden input, and the clear button
// (or erasing the text) empties the hidden input so a discarded selection is
// never submitted.
const searchSelectScript = `<script>
document.addEventListener("input", function (e) {
  var input = e.target.closest(".search-select-input");
  if (!input) return;
  var root = input.closest(".search-select");
  var list = root.querySelector(".search-select-options");
  var term = input.value.toLowerCase();
  if (term === "") root.querySelector("input[type=hidden]").value = "";
  list.hidden = false;
  list.querySelectorAll("li").forEach(function (li) {
    li.hidden = li.textContent.toLowerCase().indexOf(term) === -1;
    li.classList.remove("highlight");
  });
});
document.addEventListener("click", function (e) {
  var clear = e.target.closest(".search-select-clear");
  if (clear) {
    var box = clear.closest(".search-select");
    box.querySelector("input[type=hidden]").value = "";
    box.querySelector(".search-select-input").value = "";
    box.querySelector(".search-select-options").hidden = true;
    return;
  }
  var li = e.target.closest(".search-select-options li");
  if (li) {
    var root = li.closest(".search-select");
    root.querySelector("input[type=hidden]").value = li.dataset.value;
    root.querySelector(".search-select-input").value = li.textContent;
    root.querySelector(".search-select-options").hidden = true;
    return;
  }
  document.querySelectorAll(".search-select-options").forEach(function (list) {
    if (!list.closest(".search-select").contains(e.target)) list.hidden = true;
  });
});
document.addEventListener("keydown", function (e) {
  var input = e.target.closest(".search-select-input");
  if (!input) return;
  var list = input.closest(".search-select").querySelector(".search-select-options");
  var visible = Array.prototype.filter.call(list.querySelectorAll("li"), function (li) { return !li.hidden; });
  var idx = visible.findIndex(function (li) { return li.classList.contains("highlight"); });
  if (e.key === "ArrowDown" || e.key === "ArrowUp") {
    e.preventDefault();
    list.hidden = false;
    if (idx >= 0) visible[idx].classList.remove("highlight");
    idx = e.key === "ArrowDown" ? (idx + 1) % visible.length : (idx - 1 + visible.length) % visible.length;
    if (visible.length) visible[idx].classList.add("highlight");
  } else if (e.key === "Enter" && idx >= 0) {
    e.preventDefault();
    visible[idx].click();
  } else if (e.key === "Escape") {
    list.hidden = true;
  }
});
</script>`
