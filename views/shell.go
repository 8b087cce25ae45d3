package views

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/acmeconsole/svc/dashboard"
)

// UserMenu identifies the signed-in user in the shell.
type UserMenu struct {
	Name  string
	Email string
}

// Initials returns the avatar fallback for the user.
func (u UserMenu) Initials() string {
	return dashboard.Initials(u.Name)
}

// NavItem is a top navigation link.
type NavItem struct {
	Label string
	Href  string
}

// MainNavItems are the dashboard sections. Only Overview exists so all of them
// lead to the dashboard.
var MainNavItems = []NavItem{
	{Label: "Overview", Href: "/dashboard"},
	{Label: "Customers", Href: "/dashboard"},
	{Label: "Products", Href: "/dashboard"},
	{Label: "Settings", Href: "/dashboard"},
}

// ShellParams is the chrome around an authenticated page.
type ShellParams struct {
	User   UserMenu
	Teams  []dashboard.TeamGroup
	Active string // label of the active nav item
}

// AppShell wraps content with the top bar: team switcher, main nav, search and user menu.
func AppShell(p ShellParams, content templ.Component) templ.Component {
	return component(func(h *html) {
		h.raw(`<div class="flex flex-col"><div class="border-b"><div class="flex h-16 items-center px-4">`)
		h.render(TeamSwitcher(p.Teams))
		h.render(MainNav(p.Active))
		h.raw(`<div class="ml-auto flex items-center space-x-4">`)
		h.render(Search())
		h.render(UserNav(p.User))
		h.raw(`</div></div></div>`)
		h.render(content)
		h.raw(`</div>`)
	})
}

// MainNav renders MainNavItems, highlighting active.
func MainNav(active string) templ.Component {
	return component(func(h *html) {
		h.raw(`<nav class="mx-6 flex items-center space-x-4 lg:space-x-6">`)
		for _, item := range MainNavItems {
			h.raw(`<a`)
			h.href(item.Href)
			if item.Label == active {
				h.class("text-sm font-medium transition-colors hover:text-slate-900")
				h.raw(` aria-current="page"`)
			} else {
				h.class("text-sm font-medium text-slate-500 transition-colors hover:text-slate-900")
			}
			h.raw(`>`)
			h.text(item.Label)
			h.raw(`</a>`)
		}
		h.raw(`</nav>`)
	})
}

// TeamSwitcher shows the first team as selected and lists every group in a
// disclosure menu.
func TeamSwitcher(groups []dashboard.TeamGroup) templ.Component {
	return component(func(h *html) {
		var selected dashboard.Team
		for _, g := range groups {
			if len(g.Teams) > 0 {
				selected = g.Teams[0]
				break
			}
		}

		h.raw(`<details class="relative"><summary class="flex w-[200px] cursor-pointer list-none items-center justify-between rounded-md border px-3 py-2 text-sm" aria-label="Select a team">`)
		h.raw(`<span class="flex items-center gap-2"><span class="flex h-5 w-5 items-center justify-center rounded-full bg-slate-100 text-[10px]">`)
		h.text(dashboard.Initials(selected.Label))
		h.raw(`</span>`)
		h.text(selected.Label)
		h.raw(`</span>`)
		h.render(Icon("chevrons", "ml-auto h-4 w-4 opacity-50"))
		h.raw(`</summary><div class="absolute z-10 mt-1 w-[200px] rounded-md border bg-white p-1 shadow-md">`)
		for _, g := range groups {
			h.raw(`<div class="px-2 py-1.5 text-xs font-medium text-slate-500">`)
			h.text(g.Label)
			h.raw(`</div>`)
			for _, t := range g.Teams {
				h.raw(`<div class="rounded-sm px-2 py-1.5 text-sm hover:bg-slate-100"`)
				h.attr("data-team", t.Value)
				h.raw(`>`)
				h.text(t.Label)
				h.raw(`</div>`)
			}
		}
		h.raw(`<div class="my-1 border-t"></div><div class="flex items-center rounded-sm px-2 py-1.5 text-sm text-slate-400">`)
		h.render(Icon("plus-circle", "mr-2 h-4 w-4"))
		h.raw(`Create Team</div></div></details>`)
	})
}

// Search is the top bar search box.
func Search() templ.Component {
	return component(func(h *html) {
		h.raw(`<div><input type="search" placeholder="Search..." aria-label="Search" class="h-9 rounded-md border px-3 text-sm md:w-[100px] lg:w-[300px]"></div>`)
	})
}

// UserNav is the avatar menu with the user's identity and the logout form.
func UserNav(u UserMenu) templ.Component {
	return component(func(h *html) {
		h.raw(`<details class="relative"><summary class="flex h-8 w-8 cursor-pointer list-none items-center justify-center rounded-full bg-slate-100 text-sm" aria-label="User menu">`)
		h.text(u.Initials())
		h.raw(`</summary><div class="absolute right-0 z-10 mt-1 w-56 rounded-md border bg-white p-1 shadow-md">`)
		h.raw(`<div class="px-2 py-1.5"><p class="text-sm font-medium leading-none">`)
		h.text(u.Name)
		h.raw(`</p><p class="text-xs leading-none text-slate-500">`)
		h.text(u.Email)
		h.raw(`</p></div><div class="my-1 border-t"></div>`)
		for _, item := range []string{"Profile", "Billing", "Settings", "New Team"} {
			h.raw(`<div class="rounded-sm px-2 py-1.5 text-sm text-slate-400">`)
			h.text(item)
			h.raw(`</div>`)
		}
		h.raw(`<div class="my-1 border-t"></div>`)
		h.raw(`<form method="post" action="/logout"><button type="submit" class="w-full rounded-sm px-2 py-1.5 text-left text-sm hover:bg-slate-100">Log out</button></form>`)
		h.raw(`</div></details>`)
	})
}
