package views

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/acmeconsole/svc/dashboard"
)

// DashboardPage is the analytics overview for a signed-in user.
func DashboardPage(user UserMenu, data dashboard.Overview) templ.Component {
	shell := ShellParams{User: user, Teams: data.Teams, Active: "Overview"}
	return Document("Dashboard", AppShell(shell, dashboardContent(data)))
}

func dashboardContent(data dashboard.Overview) templ.Component {
	return component(func(h *html) {
		h.raw(`<div class="flex-1 space-y-4 p-8 pt-6">`)
		h.raw(`<div class="flex items-center justify-between space-y-2"><h2 class="text-3xl font-bold tracking-tight">Dashboard</h2>`)
		h.raw(`<div class="flex items-center space-x-2">`)
		h.render(DateRange(data.Range))
		h.raw(`<button type="button" class="inline-flex h-8 items-center rounded-md bg-slate-900 px-3 text-xs font-medium text-white">`)
		h.render(Icon("download", "mr-2 h-4 w-4"))
		h.raw(`Download</button></div></div>`)

		h.raw(`<div class="space-y-4">`)
		h.render(Tabs("Overview", "Analytics", "Reports", "Notifications"))

		h.raw(`<div class="grid gap-4 md:grid-cols-2 lg:grid-cols-4">`)
		for _, s := range data.Stats {
			h.render(StatCard(s))
		}
		h.raw(`</div>`)

		h.raw(`<div class="grid gap-4 md:grid-cols-2 lg:grid-cols-7">`)
		h.raw(`<div class="col-span-4 rounded-xl border bg-white shadow"><div class="p-6"><h3 class="font-semibold leading-none tracking-tight">Overview</h3></div><div class="p-6 pl-2 pt-0">`)
		h.render(OverviewChart(data.Revenue))
		h.raw(`</div></div>`)
		h.raw(`<div class="col-span-3 rounded-xl border bg-white shadow"><div class="space-y-1.5 p-6"><h3 class="font-semibold leading-none tracking-tight">Recent Sales</h3><p class="text-sm text-slate-500">`)
		h.text(SalesSummary(data.SalesThisMonth))
		h.raw(`</p></div><div class="p-6 pt-0">`)
		h.render(RecentSales(data.RecentSales))
		h.raw(`</div></div></div>`)

		h.raw(`</div></div>`)
	})
}
