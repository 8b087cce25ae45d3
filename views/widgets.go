package views

import (
	"fmt"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/acmeconsole/svc/dashboard"
)

// StatCard renders one headline metric.
func StatCard(s dashboard.Stat) templ.Component {
	return component(func(h *html) {
		h.raw(`<div class="rounded-xl border bg-white shadow" data-stat`)
		h.attr("data-title", s.Title)
		h.raw(`><div class="flex flex-row items-center justify-between space-y-0 p-6 pb-2"><h3 class="text-sm font-medium tracking-tight">`)
		h.text(s.Title)
		h.raw(`</h3>`)
		h.render(Icon(s.Icon, "h-4 w-4 text-slate-500"))
		h.raw(`</div><div class="p-6 pt-0"><div class="text-2xl font-bold">`)
		h.text(s.Value)
		h.raw(`</div><p class="text-xs text-slate-500">`)
		h.text(s.Change)
		h.raw(`</p></div></div>`)
	})
}

const (
	chartWidth   = 720
	chartHeight  = 350
	chartPadLeft = 48
	chartPadBot  = 24
)

// OverviewChart renders monthly revenue as an SVG bar chart with a dollar axis.
func OverviewChart(points []dashboard.MonthTotal) templ.Component {
	return component(func(h *html) {
		maxTotal := dashboard.MaxTotal(points)

		h.raw(fmt.Sprintf(`<svg id="overview-chart" viewBox="0 0 %d %d" class="w-full" role="img" aria-label="Monthly revenue">`, chartWidth, chartHeight))
		if len(points) == 0 {
			h.raw(`</svg>`)
			return
		}

		plotH := chartHeight - chartPadBot
		for i := 0; i <= 4; i++ {
			v := maxTotal * i / 4
			y := plotH - plotH*i/4
			h.raw(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="end" font-size="12" fill="#888888">`, chartPadLeft-8, max(y, 12)))
			h.text("$" + strconv.Itoa(v))
			h.raw(`</text>`)
		}

		slot := (chartWidth - chartPadLeft) / len(points)
		barW := slot * 2 / 3
		for i, p := range points {
			barH := 0
			if maxTotal > 0 {
				barH = (plotH - 8) * p.Total / maxTotal
			}
			x := chartPadLeft + i*slot + (slot-barW)/2
			h.raw(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" rx="4" fill="currentColor" class="text-slate-900"><title>`, x, plotH-barH, barW, barH))
			h.text(p.Month + ": $" + strconv.Itoa(p.Total))
			h.raw(`</title></rect>`)
			h.raw(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" font-size="12" fill="#888888">`, x+barW/2, chartHeight-4))
			h.text(p.Month)
			h.raw(`</text>`)
		}
		h.raw(`</svg>`)
	})
}

// RecentSales lists the latest buyers.
func RecentSales(sales []dashboard.Sale) templ.Component {
	return component(func(h *html) {
		h.raw(`<div id="recent-sales" class="space-y-8">`)
		for _, s := range sales {
			h.raw(`<div class="flex items-center"><span class="flex h-9 w-9 items-center justify-center rounded-full bg-slate-100 text-sm">`)
			h.text(s.Initials())
			h.raw(`</span><div class="ml-4 space-y-1"><p class="text-sm font-medium leading-none">`)
			h.text(s.Name)
			h.raw(`</p><p class="text-sm text-slate-500">`)
			h.text(s.Email)
			h.raw(`</p></div><div class="ml-auto font-medium">`)
			h.text(s.Amount)
			h.raw(`</div></div>`)
		}
		h.raw(`</div>`)
	})
}

// SalesSummary is the caption of the recent sales card.
func SalesSummary(count int) string {
	return fmt.Sprintf("You made %d sales this month.", count)
}

// DateRange renders the reporting period as a read-only picker button.
func DateRange(r dashboard.DateRange) templ.Component {
	return component(func(h *html) {
		h.raw(`<button type="button" id="date-range" class="inline-flex h-9 w-[260px] items-center justify-start rounded-md border px-3 text-left text-sm font-normal">`)
		h.render(Icon("calendar", "mr-2 h-4 w-4"))
		h.text(r.Label())
		h.raw(`</button>`)
	})
}

// Tabs renders the dashboard tab list. Only the first tab is enabled.
func Tabs(labels ...string) templ.Component {
	return component(func(h *html) {
		h.raw(`<div role="tablist" class="inline-flex h-9 items-center justify-center rounded-lg bg-slate-100 p-1 text-slate-500">`)
		for i, label := range labels {
			if i == 0 {
				h.raw(`<button type="button" role="tab" aria-selected="true" class="rounded-md bg-white px-3 py-1 text-sm font-medium text-slate-950 shadow">`)
			} else {
				h.raw(`<button type="button" role="tab" aria-selected="false" disabled class="rounded-md px-3 py-1 text-sm font-medium opacity-50">`)
			}
			h.text(label)
			h.raw(`</button>`)
		}
		h.raw(`</div>`)
	})
}
