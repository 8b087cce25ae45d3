package views

import "github.com/a-h/templ"

const (
	// Brand is the product name shown in page titles and the auth panel.
	Brand = "Acme Inc"

	datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.4/bundles/datastar.js"
	tailwindScript = "https://cdn.tailwindcss.com"
)

// Document is the HTML skeleton every page is rendered into.
// It loads DataStar and hosts the toast container used by the error handler.
func Document(title string, body templ.Component) templ.Component {
	return component(func(h *html) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw("<title>")
		h.text(title)
		h.raw(" | ")
		h.text(Brand)
		h.raw("</title>")
		h.raw(`<script src="`, tailwindScript, `"></script>`)
		h.raw(`<script type="module" src="`, datastarScript, `"></script>`)
		h.raw(`</head><body class="min-h-screen bg-white font-sans antialiased text-slate-950">`)
		h.render(body)
		h.raw(`<div id="toast-container" class="fixed bottom-4 right-4 z-50 flex w-80 flex-col gap-2"></div>`)
		h.raw(`</body></html>`)
	})
}
