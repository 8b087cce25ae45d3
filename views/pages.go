package views

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/acmeconsole/handler"
)

// ErrorPage is the full page rendered by the shared error handler.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return Document(http.StatusText(p.StatusCode), component(func(h *html) {
		h.raw(`<main class="flex min-h-screen flex-col items-center justify-center gap-4 p-8 text-center">`)
		h.raw(`<p class="text-5xl font-bold">`)
		h.text(strconv.Itoa(p.StatusCode))
		h.raw(`</p><h1 class="text-xl font-semibold">`)
		h.text(http.StatusText(p.StatusCode))
		h.raw(`</h1><p class="text-sm text-slate-500">`)
		h.text(p.Error)
		h.raw(`</p>`)
		if p.RetryURL != "" {
			h.raw(`<a class="text-sm underline underline-offset-4"`)
			h.href(p.RetryURL)
			h.raw(`>Try again</a>`)
		}
		if p.RequestID != "" {
			h.raw(`<p class="text-xs text-slate-400">Request ID: `)
			h.text(p.RequestID)
			h.raw(`</p>`)
		}
		h.raw(`</main>`)
	}))
}

// ErrorToast is patched into #toast-container for failed DataStar requests.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return component(func(h *html) {
		h.raw(`<div role="status" data-on-load="setTimeout(() => el.remove(), 5000)"`)
		switch p.Type {
		case "error":
			h.class("rounded-md border border-red-200 bg-red-50 p-4 text-sm text-red-700 shadow")
		case "warning":
			h.class("rounded-md border border-amber-200 bg-amber-50 p-4 text-sm text-amber-800 shadow")
		default:
			h.class("rounded-md border bg-white p-4 text-sm shadow")
		}
		h.raw(`>`)
		h.text(p.Message)
		h.raw(`</div>`)
	})
}

// TermsPage is the placeholder linked from the auth forms.
func TermsPage() templ.Component {
	return Document("Terms of Service", staticPage("Terms of Service",
		"These terms govern your use of the Acme console. They will be published before general availability."))
}

// PrivacyPage is the placeholder linked from the auth forms.
func PrivacyPage() templ.Component {
	return Document("Privacy Policy", staticPage("Privacy Policy",
		"We store your email address and a hash of your password to let you sign in. Nothing else is collected."))
}

func staticPage(title, body string) templ.Component {
	return component(func(h *html) {
		h.raw(`<main class="mx-auto max-w-2xl space-y-4 p-8"><h1 class="text-2xl font-semibold tracking-tight">`)
		h.text(title)
		h.raw(`</h1><p class="text-sm text-slate-600">`)
		h.text(body)
		h.raw(`</p><a href="/login" class="text-sm underline underline-offset-4">Back to sign in</a></main>`)
	})
}
