package views

import (
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCase = cases.Title(language.English)

// AuthToggle returns the link that switches between the two auth pages.
// Paths containing "login" point to registration, every other path to login.
func AuthToggle(path string) (href, label string) {
	target := "login"
	if strings.Contains(path, "login") {
		target = "register"
	}
	return "/" + target, titleCase.String(target)
}

// AuthLayout is the two-column frame shared by the login and registration pages.
func AuthLayout(path string, content templ.Component) templ.Component {
	href, label := AuthToggle(path)
	return component(func(h *html) {
		h.raw(`<div class="container relative grid h-screen flex-col items-center justify-center lg:max-w-none lg:grid-cols-2 lg:px-0">`)

		h.raw(`<a id="auth-toggle"`)
		h.href(href)
		h.raw(` class="absolute right-4 top-4 rounded-md px-3 py-2 text-sm font-medium hover:bg-slate-100 md:right-8 md:top-8">`)
		h.text(label)
		h.raw(`</a>`)

		h.raw(`<div class="relative hidden h-full flex-col bg-zinc-900 p-10 text-white lg:flex">`)
		h.raw(`<div class="relative z-20 flex items-center text-lg font-medium">`)
		h.render(Icon("command", "mr-2 h-6 w-6"))
		h.text(Brand)
		h.raw(`</div>`)
		h.raw(`<div class="relative z-20 mt-auto"><blockquote class="space-y-2"><p class="text-lg">`)
		h.raw(`&ldquo;`)
		h.text("This library has saved me countless hours of work and helped me deliver stunning designs to my clients faster than ever before. Highly recommended!")
		h.raw(`&rdquo;</p><footer class="text-sm">Sofia Davis</footer></blockquote></div>`)
		h.raw(`</div>`)

		h.raw(`<div class="lg:p-8">`)
		h.render(content)
		h.raw(`</div></div>`)
	})
}

// legal is the consent line under both auth forms.
func legal(h *html) {
	h.raw(`<p class="px-8 text-center text-sm text-slate-500">By clicking continue, you agree to our `)
	h.raw(`<a href="/terms" class="underline underline-offset-4 hover:text-slate-900">Terms of Service</a> and `)
	h.raw(`<a href="/privacy" class="underline underline-offset-4 hover:text-slate-900">Privacy Policy</a>.</p>`)
}
