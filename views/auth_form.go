package views

import "github.com/a-h/templ"

// AuthFormState is what an auth form shows after a submission.
type AuthFormState struct {
	Email         string
	RedirectTo    string
	EmailError    string
	PasswordError string
	// Message is a form-level alert, used when the service cannot be reached.
	Message string
	// Notice is an informational line, e.g. after signing out.
	Notice string
}

type authForm struct {
	id       string
	action   string
	title    string
	subtitle string
	submit   string
	password string // autocomplete hint
}

var (
	loginForm = authForm{
		id:       "login-form",
		action:   "/login",
		title:    "Sign in to your account",
		subtitle: "Enter your email and password below to sign in",
		submit:   "Sign In with Email",
		password: "current-password",
	}
	registerForm = authForm{
		id:       "register-form",
		action:   "/register",
		title:    "Create an account",
		subtitle: "Enter your email below to create your account",
		submit:   "Sign Up with Email",
		password: "new-password",
	}
)

// LoginForm renders the sign-in form. It is also the DataStar patch target
// "#login-form" for submission results.
func LoginForm(state AuthFormState) templ.Component {
	return renderAuthForm(loginForm, state)
}

// RegisterForm renders the sign-up form, patch target "#register-form".
func RegisterForm(state AuthFormState) templ.Component {
	return renderAuthForm(registerForm, state)
}

// LoginPage is the complete sign-in page.
func LoginPage(path string, state AuthFormState) templ.Component {
	return Document("Login", AuthLayout(path, authPanel(loginForm, LoginForm(state))))
}

// RegisterPage is the complete sign-up page.
func RegisterPage(path string, state AuthFormState) templ.Component {
	return Document("Sign Up", AuthLayout(path, authPanel(registerForm, RegisterForm(state))))
}

func authPanel(f authForm, form templ.Component) templ.Component {
	return component(func(h *html) {
		h.raw(`<div class="mx-auto flex w-full flex-col justify-center space-y-6 sm:w-[350px]">`)
		h.raw(`<div class="flex flex-col space-y-2 text-center"><h1 class="text-2xl font-semibold tracking-tight">`)
		h.text(f.title)
		h.raw(`</h1><p class="text-sm text-slate-500">`)
		h.text(f.subtitle)
		h.raw(`</p></div><div class="grid gap-6">`)
		h.render(form)
		h.raw(`<div class="relative"><div class="absolute inset-0 flex items-center"><span class="w-full border-t"></span></div>`)
		h.raw(`<div class="relative flex justify-center text-xs uppercase"><span class="bg-white px-2 text-slate-500">Or continue with</span></div></div>`)
		h.raw(`<button type="button" disabled class="inline-flex h-9 items-center justify-center rounded-md border px-4 text-sm font-medium opacity-50" title="Not available yet">`)
		h.render(Icon("github", "mr-2 h-4 w-4"))
		h.raw(`GitHub</button></div>`)
		legal(h)
		h.raw(`</div>`)
	})
}

// renderAuthForm posts through DataStar when scripts run and falls back to a
// plain form POST otherwise. The $submitting indicator is true exactly while
// the request is in flight.
func renderAuthForm(f authForm, s AuthFormState) templ.Component {
	return component(func(h *html) {
		h.raw(`<form`)
		h.attr("id", f.id)
		h.attr("method", "post")
		h.attr("action", f.action)
		h.attr("data-signals-submitting", "false")
		h.attr("data-indicator-submitting", "")
		h.attr("data-on-submit", "@post('"+f.action+"', {contentType: 'form'})")
		h.raw(` novalidate><div class="grid gap-2">`)

		if s.Message != "" {
			h.raw(`<div role="alert" class="flex items-center gap-2 rounded-md border border-red-200 bg-red-50 p-3 text-sm text-red-700">`)
			h.render(Icon("alert-circle", "h-4 w-4"))
			h.text(s.Message)
			h.raw(`</div>`)
		}

		if s.Notice != "" {
			h.raw(`<div role="status" class="rounded-md border bg-slate-50 p-3 text-sm text-slate-700">`)
			h.text(s.Notice)
			h.raw(`</div>`)
		}

		h.raw(`<input type="hidden" name="redirectTo"`)
		h.attr("value", s.RedirectTo)
		h.raw(`>`)

		field(h, fieldParams{
			id: "email", label: "Email address", typ: "email", value: s.Email,
			placeholder: "name@example.com", autocomplete: "email", err: s.EmailError,
		})
		field(h, fieldParams{
			id: "password", label: "Password", typ: "password",
			autocomplete: f.password, err: s.PasswordError,
		})

		h.raw(`<button type="submit" class="mt-2 inline-flex h-9 items-center justify-center rounded-md bg-slate-900 px-4 text-sm font-medium text-white disabled:opacity-50" data-attr-disabled="$submitting">`)
		h.raw(`<span data-show="$submitting" style="display: none">`)
		h.render(Icon("spinner", "mr-2 h-4 w-4 animate-spin"))
		h.raw(`</span>`)
		h.text(f.submit)
		h.raw(`</button></div></form>`)
	})
}

type fieldParams struct {
	id, label, typ, value, placeholder, autocomplete, err string
}

func field(h *html, p fieldParams) {
	h.raw(`<div class="grid gap-1"><label class="block text-sm font-medium text-slate-700"`)
	h.attr("for", p.id)
	h.raw(`>`)
	h.text(p.label)
	h.raw(`</label><input class="flex h-9 w-full rounded-md border px-3 py-1 text-sm shadow-sm"`)
	h.attr("id", p.id)
	h.attr("name", p.id)
	h.attr("type", p.typ)
	if p.value != "" {
		h.attr("value", p.value)
	}
	if p.placeholder != "" {
		h.attr("placeholder", p.placeholder)
	}
	h.attr("autocomplete", p.autocomplete)
	h.raw(` autocapitalize="none" autocorrect="off" data-attr-disabled="$submitting"`)
	if p.err != "" {
		h.attr("aria-invalid", "true")
		h.attr("aria-describedby", p.id+"-error")
	}
	h.raw(`>`)
	if p.err != "" {
		h.raw(`<p class="pt-1 text-sm text-red-600"`)
		h.attr("id", p.id+"-error")
		h.raw(`>`)
		h.text(p.err)
		h.raw(`</p>`)
	}
	h.raw(`</div>`)
}
