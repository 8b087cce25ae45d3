// Package views holds the console's HTML as templ components.
//
// Pages (LoginPage, RegisterPage, DashboardPage, ErrorPage, TermsPage,
// PrivacyPage) are wrapped in Document. Partials (LoginForm, RegisterForm,
// ErrorToast) double as DataStar patch targets. Every component is a pure
// function of its arguments and escapes all text it is given.
package views
