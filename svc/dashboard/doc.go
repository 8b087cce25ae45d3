// Package dashboard provides the static analytics dataset rendered on the
// dashboard page: headline stats, monthly revenue, recent sales, the team
// list and the reporting date range. The dataset ships embedded as YAML.
package dashboard
