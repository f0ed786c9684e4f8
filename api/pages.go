package api

import (
	_ "embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-web/internal/apiclient"
	"github.com/carson-networks/budget-web/internal/routing"
	"github.com/carson-networks/budget-web/internal/service"
)

//go:embed shell.html
var shellHTML string

var shellTemplate = template.Must(template.New("shell").Parse(shellHTML))

var pageTitles = map[routing.View]string{
	routing.ViewLogin:    "Login",
	routing.ViewRegister: "Register",
	routing.ViewHome:     "Transactions",
	routing.ViewDetails:  "Transaction details",
}

type shellData struct {
	Title         string
	View          routing.View
	TransactionID string
	Statuses      []apiclient.Status
}

// pageHandler serves the navigation surface: the route guard either redirects or
// renders the page shell for the requested view.
func pageHandler(logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/v1/") || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
			http.NotFound(w, r)
			return
		}

		view := service.ViewSessionFromContext(r.Context())
		if view == nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		decision := routing.Resolve(r.URL.Path, view.Auth.IsAuthenticated())
		if !decision.Allowed() {
			http.Redirect(w, r, decision.Redirect, http.StatusSeeOther)
			return
		}

		data := shellData{
			Title:    pageTitles[decision.View],
			View:     decision.View,
			Statuses: apiclient.AllStatuses,
		}
		if decision.View == routing.ViewDetails {
			data.TransactionID = r.URL.Query().Get("transaction_id")
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := shellTemplate.Execute(w, data); err != nil {
			logger.WithError(err).Error("PageHandler.render")
		}
	}
}
