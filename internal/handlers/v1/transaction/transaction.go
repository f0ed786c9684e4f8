package transaction

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-web/internal/apiclient"
	"github.com/carson-networks/budget-web/internal/routing"
	"github.com/carson-networks/budget-web/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          int64  `json:"id" doc:"Transaction identifier"`
	Date        string `json:"date" doc:"RFC3339 transfer date"`
	FromAccount string `json:"fromAccount" doc:"Source account"`
	ToAccount   string `json:"toAccount" doc:"Destination account (the contractor)"`
	Amount      string `json:"amount" doc:"Decimal amount"`
	Status      string `json:"status" enum:"red,yellow,green" doc:"Status color"`
	StatusLabel string `json:"statusLabel" doc:"Sent, Received or Paid"`
	DetailsPath string `json:"detailsPath" doc:"Navigation path of the details view"`
}

// FormBody is the state of a create form.
type FormBody struct {
	FromAccount string `json:"fromAccount"`
	ToAccount   string `json:"toAccount"`
	Amount      string `json:"amount"`
	Error       string `json:"error,omitempty" doc:"Message shown above the form"`
}

func toTransaction(tx apiclient.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID,
		Date:        tx.Date.Format(time.RFC3339),
		FromAccount: tx.FromAccount,
		ToAccount:   tx.ToAccount,
		Amount:      tx.Amount.String(),
		Status:      tx.Status.Color(),
		StatusLabel: tx.Status.Label(),
		DetailsPath: routing.DetailsPath(strconv.FormatInt(tx.ID, 10)),
	}
}

func toFormBody(state service.FormState) FormBody {
	return FormBody{
		FromAccount: state.FromAccount,
		ToAccount:   state.ToAccount,
		Amount:      state.Amount,
		Error:       state.Error,
	}
}

// authenticatedView returns the caller's view session, or a 401 when it is logged out.
func authenticatedView(ctx context.Context) (*service.ViewSession, error) {
	view, err := service.RequireAuthenticated(ctx)
	if errors.Is(err, service.ErrUnauthenticated) {
		return nil, huma.Error401Unauthorized("not authenticated")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("no view session", err)
	}
	return view, nil
}
