package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-web/internal/apiclient"
	"github.com/carson-networks/budget-web/internal/logging"
	"github.com/carson-networks/budget-web/internal/service"
)

type ListQueryBody struct {
	SortBy     string `json:"sortBy" enum:"date,amount,contractor"`
	Order      string `json:"order" enum:"asc,desc"`
	Contractor string `json:"contractor" doc:"Contractor substring filter, empty when absent"`
	Date       string `json:"date" doc:"YYYY-MM-DD date filter, empty when absent"`
}

// ListViewBody is the home view: the transaction list and the create form.
type ListViewBody struct {
	Query ListQueryBody `json:"query"`
	Phase string        `json:"phase" enum:"idle,loading,loaded,error"`
	Items []Transaction `json:"items"`
	Empty bool          `json:"empty" doc:"True when the list is loaded and has no transactions"`
	Form  FormBody      `json:"form"`
}

type ListViewOutput struct {
	Body ListViewBody
}

// listController is implemented by *service.TransactionListController.
type listController interface {
	Mount(ctx context.Context) error
	SetSortBy(ctx context.Context, key apiclient.SortKey) error
	SetOrder(ctx context.Context, order apiclient.SortOrder) error
	SetContractorFilter(ctx context.Context, text string) error
	SetDateFilter(ctx context.Context, date *time.Time) error
	Refetch(ctx context.Context) error
	State(ctx context.Context) (service.ListState, error)
}

// ListViewHandler handles the home view. GET /v1/transactions/view is a navigation to
// the view and refetches; GET /v1/transactions/view/state only reads.
type ListViewHandler struct{}

func NewListViewHandler() *ListViewHandler {
	return &ListViewHandler{}
}

func (h *ListViewHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction-list-view",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/view",
		Summary:     "Transaction list view",
		Description: "Shows the view: refetches for the current inputs and returns the sort and filter inputs, the transactions and the create form.",
		Tags:        []string{"Transactions"},
	}, h.handle)

	huma.Register(api, huma.Operation{
		OperationID: "get-transaction-list-state",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/view/state",
		Summary:     "Transaction list state",
		Description: "Returns the home view without issuing a fetch.",
		Tags:        []string{"Transactions"},
	}, h.state)
}

func (h *ListViewHandler) state(ctx context.Context, _ *struct{}) (*ListViewOutput, error) {
	view, err := authenticatedView(ctx)
	if err != nil {
		return nil, err
	}
	return listView(ctx, view.List, view.HomeForm.State())
}

func (h *ListViewHandler) handle(ctx context.Context, _ *struct{}) (*ListViewOutput, error) {
	view, err := authenticatedView(ctx)
	if err != nil {
		return nil, err
	}
	if err := view.List.Mount(ctx); err != nil {
		return nil, huma.NewError(http.StatusServiceUnavailable, "view session closed", err)
	}
	return listView(ctx, view.List, view.HomeForm.State())
}

func listView(ctx context.Context, list listController, form service.FormState) (*ListViewOutput, error) {
	state, err := list.State(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusServiceUnavailable, "view session closed", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("phase", string(state.Phase))
		logData.AddData("transactionCount", len(state.Items))
	}

	body := ListViewBody{
		Query: ListQueryBody{
			SortBy: string(state.Query.SortBy),
			Order:  string(state.Query.Order),
		},
		Phase: string(state.Phase),
		Items: make([]Transaction, len(state.Items)),
		Empty: state.Phase == service.PhaseLoaded && len(state.Items) == 0,
		Form:  toFormBody(form),
	}
	if state.Query.Contractor != nil {
		body.Query.Contractor = *state.Query.Contractor
	}
	if state.Query.Date != nil {
		body.Query.Date = state.Query.Date.Format(apiclient.DateLayout)
	}
	for i, tx := range state.Items {
		body.Items[i] = toTransaction(tx)
	}
	return &ListViewOutput{Body: body}, nil
}
