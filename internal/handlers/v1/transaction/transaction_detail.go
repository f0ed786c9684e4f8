package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-web/internal/apiclient"
	"github.com/carson-networks/budget-web/internal/service"
)

// DetailViewBody is the details view: one transaction, its pending status and the
// view's create form. A failed load is reported as loading.
type DetailViewBody struct {
	TransactionID  string       `json:"transactionID"`
	Phase          string       `json:"phase" enum:"loading,loaded,editing,saved,saveFailed"`
	Transaction    *Transaction `json:"transaction,omitempty"`
	SelectedStatus string       `json:"selectedStatus,omitempty" enum:"red,yellow,green"`
	Notice         string       `json:"notice,omitempty" doc:"Result of the last save"`
	Form           FormBody     `json:"form"`
}

type DetailViewOutput struct {
	Body DetailViewBody
}

type GetDetailInput struct {
	ID string `path:"id" doc:"Transaction identifier from the transaction_id navigation parameter"`
}

type SelectStatusInput struct {
	Body struct {
		Status string `json:"status" required:"true" enum:"red,yellow,green"`
	}
}

// TransactionDetailHandler handles the details view of one transaction.
type TransactionDetailHandler struct{}

func NewTransactionDetailHandler() *TransactionDetailHandler {
	return &TransactionDetailHandler{}
}

func (h *TransactionDetailHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction-detail",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/{id}/detail",
		Summary:     "Transaction details view",
		Description: "Shows the view: loads the transaction and returns it with the pending status and the create form.",
		Tags:        []string{"Transactions"},
	}, h.get)

	huma.Register(api, huma.Operation{
		OperationID: "get-transaction-detail-state",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/detail",
		Summary:     "Transaction details state",
		Description: "Returns the details view without loading.",
		Tags:        []string{"Transactions"},
	}, h.state)

	huma.Register(api, huma.Operation{
		OperationID: "select-transaction-status",
		Method:      http.MethodPut,
		Path:        "/v1/transactions/detail/status",
		Summary:     "Pick a new status",
		Description: "Changes the pending status locally. Nothing is sent until save.",
		Tags:        []string{"Transactions"},
	}, h.selectStatus)

	huma.Register(api, huma.Operation{
		OperationID: "save-transaction-status",
		Method:      http.MethodPost,
		Path:        "/v1/transactions/detail/save",
		Summary:     "Save the pending status",
		Tags:        []string{"Transactions"},
	}, h.save)
}

func (h *TransactionDetailHandler) get(ctx context.Context, input *GetDetailInput) (*DetailViewOutput, error) {
	view, err := authenticatedView(ctx)
	if err != nil {
		return nil, err
	}
	state := view.Detail.Mount(ctx, input.ID)
	return detailView(state, view.DetailsForm.State()), nil
}

func (h *TransactionDetailHandler) state(ctx context.Context, _ *struct{}) (*DetailViewOutput, error) {
	view, err := authenticatedView(ctx)
	if err != nil {
		return nil, err
	}
	return detailView(view.Detail.State(), view.DetailsForm.State()), nil
}

func (h *TransactionDetailHandler) selectStatus(ctx context.Context, input *SelectStatusInput) (*DetailViewOutput, error) {
	view, err := authenticatedView(ctx)
	if err != nil {
		return nil, err
	}

	status, err := apiclient.ParseStatus(input.Body.Status)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid status", err)
	}
	if err := view.Detail.SetSelectedStatus(status); err != nil {
		return nil, detailError(err)
	}
	return detailView(view.Detail.State(), view.DetailsForm.State()), nil
}

func (h *TransactionDetailHandler) save(ctx context.Context, _ *struct{}) (*DetailViewOutput, error) {
	view, err := authenticatedView(ctx)
	if err != nil {
		return nil, err
	}
	if err := view.Detail.Save(ctx); err != nil {
		return nil, detailError(err)
	}
	return detailView(view.Detail.State(), view.DetailsForm.State()), nil
}

func detailError(err error) error {
	if errors.Is(err, service.ErrNotLoaded) {
		return huma.NewError(http.StatusConflict, "transaction not loaded", err)
	}
	return huma.NewError(http.StatusBadGateway, service.StatusFailedNotice, err)
}

func detailView(state service.DetailState, form service.FormState) *DetailViewOutput {
	body := DetailViewBody{
		TransactionID: state.TransactionID,
		Phase:         string(state.DisplayPhase()),
		Notice:        state.Notice,
		Form:          toFormBody(form),
	}
	if state.Transaction != nil {
		tx := toTransaction(*state.Transaction)
		body.Transaction = &tx
		body.SelectedStatus = state.SelectedStatus.Color()
	}
	return &DetailViewOutput{Body: body}
}
