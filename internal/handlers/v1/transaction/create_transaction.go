package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-web/internal/service"
)

const (
	formViewHome    = "home"
	formViewDetails = "details"
)

// CreateTransactionBody is the request body for creating a transaction. The fields
// are the raw form inputs; they are validated by the form controller, not the schema.
type CreateTransactionBody struct {
	View        string `json:"view,omitempty" enum:"home,details" default:"home" doc:"Which view's form submits; picks what refreshes afterwards"`
	FromAccount string `json:"fromAccount,omitempty" doc:"Source account"`
	ToAccount   string `json:"toAccount,omitempty" doc:"Destination account"`
	Amount      string `json:"amount,omitempty" doc:"Positive decimal amount"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body FormBody
}

// CreateTransactionHandler handles POST /v1/transactions/form.
type CreateTransactionHandler struct{}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler() *CreateTransactionHandler {
	return &CreateTransactionHandler{}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transactions/form",
		Summary:       "Create transaction",
		Description:   "Validates and submits the create form, then refreshes the list (home) or the open transaction (details).",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	view, err := authenticatedView(ctx)
	if err != nil {
		return nil, err
	}

	form := view.HomeForm
	if input.Body.View == formViewDetails {
		form = view.DetailsForm
	}

	form.SetFields(input.Body.FromAccount, input.Body.ToAccount, input.Body.Amount)
	err = form.Submit(ctx)

	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return nil, huma.NewError(http.StatusBadRequest, validationErr.Message)
	case err != nil:
		return nil, huma.NewError(http.StatusBadGateway, form.State().Error, err)
	}

	return &CreateTransactionOutput{Body: toFormBody(form.State())}, nil
}
