package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-web/internal/apiclient"
)

type SortInput struct {
	Body struct {
		SortBy string `json:"sortBy" required:"true" enum:"date,amount,contractor"`
	}
}

type OrderInput struct {
	Body struct {
		Order string `json:"order" required:"true" enum:"asc,desc"`
	}
}

type ContractorInput struct {
	Body struct {
		Contractor string `json:"contractor,omitempty" doc:"Substring of the contractor; empty clears the filter"`
	}
}

type DateInput struct {
	Body struct {
		Date string `json:"date,omitempty" doc:"YYYY-MM-DD; empty clears the filter"`
	}
}

// ListQueryHandler handles the sort, filter and refetch operations of the list view.
// Each change that alters the query issues exactly one fetch.
type ListQueryHandler struct{}

func NewListQueryHandler() *ListQueryHandler {
	return &ListQueryHandler{}
}

func (h *ListQueryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "set-transaction-sort",
		Method:      http.MethodPut,
		Path:        "/v1/transactions/view/sort",
		Summary:     "Set the sort key",
		Tags:        []string{"Transactions"},
	}, h.setSort)

	huma.Register(api, huma.Operation{
		OperationID: "set-transaction-order",
		Method:      http.MethodPut,
		Path:        "/v1/transactions/view/order",
		Summary:     "Set the sort order",
		Tags:        []string{"Transactions"},
	}, h.setOrder)

	huma.Register(api, huma.Operation{
		OperationID: "set-transaction-contractor-filter",
		Method:      http.MethodPut,
		Path:        "/v1/transactions/view/contractor",
		Summary:     "Set the contractor filter",
		Tags:        []string{"Transactions"},
	}, h.setContractor)

	huma.Register(api, huma.Operation{
		OperationID: "set-transaction-date-filter",
		Method:      http.MethodPut,
		Path:        "/v1/transactions/view/date",
		Summary:     "Set the date filter",
		Tags:        []string{"Transactions"},
	}, h.setDate)

	huma.Register(api, huma.Operation{
		OperationID: "refetch-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transactions/view/refetch",
		Summary:     "Fetch the list again",
		Tags:        []string{"Transactions"},
	}, h.refetch)
}

func (h *ListQueryHandler) setSort(ctx context.Context, input *SortInput) (*ListViewOutput, error) {
	key, err := apiclient.ParseSortKey(input.Body.SortBy)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid sortBy", err)
	}
	return h.apply(ctx, func(list listController) error { return list.SetSortBy(ctx, key) })
}

func (h *ListQueryHandler) setOrder(ctx context.Context, input *OrderInput) (*ListViewOutput, error) {
	order, err := apiclient.ParseSortOrder(input.Body.Order)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid order", err)
	}
	return h.apply(ctx, func(list listController) error { return list.SetOrder(ctx, order) })
}

func (h *ListQueryHandler) setContractor(ctx context.Context, input *ContractorInput) (*ListViewOutput, error) {
	return h.apply(ctx, func(list listController) error {
		return list.SetContractorFilter(ctx, input.Body.Contractor)
	})
}

func (h *ListQueryHandler) setDate(ctx context.Context, input *DateInput) (*ListViewOutput, error) {
	var date *time.Time
	if input.Body.Date != "" {
		parsed, err := time.Parse(apiclient.DateLayout, input.Body.Date)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", err)
		}
		date = &parsed
	}
	return h.apply(ctx, func(list listController) error { return list.SetDateFilter(ctx, date) })
}

func (h *ListQueryHandler) refetch(ctx context.Context, _ *struct{}) (*ListViewOutput, error) {
	return h.apply(ctx, func(list listController) error { return list.Refetch(ctx) })
}

func (h *ListQueryHandler) apply(ctx context.Context, change func(list listController) error) (*ListViewOutput, error) {
	view, err := authenticatedView(ctx)
	if err != nil {
		return nil, err
	}
	if err := change(view.List); err != nil {
		return nil, huma.NewError(http.StatusServiceUnavailable, "view session closed", err)
	}
	return listView(ctx, view.List, view.HomeForm.State())
}
