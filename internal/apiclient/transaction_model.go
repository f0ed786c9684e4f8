package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used by the date filter.
const DateLayout = "2006-01-02"

var (
	ErrUnknownStatus    = errors.New("unknown transaction status")
	ErrUnknownSortKey   = errors.New("unknown sort key")
	ErrUnknownSortOrder = errors.New("unknown sort order")
	ErrAmountOutOfRange = errors.New("amount out of range")
)

// Amounts are limited to MaxAmountDigits integer digits and MaxAmountScale fraction
// digits, which keeps their decimal rendering short.
const (
	MaxAmountDigits = 15
	MaxAmountScale  = 16
)

// CheckAmountRange reports whether d can be rendered within the amount limits. It only
// looks at the coefficient and exponent, so it is safe on values like 1e2000000000.
func CheckAmountRange(d decimal.Decimal) error {
	if d.Exponent() < -MaxAmountScale || int64(d.NumDigits())+int64(d.Exponent()) > MaxAmountDigits {
		return ErrAmountOutOfRange
	}
	return nil
}

// Status is the client-mutable annotation of a transaction.
type Status int8

const (
	StatusSent Status = iota + 1
	StatusReceived
	StatusPaid
)

// AllStatuses lists every status in display order.
var AllStatuses = []Status{StatusSent, StatusReceived, StatusPaid}

// ParseStatus accepts the wire colour of a status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "red":
		return StatusSent, nil
	case "yellow":
		return StatusReceived, nil
	case "green":
		return StatusPaid, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// Color is the wire value of the status.
func (s Status) Color() string {
	switch s {
	case StatusSent:
		return "red"
	case StatusReceived:
		return "yellow"
	case StatusPaid:
		return "green"
	}
	return ""
}

func (s Status) Label() string {
	switch s {
	case StatusSent:
		return "Sent"
	case StatusReceived:
		return "Received"
	case StatusPaid:
		return "Paid"
	}
	return "Unknown"
}

func (s Status) String() string {
	return s.Color()
}

func (s Status) Valid() bool {
	return s.Color() != ""
}

func (s Status) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatus, s)
	}
	return json.Marshal(s.Color())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownStatus, data)
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// SortKey selects the server-side ordering of the transaction list.
type SortKey string

const (
	SortByDate       SortKey = "date"
	SortByAmount     SortKey = "amount"
	SortByContractor SortKey = "contractor"
)

func ParseSortKey(s string) (SortKey, error) {
	switch key := SortKey(s); key {
	case SortByDate, SortByAmount, SortByContractor:
		return key, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}

// SortOrder is the direction of the list ordering.
type SortOrder string

const (
	OrderAscending  SortOrder = "asc"
	OrderDescending SortOrder = "desc"
)

func ParseSortOrder(s string) (SortOrder, error) {
	switch order := SortOrder(s); order {
	case OrderAscending, OrderDescending:
		return order, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortOrder, s)
}

// ListQuery is the request shape derived from the list view's sort and filter state.
// Nil Contractor or Date means the filter is absent.
type ListQuery struct {
	SortBy     SortKey
	Order      SortOrder
	Contractor *string
	Date       *time.Time
}

// DefaultListQuery sorts by date ascending with no filters.
func DefaultListQuery() ListQuery {
	return ListQuery{
		SortBy: SortByDate,
		Order:  OrderAscending,
	}
}

// Values encodes the query as the list endpoint's query parameters.
func (q ListQuery) Values() url.Values {
	values := url.Values{}
	values.Set("sort_by", string(q.SortBy))
	values.Set("order", string(q.Order))
	if q.Contractor != nil && *q.Contractor != "" {
		values.Set("contractor", *q.Contractor)
	}
	if q.Date != nil {
		values.Set("date", q.Date.Format(DateLayout))
	}
	return values
}

// Transaction is a transfer between two free-text accounts as returned by the remote API.
type Transaction struct {
	ID          int64
	Date        time.Time
	FromAccount string
	ToAccount   string
	Amount      decimal.Decimal
	Status      Status
}

// Contractor is the counterparty shown in the list.
func (t Transaction) Contractor() string {
	return t.ToAccount
}

// TransactionCreate is the input for creating a transaction.
type TransactionCreate struct {
	FromAccount string
	ToAccount   string
	Amount      decimal.Decimal
}

// transactionBody is the wire representation of a transaction.
type transactionBody struct {
	ID          int64           `json:"id"`
	Date        string          `json:"date"`
	FromAccount string          `json:"from_account"`
	ToAccount   string          `json:"to_account"`
	Amount      decimal.Decimal `json:"amount"`
	Status      Status          `json:"status"`
}

type createTransactionBody struct {
	FromAccount string     `json:"from_account"`
	ToAccount   string     `json:"to_account"`
	Amount      jsonNumber `json:"amount"`
}

type updateStatusBody struct {
	Status Status `json:"status"`
}

// jsonNumber marshals a decimal as a bare JSON number.
type jsonNumber decimal.Decimal

func (n jsonNumber) MarshalJSON() ([]byte, error) {
	d := decimal.Decimal(n)
	if err := CheckAmountRange(d); err != nil {
		return nil, err
	}
	return []byte(d.String()), nil
}

var apiDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	DateLayout,
}

func parseAPIDate(raw string) (time.Time, error) {
	for _, layout := range apiDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized transaction date %q", raw)
}

func transactionFromBody(body *transactionBody) (Transaction, error) {
	if body.ID <= 0 {
		return Transaction{}, fmt.Errorf("invalid transaction id %d", body.ID)
	}
	if !body.Status.Valid() {
		return Transaction{}, fmt.Errorf("%w: missing on transaction %d", ErrUnknownStatus, body.ID)
	}
	date, err := parseAPIDate(body.Date)
	if err != nil {
		return Transaction{}, err
	}
	if err := CheckAmountRange(body.Amount); err != nil {
		return Transaction{}, fmt.Errorf("transaction %d: %w", body.ID, err)
	}
	return Transaction{
		ID:          body.ID,
		Date:        date,
		FromAccount: body.FromAccount,
		ToAccount:   body.ToAccount,
		Amount:      body.Amount,
		Status:      body.Status,
	}, nil
}
