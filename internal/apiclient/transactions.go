package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

// ListTransactions fetches the transactions matching query. Ordering and filtering are
// done by the server; the returned slice keeps the server's order.
func (c *Client) ListTransactions(ctx context.Context, cred Credential, query ListQuery) ([]Transaction, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "transactions/", query.Values(), nil)
	if err != nil {
		return nil, err
	}

	var bodies []transactionBody
	if _, err := c.do(req, &cred, &bodies); err != nil {
		return nil, err
	}

	transactions := make([]Transaction, len(bodies))
	for i := range bodies {
		tx, err := transactionFromBody(&bodies[i])
		if err != nil {
			return nil, fmt.Errorf("list transactions: %w", err)
		}
		transactions[i] = tx
	}

	if c.logger.IsLevelEnabled(logrus.DebugLevel) {
		c.logger.Debugf("APIClient.ListTransactions.decoded %s", spew.Sdump(transactions))
	}
	return transactions, nil
}

// GetTransaction fetches a single transaction.
func (c *Client) GetTransaction(ctx context.Context, cred Credential, id int64) (Transaction, error) {
	req, err := c.newRequest(ctx, http.MethodGet, transactionPath(id), nil, nil)
	if err != nil {
		return Transaction{}, err
	}

	var body transactionBody
	if _, err := c.do(req, &cred, &body); err != nil {
		return Transaction{}, err
	}
	return transactionFromBody(&body)
}

// UpdateTransactionStatus replaces the status of a transaction and returns the server's
// updated representation.
func (c *Client) UpdateTransactionStatus(ctx context.Context, cred Credential, id int64, status Status) (Transaction, error) {
	if !status.Valid() {
		return Transaction{}, fmt.Errorf("%w: %d", ErrUnknownStatus, status)
	}

	req, err := c.newRequest(ctx, http.MethodPut, transactionPath(id), nil, updateStatusBody{Status: status})
	if err != nil {
		return Transaction{}, err
	}

	var body transactionBody
	if _, err := c.do(req, &cred, &body); err != nil {
		return Transaction{}, err
	}
	return transactionFromBody(&body)
}

// CreateTransaction submits a new transaction.
func (c *Client) CreateTransaction(ctx context.Context, cred Credential, create TransactionCreate) error {
	req, err := c.newRequest(ctx, http.MethodPost, "transactions/", nil, createTransactionBody{
		FromAccount: create.FromAccount,
		ToAccount:   create.ToAccount,
		Amount:      jsonNumber(create.Amount),
	})
	if err != nil {
		return err
	}

	_, err = c.do(req, &cred, nil)
	return err
}

func transactionPath(id int64) string {
	return "transactions/" + strconv.FormatInt(id, 10)
}
