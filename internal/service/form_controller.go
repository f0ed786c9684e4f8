package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-web/internal/apiclient"
)

const CreateFailedMessage = "Failed to create transaction."

// maxAmountInput bounds the raw amount text before it is parsed.
const maxAmountInput = 40

// FormState is a snapshot of the create form.
type FormState struct {
	FromAccount string
	ToAccount   string
	Amount      string
	Error       string
}

// ValidateTransactionForm checks the raw form inputs in order and stops at the first
// failure. Nothing is sent to the API when it returns an error.
func ValidateTransactionForm(fromAccount, toAccount, amount string) (apiclient.TransactionCreate, error) {
	if fromAccount == "" || toAccount == "" {
		return apiclient.TransactionCreate{}, ErrFieldsRequired
	}
	if fromAccount == toAccount {
		return apiclient.TransactionCreate{}, ErrSameAccount
	}
	amount = strings.TrimSpace(amount)
	if len(amount) > maxAmountInput {
		return apiclient.TransactionCreate{}, ErrAmountOutOfRange
	}
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return apiclient.TransactionCreate{}, ErrInvalidAmount
	}
	if !parsed.IsPositive() {
		return apiclient.TransactionCreate{}, ErrNonPositiveAmount
	}
	if apiclient.CheckAmountRange(parsed) != nil {
		return apiclient.TransactionCreate{}, ErrAmountOutOfRange
	}
	return apiclient.TransactionCreate{
		FromAccount: fromAccount,
		ToAccount:   toAccount,
		Amount:      parsed,
	}, nil
}

// TransactionFormController validates and submits new transactions, then calls
// onCreated so the sibling view can refresh.
type TransactionFormController struct {
	client    ITransactionClient
	auth      credentialSource
	logger    *logrus.Logger
	onCreated func(ctx context.Context)

	mu    sync.Mutex
	state FormState
	// gen changes on Reset; a submit that started before it leaves the form alone.
	gen uint64
}

func NewTransactionFormController(client ITransactionClient, auth credentialSource, logger *logrus.Logger, onCreated func(ctx context.Context)) *TransactionFormController {
	return &TransactionFormController{
		client:    client,
		auth:      auth,
		logger:    logger,
		onCreated: onCreated,
	}
}

func (c *TransactionFormController) SetFields(fromAccount, toAccount, amount string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.FromAccount = fromAccount
	c.state.ToAccount = toAccount
	c.state.Amount = amount
}

// Submit validates the current inputs and creates the transaction. Validation errors
// are *ValidationError values; a failed create keeps the inputs and skips onCreated.
func (c *TransactionFormController) Submit(ctx context.Context) error {
	c.mu.Lock()
	create, err := ValidateTransactionForm(c.state.FromAccount, c.state.ToAccount, c.state.Amount)
	if err != nil {
		c.state.Error = err.Error()
		c.mu.Unlock()
		return err
	}
	c.state.Error = ""
	gen := c.gen
	c.mu.Unlock()

	if err := c.client.CreateTransaction(ctx, c.auth.Credential(), create); err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"fromAccount": create.FromAccount,
			"toAccount":   create.ToAccount,
		}).Error("TransactionFormController.Submit.failed")

		c.mu.Lock()
		if gen == c.gen {
			c.state.Error = apiclient.DetailOr(err, CreateFailedMessage)
		}
		c.mu.Unlock()
		return fmt.Errorf("create transaction: %w", err)
	}

	c.mu.Lock()
	stale := gen != c.gen
	if !stale {
		c.state = FormState{}
	}
	c.mu.Unlock()

	if c.onCreated != nil && !stale {
		c.onCreated(ctx)
	}
	return nil
}

// Reset clears the inputs and the error.
func (c *TransactionFormController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.state = FormState{}
}

func (c *TransactionFormController) State() FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
