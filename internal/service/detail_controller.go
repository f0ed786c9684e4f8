package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-web/internal/apiclient"
)

type DetailPhase string

const (
	DetailLoading    DetailPhase = "loading"
	DetailLoaded     DetailPhase = "loaded"
	DetailLoadFailed DetailPhase = "loadFailed"
	DetailEditing    DetailPhase = "editing"
	DetailSaved      DetailPhase = "saved"
	DetailSaveFailed DetailPhase = "saveFailed"
)

const (
	StatusUpdatedNotice = "Status updated successfully!"
	StatusFailedNotice  = "Failed to update status."
)

// DetailState is a snapshot of the detail view.
type DetailState struct {
	TransactionID  string
	Phase          DetailPhase
	Transaction    *apiclient.Transaction
	SelectedStatus apiclient.Status
	Notice         string
}

// DisplayPhase is the phase shown to the user. A failed load is shown as loading.
func (s DetailState) DisplayPhase() DetailPhase {
	if s.Phase == DetailLoadFailed {
		return DetailLoading
	}
	return s.Phase
}

// TransactionDetailController loads one transaction and edits its status.
type TransactionDetailController struct {
	client ITransactionClient
	auth   credentialSource
	logger *logrus.Logger

	mu       sync.Mutex
	rawID    string
	id       int64
	loadSeq  uint64
	phase    DetailPhase
	tx       *apiclient.Transaction
	selected apiclient.Status
	notice   string
}

func NewTransactionDetailController(client ITransactionClient, auth credentialSource, logger *logrus.Logger) *TransactionDetailController {
	return &TransactionDetailController{
		client: client,
		auth:   auth,
		logger: logger,
		phase:  DetailLoading,
	}
}

// Mount loads rawID every time the details view is shown.
func (c *TransactionDetailController) Mount(ctx context.Context, rawID string) DetailState {
	c.Load(ctx, rawID)
	return c.State()
}

// Reset forgets the transaction on display. Loads and saves still in flight are
// discarded when they complete.
func (c *TransactionDetailController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loadSeq++
	c.rawID = ""
	c.id = 0
	c.tx = nil
	c.selected = 0
	c.notice = ""
	c.phase = DetailLoading
}

// Load fetches the transaction identified by rawID. Failures are logged and leave the
// controller in DetailLoadFailed; nothing is returned to the caller.
func (c *TransactionDetailController) Load(ctx context.Context, rawID string) {
	c.mu.Lock()
	c.loadSeq++
	seq := c.loadSeq
	c.rawID = rawID
	c.tx = nil
	c.selected = 0
	c.notice = ""
	c.phase = DetailLoading

	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil || id <= 0 {
		c.id = 0
		c.phase = DetailLoadFailed
		c.mu.Unlock()
		c.logger.WithField("transactionID", rawID).Warn("TransactionDetailController.Load.invalid id")
		return
	}
	c.id = id
	c.mu.Unlock()

	c.fetch(ctx, seq, id)
}

// Reload fetches the current transaction again.
func (c *TransactionDetailController) Reload(ctx context.Context) {
	c.mu.Lock()
	rawID := c.rawID
	c.mu.Unlock()
	c.Load(ctx, rawID)
}

func (c *TransactionDetailController) fetch(ctx context.Context, seq uint64, id int64) {
	tx, err := c.client.GetTransaction(ctx, c.auth.Credential(), id)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.loadSeq {
		return
	}
	if err != nil {
		c.phase = DetailLoadFailed
		c.logger.WithError(err).WithField("transactionID", id).Error("TransactionDetailController.Load.failed")
		return
	}
	c.tx = &tx
	c.selected = tx.Status
	c.phase = DetailLoaded
}

// SetSelectedStatus changes the pending status locally.
func (c *TransactionDetailController) SetSelectedStatus(status apiclient.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %d", apiclient.ErrUnknownStatus, status)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tx == nil {
		return ErrNotLoaded
	}
	c.selected = status
	c.phase = DetailEditing
	return nil
}

// Save submits the pending status. On success the server's representation replaces
// the local one; on failure the transaction is left as it was.
func (c *TransactionDetailController) Save(ctx context.Context) error {
	c.mu.Lock()
	if c.tx == nil {
		c.mu.Unlock()
		return ErrNotLoaded
	}
	seq := c.loadSeq
	id := c.tx.ID
	status := c.selected
	c.mu.Unlock()

	updated, err := c.client.UpdateTransactionStatus(ctx, c.auth.Credential(), id, status)

	c.mu.Lock()
	defer c.mu.Unlock()

	stale := seq != c.loadSeq
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"transactionID": id,
			"status":        status.Color(),
		}).Error("TransactionDetailController.Save.failed")
		if !stale {
			c.phase = DetailSaveFailed
			c.notice = StatusFailedNotice
		}
		return fmt.Errorf("update status of transaction %d: %w", id, err)
	}
	if stale {
		return nil
	}

	c.tx = &updated
	c.selected = updated.Status
	c.phase = DetailSaved
	c.notice = StatusUpdatedNotice
	return nil
}

func (c *TransactionDetailController) State() DetailState {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := DetailState{
		TransactionID:  c.rawID,
		Phase:          c.phase,
		SelectedStatus: c.selected,
		Notice:         c.notice,
	}
	if c.tx != nil {
		tx := *c.tx
		state.Transaction = &tx
	}
	return state
}
