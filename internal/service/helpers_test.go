package service

import (
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-web/internal/apiclient"
	"github.com/carson-networks/budget-web/internal/operator"
)

var testCred = apiclient.Credential{Session: "sessionid=abc123"}

type staticCredential apiclient.Credential

func (s staticCredential) Credential() apiclient.Credential {
	return apiclient.Credential(s)
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.Out = io.Discard
	return logger
}

func newTestLoop(t *testing.T) *operator.OperatorDelegator {
	t.Helper()
	loop := operator.NewOperatorDelegator(1)
	loop.Start()
	t.Cleanup(loop.Stop)
	return loop
}

func makeTransaction(id int64, to string, amount string, status apiclient.Status) apiclient.Transaction {
	return apiclient.Transaction{
		ID:          id,
		Date:        time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		FromAccount: "main",
		ToAccount:   to,
		Amount:      decimal.RequireFromString(amount),
		Status:      status,
	}
}
