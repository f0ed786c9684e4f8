package service

import (
	"context"

	"github.com/carson-networks/budget-web/internal/apiclient"
)

// ITransactionClient is the part of the remote API the transaction controllers use.
//
//go:generate mockery --name ITransactionClient --inpackage --filename mock_ITransactionClient.go
type ITransactionClient interface {
	ListTransactions(ctx context.Context, cred apiclient.Credential, query apiclient.ListQuery) ([]apiclient.Transaction, error)
	GetTransaction(ctx context.Context, cred apiclient.Credential, id int64) (apiclient.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, cred apiclient.Credential, id int64, status apiclient.Status) (apiclient.Transaction, error)
	CreateTransaction(ctx context.Context, cred apiclient.Credential, create apiclient.TransactionCreate) error
}

// IAuthClient is the part of the remote API used for login, logout and registration.
//
//go:generate mockery --name IAuthClient --inpackage --filename mock_IAuthClient.go
type IAuthClient interface {
	Login(ctx context.Context, username, password string) (apiclient.Credential, error)
	Logout(ctx context.Context, cred apiclient.Credential) error
	Register(ctx context.Context, username, password string) error
}

// IClient is the whole remote API.
type IClient interface {
	ITransactionClient
	IAuthClient
}

var _ IClient = (*apiclient.Client)(nil)

// credentialSource hands out the credential attached to protected calls.
type credentialSource interface {
	Credential() apiclient.Credential
}
