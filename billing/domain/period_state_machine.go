package domain

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"encore.app/billing/repository/customers"
	"encore.app/billing/repository/payments"
	"encore.app/billing/repository/periods"
)

// TxRepos exposes transaction-bound repositories to business logic running
// inside a customer lock. Everything done through them commits or rolls
// back as one unit.
type TxRepos struct {
	Customers customers.Querier
	Periods   periods.Querier
	Payments  payments.Querier
}

// StateMachine owns the transaction boundaries for all billing state
// transitions. Locking the customer row serializes the generator and the
// reconciler per customer; operations on different customers never contend.
type StateMachine interface {
	// WithCustomerLock runs businessLogic inside a transaction holding a
	// row lock on the customer. The callback receives transaction-bound
	// repositories and the locked customer row.
	WithCustomerLock(ctx context.Context, customerID int64, businessLogic func(repos TxRepos, customer customers.Customer) error) error
}

// PeriodStateMachine is the pgx-backed StateMachine.
type PeriodStateMachine struct {
	db           *pgxpool.Pool
	customerRepo customers.Querier
	periodRepo   periods.Querier
	paymentRepo  payments.Querier
}

func NewPeriodStateMachine(db *pgxpool.Pool, customerRepo customers.Querier, periodRepo periods.Querier, paymentRepo payments.Querier) *PeriodStateMachine {
	return &PeriodStateMachine{
		db:           db,
		customerRepo: customerRepo,
		periodRepo:   periodRepo,
		paymentRepo:  paymentRepo,
	}
}

func (sm *PeriodStateMachine) WithCustomerLock(ctx context.Context, customerID int64, businessLogic func(repos TxRepos, customer customers.Customer) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	repos := TxRepos{
		Customers: sm.customerRepo.(*customers.Queries).WithTx(tx),
		Periods:   sm.periodRepo.(*periods.Queries).WithTx(tx),
		Payments:  sm.paymentRepo.(*payments.Queries).WithTx(tx),
	}

	customer, err := repos.Customers.GetCustomerForUpdate(ctx, customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "customer not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to lock customer"}
	}

	if err := businessLogic(repos, customer); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit billing transaction"}
	}

	return nil
}
