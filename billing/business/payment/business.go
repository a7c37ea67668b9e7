package payment

import (
	"context"

	"encore.app/billing/business/pricing"
	"encore.app/billing/domain"
	"encore.app/billing/model"
	"encore.app/billing/repository/customers"
	"encore.app/billing/repository/payments"
	"encore.app/billing/repository/periods"
)

type Business interface {
	// SubmitPayment settles one or more billing periods atomically and
	// idempotently, creating a fee submission and its invoice.
	SubmitPayment(ctx context.Context, req *model.PaymentRequest) (*model.PaymentResult, error)

	GetFeeStatus(ctx context.Context, customerID int64) (*model.FeeStatus, error)
	GetFeeHistory(ctx context.Context, customerID int64, limit, offset int32) ([]model.FeeSubmission, int64, error)
}

// business handles payment reconciliation and the fee read projections
type business struct {
	customerRepo customers.Querier
	periodRepo   periods.Querier
	paymentRepo  payments.Querier
	pricing      pricing.Business
	stateMachine domain.StateMachine
}

func NewPaymentBusiness(
	customerRepo customers.Querier,
	periodRepo periods.Querier,
	paymentRepo payments.Querier,
	pricingBusiness pricing.Business,
	stateMachine domain.StateMachine,
) Business {
	return &business{
		customerRepo: customerRepo,
		periodRepo:   periodRepo,
		paymentRepo:  paymentRepo,
		pricing:      pricingBusiness,
		stateMachine: stateMachine,
	}
}

// convertDBSubmissionToModel converts a database FeeSubmission to a domain model FeeSubmission
func convertDBSubmissionToModel(dbSubmission payments.FeeSubmission) *model.FeeSubmission {
	submission := &model.FeeSubmission{
		ID:             dbSubmission.ID,
		CustomerID:     dbSubmission.CustomerID,
		AmountCents:    dbSubmission.AmountCents,
		PaymentDate:    dbSubmission.PaymentDate.Time,
		PaymentMethod:  dbSubmission.PaymentMethod,
		IdempotencyKey: dbSubmission.IdempotencyKey,
		InvoiceID:      dbSubmission.InvoiceID,
		CreatedAt:      dbSubmission.CreatedAt.Time,
	}
	if dbSubmission.Notes.Valid {
		submission.Notes = &dbSubmission.Notes.String
	}
	return submission
}

func convertDBInvoiceToModel(dbInvoice payments.Invoice) *model.Invoice {
	return &model.Invoice{
		ID:               dbInvoice.ID,
		InvoiceNumber:    dbInvoice.InvoiceNumber,
		TotalAmountCents: dbInvoice.TotalAmountCents,
		PaymentStatus:    dbInvoice.PaymentStatus,
		CreatedAt:        dbInvoice.CreatedAt.Time,
	}
}

func convertDBCustomerToModel(dbCustomer customers.Customer) *model.Customer {
	customer := &model.Customer{
		ID:               dbCustomer.ID,
		RegistrationDate: dbCustomer.RegistrationDate.Time,
		Active:           dbCustomer.Active,
		CreatedAt:        dbCustomer.CreatedAt.Time,
		UpdatedAt:        dbCustomer.UpdatedAt.Time,
	}
	if dbCustomer.PlanID.Valid {
		customer.PlanID = &dbCustomer.PlanID.Int64
	}
	if dbCustomer.NextDueDate.Valid {
		customer.NextDueDate = &dbCustomer.NextDueDate.Time
	}
	if dbCustomer.LastPaymentDate.Valid {
		customer.LastPaymentDate = &dbCustomer.LastPaymentDate.Time
	}
	return customer
}

func convertDBPeriodToModel(dbPeriod periods.BillingPeriod) model.BillingPeriod {
	return model.BillingPeriod{
		ID:          dbPeriod.ID,
		CustomerID:  dbPeriod.CustomerID,
		DueDate:     dbPeriod.DueDate.Time,
		AmountCents: dbPeriod.AmountCents,
		Status:      model.PeriodStatus(dbPeriod.Status),
		DaysOverdue: dbPeriod.DaysOverdue,
		CreatedAt:   dbPeriod.CreatedAt.Time,
		UpdatedAt:   dbPeriod.UpdatedAt.Time,
	}
}
