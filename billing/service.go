package billing

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/billing/business/override"
	"encore.app/billing/business/payment"
	"encore.app/billing/business/period"
	"encore.app/billing/business/pricing"
	"encore.app/billing/domain"
	"encore.app/billing/repository"
	"encore.app/billing/workflow"
)

var membershipDB = sqldb.NewDatabase("membership_billing", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

const taskQueue = "membership-billing"

var validate = validator.New()

//encore:service
type Service struct {
	pricing   pricing.Business
	periods   period.Business
	payments  payment.Business
	overrides override.Business
	reminders workflow.ReminderSender
	temporal  client.Client
	worker    worker.Worker
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(membershipDB)

	repo := repository.NewRepository(pgxdb)
	stateMachine := domain.NewPeriodStateMachine(pgxdb, repo.Customers, repo.Periods, repo.Payments)

	pricingBusiness := pricing.NewPricingBusiness(repo.Overrides, repo.Customers)
	periodBusiness := period.NewPeriodBusiness(repo.Customers, repo.Periods, pricingBusiness, stateMachine)
	paymentBusiness := payment.NewPaymentBusiness(repo.Customers, repo.Periods, repo.Payments, pricingBusiness, stateMachine)
	overrideBusiness := override.NewOverrideBusiness(repo.Overrides, repo.Customers)

	temporalClient, err := client.Dial(client.Options{})
	if err != nil {
		return nil, fmt.Errorf("dial temporal: %w", err)
	}

	reminders := logReminderSender{}
	workflow.SetActivityDependencies(periodBusiness, reminders)

	w := worker.New(temporalClient, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.PeriodLifecycle)
	w.RegisterActivity(workflow.MarkOverdueActivity)
	w.RegisterActivity(workflow.SendReminderActivity)
	if err := w.Start(); err != nil {
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	rlog.Info("billing service initialized")

	return &Service{
		pricing:   pricingBusiness,
		periods:   periodBusiness,
		payments:  paymentBusiness,
		overrides: overrideBusiness,
		reminders: reminders,
		temporal:  temporalClient,
		worker:    w,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.temporal != nil {
		s.temporal.Close()
	}
}
