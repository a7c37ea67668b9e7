package workflow

const (
	// Signal names
	PaymentReceivedSignalName = "payment-received"
)

// PaymentReceivedSignal tells a period lifecycle workflow that its period
// was settled. The reconciler already committed everything; the workflow
// only stops reminding.
type PaymentReceivedSignal struct {
	FeeSubmissionID int64 `json:"fee_submission_id"`
}
