package usecase

// StepOutcome tags a best-effort step whose failure deliberately does not
// fail the surrounding operation (PIX code fetch, rate-limit store outage).
// Tests can assert the degraded path was taken on purpose instead of relying
// on a swallowed error.

type StepOutcome struct {
	OK     bool
	Reason string
}

func OutcomeOK() StepOutcome { return StepOutcome{OK: true} }

func OutcomeDegraded(reason string) StepOutcome { return StepOutcome{Reason: reason} }
