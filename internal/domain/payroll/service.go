package payroll

import "context"

type PayrollService interface {
	// Compute builds the payroll table for all EMPLOYEE users for the period.
	Compute(ctx context.Context, req ComputeRequest) (PayrollResponse, error)

	// MyLine computes the acting user's own line for the period.
	MyLine(ctx context.Context, req ComputeRequest) (Line, error)
}
