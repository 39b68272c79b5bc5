package create_booking

import (
	"context"
	"errors"
	"net"

	"github.com/lib/pq"

	"github.com/kparturi/shop-backend/internal/integrations/resend"
)

// failureClass splits submission failures into those worth paging the
// owner about and those that are plain connectivity trouble.
type failureClass int

const (
	classServer failureClass = iota
	classNetwork
)

// classifyFailure inspects a storage failure. Anything the backend
// itself rejected (a pq error with a SQLSTATE) is a server fault and
// gets reported; dial errors, timeouts and cancellations are network
// faults the owner can do nothing about.
func classifyFailure(err error) failureClass {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classServer
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return classNetwork
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return classNetwork
	}

	return classServer
}

// faultReport extracts the pq message/detail/hint triple when present so
// the owner email carries the same fields the database logged.
func faultReport(operation, customerEmail string, err error) resend.ErrorReportData {
	report := resend.ErrorReportData{
		Operation:     operation,
		Message:       err.Error(),
		CustomerEmail: customerEmail,
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		report.Message = pqErr.Message
		report.Details = pqErr.Detail
		report.Hint = pqErr.Hint
	}

	return report
}
