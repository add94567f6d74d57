package order

import (
	"strings"

	"github.com/staterastore/statera-api/internal/httperr"
)

// ===============================
// Order Status
// ===============================

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// stageRank orders the forward path. Cancelled sits outside the ranks:
// it is reachable from any non-terminal state.
var stageRank = map[Status]int{
	StatusPending:    0,
	StatusProcessing: 1,
	StatusShipped:    2,
	StatusDelivered:  3,
}

func InitialStatus() Status {
	return StatusPending
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return st, nil
	}
	return "", httperr.ErrValidation("invalid_status", "Unknown order status.")
}

func IsTerminal(s Status) bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition enforces monotonic advancement: a status never moves
// back to an earlier stage, and terminal states never change.
func CanTransition(from, to Status) error {
	if from == to {
		return nil
	}
	if IsTerminal(from) {
		return httperr.ErrValidation("status_terminal", "Order is in a terminal status.")
	}
	if to == StatusCancelled {
		return nil
	}

	fromRank, ok := stageRank[from]
	if !ok {
		return httperr.ErrValidation("invalid_status", "Unknown order status.")
	}
	toRank, ok := stageRank[to]
	if !ok {
		return httperr.ErrValidation("invalid_status", "Unknown order status.")
	}

	if toRank < fromRank {
		return httperr.ErrValidation("status_regression", "Order status cannot move backwards.")
	}
	return nil
}
