package lead

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

func NewDecision(s string) (Decision, error) {
	d := Decision(s)
	switch d {
	case DecisionApprove, DecisionReject:
		return d, nil
	default:
		return "", ErrInvalidDecision
	}
}

// CustomerInfo is the contact detail set a partner buys access to.
type CustomerInfo struct {
	Name     string
	Phone    string
	Location string
}

// Resolution records who closed a purchase request and when.
type Resolution struct {
	ResolvedAt time.Time
	ResolvedBy uuid.UUID
	Notes      string
}

// State is a closed set: Pending, Approved or Rejected. Customer contact
// details exist only inside Approved.
type State interface {
	Status() Status
	sealed()
}

type Pending struct{}

type Approved struct {
	Resolution
	Customer CustomerInfo
}

type Rejected struct {
	Resolution
}

func (Pending) Status() Status  { return StatusPending }
func (Approved) Status() Status { return StatusApproved }
func (Rejected) Status() Status { return StatusRejected }

func (Pending) sealed()  {}
func (Approved) sealed() {}
func (Rejected) sealed() {}
