package requests

import (
	"time"

	"github.com/accesshub/accesshub/internal/auth"
	"github.com/accesshub/accesshub/internal/software"
)

// AccessType is the access level being requested. The global enum; each
// software title additionally restricts which of these it offers.
type AccessType string

// Requestable access types.
const (
	AccessRead  AccessType = "Read"
	AccessWrite AccessType = "Write"
	AccessAdmin AccessType = "Admin"
)

// ValidAccessType reports whether t is one of the global access types.
func ValidAccessType(t AccessType) bool {
	switch t {
	case AccessRead, AccessWrite, AccessAdmin:
		return true
	}
	return false
}

// Status is the lifecycle state of an access request. Pending is the only
// initial state; Approved and Rejected are terminal.
type Status string

// Request lifecycle states.
const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// TerminalStatus reports whether s is a valid transition target.
func TerminalStatus(s Status) bool {
	return s == StatusApproved || s == StatusRejected
}

// AccessRequest records an employee's ask for an access level on a software
// title. Owner and title are immutable after creation; only status (and with
// it updatedAt) changes, exactly once.
type AccessRequest struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"userId"`
	SoftwareID int64      `json:"softwareId"`
	AccessType AccessType `json:"accessType"`
	Reason     string     `json:"reason"`
	Status     Status     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Detail joins a request with its software title and, where the caller may
// see it, the sanitized owning user.
type Detail struct {
	AccessRequest
	Software software.Software `json:"software"`
	User     *auth.View        `json:"user,omitempty"`
}
