package requests

// SubmitRequest is the payload for submitting an access request.
type SubmitRequest struct {
	SoftwareID int64  `json:"softwareId" validate:"required,gt=0"`
	AccessType string `json:"accessType" validate:"required"`
	Reason     string `json:"reason" validate:"required"`
}

// TransitionRequest is the payload for approving or rejecting a request.
type TransitionRequest struct {
	Status string `json:"status" validate:"required,oneof=Approved Rejected"`
}
