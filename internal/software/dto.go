package software

// CreateSoftwareRequest is the payload for registering a catalog entry.
type CreateSoftwareRequest struct {
	Name         string   `json:"name" validate:"required,max=200"`
	Description  string   `json:"description" validate:"required"`
	AccessLevels []string `json:"accessLevels" validate:"required,min=1,dive,required"`
}
