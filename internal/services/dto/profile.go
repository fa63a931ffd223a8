package dto

type UpdateApplicantProfileRequest struct {
	Name      *string          `json:"name,omitempty"`
	Education []EducationEntry `json:"education,omitempty"`
	Skills    []string         `json:"skills,omitempty"`
	ResumeURL *string          `json:"resume,omitempty"`
	PhotoURL  *string          `json:"profile,omitempty"`
}

type UpdateRecruiterProfileRequest struct {
	Name          *string `json:"name,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`
	Bio           *string `json:"bio,omitempty"`
}
