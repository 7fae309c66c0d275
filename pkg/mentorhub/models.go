package mentorhub

// Models mirror the backend's table schemas. Fields are pointers with
// omitempty so that partial payloads (e.g. updates touching a single column)
// carry only the fields the caller actually set.

// Student is a student record.
type Student struct {
	ID        *int    `json:"ID,omitempty"`
	Name      *string `json:"Name,omitempty"`
	EMail     *string `json:"eMail,omitempty"`
	Mobile    *string `json:"Mobile,omitempty"`
	College   *string `json:"College,omitempty"`
	YrStart   *int    `json:"Yr_Start,omitempty"`
	YrEnd     *int    `json:"Yr_End,omitempty"`
	Degree    *string `json:"Degree,omitempty"`
	Branch    *string `json:"Branch,omitempty"`
	Electives *string `json:"Electives,omitempty"`
	Interests *string `json:"Interests,omitempty"`
	MentorID  *int    `json:"MentorID,omitempty"`
}

// Mentor is a mentor record.
type Mentor struct {
	MentorID       *int    `json:"MentorID,omitempty"`
	Name           *string `json:"Name,omitempty"`
	EMail          *string `json:"eMail,omitempty"`
	Mobile         *string `json:"Mobile,omitempty"`
	Specialization *string `json:"Specialization,omitempty"`
	Availability   *string `json:"Availability,omitempty"`
	LinkedIn       *string `json:"LinkedIn,omitempty"`
	Organization   *string `json:"Organization,omitempty"`
}

// Project is a project record.
type Project struct {
	ProjectID   *int    `json:"ProjectID,omitempty"`
	Title       *string `json:"Title,omitempty"`
	Description *string `json:"Description,omitempty"`
	Approach    *string `json:"Approach,omitempty"`
	Skills      *string `json:"Skills,omitempty"`
	HWNeeded    *string `json:"HW_Needed,omitempty"`
	Milestones  *string `json:"Milestones,omitempty"`
}

// String returns a pointer to s, for building record literals.
func String(s string) *string { return &s }

// Int returns a pointer to i, for building record literals.
func Int(i int) *int { return &i }
