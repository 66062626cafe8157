package domain

import (
	"encoding/json"
	"time"
)

// User models a registered account. The password hash never leaves the
// process: it is excluded from JSON and only compared via bcrypt.
type User struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Preferences  Preferences `json:"preferences"`
	Resume       *Resume     `json:"resume,omitempty"`
	SavedJobs    []SavedJob  `json:"savedJobs"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// SavedJob is a denormalized snapshot of an externally-sourced posting,
// captured at save time and never synced back to the source.
type SavedJob struct {
	JobID   string    `json:"jobId" bson:"job_id"`
	Title   string    `json:"title" bson:"title"`
	Company string    `json:"company" bson:"company"`
	SavedAt time.Time `json:"savedAt" bson:"saved_at"`
}

// Resume holds metadata for the most recently uploaded resume file.
// A new upload replaces it wholesale.
type Resume struct {
	Filename   string    `json:"filename" bson:"filename"`
	Path       string    `json:"path" bson:"path"`
	UploadedAt time.Time `json:"uploadedAt" bson:"uploaded_at"`
}

// Preferences carries the known job-search preference keys plus an
// escape-hatch bag for fields the API does not model yet. Unknown keys
// round-trip through Extra so older clients keep working.
type Preferences struct {
	Location    string            `json:"location,omitempty" bson:"location,omitempty"`
	JobType     string            `json:"job_type,omitempty" bson:"job_type,omitempty"`
	SalaryRange string            `json:"salary_range,omitempty" bson:"salary_range,omitempty"`
	Extra       map[string]string `json:"-" bson:"extra,omitempty"`
}

// MarshalJSON flattens Extra into the top-level object alongside the
// known keys.
func (p Preferences) MarshalJSON() ([]byte, error) {
	flat := make(map[string]string, len(p.Extra)+3)
	for k, v := range p.Extra {
		flat[k] = v
	}
	if p.Location != "" {
		flat["location"] = p.Location
	}
	if p.JobType != "" {
		flat["job_type"] = p.JobType
	}
	if p.SalaryRange != "" {
		flat["salary_range"] = p.SalaryRange
	}
	return json.Marshal(flat)
}

// UnmarshalJSON picks the known keys off the object and keeps the rest
// in Extra. Non-string values fail the decode, which is the boundary
// validation the preferences contract requires.
func (p *Preferences) UnmarshalJSON(data []byte) error {
	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	var out Preferences
	out.Location = flat["location"]
	out.JobType = flat["job_type"]
	out.SalaryRange = flat["salary_range"]
	delete(flat, "location")
	delete(flat, "job_type")
	delete(flat, "salary_range")
	if len(flat) > 0 {
		out.Extra = flat
	}
	*p = out
	return nil
}

// HasSaved reports whether jobID is already present in the saved list.
func (u *User) HasSaved(jobID string) bool {
	for _, j := range u.SavedJobs {
		if j.JobID == jobID {
			return true
		}
	}
	return false
}
