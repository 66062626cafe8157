package domain

// JobPosting mirrors a single posting from the external remote-jobs feed.
// Postings are consumed read-only and never persisted to the document store;
// the only local copy is an expiring cache of the upstream response.
type JobPosting struct {
	ID                        int64  `json:"id"`
	Title                     string `json:"title"`
	CompanyName               string `json:"company_name"`
	CandidateRequiredLocation string `json:"candidate_required_location"`
	JobType                   string `json:"job_type"`
	PublicationDate           string `json:"publication_date"`
	Description               string `json:"description"`
	Salary                    string `json:"salary"`
	Category                  string `json:"category"`
	URL                       string `json:"url"`
}
