package ps

import "strings"

// ProblemStatement represents a single SIH problem statement entry.
// All fields are optional except the dedup key (ID or PSCode); missing
// values stay empty strings rather than failing the record.
type ProblemStatement struct {
	ID               string `json:"problem_statement_id"`
	Title            string `json:"problem_statement_title"`
	Description      string `json:"description"`
	Background       string `json:"background"`
	ExpectedSolution string `json:"expected_solution"`
	Organization     string `json:"organization"`
	Department       string `json:"department"`
	Category         string `json:"category"`
	Theme            string `json:"theme"`
	YoutubeLink      string `json:"youtube_link"`
	DatasetLink      string `json:"dataset_link"`
	ContactInfo      string `json:"contact_info"`

	// Fields recovered from the listing footer line, e.g.
	// "Software SIH25001 12 MedTech / BioTech / HealthTech".
	PSCode       string `json:"ps_code"`
	IdeasCount   string `json:"ideas_count"`
	ListCategory string `json:"list_category"`
	ListTheme    string `json:"list_theme"`
}

// Columns is the canonical column order shared by every export format.
var Columns = []string{
	"problem_statement_id",
	"problem_statement_title",
	"description",
	"background",
	"expected_solution",
	"organization",
	"department",
	"category",
	"theme",
	"youtube_link",
	"dataset_link",
	"contact_info",
	"ps_code",
	"ideas_count",
	"list_category",
	"list_theme",
}

// Row returns the record's values in Columns order.
func (p *ProblemStatement) Row() []string {
	return []string{
		p.ID,
		p.Title,
		p.Description,
		p.Background,
		p.ExpectedSolution,
		p.Organization,
		p.Department,
		p.Category,
		p.Theme,
		p.YoutubeLink,
		p.DatasetLink,
		p.ContactInfo,
		p.PSCode,
		p.IdeasCount,
		p.ListCategory,
		p.ListTheme,
	}
}

// Key returns the natural dedup key: the labeled problem statement ID,
// or the footer PS code when the ID is missing. Empty when neither is set.
func (p *ProblemStatement) Key() string {
	if id := strings.TrimSpace(p.ID); id != "" {
		return id
	}
	return strings.TrimSpace(p.PSCode)
}

// IsEmpty reports whether no field carries any value.
func (p *ProblemStatement) IsEmpty() bool {
	for _, v := range p.Row() {
		if v != "" {
			return false
		}
	}
	return true
}
