package dto

// PlanResponse mirrors the Plan row with the feature string split for display.
type PlanResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        int      `json:"price"`
	Features     []string `json:"features"`
	BlogIncluded bool     `json:"blog_included"`
	MaxProjects  int      `json:"max_projects"`
	SupportLevel string   `json:"support_level"`
}
