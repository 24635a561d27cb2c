package domain

// Stat is one card on the dashboard.
type Stat struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Value       string `json:"value"`
	Icon        string `json:"icon"`
	Color       string `json:"color"` // primary, danger, success, warning
	Description string `json:"description"`
}
