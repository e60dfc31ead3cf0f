package models

// Insight is one promotional suggestion returned by the advisory service.
type Insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}
