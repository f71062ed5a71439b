package models

type Report struct {
	ID        int64   `json:"id" db:"id"`
	ProjectID int64   `json:"project_id" db:"project_id"`
	Title     string  `json:"title" db:"title"`
	Content   *string `json:"content" db:"content"`
}
