package models

// Todo is an independent checklist item, unordered by habit. The todo
// list is kept partitioned on every mutation: incomplete items first,
// completed items after, with contiguous orders across the whole list.
type Todo struct {
	ID          string  `json:"id"`
	Text        string  `json:"text"`
	Completed   bool    `json:"completed"`
	Order       int     `json:"order"`
	CreatedAt   string  `json:"createdAt"`
	CompletedAt *string `json:"completedAt"`
}
