package models

type BlogPost struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content"`
	Image     string   `json:"image"`
	Author    string   `json:"author"`
	Tags      []string `json:"tags,omitempty"`
	Published bool     `json:"published"`
}

// BlogPostDraft is a post without an id; the repository assigns one on create.
type BlogPostDraft struct {
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content"`
	Image     string   `json:"image"`
	Author    string   `json:"author"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
}
