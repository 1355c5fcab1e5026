package coursegen

// ChapterDraft is one chapter of an AI-generated outline before persistence.
type ChapterDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Script  string `json:"script"`
}

// Outline is the AI-produced course structure: title, description and the
// ordered chapter drafts. The draft order becomes the chapter order index.
type Outline struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Chapters    []ChapterDraft `json:"chapters"`
}

// Validate returns an error if the outline is unusable for persistence.
func (o *Outline) Validate() error {
	if len(o.Chapters) == 0 {
		return Errorf(EINVALID, "outline contains no chapters")
	}
	return nil
}
