package contract

// NewNoteID is the id a client submits to create a note instead of editing one.
const NewNoteID = -1

type NoteResponse struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	Author      string `json:"author"`
	PublishedAt string `json:"published_datetime"`
	ViewNum     int    `json:"view_num"`
	CommentNum  int    `json:"comment_num"`
	Permission  int    `json:"permission"`
}

// SubmitNoteRequest creates a note when ID is NewNoteID and edits note ID otherwise.
type SubmitNoteRequest struct {
	ID         *int   `json:"id" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Body       string `json:"body" validate:"required"`
	Username   string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required"`
	Permission *int   `json:"permission" validate:"required,min=0,max=2"`
}
