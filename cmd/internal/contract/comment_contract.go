package contract

type CommentResponse struct {
	ID          int    `json:"id"`
	BelongTo    int    `json:"belong_to"`
	Nickname    string `json:"nickname"`
	Body        string `json:"body"`
	PublishedAt string `json:"published_datetime"`
}

type AddCommentRequest struct {
	BelongTo *int   `json:"belong_to" validate:"required"`
	Nickname string `json:"nickname" validate:"required"`
	Body     string `json:"body" validate:"required"`
}
