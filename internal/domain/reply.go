package domain

import "time"

// to iterate thru layers: handler -> service -> storage
type ReplyCreationData struct {
	ThreadId ThreadId
	Author   User
	Content  string
}

// Reply belongs to exactly one thread; the parent's reply list is
// append-only in creation order. Replies take upvotes only.
type Reply struct {
	Id          ReplyId   `json:"id"`
	ThreadId    ThreadId  `json:"thread_id"`
	Author      User      `json:"author"`
	Content     string    `json:"content"`
	ContentHtml string    `json:"content_html,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	IsAccepted  bool      `json:"is_accepted"`
	Upvoters    VoterIds  `json:"upvoters"`
}

func (r *Reply) Upvotes() int {
	return len(r.Upvoters)
}
