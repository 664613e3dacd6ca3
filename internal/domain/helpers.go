package domain

import (
	"fmt"
	"time"
)

// for debug
func (t *Thread) String() string {
	s := fmt.Sprintf("[id:%d, community:%d, title:%s, score:%d, replies:%d, created:%s, pinned:%t, resolved:%t",
		t.Id, t.CommunityId, t.Title, t.NetScore(), t.ReplyCount, t.CreatedAt.Format(time.StampMilli), t.IsPinned, t.IsResolved)
	for _, r := range t.Replies {
		s += fmt.Sprintf(", %v", r)
	}
	return s + "]"
}

func (r *Reply) String() string {
	return fmt.Sprintf("[id:%d, thread:%d, author:%d, upvotes:%d, accepted:%t]", r.Id, r.ThreadId, r.Author.Id, r.Upvotes(), r.IsAccepted)
}
