// Package moderation holds the pin/resolve/accept authority rule.
// It is a pure decision function with no side effects.
package moderation

import "github.com/campushub-dev/campushub/internal/domain"

// CanModerate reports whether the acting user may pin/resolve the thread
// or accept one of its replies: community moderators and the thread
// author qualify. The global role field carries no authority here.
func CanModerate(community *domain.Community, thread *domain.ThreadMetadata, user *domain.User) bool {
	if community == nil || thread == nil || user == nil {
		return false
	}
	if community.IsModerator(user.Id) {
		return true
	}
	return thread.Author.Id == user.Id
}
