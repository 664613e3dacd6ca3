package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/campushub-dev/campushub/internal/config"
	"github.com/campushub-dev/campushub/internal/domain"
	"github.com/campushub-dev/campushub/internal/errors"
)

// NormalizeTags trims whitespace, drops empties and removes
// case-insensitive duplicates while preserving first-seen casing and order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	return out
}

type ThreadValidator struct {
	Cfg *config.Public
}

func (v *ThreadValidator) Title(title domain.ThreadTitle) error {
	n := utf8.RuneCountInString(title)
	if n < v.Cfg.TitleMinLen {
		return errors.Validation(fmt.Sprintf("Title must be at least %d characters", v.Cfg.TitleMinLen))
	}
	if n > v.Cfg.TitleMaxLen {
		return errors.Validation(fmt.Sprintf("Title must be at most %d characters", v.Cfg.TitleMaxLen))
	}
	return nil
}

func (v *ThreadValidator) Content(content string, communityType domain.CommunityType) error {
	max := v.Cfg.AcademicContentMaxLen
	if communityType == domain.Chillout {
		max = v.Cfg.ChilloutContentMaxLen
	}
	n := utf8.RuneCountInString(content)
	if n < v.Cfg.ContentMinLen {
		return errors.Validation(fmt.Sprintf("Content must be at least %d characters", v.Cfg.ContentMinLen))
	}
	if n > max {
		return errors.Validation(fmt.Sprintf("Content must be at most %d characters", max))
	}
	return nil
}

// Tags expects already-normalized input (see NormalizeTags).
func (v *ThreadValidator) Tags(tags []string) error {
	if len(tags) > v.Cfg.MaxTags {
		return errors.Validation(fmt.Sprintf("At most %d tags allowed", v.Cfg.MaxTags))
	}
	return nil
}

type ReplyValidator struct {
	Cfg *config.Public
}

func (v *ReplyValidator) Content(content string, communityType domain.CommunityType) error {
	max := v.Cfg.AcademicReplyMaxLen
	if communityType == domain.Chillout {
		max = v.Cfg.ChilloutReplyMaxLen
	}
	n := utf8.RuneCountInString(content)
	if n < v.Cfg.ReplyMinLen {
		return errors.Validation("Reply content is too short")
	}
	if n > max {
		return errors.Validation(fmt.Sprintf("Reply content must be at most %d characters", max))
	}
	return nil
}
