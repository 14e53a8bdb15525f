package domain

import (
	"fmt"
	"strings"
	"time"
)

// ContentType enumerates the supported content formats.
type ContentType string

const (
	ContentTypeReels     ContentType = "reels"
	ContentTypeCarrossel ContentType = "carrossel"
	ContentTypeStories   ContentType = "stories"
)

// ContentStatus enumerates the editorial pipeline stages.
type ContentStatus string

const (
	ContentStatusIdeia     ContentStatus = "ideia"
	ContentStatusProducao  ContentStatus = "producao"
	ContentStatusPronto    ContentStatus = "pronto"
	ContentStatusPublicado ContentStatus = "publicado"
)

// ContentStatuses lists every status in pipeline order.
var ContentStatuses = []ContentStatus{
	ContentStatusIdeia,
	ContentStatusProducao,
	ContentStatusPronto,
	ContentStatusPublicado,
}

// ContentTypes lists every content format.
var ContentTypes = []ContentType{
	ContentTypeReels,
	ContentTypeCarrossel,
	ContentTypeStories,
}

// Valid reports whether s is one of the pipeline stages.
func (s ContentStatus) Valid() bool {
	switch s {
	case ContentStatusIdeia, ContentStatusProducao, ContentStatusPronto, ContentStatusPublicado:
		return true
	}
	return false
}

// Next returns the following pipeline stage. Published content stays published.
func (s ContentStatus) Next() ContentStatus {
	for i, status := range ContentStatuses {
		if status == s && i+1 < len(ContentStatuses) {
			return ContentStatuses[i+1]
		}
	}
	return s
}

// Valid reports whether t is a supported format.
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeReels, ContentTypeCarrossel, ContentTypeStories:
		return true
	}
	return false
}

// ParseContentStatus normalises raw input into a ContentStatus.
func ParseContentStatus(raw string) (ContentStatus, error) {
	s := ContentStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// ParseContentType normalises raw input into a ContentType.
func ParseContentType(raw string) (ContentType, error) {
	t := ContentType(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidType, raw)
	}
	return t, nil
}

// ContentItem is one planned piece of marketing content.
type ContentItem struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Type          ContentType   `json:"type"`
	Status        ContentStatus `json:"status"`
	Objective     string        `json:"objective"`
	ScheduledDate time.Time     `json:"date"`
	EventType     string        `json:"eventType"`
	Script        *string       `json:"script,omitempty"`
	Caption       *string       `json:"caption,omitempty"`
	CTA           *string       `json:"cta,omitempty"`
	Hashtags      []string      `json:"hashtags,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// ContentDraft carries the caller-supplied fields of a new item.
type ContentDraft struct {
	Title         string
	Type          ContentType
	Status        ContentStatus
	Objective     string
	ScheduledDate time.Time
	EventType     string
	Script        *string
	Caption       *string
	CTA           *string
	Hashtags      []string
}

// ContentPatch holds the fields to merge into an existing item. Nil fields are
// left untouched. ID and CreatedAt are not patchable.
type ContentPatch struct {
	Title         *string
	Type          *ContentType
	Status        *ContentStatus
	Objective     *string
	ScheduledDate *time.Time
	EventType     *string
	Script        *string
	Caption       *string
	CTA           *string
	Hashtags      *[]string
}

// Apply merges p into item.
func (p ContentPatch) Apply(item *ContentItem) {
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.Type != nil {
		item.Type = *p.Type
	}
	if p.Status != nil {
		item.Status = *p.Status
	}
	if p.Objective != nil {
		item.Objective = *p.Objective
	}
	if p.ScheduledDate != nil {
		item.ScheduledDate = *p.ScheduledDate
	}
	if p.EventType != nil {
		item.EventType = *p.EventType
	}
	if p.Script != nil {
		item.Script = cloneString(p.Script)
	}
	if p.Caption != nil {
		item.Caption = cloneString(p.Caption)
	}
	if p.CTA != nil {
		item.CTA = cloneString(p.CTA)
	}
	if p.Hashtags != nil {
		item.Hashtags = append([]string(nil), (*p.Hashtags)...)
	}
}

// Validate rejects patches that would put an item outside the enumerations.
func (p ContentPatch) Validate() error {
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, *p.Status)
	}
	if p.Type != nil && !p.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, *p.Type)
	}
	return nil
}

// Clone returns a deep copy so callers cannot mutate store-owned state.
func (c ContentItem) Clone() ContentItem {
	out := c
	out.Script = cloneString(c.Script)
	out.Caption = cloneString(c.Caption)
	out.CTA = cloneString(c.CTA)
	if c.Hashtags != nil {
		out.Hashtags = append([]string(nil), c.Hashtags...)
	}
	return out
}

// ScheduledOn reports whether the item is planned for the calendar day of date.
func (c ContentItem) ScheduledOn(date time.Time) bool {
	y1, m1, d1 := c.ScheduledDate.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// ContentStats counts items per status.
type ContentStats struct {
	ByStatus map[ContentStatus]int `json:"byStatus"`
	Total    int                   `json:"total"`
}

// Count returns the number of items in status s.
func (s ContentStats) Count(status ContentStatus) int {
	return s.ByStatus[status]
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
