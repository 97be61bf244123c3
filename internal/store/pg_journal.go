package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/feral-file/ff-dao/internal/store/schema"
)

// AppendJournal appends an audit entry
func (s *pgStore) AppendJournal(ctx context.Context, entry *schema.GovernanceJournal) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}
	return nil
}

// ListJournal retrieves audit entries ordered by cursor
func (s *pgStore) ListJournal(ctx context.Context, filter JournalQueryFilter) ([]*schema.GovernanceJournal, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.GovernanceJournal{})

	// Anchor is a cursor - show records after it (ascending order)
	if filter.Anchor != nil {
		query = query.Where(`"cursor" > ?`, *filter.Anchor)
	}
	if len(filter.SubjectTypes) > 0 {
		query = query.Where("subject_type IN ?", filter.SubjectTypes)
	}
	if len(filter.SubjectIDs) > 0 {
		query = query.Where("subject_id IN ?", filter.SubjectIDs)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count journal entries: %w", err)
	}

	var entries []*schema.GovernanceJournal
	err := query.
		Order(`"cursor" ASC`).
		Limit(normalizeLimit(filter.Limit)).
		Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, uint64(total), nil //nolint:gosec,G115
}
