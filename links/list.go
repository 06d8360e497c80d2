package links

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"goshortlink/models"
)

// Summary is a link together with its click count, for the owner's listing.
type Summary struct {
	Link       models.Link
	ClickCount int
}

// List returns the owner's links, newest first.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]Summary, error) {
	owned, err := s.db.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	summaries := make([]Summary, 0, len(owned))
	for i := range owned {
		summaries = append(summaries, Summary{
			Link:       owned[i],
			ClickCount: len(owned[i].Clicks),
		})
	}
	return summaries, nil
}
