package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

const (
	// DefaultFeedPageSize is used when the client does not ask for a size.
	DefaultFeedPageSize = 10
	// MaxFeedPageSize caps how many posts a single feed page may carry.
	MaxFeedPageSize = 100
)

// FeedService composes a viewer's home feed: posts written by the users
// they follow, minus authors they have hidden or blocked, newest first.
type FeedService struct {
	db *gorm.DB
}

func NewFeedService(db *gorm.DB) *FeedService {
	return &FeedService{db: db}
}

// GetFeed returns one 1-indexed page of the viewer's feed. The follow set,
// the suppression set and the post page are all read inside a single
// transaction so a concurrent follow or block cannot tear the snapshot.
func (s *FeedService) GetFeed(ctx context.Context, viewerID uint, page, pageSize int) (*models.FeedPage, error) {
	span, ctx := observability.NewSpan(ctx, "feed.compose")
	defer span.End()
	span.AddAttributes(
		attribute.Int64("feed.viewer_id", int64(viewerID)),
		attribute.Int("feed.page", page),
		attribute.Int("feed.page_size", pageSize),
	)

	if page < 1 {
		return nil, models.NewValidationError("page must be at least 1")
	}
	if pageSize < 1 {
		return nil, models.NewValidationError("page_size must be at least 1")
	}
	if pageSize > MaxFeedPageSize {
		pageSize = MaxFeedPageSize
	}

	result := &models.FeedPage{
		Posts:       []*models.Post{},
		Page:        page,
		PageSize:    pageSize,
		HasPrevious: page > 1,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		followRepo := repository.NewFollowRepository(tx)
		actionRepo := repository.NewActionRepository(tx)
		postRepo := repository.NewPostRepository(tx)

		following, err := followRepo.FollowingIDs(ctx, viewerID)
		if err != nil {
			return err
		}
		if len(following) == 0 {
			return nil
		}

		suppressed, err := actionRepo.TargetIDs(ctx, viewerID, models.ActionHide, models.ActionBlock)
		if err != nil {
			return err
		}

		eligible := subtractIDs(following, suppressed)
		if len(eligible) == 0 {
			return nil
		}

		total, err := postRepo.CountByAuthorIDs(ctx, eligible)
		if err != nil {
			return err
		}
		result.TotalCount = total

		posts, err := postRepo.ListByAuthorIDs(ctx, eligible, pageSize, (page-1)*pageSize)
		if err != nil {
			return err
		}
		result.Posts = posts
		return nil
	})
	if err != nil {
		span.SetError(err)
		return nil, models.NewInternalError(err)
	}

	result.HasNext = int64(page*pageSize) < result.TotalCount
	span.AddAttributes(attribute.Int64("feed.total_count", result.TotalCount))
	return result, nil
}

// subtractIDs returns the members of ids that are not in remove, keeping order.
func subtractIDs(ids, remove []uint) []uint {
	if len(remove) == 0 {
		return ids
	}
	removeSet := make(map[uint]struct{}, len(remove))
	for _, id := range remove {
		removeSet[id] = struct{}{}
	}
	out := ids[:0:0]
	for _, id := range ids {
		if _, drop := removeSet[id]; !drop {
			out = append(out, id)
		}
	}
	return out
}
