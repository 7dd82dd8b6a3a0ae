package service

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/sebastien-blain/SOEN390-team-9/internal/models"
)

// GoodsRepository is the persistence collaborator. "Not found" is a
// normal outcome (nil good, zero affected rows), distinct from an error.
type GoodsRepository interface {
	ListAll(ctx context.Context) ([]models.Good, error)
	FindByID(ctx context.Context, id int) (*models.Good, error)
	ListByType(ctx context.Context, goodType models.GoodType, includeArchived bool) ([]models.Good, error)
	Insert(ctx context.Context, good *models.Good) error
	SetArchived(ctx context.Context, id int, archived bool) (int64, error)
	Update(ctx context.Context, good *models.Good) (int64, error)
}

// GoodsCache caches goods by id. A nil good with a nil error is a miss.
type GoodsCache interface {
	GetGood(ctx context.Context, id int) (*models.Good, error)
	SetGood(ctx context.Context, good *models.Good) error
	InvalidateGood(ctx context.Context, id int) error
}

// EventPublisher is satisfied by *nats.Conn.
type EventPublisher interface {
	Publish(subject string, data []byte) error
}

type GoodService struct {
	repo      GoodsRepository
	cache     GoodsCache
	publisher EventPublisher
	log       *zap.Logger
}

func NewGoodService(repo GoodsRepository, cache GoodsCache, publisher EventPublisher, log *zap.Logger) *GoodService {
	return &GoodService{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		log:       log,
	}
}

func (s *GoodService) GetAllGoods(ctx context.Context) *models.Response {
	goods, err := s.repo.ListAll(ctx)
	if err != nil {
		s.log.Error("failed to list goods", zap.Error(err))
		return models.Fail("failed to fetch goods")
	}

	return models.OK(models.RedactAll(goods))
}

func (s *GoodService) GetSingleGood(ctx context.Context, id int) *models.Response {
	// Cache first, postgres on miss. Cache trouble never fails the read.
	good, err := s.cache.GetGood(ctx, id)
	if err != nil {
		s.log.Error("cache lookup failed", zap.Int("id", id), zap.Error(err))
	}

	if good == nil {
		good, err = s.repo.FindByID(ctx, id)
		if err != nil {
			s.log.Error("failed to fetch good", zap.Int("id", id), zap.Error(err))
			return models.Fail("failed to fetch good")
		}
		if good == nil {
			return models.Fail("good not found")
		}

		if err := s.cache.SetGood(ctx, good); err != nil {
			s.log.Error("failed to cache good", zap.Int("id", id), zap.Error(err))
		}
	}

	return models.OK(good.Redacted())
}

func (s *GoodService) GetGoodsByType(ctx context.Context, goodType models.GoodType, includeArchived bool) *models.Response {
	if _, ok := goodTypes[goodType]; !ok {
		return models.Fail("unknown good type")
	}

	goods, err := s.repo.ListByType(ctx, goodType, includeArchived)
	if err != nil {
		s.log.Error("failed to list goods by type",
			zap.String("type", string(goodType)), zap.Error(err))
		return models.Fail("failed to fetch goods")
	}

	return models.OK(models.RedactAll(goods))
}

// AddSingleGood runs the create pipeline: structural validation, then
// component resolution, then a single insert. The first failing stage
// short-circuits, and every failure echoes the candidate back.
func (s *GoodService) AddSingleGood(ctx context.Context, good *models.Good) *models.Response {
	if !ValidateGood(good) {
		return models.Fail(&models.AddFailure{
			Reason: "invalid good data",
			Good:   good,
		})
	}

	if len(good.Components) > 0 {
		invalid, err := s.resolveComponents(ctx, good.Components)
		if err != nil {
			s.log.Error("failed to resolve components", zap.Error(err))
			return models.Fail(&models.AddFailure{
				Reason: "failed to verify components",
				Good:   good,
			})
		}
		if len(invalid) > 0 {
			return models.Fail(&models.AddFailure{
				Reason:            "unknown components",
				InvalidComponents: invalid,
				Good:              good,
			})
		}
	}

	if err := s.repo.Insert(ctx, good); err != nil {
		s.log.Error("failed to insert good", zap.String("name", good.Name), zap.Error(err))
		return models.Fail(&models.AddFailure{
			Reason: "failed to save good",
			Good:   good,
		})
	}

	if err := s.cache.SetGood(ctx, good); err != nil {
		s.log.Error("failed to cache good", zap.Int("id", good.ID), zap.Error(err))
	}

	s.publishEvent("good.created", good)

	return models.OK(good.Redacted())
}

// AddBulkGoods applies AddSingleGood to every candidate concurrently.
// Results come back in input order and one candidate's failure leaves
// the others untouched.
func (s *GoodService) AddBulkGoods(ctx context.Context, goods []*models.Good) []*models.Response {
	results := make([]*models.Response, len(goods))

	var wg sync.WaitGroup
	for i, good := range goods {
		i, good := i, good
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = s.AddSingleGood(ctx, good)
		}()
	}
	wg.Wait()

	return results
}

func (s *GoodService) ArchiveGood(ctx context.Context, id int, archive bool) *models.Response {
	direction := "archive"
	if !archive {
		direction = "unarchive"
	}

	affected, err := s.repo.SetArchived(ctx, id, archive)
	if err != nil {
		s.log.Error("failed to "+direction+" good", zap.Int("id", id), zap.Error(err))
		return models.Fail("failed to " + direction + " good")
	}
	if affected == 0 {
		return models.Fail("good not found")
	}

	if err := s.cache.InvalidateGood(ctx, id); err != nil {
		s.log.Error("failed to invalidate cached good", zap.Int("id", id), zap.Error(err))
	}

	s.publishEvent("good.archived", &models.Good{ID: id, Archived: archive})

	return models.OK("good " + direction + "d successfully")
}

// ArchiveMultipleGoods archives each entry concurrently and
// independently, preserving input order in the result list.
func (s *GoodService) ArchiveMultipleGoods(ctx context.Context, entries []models.ArchiveRequest) []*models.Response {
	results := make([]*models.Response, len(entries))

	var wg sync.WaitGroup
	for i, entry := range entries {
		i, entry := i, entry
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = s.ArchiveGood(ctx, entry.ID, entry.Archive)
		}()
	}
	wg.Wait()

	return results
}

// UpdateGood overwrites all fields of an existing good. The candidate
// passes the same structural validation as a create; components are not
// re-resolved.
func (s *GoodService) UpdateGood(ctx context.Context, good *models.Good) *models.Response {
	if !ValidateGood(good) {
		return models.Fail(&models.AddFailure{
			Reason: "invalid good data",
			Good:   good,
		})
	}

	affected, err := s.repo.Update(ctx, good)
	if err != nil {
		s.log.Error("failed to update good", zap.Int("id", good.ID), zap.Error(err))
		return models.Fail("failed to update good")
	}
	if affected == 0 {
		return models.Fail("good not found")
	}

	if err := s.cache.InvalidateGood(ctx, good.ID); err != nil {
		s.log.Error("failed to invalidate cached good", zap.Int("id", good.ID), zap.Error(err))
	}

	s.publishEvent("good.updated", good)

	return models.OK(good.Redacted())
}

// publishEvent sends a good event to NATS for the ClickHouse log.
// Publishing is best effort; failures are logged, never surfaced.
func (s *GoodService) publishEvent(subject string, good *models.Good) {
	event := models.NewGoodEvent(good)

	bytes, err := json.Marshal(event)
	if err != nil {
		s.log.Error("failed to marshal event", zap.String("subject", subject), zap.Error(err))
		return
	}

	if err := s.publisher.Publish(subject, bytes); err != nil {
		s.log.Error("failed to publish event", zap.String("subject", subject), zap.Error(err))
	}
}
