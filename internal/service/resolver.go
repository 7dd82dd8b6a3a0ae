package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/sebastien-blain/SOEN390-team-9/internal/models"
)

// resolveComponents checks that every distinct referenced id exists in
// the repository, one concurrent lookup per id, and returns the ids
// that did not resolve. All lookups complete before the result is
// built; a repository error fails the whole resolution.
//
// Known limitation: the check accepts any persisted good, archived
// included, and performs no self-reference or cycle detection across
// multi-level compositions.
func (s *GoodService) resolveComponents(ctx context.Context, refs []models.ComponentRef) ([]int, error) {
	ids := make([]int, 0, len(refs))
	seen := make(map[int]struct{}, len(refs))
	for _, ref := range refs {
		if _, ok := seen[ref.ID]; ok {
			continue
		}
		seen[ref.ID] = struct{}{}
		ids = append(ids, ref.ID)
	}

	missing := make([]bool, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			good, err := s.repo.FindByID(ctx, id)
			if err != nil {
				return err
			}
			if good == nil {
				missing[i] = true
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var invalid []int
	for i, id := range ids {
		if missing[i] {
			invalid = append(invalid, id)
		}
	}

	return invalid, nil
}
