package usecase_matchmake

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Resume reattaches the quorum wait to every ballot left open by a previous
// run and blocks until all of them are settled or ctx is done.
func (c *Coordinator) Resume(ctx context.Context, open BallotOpener) error {
	if c.registry == nil {
		return nil
	}

	pending, err := c.registry.Pending(ctx)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	c.logger.Info("resuming open ballots", "count", len(pending))

	var g errgroup.Group
	for _, b := range pending {
		g.Go(func() error {
			err := c.settle(ctx, b.ReportID, b.MatchMode, open(b.ChannelID))
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("ballot %s: %w", b.ReportID, err)
			}
			return nil
		})
	}
	return g.Wait()
}
