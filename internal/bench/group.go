package bench

import (
	"context"
	"fmt"
	"runtime/debug"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/algoprim/internal/logger"
)

// safeGroup wraps errgroup.Group so a panicking job surfaces as an error
// instead of taking down the process.
type safeGroup struct {
	group *errgroup.Group
	log   logger.Logger
}

func newSafeGroup(ctx context.Context, log logger.Logger, limit int) (*safeGroup, context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	return &safeGroup{group: g, log: log}, ctx
}

func (sg *safeGroup) Go(fn func() error) {
	sg.group.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				sg.log.Error("job panic recovered",
					logger.WithField("panic", r),
					logger.WithField("stack", string(debug.Stack())))
				err = fmt.Errorf("bench: job panic: %v", r)
			}
		}()

		return fn()
	})
}

func (sg *safeGroup) Wait() error {
	return sg.group.Wait()
}
