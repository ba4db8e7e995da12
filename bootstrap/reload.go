package bootstrap

import (
	"context"

	"go.uber.org/zap"
)

// ReloadMaterial rebuilds the cube material from the same source. On success
// a new Ready PendingMaterial replaces sc.Pending and the material goes onto
// the cube in the same loop task, inserting the cube if an earlier load had
// failed. A failed rebuild is logged and changes nothing: the current
// material and PendingMaterial stay.
//
// ReloadMaterial blocks until the rebuild finishes and may be called from
// any goroutine. Calls on one SceneContext should not overlap.
func (sc *SceneContext) ReloadMaterial(ctx context.Context) error {
	sc.reloads.Add(1)
	defer sc.reloads.Done()

	p := sc.newPending()
	mat, err := sc.material.Material(ctx)
	if err != nil {
		p.fail(err)
		sc.log.Error("cube material reload failed; keeping previous material", zap.Error(err))
		return err
	}
	p.resolve(mat)
	sc.Post(func() {
		sc.Pending = p
		sc.commitMaterial(mat)
	})
	return nil
}

// Watcher reports changes to the material's source files.
type Watcher interface {
	Run(ctx context.Context, onChange func()) error
}

// WatchMaterial reloads the cube material whenever w reports a change. It
// blocks until ctx is done.
func (sc *SceneContext) WatchMaterial(ctx context.Context, w Watcher) error {
	sc.log.Info("watching material sources")
	return w.Run(ctx, func() {
		if err := sc.ReloadMaterial(ctx); err == nil {
			sc.log.Info("cube material reloaded")
		}
	})
}
