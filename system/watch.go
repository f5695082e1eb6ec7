package system

import (
	"context"
	"log"

	"github.com/milk9111/orbitsim/obj"
	"github.com/milk9111/orbitsim/prefabs"
)

// ForwardPrefabChanges turns prefab edits into loop commands until ctx is
// cancelled or both channels close. Only the body catalog reloads live;
// other edits are logged and apply on the next start.
func ForwardPrefabChanges(ctx context.Context, changes <-chan prefabs.Change, errs <-chan error, queue *obj.CommandQueue) {
	for changes != nil || errs != nil {
		select {
		case <-ctx.Done():
			return
		case c, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			if c.Kind == prefabs.ChangeCatalog {
				queue.PushType(obj.CmdReloadCatalog)
				continue
			}
			log.Printf("prefabs: %s %s changed, restart to apply", c.Kind, c.Path)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			log.Printf("prefabs: watch: %v", err)
		}
	}
}
