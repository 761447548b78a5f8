// Package progress tracks which extraction stages have completed for an
// exposure subset or an interactive session.
//
// A Tracker is a small guarded state machine over the fixed stage order:
//
//	pending → loaded → profiled → located → selected → traced → defined → extracted
//
// Each stage has an Event. Firing an event is allowed once the previous stage
// has completed, so stages may be re-run (which rewinds progress to that
// stage) but never skipped. Out-of-order events fail with
// *ErrNoTransitionAvailable; events blocked by a guard fail with
// *ErrTransitionRejected.
//
// # Usage
//
//	t := progress.New(progress.WithAction(func(ctx context.Context, from, to progress.State, ev progress.Event) error {
//	    log.InfoContext(ctx, "stage complete", "stage", ev)
//	    return nil
//	}))
//	if err := t.Fire(ctx, progress.EventLoad); err != nil {
//	    return err
//	}
//
// Trackers are safe for concurrent use.
package progress
