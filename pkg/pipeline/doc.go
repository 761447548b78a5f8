// Package pipeline runs the seven extraction stages over a batch of
// exposures once the extraction parameters have been settled interactively.
//
// A Runner is built from an immutable Config and a Stages implementation.
// Run expands the file string (comma-separated names, or an index string such
// as "1-3,7" combined with the configured prefix and suffix), groups the
// exposures into subsets according to the reduction mode (single images for
// "A", pairs for "A-B"), and for every subset calls
//
//	LoadImage → MakeSpatialProfiles → LocateAperturePositions → SelectOrders →
//	TraceApertures → DefineApertureParameters → ExtractApertures
//
// in that order. Progress within a subset is tracked by a progress.Tracker,
// so a stage can never run before its predecessor has succeeded. The first
// stage error aborts the run.
//
// Run refuses to start unless the caller's session tracker shows a completed
// interactive extraction:
//
//	session := progress.New(progress.WithState(progress.Extracted))
//	r, err := pipeline.New(cfg, stages, pipeline.WithStorage(st))
//	if err != nil {
//	    return err
//	}
//	report, err := r.Run(ctx, session, "1-8")
//
// Each run gets a uuid run id, carried in the context for logging and recorded
// in the returned Report. When a store.Storage is configured the report is
// saved as YAML under runs/<run id>.yaml, including for failed runs.
//
// The scientific work itself lives behind the Stages interface. QA settings
// are passed through to the stages untouched.
package pipeline
