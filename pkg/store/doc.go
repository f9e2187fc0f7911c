// Package store provides the SQLite-backed analysis history for Callisto.
//
// Every enumeration and validation run can be recorded with its model name,
// feature count, outcome, and duration. The history backs the `callisto
// history` command and is pruned on a cron schedule in serve mode.
//
// # Basic Usage
//
//	st, err := store.Open(cfg.Store)
//	if err != nil {
//	    return err
//	}
//	defer st.Close()
//
//	st.Record(ctx, &store.Record{
//	    Kind:      store.KindEnumeration,
//	    ModelName: model.Name,
//	    Features:  model.FeatureCount(),
//	    Products:  len(result.Products),
//	    Duration:  elapsed,
//	})
//
// Scheduled pruning:
//
//	scheduler := store.NewScheduler(st, cfg.Store)
//	scheduler.Start(ctx)
package store
