// Package logging configures structured logging for Callisto on top of
// log/slog.
//
// # Basic Usage
//
//	logger, err := logging.New(cfg.Telemetry.Logging, os.Stderr)
//	if err != nil {
//	    return err
//	}
//	slog.SetDefault(logger)
//
//	logger.Info("model parsed", "features", model.FeatureCount())
//
// Components derive scoped loggers with With:
//
//	log := logger.With("component", "fm.analysis")
package logging
