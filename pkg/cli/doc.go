/*
Package cli provides command-line interface utilities for Callisto.

The cli package includes output formatters, signal handling, and common CLI
helpers used by the callisto command.

Output Formatting:

The cli package supports text and JSON output for displaying command results:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return err
	}

Types implementing the Texter interface control their own text rendering;
everything else falls back to fmt formatting.

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown
*/
package cli
