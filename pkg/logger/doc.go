// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// New creates a *slog.Logger configured by Option functions. These options
// allow you to:
//
//   • Select an output format (text or json)
//   • Set the minimum log level, by value or by name
//   • Supply default slog.Attr values applied to every record
//   • Register ContextExtractor callbacks that inject attributes pulled from a
//     context value (for example a run id) every time Handle is invoked.
//
// Records go to stderr unless WithOutput says otherwise, so a command can
// print its result on stdout.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the
// configured Format and, when extractors are registered, wraps it in a
// handler that runs each ContextExtractor before delegating.
//
// Helper constructors such as Component, Path, ModuleCount and Region live
// in attr.go and keep attribute naming consistent across packages.
//
// # Usage
//
//	import "github.com/dmitrymomot/vcardqr/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithEnvironment(os.Getenv("APP_ENV"), "vcardqr"),
//	        logger.WithLevelName(os.Getenv("LOG_LEVEL")),
//	        logger.WithContextValue("run_id", runIDKey{}),
//	    )
//	    logger.SetAsDefault(log)
//
//	    log.InfoContext(ctx, "qr stored",
//	        logger.Path("contact_qr_final.png"),
//	        logger.ModuleCount(33),
//	    )
//	}
//
// # Configuration
//
//   • WithDevelopment / WithStaging / WithProduction – sensible defaults per environment.
//   • WithEnvironment – choose one of the above by name.
//   • WithFormat / WithTextFormatter / WithJSONFormatter – override output format.
//   • WithLevel / WithLevelName – set a custom slog.Level.
//   • WithAttr – attach static attributes.
//   • WithContextExtractors / WithContextValue – inject attributes from context.
//
// # Error Handling
//
// Error produces an attribute only when the supplied error is non-nil:
//
//	log.Info("operation finished", logger.Error(err))
package logger
