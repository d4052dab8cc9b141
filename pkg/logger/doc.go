// Package logger builds *slog.Logger instances for the client packages.
//
// New assembles a text or JSON slog handler from functional options and wraps
// it in LogHandlerDecorator, which runs registered ContextExtractor callbacks
// on every record. The request pipeline relies on this to stamp each log line
// with the outgoing request id:
//
//	log := logger.New(
//		logger.WithDevelopment("vod-client"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// Attribute helpers (Error, Component, Group) keep key names consistent.
package logger
