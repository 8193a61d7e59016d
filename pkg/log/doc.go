/*
Package log provides structured logging for bessd using zerolog.

The log package wraps the zerolog library to provide JSON-structured logging
with component-specific child loggers and configurable log levels. All logs
include timestamps and support filtering by severity level for production
debugging.
*/
package log
