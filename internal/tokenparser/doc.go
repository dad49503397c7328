// Package tokenparser groups the token mini-language engine and its host adapters.
//
// Date tokens such as [TODAY+1MONTH], [END-FEBRUARY-2024] and
// [START-MARCH-2025<->END-MARCH-2025] evaluate to UTC midnight dates.
// Dynamic string tokens such as [ALPHA-NUMERIC-10-LINES-2] evaluate to generated
// strings, one line per LINES count joined by CRLF.
//
// The domain package holds the tables and value types, service holds the
// parsers, usecase adapts them for the HTTP handlers in http and the CLI.
package tokenparser
