// Package scraper provides HTTP fetching for Basketball-Reference season
// stats pages.
//
// The scraper downloads the public season totals page and returns its raw
// HTML for table extraction. Transient failures (network errors, 429
// throttling, 5xx responses) are retried with exponential backoff; other
// client errors abort immediately. Basketball-Reference ships several of its
// tables inside HTML comments for client-side rendering, so comment markers
// are stripped before the page is handed to the parser.
package scraper
