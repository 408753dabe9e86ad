// Package bulletin fetches the PATH alert bulletin.
//
// The PATH app content API answers with a JSON envelope whose Content field
// holds the bulletin HTML:
//
//	{"Content": "<div class=\"station\">...</div>", ...}
//
// Client retries transient failures (network errors, HTTP 429 and 5xx) with
// exponential backoff and spaces requests with a rate limiter. Other HTTP
// statuses fail immediately with a *StatusError.
package bulletin
