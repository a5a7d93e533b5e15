// Package timezone keeps all formatting and parsing in a single application
// timezone, configured through APP_TIMEZONE with an IANA name such as "UTC"
// or "Asia/Jakarta". The location is resolved once at import time; an empty
// or invalid setting falls back to UTC.
//
// All departure, arrival and audit timestamps pass through this package on
// the way in and out, so clients always see a consistent offset regardless
// of the server's local clock.
package timezone
