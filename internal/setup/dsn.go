package setup

import "net/url"

// redactDSN masks the password of a DSN before it reaches a log line or an
// error message.
func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return "<invalid dsn>"
	}

	return u.Redacted()
}
