package config

import "net/url"

const redacted = "[redacted]"

// Redacted returns a copy of c that is safe to log: the token signing key
// and the Redis password are masked, and so is the password part of a URL
// DSN. DSNs that are not URLs are masked whole.
func (c StructuredConfig) Redacted() StructuredConfig {
	if c.App.TokenSignKey != "" {
		c.App.TokenSignKey = redacted
	}
	if c.Storage.Cache.RedisPassword != "" {
		c.Storage.Cache.RedisPassword = redacted
	}
	c.Storage.DB.DSN = redactDSN(c.Storage.DB.DSN)
	return c
}

func redactDSN(dsn string) string {
	if dsn == "" {
		return ""
	}

	u, err := url.Parse(dsn)
	if err != nil || u.Scheme == "" || u.Opaque != "" {
		return redacted
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), redacted)
	}
	return u.String()
}
