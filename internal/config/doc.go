// Package config loads ogmi.yaml, the optional project configuration.
//
// The file supplies fetch defaults (user_agent, referrer, timeout, validate),
// the retry policy, the snapshot store database_url and extra namespaces
// to register for parsing. OGMI_USER_AGENT, OGMI_TIMEOUT and
// OGMI_DATABASE_URL override the file; command line flags override both.
package config
