// Package config resolves the daemon endpoint and API key for one invocation.
//
// Preferences live in a two-field TOML file under the user configuration
// directory and always lose to explicit overrides: the --host flag and the
// SYNCCTL_HOST/SYNCCTL_API_KEY environment variables (a .env file is honored
// when present). When no key is configured anywhere, the daemon's own
// config.xml is scraped for its gui apikey element as a last resort, and
// failure to find one reports the exact path that was searched.
//
// Obtain credentials through ResolveHost and ResolveAPIKey so every command
// applies the same precedence and URL normalization.
package config
