// Package config defines the dispatcher configuration and its loading
// rules.
//
// Two candidate file locations exist: a system-wide one under PROGRAMDATA
// and a per-user one under APPDATA. Exactly one is active per invocation.
// The system file wins unless it sets allow_user_config = true, which
// delegates to the user file. When neither exists the built-in association
// table applies, and when the active file is unreadable or invalid the
// dispatcher degrades to a minimal prompt-only fallback rather than
// failing.
//
// All configuration-derived values are immutable after Load returns and are
// safe for concurrent reads.
package config
