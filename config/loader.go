package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"

	"github.com/pelletier/go-toml/v2"

	"github.com/winbang/winbang/logutil"
)

// configFileName is the file looked up at each candidate location.
const configFileName = "config.toml"

// Source identifies where the effective configuration came from.
type Source int

const (
	// SourceBuiltIn means no configuration file existed.
	SourceBuiltIn Source = iota
	// SourceSystem means the system-wide file (PROGRAMDATA) was used.
	SourceSystem
	// SourceUser means the per-user file (APPDATA) was used.
	SourceUser
)

// String returns a human-readable source name.
func (s Source) String() string {
	switch s {
	case SourceSystem:
		return "system"
	case SourceUser:
		return "user"
	default:
		return "built-in"
	}
}

// Loaded is the result of configuration loading. Err records a read or
// parse failure that forced the minimal fallback; loading itself never
// fails hard.
type Loaded struct {
	Config *Config
	Path   string
	Source Source
	Err    error
}

// SystemPath returns the system-wide candidate configuration path.
func SystemPath() string {
	if runtime.GOOS == "windows" {
		if pd := os.Getenv("PROGRAMDATA"); pd != "" {
			return filepath.Join(pd, "Winbang", configFileName)
		}
		return ""
	}
	// Non-Windows hosts (development, CI) use the conventional system dir.
	return filepath.Join("/etc", "winbang", configFileName)
}

// UserPath returns the per-user candidate configuration path.
func UserPath() string {
	if runtime.GOOS == "windows" {
		if ad := os.Getenv("APPDATA"); ad != "" {
			return filepath.Join(ad, "Winbang", configFileName)
		}
		return ""
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "winbang", configFileName)
}

// Locate picks the active configuration file. The system location wins
// unless it explicitly sets allow_user_config, which delegates to the user
// location when a user file exists.
func Locate() (string, Source) {
	system := SystemPath()
	user := UserPath()

	systemExists := fileExists(system)
	userExists := fileExists(user)

	switch {
	case systemExists && userExists:
		if systemAllowsUserConfig(system) {
			return user, SourceUser
		}
		return system, SourceSystem
	case systemExists:
		return system, SourceSystem
	case userExists:
		return user, SourceUser
	default:
		return "", SourceBuiltIn
	}
}

// Load locates and decodes the active configuration. A missing file yields
// the built-in defaults; an unreadable or invalid file yields the minimal
// fallback with Err set.
func Load() Loaded {
	log := logutil.NewLogger("config")

	path, source := Locate()
	if source == SourceBuiltIn {
		log.Debug("no configuration file found, using built-in defaults")
		return Loaded{Config: BuiltIn(), Source: SourceBuiltIn}
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		log.Warn("configuration unusable, falling back to defaults", "path", path, "error", err)
		return Loaded{Config: Fallback(), Path: path, Source: source, Err: err}
	}

	log.Debug("configuration loaded", "path", path, "source", source.String())
	return Loaded{Config: cfg, Path: path, Source: source}
}

// LoadFrom reads and decodes a single configuration file.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.normalize()
	return &cfg, nil
}

// systemAllowsUserConfig peeks at the system file's allow_user_config key.
// Any failure counts as "not allowed"; the system file stays authoritative.
func systemAllowsUserConfig(systemPath string) bool {
	data, err := os.ReadFile(systemPath)
	if err != nil {
		return false
	}
	var probe struct {
		AllowUserConfig bool `toml:"allow_user_config"`
	}
	if err := toml.Unmarshal(data, &probe); err != nil {
		return false
	}
	return probe.AllowUserConfig
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// windowsVarPattern matches %VAR% style environment references.
var windowsVarPattern = regexp.MustCompile(`%([A-Za-z_][A-Za-z0-9_]*)%`)

// ExpandEnv expands both $VAR/${VAR} and %VAR% environment references in a
// configured runtime path. Unset variables expand to the empty string.
func ExpandEnv(s string) string {
	if s == "" {
		return s
	}
	s = windowsVarPattern.ReplaceAllStringFunc(s, func(m string) string {
		return os.Getenv(m[1 : len(m)-1])
	})
	return os.ExpandEnv(s)
}
