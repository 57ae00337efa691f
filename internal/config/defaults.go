package config

const (
	defaultLogDir       = "~/.local/share/axwarm/logs"
	defaultLockFile     = "~/.local/share/axwarm/axwarm.lock"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultPacingMillis = 100
	defaultDelaySeconds = 0
)

// defaultFragments names applications known to expose their accessibility
// tree lazily. Matching is by case-insensitive substring against display
// names.
var defaultFragments = []string{
	"claude",
	"chatgpt",
	"slack",
	"discord",
	"notion",
	"cursor",
	"visual studio code",
	"spotify",
	"whatsapp",
	"telegram",
	"figma",
	"obsidian",
	"typora",
	"mark text",
}

// defaultHelperMarkers flags background subprocesses that share a main
// application's name. These have no independently useful accessibility
// surface and are set aside instead of warmed.
var defaultHelperMarkers = []string{
	"helper",
	"renderer",
	"gpu",
	"networking",
	"crashpad",
	"plugin",
	"broker",
	"web content",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Targets: Targets{
			DefaultFragments: append([]string(nil), defaultFragments...),
			HelperMarkers:    append([]string(nil), defaultHelperMarkers...),
		},
		Warmup: Warmup{
			DelaySeconds: defaultDelaySeconds,
			PacingMillis: defaultPacingMillis,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Paths: Paths{
			LogDir:   defaultLogDir,
			LockFile: defaultLockFile,
		},
	}
}
