package version

import (
	"runtime/debug"
	"strings"
)

// Valores padrão (sobrescritos por ldflags ou por build info)
var Version = "0.0.0-dev"
var Commit = ""
var BuildTime = ""

// populateFromBuildInfo tenta preencher Version/Commit usando as informações
// embedadas pelo Go. Se ldflags já definiu uma versão confiável, não
// sobrescrevemos.
func populateFromBuildInfo() {
	if Version != "" && Version != "0.0.0-dev" {
		return
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return
	}

	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		Version = strings.TrimPrefix(bi.Main.Version, "v")
	}

	for _, setting := range bi.Settings {
		if setting.Key == "vcs.revision" && Commit == "" {
			Commit = setting.Value
		}
	}
}

// FormatVersion retorna a versão formatada para exibição, incluindo o commit
// curto quando disponível.
func FormatVersion() string {
	populateFromBuildInfo()

	formatted := Version
	if Commit != "" {
		short := Commit
		if len(short) > 7 {
			short = short[:7]
		}
		formatted += " (" + short + ")"
	}
	return formatted
}
