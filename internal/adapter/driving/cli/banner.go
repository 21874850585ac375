package cli

import (
	"fmt"

	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com a versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         ______ ____   _____   _____                          _           _
        |  ____|  _ \ / ____| / ____|                        | |         | |
        | |__  | |_) | (___  | (___  _ __   __ _ _ __  ___   | |__   ___ | |_
        |  __| |  _ < \___ \  \___ \| '_ \ / _' | '_ \/ __|  | '_ \ / _ \| __|
        | |____| |_) |____) | ____) | | | | (_| | |_) \__ \  | | | | (_) | |_
        |______|____/|_____/ |_____/|_| |_|\__,_| .__/|___/  |_| |_|\___/ \__|
                                                | |
                                                |_|      Expiry Manager
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))
	fmt.Println(blue(fmt.Sprintf("EBS Snapshot Expiry Manager CLI (v%s)", versionStr)))
}
