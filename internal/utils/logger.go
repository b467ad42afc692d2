package utils

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

// LogInfo affiche un message d'information en jaune
func LogInfo(format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	color.Yellow("[INFO] %s", message)
}

// LogError affiche un message d'erreur en rouge
func LogError(format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	color.Red("[ERROR] %s", message)
}

// LogRequest affiche les détails d'une requête HTTP en jaune
func LogRequest(method, path, ip string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	color.Yellow("[%s] %s %s from %s", timestamp, method, path, ip)
}
