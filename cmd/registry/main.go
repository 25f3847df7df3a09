// Package main - точка входа CLI реестра студентов и курсов.
//
// Все данные живут в памяти процесса: каждый запуск начинается с пустого
// реестра, который заполняется демо-сценарием или seed-файлом.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Заполняется при сборке через -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}
