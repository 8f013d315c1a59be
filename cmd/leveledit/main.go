package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"leveledit/internal/config"
	"leveledit/internal/game"
)

func main() {
	if execPath, err := os.Executable(); err == nil {
		if err := chdirToExecutable(execPath); err != nil {
			log.Printf("chdir: %v", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := game.New(cfg).Run(); err != nil {
		log.Fatalf("leveledit: %v", err)
	}
}

// chdirToExecutable moves into the directory holding the binary so deployed
// builds find their assets. Binaries built by "go run" live in a temp
// directory and are left alone.
func chdirToExecutable(execPath string) error {
	execDir := filepath.Dir(execPath)
	if strings.Contains(execDir, "go-build") {
		return nil
	}
	return os.Chdir(execDir)
}
