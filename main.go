package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/eyzaun/safebooks-icon/internal/config"
	"github.com/eyzaun/safebooks-icon/internal/emitter"
)

const (
	AppName    = "SafeBooks Icon"
	AppVersion = "1.0.0"
)

// Application holds all application dependencies
type Application struct {
	config  *config.Config
	emitter *emitter.Emitter
	stderr  io.Writer
}

func main() {
	// Set up logging; stdout is reserved for the advisory text
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(os.Stderr)

	app := initializeApplication(os.Stderr)
	app.run(os.Stdout)
}

// initializeApplication initializes all application dependencies
func initializeApplication(stderr io.Writer) *Application {
	cfg, err := config.Load()
	if err != nil {
		// The configuration is compiled in, so this is a build defect
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}

	return &Application{
		config:  cfg,
		emitter: emitter.New(cfg),
		stderr:  stderr,
	}
}

// run emits the icon and its hints. A broken stdout is reported but never
// changes the exit status.
func (app *Application) run(stdout io.Writer) {
	if err := app.emitter.Run(stdout); err != nil {
		color.New(color.FgRed).Fprintf(app.stderr, "%s v%s: %v\n", AppName, AppVersion, err)
		log.Printf("emit failed: %v", err)
	}
}
