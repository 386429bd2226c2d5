package main

import (
	"fmt"

	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"github.com/audreyapp/audrey/internal/engine"
	"github.com/audreyapp/audrey/internal/platform"
	"github.com/audreyapp/audrey/internal/playback"
	"github.com/audreyapp/audrey/internal/progress"
	"github.com/audreyapp/audrey/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.audreyapp.audrey"
	AppName = "Audrey"

	ProgressDBName = "progress.db"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.WithField("version", version).Infof("%s starting", AppName)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply comfort theme
	myApp.Settings().SetTheme(ui.NewComfortTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)

	// Initialize services
	eng, err := engine.NewMPVEngine()
	if err != nil {
		logrus.WithError(err).Fatal("media engine initialization failed")
	}
	session := playback.NewSession(eng)

	dbPath, err := platform.GetDataFilePath(ProgressDBName)
	if err != nil {
		logrus.WithError(err).Fatal("resolving progress database path failed")
	}
	store, err := progress.Open(dbPath)
	if err != nil {
		logrus.WithError(err).Fatal("opening progress database failed")
	}

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, session, store)

	myWindow.SetOnClosed(func() {
		rootUI.Shutdown()
		eng.Close()
		if err := store.Close(); err != nil {
			logrus.WithError(err).Warn("closing progress database failed")
		}
	})

	// Show and run
	myWindow.ShowAndRun()
}
