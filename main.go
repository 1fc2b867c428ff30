package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/ytbuddy/internal/download"
	"github.com/ytget/ytbuddy/internal/extract"
	"github.com/ytget/ytbuddy/internal/fetch"
	"github.com/ytget/ytbuddy/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.ytbuddy"
	AppName = "Ytube Buddy"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	extractor := extract.NewYTDLP()
	fetchSvc := fetch.NewService(extractor)
	downloadSvc := download.NewService(extractor)

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, fetchSvc, downloadSvc)
	myWindow.SetOnClosed(rootUI.Dispose)

	// Show and run
	myWindow.ShowAndRun()
}
