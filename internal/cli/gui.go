package cli

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/vegascon/internal/config"
	"github.com/ytget/vegascon/internal/convert"
	"github.com/ytget/vegascon/internal/platform"
	"github.com/ytget/vegascon/internal/ui"
)

const (
	AppID   = "com.ytget.vegascon"
	AppName = "VegasCon"

	WindowWidth  = 420
	WindowHeight = 360
)

// runGUI opens the conversion window and blocks until it is closed
func runGUI(opts config.Options) error {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewLightBlueTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	if opts.Language != "" {
		settings.SetLanguage(opts.Language)
	}

	executable := platform.ResolveConverter(opts.ConverterPath(settings))
	converter := convert.NewService(executable, opts.Timeout)

	ui.NewRootUI(myWindow, myApp, settings, converter, opts)

	myWindow.ShowAndRun()
	return nil
}
