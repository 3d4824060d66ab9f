package app

import (
	"context"
	"log"
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/joho/godotenv"

	"searchlens/analyzer/evaldata"
)

// Run loads configuration, kicks off the dataset fetch, and starts the
// desktop UI.
func Run() error {
	_ = godotenv.Load()
	cfg, err := loadConfig(os.Getenv(envConfigPath))
	if err != nil {
		return err
	}

	a := fyneapp.NewWithID(fyneAppID)
	w := a.NewWindow(appTitle)
	w.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))

	startLoad(w, cfg)
	w.ShowAndRun()
	return nil
}

// startLoad shows the loading indicator and fetches the dataset off the UI
// thread. The whole window is either the loading view, the error view with
// its retry button, or the main content; no partial state is ever shown.
func startLoad(w fyne.Window, cfg Config) {
	w.SetContent(loadingView(cfg.DataSource))
	go func() {
		ds, err := evaldata.Load(context.Background(), cfg.DataSource)
		fyne.Do(func() {
			if err != nil {
				log.Printf("dataset load failed: %v", err)
				w.SetContent(loadErrorView(w, cfg, err))
				return
			}
			log.Printf("loaded %d queries from %s", ds.Len(), cfg.DataSource)
			u := buildUI(w, NewState(ds), cfg)
			w.SetContent(u.content)
		})
	}()
}

func loadingView(source string) fyne.CanvasObject {
	msg := widget.NewLabel("Loading evaluation data from " + source + "...")
	msg.Alignment = fyne.TextAlignCenter
	return container.NewCenter(container.NewVBox(widget.NewProgressBarInfinite(), msg))
}

func loadErrorView(w fyne.Window, cfg Config, err error) fyne.CanvasObject {
	title := widget.NewLabelWithStyle("Error loading data!", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	details := widget.NewLabel("Details: " + err.Error())
	details.Wrapping = fyne.TextWrapWord
	details.Alignment = fyne.TextAlignCenter
	hint := dimLabel("Check that the data source is reachable and contains the query scores JSON, then retry. The source can be overridden with " + envDataSource + " or config.yaml.")
	hint.Alignment = fyne.TextAlignCenter
	retry := widget.NewButton("Retry", func() { startLoad(w, cfg) })

	return container.NewCenter(container.NewVBox(
		title,
		details,
		hint,
		container.NewCenter(retry),
	))
}
