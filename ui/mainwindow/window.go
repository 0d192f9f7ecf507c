// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"

	"photo-compare/internal/app"
	"photo-compare/internal/config"
	"photo-compare/internal/review"
	"photo-compare/internal/version"
	"photo-compare/ui/photoview"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
)

// MainWindow is the review window. The case label and buttons are created
// once; only the photo area changes between pairs.
type MainWindow struct {
	fyne.Window
	app     fyne.App
	cfg     config.Config
	session *app.Session
	log     logrus.FieldLogger

	view      *photoview.View
	caseLabel *widget.Label
	statusBar *widget.Label

	correctBtn *widget.Button
	wrongBtn   *widget.Button
	backBtn    *widget.Button
	nextBtn    *widget.Button

	onFatal func(error)
}

// New creates the main window for a session.
func New(fyneApp fyne.App, cfg config.Config, session *app.Session, log logrus.FieldLogger) *MainWindow {
	win := fyneApp.NewWindow(cfg.Title)

	mw := &MainWindow{
		Window:  win,
		app:     fyneApp,
		cfg:     cfg,
		session: session,
		log:     log,
	}
	mw.onFatal = mw.exitOnError

	mw.Resize(fyne.NewSize(cfg.FallbackScreen.Width, cfg.FallbackScreen.Height))
	mw.setupUI()
	mw.setupMenus()
	mw.setupShortcuts()
	mw.setupEventHandlers()

	return mw
}

// OnFatal replaces the handler for save failures. The default logs and exits.
func (mw *MainWindow) OnFatal(handler func(error)) {
	mw.onFatal = handler
}

// Start shows the first pair.
func (mw *MainWindow) Start() {
	mw.run(mw.session.Start())
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.view = photoview.New(mw.cfg.BaseDir, mw.surfaceSize, mw.log)

	mw.caseLabel = widget.NewLabel("Case")
	mw.caseLabel.TextStyle = fyne.TextStyle{Bold: true}
	mw.statusBar = widget.NewLabel("")

	mw.correctBtn = widget.NewButton("Correct", mw.onCorrect)
	mw.correctBtn.Importance = widget.SuccessImportance
	mw.wrongBtn = widget.NewButton("Wrong", mw.onWrong)
	mw.wrongBtn.Importance = widget.DangerImportance
	mw.backBtn = widget.NewButton("Go Back", mw.onBack)
	mw.nextBtn = widget.NewButton("Next", mw.onNext)

	buttons := container.NewHBox(mw.correctBtn, mw.wrongBtn, mw.backBtn, mw.nextBtn)

	content := container.NewBorder(
		container.NewCenter(mw.caseLabel),                             // top
		container.NewVBox(container.NewCenter(buttons), mw.statusBar), // bottom
		nil,                 // left
		nil,                 // right
		mw.view.Container(), // center
	)

	mw.SetContent(content)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	reviewMenu := fyne.NewMenu("Review",
		fyne.NewMenuItem("Correct", mw.onCorrect),
		fyne.NewMenuItem("Wrong", mw.onWrong),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Go Back", mw.onBack),
		fyne.NewMenuItem("Next", mw.onNext),
	)
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)
	mw.SetMainMenu(fyne.NewMainMenu(reviewMenu, helpMenu))
}

// setupShortcuts binds single keys to the four actions.
func (mw *MainWindow) setupShortcuts() {
	mw.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyC:
			mw.onCorrect()
		case fyne.KeyW:
			mw.onWrong()
		case fyne.KeyLeft, fyne.KeyBackspace:
			mw.onBack()
		case fyne.KeyRight, fyne.KeySpace:
			mw.onNext()
		}
	})
}

// setupEventHandlers registers for session events.
func (mw *MainWindow) setupEventHandlers() {
	mw.session.On(app.EventPairChanged, func(data interface{}) {
		pair, ok := data.(review.Pair)
		if !ok {
			return
		}
		mw.caseLabel.SetText("Case: " + pair.CaseID())
		mw.view.Render(pair)
		mw.updateStatus()
	})

	mw.session.On(app.EventComplete, func(data interface{}) {
		mw.view.ShowMessage(app.CompleteMessage)
		mw.updateStatus()
	})
}

// surfaceSize reports the display size photos are scaled against.
func (mw *MainWindow) surfaceSize() fyne.Size {
	size := mw.Canvas().Size()
	if size.Width < 1 || size.Height < 1 {
		return fyne.NewSize(mw.cfg.FallbackScreen.Width, mw.cfg.FallbackScreen.Height)
	}
	return size
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus() {
	p := mw.session.Progress()
	var text string
	if mw.session.Phase() == app.PhaseComplete {
		text = fmt.Sprintf("Reviewed %d pairs", p.Total)
	} else {
		text = fmt.Sprintf("Pair %d of %d", p.Index+1, p.Total)
	}
	text += fmt.Sprintf("  |  Correct: %d  Wrong: %d", p.Correct, p.Wrong)
	if d, ok := mw.view.Distance(); ok && mw.session.Phase() == app.PhaseReviewing {
		text += fmt.Sprintf("  |  Photo distance: %d", d)
	}
	mw.statusBar.SetText(text)
}

// run hands a session error to the fatal handler.
func (mw *MainWindow) run(err error) {
	if err != nil {
		mw.onFatal(err)
	}
}

func (mw *MainWindow) exitOnError(err error) {
	mw.log.WithError(err).Fatal("review session failed")
}

// Action handlers

func (mw *MainWindow) onCorrect() {
	mw.run(mw.session.MarkCorrect())
}

func (mw *MainWindow) onWrong() {
	mw.run(mw.session.MarkWrong())
}

func (mw *MainWindow) onBack() {
	mw.session.Back()
}

func (mw *MainWindow) onNext() {
	mw.run(mw.session.Next())
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About",
		fmt.Sprintf("%s\n\n"+
			"Input: %s\n"+
			"Output: %s\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			mw.cfg.Title, mw.cfg.InputPath, mw.cfg.OutputPath,
			version.BuildTime, version.GitCommit),
		mw.Window)
}
