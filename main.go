// Package main provides the entry point for the photo comparator.
package main

import (
	"photo-compare/internal/app"
	"photo-compare/internal/config"
	"photo-compare/internal/logging"
	"photo-compare/internal/review"
	"photo-compare/internal/version"
	"photo-compare/ui/mainwindow"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"
)

const appID = "org.photocompare.review"

func main() {
	log := logging.New()

	cfg, err := config.Resolve()
	if err != nil {
		log.WithError(err).Fatal("failed to resolve base directory")
	}
	log.WithFields(logrus.Fields{
		"version": version.Version,
		"base":    cfg.BaseDir,
	}).Info("starting")

	collection, err := review.Load(cfg.InputPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load review input")
	}

	fyneApp := fyneapp.NewWithID(appID)
	fyneApp.Settings().SetTheme(&app.ReviewTheme{})

	session := app.NewSession(collection, cfg.OutputPath, log)
	win := mainwindow.New(fyneApp, cfg, session, log)
	win.Start()

	win.ShowAndRun()
}
