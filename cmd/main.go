package main

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"brewtimer/internal/core/countdown"
	"brewtimer/internal/core/timefmt"
	"brewtimer/internal/platform"
	"brewtimer/internal/sound"
	"brewtimer/internal/storage"
	"brewtimer/internal/ui/preferences"
	"brewtimer/internal/ui/screen"
	"brewtimer/internal/ui/tray"
	"brewtimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "BrewTimer"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("settings: %v", err)
	}

	fyneApp := app.NewWithID("com.brewtimer.app")
	fyneApp.SetIcon(resources.MustIcon("kettle.svg"))

	engine := countdown.New(settings.CountdownConfig(), countdown.Options{})
	engine.SetTotal(settings.InitialTotal())

	var lastTotal atomic.Int64
	lastTotal.Store(int64(settings.LastTotal))

	history, err := storage.OpenHistory(context.Background(), appName)
	if err != nil {
		log.Printf("history: %v", err)
	}

	chime := newChime(settings)

	mainWindow := screen.New(fyneApp, engine, settings.TickInterval)
	guard.SetOnActivate(func() {
		fyne.Do(mainWindow.Show)
	})

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		engine.UpdateConfig(settings.CountdownConfig())
		if chime == nil && settings.ChimeEnabled {
			chime = newChime(settings)
		}
		if chime != nil {
			chime.SetVolume(settings.ChimeVolume)
		}
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("settings: %v", err)
		}
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Icons{
			Active: resources.MustIcon("kettle.svg"),
			Paused: resources.MustIcon("kettle_paused.svg"),
		}, tray.Callbacks{
			OnShow:        mainWindow.Show,
			OnStart:       engine.Start,
			OnTogglePause: engine.Toggle,
			OnClear:       engine.Clear,
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		})
		mainWindow.Window().SetCloseIntercept(func() {
			mainWindow.Window().Hide()
		})
		if history != nil {
			showLastBrew(history, trayManager)
		}
	} else {
		log.Printf("system tray unsupported on this platform")
		mainWindow.Window().SetMaster()
	}

	fyneApp.Lifecycle().SetOnStopped(func() {
		engine.Close()
		settings.LastTotal = time.Duration(lastTotal.Load())
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("settings: %v", err)
		}
		if history != nil {
			if err := history.Close(); err != nil {
				log.Printf("history: %v", err)
			}
		}
	})

	events := engine.Subscribe(16)
	go func() {
		for event := range events {
			mainWindow.Apply(event)
			if trayManager != nil {
				snapshot := event.Snapshot
				fyne.Do(func() {
					trayManager.Update(snapshot)
				})
			}

			switch event.Type {
			case countdown.EventStateChange:
				if event.State == countdown.StateInProgress && event.Remaining == event.Total {
					lastTotal.Store(int64(event.Total))
				}
			case countdown.EventFinished:
				fyne.Do(func() {
					if settings.ChimeEnabled && chime != nil {
						if err := chime.Play(); err != nil {
							log.Printf("chime: %v", err)
						}
					}
				})
				recordBrew(history, trayManager, event, storage.OutcomeFinished)
			case countdown.EventCleared:
				if event.Elapsed > 0 {
					recordBrew(history, trayManager, event, storage.OutcomeCleared)
				}
			}
		}
	}()

	mainWindow.Show()
	fyneApp.Run()
}

func newChime(settings preferences.Settings) *sound.Chime {
	if !settings.ChimeEnabled {
		return nil
	}
	data, err := resources.Sound("chime.wav")
	if err != nil {
		log.Printf("chime: %v", err)
		return nil
	}
	clip, err := sound.Decode(data)
	if err != nil {
		log.Printf("chime: %v", err)
		return nil
	}
	chime := sound.NewChime(clip, settings.ChimeVolume)
	if err := chime.Init(); err != nil {
		log.Printf("chime: %v", err)
		return nil
	}
	return chime
}

func recordBrew(history *storage.History, trayManager *tray.Manager, event countdown.Event, outcome storage.Outcome) {
	if history == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	brew, err := history.Record(ctx, storage.Brew{
		Total:   event.Total,
		Elapsed: event.Elapsed,
		Outcome: outcome,
		EndedAt: event.At,
	})
	if err != nil {
		log.Printf("history: %v", err)
		return
	}
	if trayManager != nil {
		label := brewLabel(brew)
		fyne.Do(func() {
			trayManager.SetLastBrew(label)
		})
	}
}

func showLastBrew(history *storage.History, trayManager *tray.Manager) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	brews, err := history.Recent(ctx, 1)
	if err != nil {
		log.Printf("history: %v", err)
		return
	}
	if len(brews) > 0 {
		trayManager.SetLastBrew(brewLabel(brews[0]))
	}
}

func brewLabel(brew storage.Brew) string {
	if brew.Outcome == storage.OutcomeCleared {
		return fmt.Sprintf("Last brew: %s of %s (cleared)", timefmt.FormatDuration(brew.Elapsed), timefmt.FormatDuration(brew.Total))
	}
	return fmt.Sprintf("Last brew: %s", timefmt.FormatDuration(brew.Total))
}
