package tui

import (
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/progress"
	"github.com/vovakirdan/tui-2048/internal/session"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// toastDuration is how long achievement notifications stay on screen.
const toastDuration = 4 * time.Second

// GameModel is the Bubble Tea model for a single game session.
type GameModel struct {
	sess        *session.Session
	store       *storage.Store
	screen      *core.Screen
	settings    config.Settings
	keyMapper   *KeyMapper
	width       int
	height      int
	toast       string
	toastExpiry time.Time
	resultSaved bool // Whether the result has been saved for current game over
	quitting    bool
}

// NewGameModel creates a new game model. A zero seed means a time-based one.
// A nil store disables persistence but the game plays normally.
func NewGameModel(settings config.Settings, store *storage.Store, seed int64, width, height int) GameModel {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := session.Config{
		GridSize:        settings.Game.GridSize,
		WinningValue:    settings.Game.WinningValue,
		SpawnFourChance: settings.Game.SpawnFourChance,
	}
	sess := session.New(cfg, rand.New(rand.NewSource(seed)))

	// Restore best score and unlocked achievements so they do not re-fire
	if store != nil {
		best, err := store.BestScore(cfg.GridSize)
		if err != nil {
			best = 0
		}
		ids, err := store.AchievementIDs()
		if err != nil {
			ids = nil
		}
		sess.Restore(best, ids)
	}

	return GameModel{
		sess:      sess,
		store:     store,
		screen:    core.NewScreen(width, height),
		settings:  settings,
		keyMapper: NewKeyMapper(),
		width:     width,
		height:    height,
	}
}

// Init starts the session and the clock.
func (m GameModel) Init() tea.Cmd {
	m.sess.Start()
	return tickCmd()
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if m.toast != "" && time.Now().After(m.toastExpiry) {
			m.toast = ""
		}
		return m, tickCmd()
	}

	return m, nil
}

// handleKey translates key presses to session commands.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd := m.keyMapper.MapKey(msg)

	if dir, ok := cmd.Direction(); ok {
		m.processEvents(m.sess.Move(dir))
		return m, nil
	}

	switch cmd {
	case CmdQuit:
		m.quitting = true
		return m, tea.Quit

	case CmdPause:
		switch m.sess.State() {
		case session.StateActive:
			m.sess.Pause()
		case session.StatePaused:
			m.sess.Resume()
		}

	case CmdRestart:
		m.sess.Reset()
		m.sess.Start()
		m.resultSaved = false
		m.toast = ""

	case CmdContinue:
		m.sess.ContinuePlaying()
	}

	return m, nil
}

// processEvents reacts to events produced by a move: persistence and toasts.
func (m *GameModel) processEvents(events []session.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case session.EventGameOver:
			m.saveResult()

		case session.EventVictory:
			m.setToast(fmt.Sprintf("You reached %d!", m.settings.Game.WinningValue))

		case session.EventAchievement:
			if m.store != nil {
				//nolint:errcheck // Best-effort save, game continues regardless
				m.store.UnlockAchievement(ev.Achievement)
			}
			if a := progress.ByID(ev.Achievement); a != nil {
				m.setToast("Achievement unlocked: " + a.Title)
			}
		}
	}
}

// saveResult persists the finished game once.
func (m *GameModel) saveResult() {
	if m.resultSaved {
		return
	}
	m.resultSaved = true

	if m.store == nil {
		return
	}

	snap := m.sess.Snapshot()
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveResult(storage.Result{
		GridSize:     snap.GridSize,
		Score:        snap.Score,
		MaxTile:      snap.MaxTile(),
		Moves:        snap.MoveCount,
		DurationSecs: int(snap.Elapsed.Seconds()),
	})
}

func (m *GameModel) setToast(text string) {
	m.toast = text
	m.toastExpiry = time.Now().Add(toastDuration)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.renderGame(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local game.
func Run(settings config.Settings, store *storage.Store, seed int64, width, height int) error {
	model := NewGameModel(settings, store, seed, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
