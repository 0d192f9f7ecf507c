// Package app provides the review session state machine, its events, and
// the application theme.
package app

import (
	"photo-compare/internal/review"

	"github.com/sirupsen/logrus"
)

// CompleteMessage is shown once every pair has been visited.
const CompleteMessage = "All photos have been reviewed. Data saved."

// Phase is the coarse state of a session.
type Phase int

const (
	PhaseReviewing Phase = iota
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseReviewing:
		return "reviewing"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// EventType identifies different session events.
type EventType int

const (
	// EventPairChanged fires with the review.Pair now under the cursor.
	EventPairChanged EventType = iota
	// EventAnnotated fires with the review.Pair that just received a verdict.
	EventAnnotated
	// EventSaved fires with the output path after every successful save.
	EventSaved
	// EventComplete fires each time the session enters or re-enters completion.
	EventComplete
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// Progress summarises how far the review has got.
type Progress struct {
	Index   int // 0-based cursor position
	Total   int
	Correct int
	Wrong   int
}

// Session owns the pair collection and the cursor over it. All methods are
// called from the UI goroutine and run to completion.
type Session struct {
	collection *review.Collection
	cursor     *review.Cursor
	outputPath string
	log        logrus.FieldLogger

	listeners map[EventType][]EventListener
}

// NewSession creates a session positioned on the first pair.
func NewSession(c *review.Collection, outputPath string, log logrus.FieldLogger) *Session {
	return &Session{
		collection: c,
		cursor:     review.NewCursor(c),
		outputPath: outputPath,
		log:        log,
		listeners:  make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *Session) On(event EventType, listener EventListener) {
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *Session) Emit(event EventType, data interface{}) {
	for _, listener := range s.listeners[event] {
		listener(data)
	}
}

// Start announces the initial pair. An empty collection goes straight to
// completion, which fails to save.
func (s *Session) Start() error {
	s.log.WithFields(logrus.Fields{
		"pairs":    s.collection.Len(),
		"excluded": len(s.collection.ExcludedIDs()),
	}).Info("review started")
	return s.show()
}

// Phase reports whether pairs remain under the cursor.
func (s *Session) Phase() Phase {
	if s.cursor.InRange() {
		return PhaseReviewing
	}
	return PhaseComplete
}

// Current returns the pair under the cursor, or review.ErrEndOfReview.
func (s *Session) Current() (review.Pair, error) {
	return s.cursor.Current()
}

// Collection returns the session's pairs.
func (s *Session) Collection() *review.Collection {
	return s.collection
}

// Progress returns the cursor position and verdict counts.
func (s *Session) Progress() Progress {
	correct, wrong := s.collection.Counts()
	return Progress{
		Index:   s.cursor.Index(),
		Total:   s.cursor.Len(),
		Correct: correct,
		Wrong:   wrong,
	}
}

// MarkCorrect records "Correct" for the current pair, saves, and advances.
func (s *Session) MarkCorrect() error {
	return s.mark(review.StatusCorrect)
}

// MarkWrong records "Wrong" for the current pair, saves, and advances.
func (s *Session) MarkWrong() error {
	return s.mark(review.StatusWrong)
}

func (s *Session) mark(status review.Status) error {
	pair, err := s.cursor.Current()
	if err != nil {
		return s.complete()
	}
	if err := review.Annotate(pair, status); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"caseid": pair.CaseID(),
		"status": status,
	}).Info("pair annotated")
	s.Emit(EventAnnotated, pair)

	if err := s.Save(); err != nil {
		return err
	}
	return s.Next()
}

// Next moves to the following pair without recording a verdict. Past the
// last pair the session saves and completes.
func (s *Session) Next() error {
	if _, ok := s.cursor.Advance(); !ok {
		return s.complete()
	}
	return s.show()
}

// Back moves to the previous pair without saving. From completion it
// returns to the last pair.
func (s *Session) Back() {
	s.cursor.Retreat()
	if pair, err := s.cursor.Current(); err == nil {
		s.Emit(EventPairChanged, pair)
	}
}

// Save writes the whole collection to the output file.
func (s *Session) Save() error {
	if err := review.Save(s.collection, s.outputPath); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"path": s.outputPath,
		"rows": len(s.collection.Rows()),
	}).Debug("review saved")
	s.Emit(EventSaved, s.outputPath)
	return nil
}

func (s *Session) show() error {
	pair, err := s.cursor.Current()
	if err != nil {
		return s.complete()
	}
	s.Emit(EventPairChanged, pair)
	return nil
}

func (s *Session) complete() error {
	if err := s.Save(); err != nil {
		return err
	}
	correct, wrong := s.collection.Counts()
	s.log.WithFields(logrus.Fields{
		"path":    s.outputPath,
		"correct": correct,
		"wrong":   wrong,
	}).Info("review complete")
	s.Emit(EventComplete, nil)
	return nil
}
