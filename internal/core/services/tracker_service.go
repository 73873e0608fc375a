package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habits/internal/core/scheduler"
	"github.com/comitanigiacomo/kanso-habits/internal/core/workers"
)

const shareTitle = "Habit Progress"

type TrackerConfig struct {
	EditQuietPeriod  time.Duration
	AutoUncheckDelay time.Duration
	UndoWindow       time.Duration
}

func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		EditQuietPeriod:  workers.DefaultEditQuietPeriod,
		AutoUncheckDelay: workers.DefaultAutoUncheckDelay,
		UndoWindow:       workers.DefaultUndoWindow,
	}
}

type EditSession struct {
	TargetID string `json:"target_id"`
	Label    string `json:"label"`
	Pending  bool   `json:"commit_pending"`
}

type TrackerOption func(*TrackerService)

func WithCompletionListener(l domain.CompletionListener) TrackerOption {
	return func(s *TrackerService) {
		s.listener = l
	}
}

func WithSharer(sh domain.Sharer) TrackerOption {
	return func(s *TrackerService) {
		s.sharer = sh
	}
}

func WithConfig(cfg TrackerConfig) TrackerOption {
	return func(s *TrackerService) {
		s.cfg = cfg
	}
}

// TrackerService owns the live habit collection. Every mutation runs under a
// single lock, including the deferred timer callbacks, and writes the full
// snapshot back to the repository.
type TrackerService struct {
	mu       sync.Mutex
	repo     domain.SnapshotRepository
	sched    scheduler.Scheduler
	log      *zap.Logger
	cfg      TrackerConfig
	listener domain.CompletionListener
	sharer   domain.Sharer

	entries    []*domain.HabitEntry
	session    *EditSession
	generation uint64
	dirty      bool
	loaded     bool

	commits  *workers.Debouncer
	undo     *workers.UndoBuffer
	unchecks *workers.UncheckTimer
}

func NewTrackerService(repo domain.SnapshotRepository, sched scheduler.Scheduler, logger *zap.Logger, opts ...TrackerOption) *TrackerService {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &TrackerService{
		repo:    repo,
		sched:   sched,
		log:     logger.Named("tracker"),
		cfg:     DefaultTrackerConfig(),
		entries: []*domain.HabitEntry{},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.commits = workers.NewDebouncer(sched, s.cfg.EditQuietPeriod)
	s.undo = workers.NewUndoBuffer(sched, s.cfg.UndoWindow)
	s.undo.OnExpire(func(e *domain.HabitEntry) {
		s.log.Debug("undo window expired", zap.String("habit_id", e.ID))
	})
	s.unchecks = workers.NewUncheckTimer(sched, s.cfg.AutoUncheckDelay, s.autoUncheck)

	return s
}

// Load replaces the live collection with the persisted snapshot. A missing
// snapshot is initialised as an empty one. Until a Load succeeds the engine
// never writes: every mutation retries the load first and fails with
// ErrStoreUnavailable if the snapshot still cannot be read.
func (s *TrackerService) Load(ctx context.Context) ([]domain.HabitEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		s.log.Error("failed to load snapshot, writes suspended", zap.Error(err))
		return s.snapshotLocked(), err
	}
	return s.snapshotLocked(), nil
}

func (s *TrackerService) loadLocked(ctx context.Context) error {
	entries, found, err := s.repo.LoadEntries(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	s.loaded = true
	if !found {
		s.entries = []*domain.HabitEntry{}
		s.persistLocked(ctx)
		return nil
	}

	s.entries = entries
	rearmed := s.rearmLocked()
	s.log.Info("snapshot loaded", zap.Int("habits", len(entries)), zap.Int("checked", rearmed))
	return nil
}

// rearmLocked schedules a fresh auto-uncheck for every entry stored while
// checked, since the timers of the process that checked them are gone.
func (s *TrackerService) rearmLocked() int {
	n := 0
	for _, e := range s.entries {
		if !e.IsChecked {
			continue
		}
		s.generation++
		e.Restamp(s.generation)
		s.unchecks.Arm(e.ID, s.generation)
		n++
	}
	return n
}

func (s *TrackerService) ensureLoadedLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	if err := s.loadLocked(ctx); err != nil {
		s.log.Warn("mutation refused, snapshot not loaded", zap.Error(err))
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *TrackerService) AddEntry(ctx context.Context, label string) (domain.HabitEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := domain.NewHabitEntry(label, s.sched.Now())
	if err != nil {
		return domain.HabitEntry{}, err
	}
	if err := s.ensureLoadedLocked(ctx); err != nil {
		return domain.HabitEntry{}, err
	}

	s.entries = append(s.entries, entry)
	s.persistLocked(ctx)

	return *entry.Clone(), nil
}

func (s *TrackerService) ToggleCheck(ctx context.Context, id string) (domain.HabitEntry, error) {
	s.mu.Lock()
	entry, completed, err := s.toggleLocked(ctx, id)
	s.mu.Unlock()

	if err != nil {
		return domain.HabitEntry{}, err
	}

	if completed && s.listener != nil {
		s.listener.HabitCompleted(ctx, entry)
	}
	return entry, nil
}

func (s *TrackerService) toggleLocked(ctx context.Context, id string) (domain.HabitEntry, bool, error) {
	if err := s.ensureLoadedLocked(ctx); err != nil {
		return domain.HabitEntry{}, false, err
	}

	_, entry := s.findLocked(id)
	if entry == nil {
		s.log.Warn("toggle ignored, habit not found", zap.String("habit_id", id))
		return domain.HabitEntry{}, false, domain.ErrEntryNotFound
	}

	completed := !entry.IsChecked
	if completed {
		s.generation++
		entry.Complete(s.sched.Now(), s.generation)
		s.unchecks.Arm(entry.ID, s.generation)
		s.log.Debug("auto-uncheck armed",
			zap.String("habit_id", entry.ID),
			zap.Int("outstanding", s.unchecks.Outstanding(entry.ID)))
	} else {
		entry.Uncheck()
	}

	s.persistLocked(ctx)

	if completed {
		if err := s.repo.SaveStreak(ctx, entry.ID, entry.Streak); err != nil {
			s.log.Error("failed to save streak map", zap.String("habit_id", entry.ID), zap.Error(err))
		}
	}

	return *entry.Clone(), completed, nil
}

// autoUncheck runs when a completion's timer fires. Only the timer belonging
// to the latest completion of a habit may clear its flag.
func (s *TrackerService) autoUncheck(id string, generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, entry := s.findLocked(id)
	if entry == nil {
		s.log.Debug("auto-uncheck skipped, habit gone", zap.String("habit_id", id))
		return
	}
	if entry.Generation() != generation {
		s.log.Debug("auto-uncheck superseded by a newer completion", zap.String("habit_id", id))
		return
	}
	if !entry.IsChecked {
		return
	}

	entry.Uncheck()
	s.persistLocked(context.Background())
}

func (s *TrackerService) DeleteEntry(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return err
	}

	idx, entry := s.findLocked(id)
	if entry == nil {
		s.log.Warn("delete ignored, habit not found", zap.String("habit_id", id))
		return domain.ErrEntryNotFound
	}

	s.entries = append(s.entries[:idx:idx], s.entries[idx+1:]...)
	s.persistLocked(ctx)
	s.undo.Offer(entry)

	return nil
}

// RestoreLastDeleted appends the buffered entry at the end of the collection,
// not at its original position.
func (s *TrackerService) RestoreLastDeleted(ctx context.Context) (domain.HabitEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.undo.Take()
	if !ok {
		return domain.HabitEntry{}, domain.ErrNothingToUndo
	}

	if _, existing := s.findLocked(entry.ID); existing != nil {
		s.log.Warn("restore skipped, id already live", zap.String("habit_id", entry.ID))
		return domain.HabitEntry{}, domain.ErrNothingToUndo
	}

	s.entries = append(s.entries, entry)
	s.persistLocked(ctx)

	return *entry.Clone(), nil
}

func (s *TrackerService) UndoAvailable() bool {
	return s.undo.Available()
}

// BeginEdit opens a session on id. A commit pending for an earlier session is
// dropped without being applied.
func (s *TrackerService) BeginEdit(id string) (EditSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(context.Background()); err != nil {
		return EditSession{}, err
	}

	_, entry := s.findLocked(id)
	if entry == nil {
		s.log.Warn("edit ignored, habit not found", zap.String("habit_id", id))
		return EditSession{}, domain.ErrEntryNotFound
	}

	if s.commits.Cancel() && s.session != nil {
		s.log.Debug("pending edit discarded", zap.String("habit_id", s.session.TargetID))
	}

	s.session = &EditSession{TargetID: entry.ID, Label: entry.Label}
	return *s.session, nil
}

func (s *TrackerService) UpdateEditBuffer(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return domain.ErrNoEditSession
	}
	s.session.Label = text
	return nil
}

// RequestCommit arms the quiet-period timer. Calling it again before the
// timer fires replaces the earlier request.
func (s *TrackerService) RequestCommit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return domain.ErrNoEditSession
	}

	session := s.session
	s.commits.Debounce(func() {
		s.commitEdit(session)
	})
	return nil
}

func (s *TrackerService) commitEdit(session *EditSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// a newer session replaced this one while the timer was firing
	if s.session != session {
		return
	}
	s.session = nil

	_, entry := s.findLocked(session.TargetID)
	if entry == nil {
		s.log.Warn("edit dropped, habit not found", zap.String("habit_id", session.TargetID))
		return
	}

	if err := entry.Rename(session.Label); err != nil {
		s.log.Debug("edit dropped, empty label", zap.String("habit_id", session.TargetID))
		return
	}

	s.persistLocked(context.Background())
}

func (s *TrackerService) EditSession() (EditSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return EditSession{}, false
	}
	session := *s.session
	session.Pending = s.commits.Pending()
	return session, true
}

func (s *TrackerService) Snapshot() []domain.HabitEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *TrackerService) Get(id string) (domain.HabitEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, entry := s.findLocked(id)
	if entry == nil {
		return domain.HabitEntry{}, domain.ErrEntryNotFound
	}
	return *entry.Clone(), nil
}

// ShareProgress builds the share text for a habit and hands it to the sharer.
// Sharing is fire-and-forget: a sharer failure is only logged.
func (s *TrackerService) ShareProgress(ctx context.Context, id string) (string, error) {
	entry, err := s.Get(id)
	if err != nil {
		s.log.Warn("share ignored, habit not found", zap.String("habit_id", id))
		return "", err
	}

	text := fmt.Sprintf("I've maintained a %d day streak for %s!", entry.Streak, entry.Label)

	if s.sharer != nil {
		if err := s.sharer.Share(ctx, shareTitle, text); err != nil {
			s.log.Warn("share failed", zap.String("habit_id", id), zap.Error(err))
		}
	}
	return text, nil
}

// Flush retries the snapshot write if an earlier one failed.
func (s *TrackerService) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return err
	}
	if !s.dirty {
		return nil
	}
	return s.writeLocked(ctx)
}

func (s *TrackerService) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

func (s *TrackerService) findLocked(id string) (int, *domain.HabitEntry) {
	for i, e := range s.entries {
		if e.ID == id {
			return i, e
		}
	}
	return -1, nil
}

func (s *TrackerService) snapshotLocked() []domain.HabitEntry {
	out := make([]domain.HabitEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, *e.Clone())
	}
	return out
}

// persistLocked never fails the caller: the in-memory state stays
// authoritative and the write is retried by the next mutation or Flush.
func (s *TrackerService) persistLocked(ctx context.Context) {
	if err := s.writeLocked(ctx); err != nil {
		s.log.Error("failed to persist snapshot", zap.Int("habits", len(s.entries)), zap.Error(err))
	}
}

func (s *TrackerService) writeLocked(ctx context.Context) error {
	if !s.loaded {
		return fmt.Errorf("%w: snapshot never loaded", domain.ErrStoreUnavailable)
	}

	clones := make([]*domain.HabitEntry, 0, len(s.entries))
	for _, e := range s.entries {
		clones = append(clones, e.Clone())
	}

	if err := s.repo.SaveEntries(ctx, clones); err != nil {
		s.dirty = true
		return err
	}
	s.dirty = false
	return nil
}
