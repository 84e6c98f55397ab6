package service

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/nusclubs/clubconnect/internal/domain/entity"
	"github.com/nusclubs/clubconnect/internal/ports/secondary"
)

// Backup periodically writes a timestamped CSV snapshot of the member list.
//
// The cron job runs on the scheduler's goroutine while commands mutate the
// live club book, so the job never reads the model directly. An observer,
// which runs on the command goroutine after each committed change, caches a
// deep copy of the book; the job serializes the cached copy.
type Backup struct {
	cron     *cron.Cron
	exchange secondary.MemberExchange
	dir      string
	spec     string
	log      *zap.SugaredLogger

	mu       sync.Mutex
	snapshot *entity.ClubBook
}

func NewBackup(
	model *Model,
	exchange secondary.MemberExchange,
	dir string,
	spec string,
	log *zap.SugaredLogger,
) *Backup {
	b := &Backup{
		exchange: exchange,
		dir:      dir,
		spec:     spec,
		log:      log,
		snapshot: model.ClubBook().Copy(),
	}
	model.Subscribe(b.observe)
	return b
}

// Start schedules the backup job. The first snapshot is written at the first
// cron tick, not immediately.
func (b *Backup) Start() error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}
	b.cron = cron.New()
	if _, err := b.cron.AddFunc(b.spec, b.run); err != nil {
		return fmt.Errorf("schedule backup: %w", err)
	}
	b.cron.Start()
	b.log.Infof("backup scheduler started (spec %q, dir %s)", b.spec, b.dir)
	return nil
}

func (b *Backup) Stop() {
	if b.cron != nil {
		b.cron.Stop()
	}
}

func (b *Backup) observe(book *entity.ClubBook) {
	snapshot := book.Copy()
	b.mu.Lock()
	b.snapshot = snapshot
	b.mu.Unlock()
}

func (b *Backup) run() {
	b.mu.Lock()
	snapshot := b.snapshot
	b.mu.Unlock()

	path := filepath.Join(b.dir, fmt.Sprintf("members-%s.csv", time.Now().Format("20060102-150405")))
	if err := b.exchange.WriteMembers(path, snapshot.Members()); err != nil {
		b.log.Errorf("backup failed: %v", err)
		return
	}
	b.log.Infof("backup written to %s", path)
}
