package service

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nusclubs/clubconnect/internal/domain/entity"
)

// safeExchange records writes behind a mutex so the backup job can run on
// another goroutine.
type safeExchange struct {
	mu     sync.Mutex
	writes int
	last   []entity.Member
}

func (s *safeExchange) ReadMembers(string) ([]entity.Member, error) { return nil, nil }

func (s *safeExchange) WriteMembers(_ string, members []entity.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	s.last = members
	return nil
}

func TestBackupSerializesCommittedSnapshot(t *testing.T) {
	ex := &stubExchange{}
	model := NewModel(entity.NewClubBook(), nil, nil, nil, zap.NewNop().Sugar())
	require.NoError(t, model.AddMember(stubMember(t, "Ann", "A0000001X")))

	b := NewBackup(model, ex, t.TempDir(), "@hourly", zap.NewNop().Sugar())

	b.run()
	assert.Len(t, ex.wroteMembers, 1)

	require.NoError(t, model.AddMember(stubMember(t, "Ben", "A0000002X")))
	b.run()
	assert.Len(t, ex.wroteMembers, 2)

	// A change written to the live book without going through the model is
	// not committed, so the job must not see it.
	require.NoError(t, model.ClubBook().AddMember(stubMember(t, "Carl", "A0000003X")))
	b.run()
	assert.Len(t, ex.wroteMembers, 2)
}

func TestBackupJobRunsSafelyDuringMutations(t *testing.T) {
	ex := &safeExchange{}
	model := NewModel(entity.NewClubBook(), nil, nil, nil, zap.NewNop().Sugar())
	b := NewBackup(model, ex, t.TempDir(), "@hourly", zap.NewNop().Sugar())

	const ticks = 50
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < ticks; i++ {
			b.run()
		}
	}()
	for i := 0; i < ticks; i++ {
		matric := fmt.Sprintf("A%07dX", i+1)
		require.NoError(t, model.AddMember(stubMember(t, "Member", matric)))
	}
	wg.Wait()

	ex.mu.Lock()
	defer ex.mu.Unlock()
	assert.Equal(t, ticks, ex.writes)
	assert.LessOrEqual(t, len(ex.last), ticks)
}
