package service

import (
	"context"
	"log"
	"time"

	"chronos/snapshot"
)

// StartSnapshotJob periodically persists a snapshot and truncates the logs
// behind it. The snapshot is taken under the admission lock, so it observes
// a consistent point in the command stream.
func (s *EngineService) StartSnapshotJob(ctx context.Context, dir string, interval time.Duration) {
	w := &snapshot.Writer{Dir: dir}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.snapshotOnce(w)
			}
		}
	}()
}

func (s *EngineService) snapshotOnce(w *snapshot.Writer) {
	s.mu.Lock()
	seq := s.seqGen.Current()
	messageCount := s.messageCount
	lastExecID := s.lastExecID

	if err := w.Write(seq, messageCount, s.eng); err != nil {
		s.mu.Unlock()
		log.Printf("[snapshot] write failed at seq %d: %v", seq, err)
		return
	}
	s.mu.Unlock()

	// Everything at or before seq is covered by the snapshot.
	if err := s.log.TruncateBefore(seq + 1); err != nil {
		log.Printf("[snapshot] wal truncate failed: %v", err)
	}
	if s.box != nil {
		if err := s.box.TruncateAckedUpTo(lastExecID); err != nil {
			log.Printf("[snapshot] outbox truncate failed: %v", err)
		}
	}
}
