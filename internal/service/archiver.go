package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noemalabs/noema/internal/domain"
)

const (
	// ArchiveQueueSize bounds the in-flight archive jobs; creates never block
	// on a slow archive, overflow jobs are dropped with a warning.
	ArchiveQueueSize = 256
	// ArchiveWriteTimeout bounds one archive write.
	ArchiveWriteTimeout = 5 * time.Second
)

type archiveJob struct {
	sessionID string
	thought   domain.Thought
}

// ArchiverService drains thought snapshots to the archive backend in the
// background. It is the only writer to the archive; the in-memory graph
// never waits on it.
type ArchiverService struct {
	archiver   domain.ThoughtArchiver
	similarity domain.SimilarityProvider
	logger     *zap.Logger

	jobs   chan archiveJob
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewArchiverService builds the drain loop. The similarity provider is used
// to embed thought content for the archive's vector column and may be nil.
func NewArchiverService(archiver domain.ThoughtArchiver, similarity domain.SimilarityProvider, logger *zap.Logger) *ArchiverService {
	return &ArchiverService{
		archiver:   archiver,
		similarity: similarity,
		logger:     logger,
		jobs:       make(chan archiveJob, ArchiveQueueSize),
		stopCh:     make(chan struct{}),
	}
}

// Start launches the background drain goroutine.
func (s *ArchiverService) Start() {
	s.wg.Add(1)
	go s.run()
	s.logger.Info("thought archiver started")
}

// Stop signals the drain loop and waits for in-flight writes to finish.
// Queued jobs that have not started are discarded.
func (s *ArchiverService) Stop() {
	close(s.stopCh)
	s.wg.Wait()
	s.logger.Info("thought archiver stopped")
}

// Enqueue hands a thought snapshot to the drain loop. Never blocks; when the
// queue is full the job is dropped and logged.
func (s *ArchiverService) Enqueue(sessionID string, t domain.Thought) {
	select {
	case s.jobs <- archiveJob{sessionID: sessionID, thought: t}:
	default:
		s.logger.Warn("archive queue full, dropping thought",
			zap.String("thought_id", t.ID),
			zap.String("session_id", sessionID))
	}
}

func (s *ArchiverService) run() {
	defer s.wg.Done()
	for {
		select {
		case <-s.stopCh:
			return
		case job := <-s.jobs:
			s.archive(job)
		}
	}
}

func (s *ArchiverService) archive(job archiveJob) {
	var embedding []float32
	if s.similarity != nil {
		embedding = s.similarity.Embed(job.thought.Content)
	}

	ctx, cancel := context.WithTimeout(context.Background(), ArchiveWriteTimeout)
	defer cancel()

	if err := s.archiver.ArchiveThought(ctx, job.sessionID, &job.thought, embedding); err != nil {
		s.logger.Error("failed to archive thought",
			zap.String("thought_id", job.thought.ID),
			zap.String("session_id", job.sessionID),
			zap.Error(err))
		return
	}
	s.logger.Debug("thought archived", zap.String("thought_id", job.thought.ID))
}
