package tabgroup

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// session is the private state of one clustering run. It owns the cluster-id
// counter and the centroid table, so concurrent runs never interfere. A
// session is created when a run starts and discarded when it returns.
type session struct {
	runID     string
	createdAt time.Time
	counter   int
	centroids map[string][]float32
}

func newSession() *session {
	return &session{
		runID:     uuid.NewString(),
		createdAt: time.Now(),
		centroids: make(map[string][]float32),
	}
}

// RunID returns the unique identifier of this run.
func (s *session) RunID() string {
	return s.runID
}

// nextCluster returns a fresh cluster id, unique within this run, together
// with its placeholder display name.
func (s *session) nextCluster() (id, name string) {
	id = fmt.Sprintf("cluster_%d", s.counter)
	name = fmt.Sprintf("Cluster %d", s.counter)
	s.counter++
	return id, name
}

func (s *session) setCentroid(clusterID string, centroid []float32) {
	s.centroids[clusterID] = centroid
}

// Centroid returns the centroid recorded for a cluster id, if any.
func (s *session) Centroid(clusterID string) ([]float32, bool) {
	c, ok := s.centroids[clusterID]
	return c, ok
}
