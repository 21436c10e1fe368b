package nbody

import "container/heap"

// scheduleEntry is one particle's next scheduled update time.
type scheduleEntry struct {
	time     float64
	particle int
	index    int // position in the heap slice, maintained by heap.Interface
}

// particleHeap implements container/heap.Interface over scheduleEntry,
// ordered by ascending time.
type particleHeap []*scheduleEntry

func (h particleHeap) Len() int            { return len(h) }
func (h particleHeap) Less(i, j int) bool  { return h[i].time < h[j].time }
func (h particleHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *particleHeap) Push(x any) {
	e := x.(*scheduleEntry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *particleHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// ParticleSchedule is the priority queue HITS uses to pick which
// particle updates next. It is keyed by next-update time and holds
// exactly one entry per particle, paired with a particle→heap-slot side
// map so a particle already in the schedule can be rescheduled in
// O(log N) without a linear scan.
type ParticleSchedule struct {
	h       particleHeap
	byIndex map[int]*scheduleEntry
}

// NewParticleSchedule returns an empty schedule pre-sized for n
// particles.
func NewParticleSchedule(n int) *ParticleSchedule {
	return &ParticleSchedule{
		h:       make(particleHeap, 0, n),
		byIndex: make(map[int]*scheduleEntry, n),
	}
}

// Len returns the number of scheduled particles.
func (s *ParticleSchedule) Len() int { return len(s.h) }

// Push inserts particle with the given next-update time. Pushing a
// particle already present replaces its scheduled time.
func (s *ParticleSchedule) Push(particle int, time float64) {
	if e, ok := s.byIndex[particle]; ok {
		s.Reschedule(particle, time)
		_ = e
		return
	}
	e := &scheduleEntry{time: time, particle: particle}
	s.byIndex[particle] = e
	heap.Push(&s.h, e)
}

// Pop removes and returns the particle with the smallest next-update
// time. ok is false when the schedule is empty.
func (s *ParticleSchedule) Pop() (particle int, time float64, ok bool) {
	if len(s.h) == 0 {
		return 0, 0, false
	}
	e := heap.Pop(&s.h).(*scheduleEntry)
	delete(s.byIndex, e.particle)
	return e.particle, e.time, true
}

// Reschedule updates the next-update time of a particle already in the
// schedule, re-heapifying in O(log N). It is a no-op if particle is not
// currently scheduled.
func (s *ParticleSchedule) Reschedule(particle int, newTime float64) {
	e, ok := s.byIndex[particle]
	if !ok {
		return
	}
	e.time = newTime
	heap.Fix(&s.h, e.index)
}

// PeekTime returns the smallest next-update time currently scheduled,
// without removing it.
func (s *ParticleSchedule) PeekTime() (float64, bool) {
	if len(s.h) == 0 {
		return 0, false
	}
	return s.h[0].time, true
}
