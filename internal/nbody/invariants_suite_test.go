package nbody_test

import (
	"math/rand/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dynsim/internal/nbody"
)

// schedule size = N and head key = min scheduled key, for all times
// during a randomized pop/push churn — the invariant HITS relies on to
// always advance the single particle with the smallest next-update time
// without ever losing or duplicating a particle.
var _ = Describe("ParticleSchedule", func() {
	DescribeTable("keeps exactly N entries and a correct min-heap head across churn",
		func(n int, seed uint64, iterations int) {
			rng := rand.New(rand.NewPCG(seed, seed^0xabcdef))
			schedule := nbody.NewParticleSchedule(n)

			times := make([]float64, n)
			for i := 0; i < n; i++ {
				times[i] = rng.Float64() * 100
				schedule.Push(i, times[i])
			}

			Expect(schedule.Len()).To(Equal(n))

			for k := 0; k < iterations; k++ {
				particle, poppedTime, ok := schedule.Pop()
				Expect(ok).To(BeTrue())
				Expect(poppedTime).To(Equal(minOf(times)))

				times[particle] = rng.Float64() * 100
				schedule.Push(particle, times[particle])

				Expect(schedule.Len()).To(Equal(n))

				head, ok := schedule.PeekTime()
				Expect(ok).To(BeTrue())
				Expect(head).To(Equal(minOf(times)))
			}
		},
		Entry("N=5, seed=1", 5, uint64(1), 50),
		Entry("N=32, seed=7", 32, uint64(7), 200),
		Entry("N=1, seed=99", 1, uint64(99), 10),
	)
})

func minOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}
