package frame

import "time"

// Pump drives the scheduler without real timers. Each queued request is fired
// in order and, when live, handed to run. It stops once the queue is empty or
// limit callbacks have run, and returns the simulated time that would have
// elapsed with every wait taken back to back (a frame costs interval).
func Pump(s *Scheduler, interval time.Duration, limit int, run func(Request)) time.Duration {
	var elapsed time.Duration
	ran := 0
	for ran < limit {
		batch := s.Drain()
		if len(batch) == 0 {
			break
		}
		for i, r := range batch {
			if ran >= limit {
				s.requeue(batch[i:])
				break
			}
			if r.Kind == KindFrame {
				elapsed += interval
			} else {
				elapsed += r.Delay
			}
			if !s.Fire(r) {
				continue
			}
			run(r)
			ran++
		}
	}
	return elapsed
}

// requeue puts undelivered requests back in front of the queue.
func (s *Scheduler) requeue(rs []Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(append([]Request(nil), rs...), s.pending...)
}
