// SPDX-License-Identifier: MIT
// Package device: the Stream — an in-order asynchronous executor with
// deferred fault reporting, mirroring accelerator launch/synchronize
// semantics.

package device

import (
	"fmt"
	"sync"

	"github.com/voltgraph/voltgraph"
)

// task is one unit of enqueued device work.
type task struct {
	name string
	run  func() error
}

// Stream executes enqueued tasks one at a time, in submission order.
// Enqueue returns immediately; results become observable only after
// Synchronize. A faulting task is contained: the stream keeps running and
// the first fault since the last Synchronize is reported exactly once.
type Stream struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []task
	running bool
	fault   error
	closed  bool
}

// NewStream creates a stream on the device and starts its executor.
func (d *Device) NewStream() *Stream {
	s := &Stream{}
	s.cond = sync.NewCond(&s.mu)
	go s.loop()

	return s
}

// Enqueue submits work to the stream and returns without waiting for it.
// The name is carried into fault messages so a deferred error still says
// which operation raised it.
func (s *Stream) Enqueue(name string, run func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStreamClosed
	}
	s.queue = append(s.queue, task{name: name, run: run})
	s.cond.Broadcast()

	return nil
}

// Synchronize blocks until every previously enqueued task has finished,
// then returns the first fault captured since the last Synchronize (or nil).
// The fault is cleared: a stream is usable again after reporting.
func (s *Stream) Synchronize() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.queue) > 0 || s.running {
		s.cond.Wait()
	}
	err := s.fault
	s.fault = nil

	return err
}

// Close drains the stream and stops its executor. Enqueue after Close
// returns ErrStreamClosed; Close is idempotent.
func (s *Stream) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return
	}
	s.closed = true
	s.cond.Broadcast()
	s.mu.Unlock()
}

// loop is the stream executor: pop, run contained, record first fault.
func (s *Stream) loop() {
	for {
		s.mu.Lock()
		for len(s.queue) == 0 && !s.closed {
			s.cond.Wait()
		}
		if len(s.queue) == 0 && s.closed {
			s.mu.Unlock()

			return
		}
		t := s.queue[0]
		s.queue = s.queue[1:]
		s.running = true
		s.mu.Unlock()

		err := s.execute(t)

		s.mu.Lock()
		s.running = false
		if err != nil && s.fault == nil {
			s.fault = err
		}
		s.cond.Broadcast()
		s.mu.Unlock()
	}
}

// execute runs one task with panic containment. A panicking task surfaces
// as an ErrInternal-classed fault instead of tearing the process down.
func (s *Stream) execute(t task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("device: task %q panicked: %v: %w", t.name, r, voltgraph.ErrInternal)
		}
	}()

	return t.run()
}
