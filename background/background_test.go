// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/mahdiyari/hive-tx-go/background"
)

type poller struct {
	polls    int64
	finished bool
}

func (p *poller) Run(args interface{}, shutdown <-chan struct{}) {
	interval := args.(time.Duration)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-ticker.C:
			atomic.AddInt64(&p.polls, 1)
		case <-shutdown:
			break loop
		}
	}
	p.finished = true
}

func TestBackground(t *testing.T) {
	p1 := &poller{}
	p2 := &poller{}

	processes := background.Processes{
		p1,
		p2,
	}

	handle := background.Start(processes, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	handle.Stop()

	for i, p := range []*poller{p1, p2} {
		if !p.finished {
			t.Errorf("%d: stop did not wait for the process", i)
		}
		if 0 == atomic.LoadInt64(&p.polls) {
			t.Errorf("%d: process never ran", i)
		}
	}

	// polling has ended
	n := atomic.LoadInt64(&p1.polls)
	time.Sleep(10 * time.Millisecond)
	if n != atomic.LoadInt64(&p1.polls) {
		t.Errorf("process still running after stop")
	}
}

func TestStopTwice(t *testing.T) {
	handle := background.Start(background.Processes{&poller{}}, time.Millisecond)
	handle.Stop()
	handle.Stop()

	var nilHandle *background.T
	nilHandle.Stop()
}
