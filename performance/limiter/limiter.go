// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	lim, _ := limiter.NewLimiter(1000)
//	defer lim.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		step()
//	}
package limiter

import (
	"time"

	"github.com/jetsetilly/gopher6502/curated"
)

// the maximum number of times per second the limiter will actually block.
// higher rates are achieved by allowing events through in batches.
const maxTicksPerSecond = 100

// Limiter will allow a fixed number of events every second.
type Limiter struct {
	rate     int
	batch    int
	interval time.Duration

	// the number of events remaining in the current batch
	remaining int

	ticker *time.Ticker
}

// NewLimiter is the preferred method of initialisation for Limiter type.
func NewLimiter(rate int) (*Limiter, error) {
	lim := &Limiter{}
	err := lim.SetLimit(rate)
	if err != nil {
		return nil, err
	}
	return lim, nil
}

// SetLimit changes the number of events per second allowed by the limiter.
func (lim *Limiter) SetLimit(rate int) error {
	if rate <= 0 {
		return curated.Errorf("limiter: rate must be positive (%d)", rate)
	}

	lim.rate = rate
	lim.batch = rate / maxTicksPerSecond
	if lim.batch < 1 {
		lim.batch = 1
	}
	lim.interval = time.Second * time.Duration(lim.batch) / time.Duration(rate)
	lim.remaining = lim.batch

	if lim.ticker == nil {
		lim.ticker = time.NewTicker(lim.interval)
	} else {
		lim.ticker.Reset(lim.interval)
	}

	return nil
}

// Rate returns the current limit.
func (lim *Limiter) Rate() int {
	return lim.rate
}

// Wait will block until the event is allowed.
func (lim *Limiter) Wait() {
	if lim.remaining <= 0 {
		<-lim.ticker.C
		lim.remaining = lim.batch
	}
	lim.remaining--
}

// HasWaited will return true if the event is allowed without blocking. The
// event is counted only if the function returns true.
func (lim *Limiter) HasWaited() bool {
	if lim.remaining <= 0 {
		select {
		case <-lim.ticker.C:
			lim.remaining = lim.batch
		default:
			// default case means that the channel receiving case doesn't block
			return false
		}
	}
	lim.remaining--
	return true
}

// Stop the limiter. The limiter should not be used after this.
func (lim *Limiter) Stop() {
	lim.ticker.Stop()
}
