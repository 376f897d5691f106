// Copyright 2024 JC-Lab
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package symmetric

import (
	"sync"

	"github.com/golang/glog"
)

const defaultPoolCapacity = 16

// Pool hands out engines for exclusive use and takes them back. Recycled
// engines are reset, which wipes any session state, before they are kept
// for reuse.
type Pool struct {
	mu       sync.Mutex
	idle     []*AES
	capacity int
	inUse    int
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithCapacity bounds the number of idle engines kept for reuse.
func WithCapacity(n int) PoolOption {
	return func(p *Pool) {
		if n >= 0 {
			p.capacity = n
		}
	}
}

// NewPool returns an empty pool that keeps up to 16 idle engines unless
// WithCapacity says otherwise.
func NewPool(opts ...PoolOption) *Pool {
	p := &Pool{capacity: defaultPoolCapacity}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Get returns an idle engine owned by the caller until Recycle.
func (p *Pool) Get() *AES {
	p.mu.Lock()
	defer p.mu.Unlock()

	var a *AES
	if n := len(p.idle); n > 0 {
		a = p.idle[n-1]
		p.idle[n-1] = nil
		p.idle = p.idle[:n-1]
	} else {
		a = New()
		a.owner = p
	}
	a.checkedOut = true
	p.inUse++
	return a
}

// Recycle resets a and returns it to the pool. Engines that were not checked
// out from p are reset but not kept.
func (p *Pool) Recycle(a *AES) {
	if a == nil {
		return
	}
	a.Reset()

	p.mu.Lock()
	defer p.mu.Unlock()

	if a.owner != p || !a.checkedOut {
		glog.Warningf("symmetric: recycle of an AES engine not checked out from this pool")
		return
	}
	a.checkedOut = false
	p.inUse--

	if len(p.idle) < p.capacity {
		p.idle = append(p.idle, a)
	}
}

// Idle returns the number of engines ready for reuse.
func (p *Pool) Idle() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.idle)
}

// InUse returns the number of engines checked out.
func (p *Pool) InUse() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inUse
}
