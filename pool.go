package compose

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// productBuffer holds the odometer state and the current tuple of a
// cartesian-product walk. Derivation over decomposition texts creates a
// high fluctuation of these short-lived buffers, so we pool them.
type productBuffer struct {
	idx   []int
	tuple []Keys
}

type productBufferPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalProductPool *productBufferPool

func init() {
	globalProductPool = &productBufferPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			buf := &productBuffer{
				idx:   make([]int, 0, 8),
				tuple: make([]Keys, 0, 8),
			}
			return buf, nil
		})
	globalProductPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalProductPool.opool = pool.NewObjectPool(globalProductPool.ctx, factory, config)
}

func borrowProductBuffer(n int) *productBuffer {
	o, _ := globalProductPool.opool.BorrowObject(globalProductPool.ctx)
	buf := o.(*productBuffer)
	for cap(buf.idx) < n {
		buf.idx = append(buf.idx[:cap(buf.idx)], 0)
	}
	buf.idx = buf.idx[:n]
	for i := range buf.idx {
		buf.idx[i] = 0
	}
	buf.tuple = buf.tuple[:0]
	return buf
}

func (buf *productBuffer) releaseIntoPool() {
	buf.idx = buf.idx[:0]
	buf.tuple = buf.tuple[:0]
	_ = globalProductPool.opool.ReturnObject(globalProductPool.ctx, buf)
}

// eachProduct walks the cartesian product of the given candidate lists
// and calls f with every tuple (one candidate chosen per list), varying
// the last list fastest. The tuple is reused between calls; f must not
// retain it. An empty input list yields no tuples; zero input lists
// yield the single empty tuple.
func eachProduct(lists [][]Keys, f func([]Keys)) {
	for _, l := range lists {
		if len(l) == 0 {
			return
		}
	}
	buf := borrowProductBuffer(len(lists))
	defer buf.releaseIntoPool()
	for {
		buf.tuple = buf.tuple[:0]
		for i, l := range lists {
			buf.tuple = append(buf.tuple, l[buf.idx[i]])
		}
		f(buf.tuple)
		i := len(lists) - 1
		for ; i >= 0; i-- {
			buf.idx[i]++
			if buf.idx[i] < len(lists[i]) {
				break
			}
			buf.idx[i] = 0
		}
		if i < 0 {
			break
		}
	}
}
