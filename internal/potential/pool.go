package potential

import "sync"

// Parameter blocks are small and churn once per integration call, so
// they are recycled through a shared pool.
const poolArgCap = 8

var argPool = sync.Pool{
	New: func() interface{} {
		s := make([]float64, 0, poolArgCap)
		return &s
	},
}

func getArgs(n int) []float64 {
	if n > poolArgCap {
		return make([]float64, n)
	}
	p := argPool.Get().(*[]float64)
	return (*p)[:n]
}

func putArgs(s []float64) {
	if cap(s) != poolArgCap {
		return
	}
	for i := range s {
		s[i] = 0
	}
	s = s[:0]
	argPool.Put(&s)
}
