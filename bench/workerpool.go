package bench

// workerPool 채널 기반 세마포. 동시에 실행되는 작업 수를 제한한다.
type workerPool chan struct{}

func newWorkerPool(size int) workerPool {
	return make(workerPool, max(size, 1))
}

func (p workerPool) acquire() { p <- struct{}{} }
func (p workerPool) release() { <-p }
