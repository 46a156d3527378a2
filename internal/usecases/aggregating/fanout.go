package aggregating

import "sync"

// forEachSlot executa task para cada índice de 0 a n-1 em goroutines
// limitadas por maxConcurrent, e só retorna quando todas terminam. Cada task
// escreve apenas no seu próprio slot, preservando a ordem original da
// listagem sem nenhuma sincronização adicional.
func forEachSlot(n, maxConcurrent int, task func(idx int)) {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxConcurrent)

	for idx := 0; idx < n; idx++ {
		wg.Add(1)
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			task(idx)
		}(idx)
	}

	wg.Wait()
}
