package pool

import "sync"

// Resetter описывает типы, которые умеют сбрасывать своё состояние.
type Resetter interface {
	Reset()
}

// Pool — типобезопасная обёртка над sync.Pool для объектов с методом Reset.
// Используется для переиспользования буферов при рендеринге отчетов.
type Pool[T Resetter] struct {
	p *sync.Pool
}

// New создаёт новый пул для объектов типа T.
// Аргумент newFn возвращает новый экземпляр при исчерпании объектов в пуле.
func New[T Resetter](newFn func() T) *Pool[T] {
	if newFn == nil {
		panic("pool: newFn must not be nil")
	}

	return &Pool[T]{
		p: &sync.Pool{
			New: func() any {
				return newFn()
			},
		},
	}
}

// Get возвращает объект из пула.
func (p *Pool[T]) Get() T {
	v := p.p.Get()
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

// Put возвращает объект в пул, предварительно сбросив его состояние.
func (p *Pool[T]) Put(v T) {
	v.Reset()
	p.p.Put(v)
}
