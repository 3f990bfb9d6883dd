package domain

import "time"

type ViewStatus string

const (
	ViewStatusIdle    ViewStatus = "idle"
	ViewStatusLoading ViewStatus = "loading"
	ViewStatusReady   ViewStatus = "ready"
	ViewStatusFailed  ViewStatus = "failed"
)

// ViewState é o estado de um painel: exatamente um status por vez.
// Data só é significativo em Ready; Reason e Err só em Failed.
type ViewState[T any] struct {
	Status    ViewStatus
	Data      T
	Reason    string
	Err       error
	Seq       uint64
	UpdatedAt time.Time
}

func Idle[T any]() ViewState[T] {
	return ViewState[T]{Status: ViewStatusIdle}
}

func Loading[T any](seq uint64) ViewState[T] {
	return ViewState[T]{Status: ViewStatusLoading, Seq: seq, UpdatedAt: time.Now()}
}

func Ready[T any](seq uint64, data T) ViewState[T] {
	return ViewState[T]{Status: ViewStatusReady, Data: data, Seq: seq, UpdatedAt: time.Now()}
}

func Failed[T any](seq uint64, reason string, err error) ViewState[T] {
	return ViewState[T]{Status: ViewStatusFailed, Reason: reason, Err: err, Seq: seq, UpdatedAt: time.Now()}
}

func (s ViewState[T]) IsLoading() bool { return s.Status == ViewStatusLoading }
func (s ViewState[T]) IsReady() bool   { return s.Status == ViewStatusReady }
func (s ViewState[T]) IsFailed() bool  { return s.Status == ViewStatusFailed }

// Settled indica que não há requisição pendente para o estado atual
func (s ViewState[T]) Settled() bool {
	return s.Status == ViewStatusReady || s.Status == ViewStatusFailed
}
