package models

import "context"

// ExampleModel is the in-memory data provider. Its count is fixed when the
// process starts and is safe to read from any goroutine.
type ExampleModel struct {
	count int
}

func NewExampleModel(count int) *ExampleModel {
	return &ExampleModel{count: count}
}

// Count returns the number of stored examples. It never fails.
func (m *ExampleModel) Count(_ context.Context) (int, error) {
	return m.count, nil
}
