package store

import "errors"

// stubPersister hands the store a fixed collection and records saves.
type stubPersister[T any] struct {
	records  []T
	saves    int
	failSave bool
}

func (p *stubPersister[T]) Load() ([]T, error) { return p.records, nil }

func (p *stubPersister[T]) Save(records []T) error {
	if p.failSave {
		return errors.New("disk full")
	}
	p.records = records
	p.saves++
	return nil
}
