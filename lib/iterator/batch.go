package iterator

import "fmt"

type batchIterator[T any] struct {
	iter Iterator[T]
	step int
}

// Batch returns an iterator that splits a list of items into batches of the given step size.
// The final batch may be smaller than the step size.
func Batch[T any](iter Iterator[T], step int) Iterator[[]T] {
	return &batchIterator[T]{
		iter: iter,
		step: max(step, 1),
	}
}

func (bi *batchIterator[T]) HasNext() bool {
	return bi.iter.HasNext()
}

func (bi *batchIterator[T]) Next() ([]T, error) {
	if !bi.HasNext() {
		return nil, fmt.Errorf("batch iterator has finished")
	}

	var buffer []T
	for bi.HasNext() {
		item, err := bi.iter.Next()
		if err != nil {
			return nil, err
		}
		buffer = append(buffer, item)
		if len(buffer) >= bi.step {
			break
		}
	}

	return buffer, nil
}

type fullBatchIterator[T any] struct {
	items []T
	index int
	step  int
}

// FullBatches returns an iterator that walks a slice in batches of exactly the step size.
// A trailing partial batch is discarded, so len(items) % step items at the end are never
// yielded.
func FullBatches[T any](items []T, step int) Iterator[[]T] {
	return &fullBatchIterator[T]{
		items: items,
		step:  max(step, 1),
	}
}

func (fi *fullBatchIterator[T]) HasNext() bool {
	return fi.index+fi.step <= len(fi.items)
}

func (fi *fullBatchIterator[T]) Next() ([]T, error) {
	if !fi.HasNext() {
		return nil, fmt.Errorf("batch iterator has finished")
	}
	result := fi.items[fi.index : fi.index+fi.step]
	fi.index += fi.step
	return result, nil
}
