package dataloader

import (
	"fmt"
	"time"

	"github.com/seqtrain/loader/lib/iterator"
	"github.com/seqtrain/loader/lib/tensor"
)

// Batch is one padded pair of tensors. Both sides are time-major: shape
// (max sequence length in batch, batch size), padded independently of each other.
type Batch struct {
	Input  *tensor.Tensor
	Output *tensor.Tensor
}

type batchMaterializer struct {
	loader *Loader
	chunks iterator.Iterator[[]pair]
}

func (bm *batchMaterializer) HasNext() bool {
	return bm.chunks.HasNext()
}

func (bm *batchMaterializer) Next() (Batch, error) {
	start := time.Now()

	chunk, err := bm.chunks.Next()
	if err != nil {
		return Batch{}, err
	}

	batch, padRatio, err := materialize(chunk, bm.loader.inputPad, bm.loader.outputPad)
	if err != nil {
		return Batch{}, fmt.Errorf("failed to materialize batch: %w", err)
	}

	if statsD := bm.loader.statsD; statsD != nil {
		statsD.Incr("dataloader.batch", nil)
		statsD.Count("dataloader.sentences", int64(len(chunk)), nil)
		statsD.Gauge("dataloader.padding_ratio", padRatio, nil)
		statsD.Timing("dataloader.materialize", time.Since(start), nil)
	}

	return batch, nil
}

// materialize pads each side of the chunk up to its own max length, then transposes
// both so sequence position becomes the leading dimension. It builds fresh slices
// rather than padding in place, so the loader's corpus stays untouched. Also returns
// the fraction of tensor cells that are padding.
func materialize(chunk []pair, inputPad, outputPad int) (Batch, float64, error) {
	var inputMaxLen, outputMaxLen int
	for _, p := range chunk {
		inputMaxLen = max(inputMaxLen, len(p.input))
		outputMaxLen = max(outputMaxLen, len(p.output))
	}

	var padded int
	inputRows := make([][]int, len(chunk))
	outputRows := make([][]int, len(chunk))
	for i, p := range chunk {
		inputRows[i] = padDoc(p.input, inputMaxLen, inputPad)
		outputRows[i] = padDoc(p.output, outputMaxLen, outputPad)
		padded += (inputMaxLen - len(p.input)) + (outputMaxLen - len(p.output))
	}

	inputTensor, err := tensor.FromRows(inputRows)
	if err != nil {
		return Batch{}, 0, err
	}

	outputTensor, err := tensor.FromRows(outputRows)
	if err != nil {
		return Batch{}, 0, err
	}

	var padRatio float64
	if cells := (inputMaxLen + outputMaxLen) * len(chunk); cells > 0 {
		padRatio = float64(padded) / float64(cells)
	}

	return Batch{
		Input:  inputTensor.Transpose(),
		Output: outputTensor.Transpose(),
	}, padRatio, nil
}

// padDoc returns a copy of doc extended to length by appending the pad token after the
// final token.
func padDoc(doc []int, length, padToken int) []int {
	result := make([]int, length)
	copy(result, doc)
	for i := len(doc); i < length; i++ {
		result[i] = padToken
	}
	return result
}
