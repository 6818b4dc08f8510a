package dataloader

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/seqtrain/loader/lib/iterator"
	"github.com/seqtrain/loader/lib/mtr"
)

var (
	ErrSizeMismatch     = fmt.Errorf("input and output corpus sizes do not match")
	ErrInvalidBatchSize = fmt.Errorf("batch size must be at least 1")
)

// Settings configures a [Loader]. The zero value is usable: a batch size of 0 defaults
// to 1 and the seed defaults to 0.
type Settings struct {
	BatchSize  int
	RandomSeed int64
	// InputDocs and OutputDocs, when both are set, replace the corpora stored in the
	// vocabularies. Setting only one side is a configuration error.
	InputDocs  [][]int
	OutputDocs [][]int
}

func (s *Settings) GenerateDefault() {
	if s.BatchSize == 0 {
		s.BatchSize = 1
	}
}

func (s *Settings) Validate() error {
	if s.BatchSize < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidBatchSize, s.BatchSize)
	}

	if (s.InputDocs == nil) != (s.OutputDocs == nil) {
		return fmt.Errorf("override docs must be set for both sides or neither")
	}

	return nil
}

type pair struct {
	input  []int
	output []int
}

// Loader walks a paired, pre-encoded corpus in a reproducibly shuffled order and yields
// padded tensor batches for seq2seq training. It owns private copies of the corpus, so
// callers' vocabularies and slices are never mutated.
type Loader struct {
	id        string
	batchSize int
	inputPad  int
	outputPad int
	pairs     []pair
	statsD    mtr.Client
}

// New pairs up the input and output corpora, shuffles them once with the configured
// seed and returns a loader ready for iteration. The same seed always yields the same
// order for the same corpus size. statsD may be nil to disable metrics.
func New(inputVocab, outputVocab Vocabulary, settings Settings, statsD mtr.Client) (*Loader, error) {
	settings.GenerateDefault()
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	inputDocs := inputVocab.EncodedDocs()
	outputDocs := outputVocab.EncodedDocs()
	if settings.InputDocs != nil {
		inputDocs = settings.InputDocs
		outputDocs = settings.OutputDocs
	}

	if len(inputDocs) != len(outputDocs) {
		return nil, fmt.Errorf("%w: %d input docs, %d output docs", ErrSizeMismatch, len(inputDocs), len(outputDocs))
	}

	inputDocs = copyDocs(inputDocs)
	outputDocs = copyDocs(outputDocs)

	pairs := make([]pair, len(inputDocs))
	for i := range pairs {
		pairs[i] = pair{input: inputDocs[i], output: outputDocs[i]}
	}

	r := rand.New(rand.NewSource(settings.RandomSeed))
	r.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})

	loader := &Loader{
		id:        uuid.New().String(),
		batchSize: settings.BatchSize,
		inputPad:  inputVocab.PadTokenID(),
		outputPad: outputVocab.PadTokenID(),
		pairs:     pairs,
		statsD:    statsD,
	}

	if len(pairs) == 0 {
		slog.Warn("Corpus is empty, loader will yield no batches", slog.String("loaderID", loader.id))
	} else {
		slog.Info("Data loader ready",
			slog.String("loaderID", loader.id),
			slog.Int("sentences", len(pairs)),
			slog.Int("batchSize", loader.batchSize),
			slog.Int64("seed", settings.RandomSeed),
			slog.Int("batches", loader.Len()),
		)
	}

	return loader, nil
}

// Size returns the number of sentence pairs in the corpus. A size of 0 is valid and
// simply means iteration yields nothing.
func (l *Loader) Size() int {
	return len(l.pairs)
}

// Len returns the number of batches one full iteration yields. The trailing
// Size() % batchSize sentences never fill a batch and are dropped.
func (l *Loader) Len() int {
	return len(l.pairs) / l.batchSize
}

// Batches returns a fresh iterator over the shuffled corpus. Every call restarts from
// the first sentence. Batches are materialized copy-on-pad, so iterating multiple
// times (or concurrently over separate iterators) never corrupts the corpus.
func (l *Loader) Batches() iterator.Iterator[Batch] {
	return &batchMaterializer{
		loader: l,
		chunks: iterator.FullBatches(l.pairs, l.batchSize),
	}
}
