package mlset

import (
	"math/rand"
	"time"

	"github.com/nlpodyssey/spago/pkg/mat"
)

// DataSet iterates the rows of a constructed Set in batches, optionally in
// random order, and can split them into disjoint subsets. It serves the
// consumers of the matrices; construction itself never reorders rows.
//
// Rand drives the random order and the splits. The constructors seed it;
// replace it with a fixed-seed source for reproducible shuffles.
type DataSet struct {
	Set          *Set
	BatchSize    int
	Rand         *rand.Rand
	dataIndices  []int
	currentOrder []int
	currentIndex int
}

type DatasetOrder int

const (
	OriginalOrder DatasetOrder = iota
	RandomOrder
)

func NewDataSet(set *Set, batchSize int) *DataSet {
	dataIndices := make([]int, set.Input.Rows())
	for i := range dataIndices {
		dataIndices[i] = i
	}
	ds := &DataSet{Set: set, BatchSize: batchSize, Rand: newRand(), dataIndices: dataIndices}
	ds.ResetOrder(OriginalOrder)
	return ds
}

func newDataSetSplit(set *Set, batchSize int, indices []int) *DataSet {
	ds := &DataSet{Set: set, BatchSize: batchSize, Rand: newRand(), dataIndices: indices}
	ds.ResetOrder(OriginalOrder)
	return ds
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func (d *DataSet) ResetOrder(order DatasetOrder) {
	if d.currentOrder == nil {
		d.currentOrder = make([]int, len(d.dataIndices))
	}
	switch order {
	case OriginalOrder:
		copy(d.currentOrder, d.dataIndices)
	case RandomOrder:
		ind := d.Rand.Perm(len(d.currentOrder))
		for i := range ind {
			d.currentOrder[i] = d.dataIndices[ind[i]]
		}
	}
	d.currentIndex = 0
}

// Next returns the row indices of the next batch, at most BatchSize of
// them. An empty result means the pass is done.
func (d *DataSet) Next() []int {
	batch := make([]int, 0, d.BatchSize)
	for ; d.currentIndex < len(d.currentOrder) && len(batch) < d.BatchSize; d.currentIndex++ {
		batch = append(batch, d.currentOrder[d.currentIndex])
	}
	return batch
}

func (d *DataSet) Size() int {
	return len(d.dataIndices)
}

// Batch materializes the given rows of both matrices, keeping them
// aligned.
func (d *DataSet) Batch(rows []int) (input, target *mat.Dense) {
	return selectRows(d.Set.Input, rows), selectRows(d.Set.Target, rows)
}

// RandomSplit partitions the rows into disjoint subsets of the given
// sizes, e.g. a train and a validation split.
func (d *DataSet) RandomSplit(sizes ...int) []*DataSet {
	indices := make([]int, len(d.dataIndices))
	copy(indices, d.dataIndices)
	d.Rand.Shuffle(len(indices), func(i, j int) {
		tmp := indices[i]
		indices[i] = indices[j]
		indices[j] = tmp
	})
	splits := make([]*DataSet, len(sizes))
	idx := 0
	for i := range sizes {
		splitIndices := make([]int, sizes[i])
		for j := range splitIndices {
			splitIndices[j] = indices[idx]
			idx++
		}
		splits[i] = newDataSetSplit(d.Set, d.BatchSize, splitIndices)
	}
	return splits
}
