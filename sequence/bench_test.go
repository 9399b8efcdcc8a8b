package sequence

import (
	"testing"
)

const million = 1_000_000

func benchInsert(b *testing.B, name string, position func(n int) int) {
	seq, err := Filled(name, million)
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		if err := seq.InsertAt(position(seq.Len()), 1); err != nil {
			b.Fatal(err)
		}
	}
	b.StopTimer()
	v, _ := seq.At(0)
	b.Logf("%s[0] = %d", name, v)
}

func front(int) int    { return 0 }
func middle(n int) int { return n / 2 }

// Insert a number at the start of the vector, causing maximal harm to speed.
func BenchmarkInsertVector(b *testing.B) {
	benchInsert(b, VectorName, front)
}

// The worst case for a list is insertion at the middle.
// The start and end are easily accessible in a doubly-linked list.
func BenchmarkInsertList(b *testing.B) {
	benchInsert(b, ListName, middle)
}

func BenchmarkInsertTreeArrayFront(b *testing.B) {
	benchInsert(b, TreeName, front)
}

func BenchmarkInsertTreeArrayMiddle(b *testing.B) {
	benchInsert(b, TreeName, middle)
}

func BenchmarkInsertBTreeMiddle(b *testing.B) {
	benchInsert(b, PersistentName, middle)
}
