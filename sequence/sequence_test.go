package sequence

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func values(s Sequence[int]) []int {
	out := make([]int, 0, s.Len())
	for i := range s.Len() {
		v, err := s.At(i)
		if err != nil {
			panic(err)
		}
		out = append(out, v)
	}
	return out
}

func TestRegistryNames(t *testing.T) {
	want := []string{PersistentName, ListName, TreeName, VectorName}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("unexpected registry names (-want +got):\n%s", diff)
	}
	if _, err := Lookup("rope"); !errors.Is(err, ErrUnknownImplementation) {
		t.Errorf("expected ErrUnknownImplementation, got %v", err)
	}
}

func TestInsertSequences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treearray")
	defer teardown()
	//
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			seq, err := Filled(name, 0)
			if err != nil {
				t.Fatal(err)
			}
			if err := seq.InsertAt(0, 2); err != nil {
				t.Fatal(err)
			}
			if err := seq.InsertAt(0, 1); err != nil {
				t.Fatal(err)
			}
			if seq.Len() != 2 {
				t.Fatalf("expected len 2, got %d", seq.Len())
			}
			if diff := cmp.Diff([]int{1, 2}, values(seq)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestInsertAndSetAgree(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			seq, err := Filled(name, 10)
			if err != nil {
				t.Fatal(err)
			}
			steps := []struct {
				insert bool
				i, v   int
			}{
				{true, 5, 100},  // middle
				{true, 0, 101},  // front
				{true, 12, 102}, // end
				{false, 3, 103},
				{true, 7, 104},
				{false, 0, 105},
			}
			for _, s := range steps {
				if s.insert {
					err = seq.InsertAt(s.i, s.v)
				} else {
					err = seq.Set(s.i, s.v)
				}
				if err != nil {
					t.Fatalf("step %+v: %v", s, err)
				}
			}
			want := []int{105, 0, 1, 103, 3, 4, 100, 104, 5, 6, 7, 8, 9, 102}
			if diff := cmp.Diff(want, values(seq)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestOutOfBounds(t *testing.T) {
	for _, name := range Names() {
		seq, err := Filled(name, 3)
		if err != nil {
			t.Fatal(err)
		}
		if err := seq.InsertAt(4, 0); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("%s: InsertAt(4) expected ErrIndexOutOfBounds, got %v", name, err)
		}
		if err := seq.Set(3, 0); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("%s: Set(3) expected ErrIndexOutOfBounds, got %v", name, err)
		}
		if _, err := seq.At(-1); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("%s: At(-1) expected ErrIndexOutOfBounds, got %v", name, err)
		}
		if seq.Len() != 3 {
			t.Errorf("%s: failed edits changed length to %d", name, seq.Len())
		}
	}
}

func TestPersistentSnapshot(t *testing.T) {
	seq := NewPersistent([]int{1, 2, 3})
	snap := seq.Snapshot()
	if err := seq.InsertAt(1, 9); err != nil {
		t.Fatal(err)
	}
	if snap.Len() != 3 || seq.Len() != 4 {
		t.Errorf("snapshot must not see later edits: snap=%d seq=%d", snap.Len(), seq.Len())
	}
}
