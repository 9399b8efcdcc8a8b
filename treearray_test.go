package treearray

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEmptyTreeArray(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treearray")
	defer teardown()
	//
	ta := New[int]()
	if ta.Len() != 0 || !ta.IsEmpty() {
		t.Fatalf("expected empty tree array, len=%d", ta.Len())
	}
	if _, err := ta.At(0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected index error for At(0) on empty tree, got %v", err)
	}
	if ta.String() != "nil" {
		t.Errorf("expected 'nil' dump of empty tree, got %q", ta.String())
	}
	var zero TreeArray[string]
	if err := zero.InsertAt(0, "a"); err != nil {
		t.Errorf("zero value tree array should accept inserts, got %v", err)
	}
}

func TestInsertTreeArray(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treearray")
	defer teardown()
	//
	ta := New[int]()
	if err := ta.InsertAt(0, 1); err != nil {
		t.Fatal(err)
	}
	if err := ta.InsertAt(1, 2); err != nil {
		t.Fatal(err)
	}
	t.Logf("tree: %s", ta)
	v, err := ta.At(0)
	if err != nil {
		t.Fatalf("failed to access item at index 0: %v", err)
	}
	if v != 1 {
		t.Errorf("expected t[0] = 1, is %d", v)
	}
	t.Logf("tree: %s", ta)
	if ta.Len() != 2 {
		t.Errorf("expected len 2, is %d", ta.Len())
	}
	i := 1
	for _, e := range ta.All() {
		if e != i {
			t.Errorf("expected element %d, got %d", i, e)
		}
		i++
	}
}

func TestInsertShiftsRightHandValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treearray")
	defer teardown()
	//
	ta := FromSlice([]string{"a", "b", "d"})
	if err := ta.InsertAt(2, "c"); err != nil {
		t.Fatal(err)
	}
	if err := ta.InsertAt(0, "_"); err != nil {
		t.Fatal(err)
	}
	if err := ta.InsertAt(ta.Len(), "e"); err != nil {
		t.Fatal(err)
	}
	want := []string{"_", "a", "b", "c", "d", "e"}
	if diff := cmp.Diff(want, ta.Values()); diff != "" {
		t.Errorf("unexpected values (-want +got):\n%s", diff)
	}
	for i, w := range want {
		if v, err := ta.At(i); err != nil || v != w {
			t.Errorf("At(%d) = %q, %v; want %q", i, v, err, w)
		}
	}
	if err := ta.Check(); err != nil {
		t.Error(err)
	}
}

func TestInsertOutOfBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treearray")
	defer teardown()
	//
	ta := FromSlice([]int{1, 2, 3})
	for _, index := range []int{-1, 4, 100} {
		if err := ta.InsertAt(index, 0); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("InsertAt(%d): expected ErrIndexOutOfBounds, got %v", index, err)
		}
	}
	if ta.Len() != 3 {
		t.Errorf("failed inserts must not change length, len=%d", ta.Len())
	}
	var nilTree *TreeArray[int]
	if err := nilTree.InsertAt(0, 1); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for nil tree, got %v", err)
	}
}

func TestSetDoesNotShift(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treearray")
	defer teardown()
	//
	ta := FromSlice([]int{10, 20, 30, 40})
	old, err := ta.Set(2, 33)
	if err != nil {
		t.Fatal(err)
	}
	if old != 30 {
		t.Errorf("expected Set to return previous value 30, got %d", old)
	}
	if diff := cmp.Diff([]int{10, 20, 33, 40}, ta.Values()); diff != "" {
		t.Errorf("unexpected values (-want +got):\n%s", diff)
	}
	if _, err := ta.Set(4, 50); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Set beyond last position must fail, got %v", err)
	}
}

func TestDeleteAt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treearray")
	defer teardown()
	//
	ta := FromSlice([]int{0, 1, 2, 3, 4, 5})
	for _, tc := range []struct {
		index int
		value int
		rest  []int
	}{
		{3, 3, []int{0, 1, 2, 4, 5}},
		{0, 0, []int{1, 2, 4, 5}},
		{3, 5, []int{1, 2, 4}},
		{1, 2, []int{1, 4}},
	} {
		v, err := ta.DeleteAt(tc.index)
		if err != nil {
			t.Fatalf("DeleteAt(%d): %v", tc.index, err)
		}
		if v != tc.value {
			t.Errorf("DeleteAt(%d) = %d, want %d", tc.index, v, tc.value)
		}
		if diff := cmp.Diff(tc.rest, ta.Values()); diff != "" {
			t.Errorf("after DeleteAt(%d) (-want +got):\n%s", tc.index, diff)
		}
		if err := ta.Check(); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := ta.DeleteAt(2); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestEachStopsEarly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treearray")
	defer teardown()
	//
	ta := FromSlice([]int{5, 6, 7, 8})
	var seen []int
	ta.Each(func(i int, v int) bool {
		seen = append(seen, i)
		return v < 6
	})
	if diff := cmp.Diff([]int{0, 1}, seen); diff != "" {
		t.Errorf("unexpected positions (-want +got):\n%s", diff)
	}
}

func TestDebugDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treearray")
	defer teardown()
	//
	ta := New[int]()
	ta.Append(1, 2)
	// appending splays the last node, then puts the new value on top
	want := "[2 size=2] left=([1 size=1] left=(nil) right=(nil)) right=(nil)"
	if ta.String() != want {
		t.Errorf("unexpected dump:\n%s\nwant\n%s", ta.String(), want)
	}
}

// TestRandomEditsAgainstSlice runs a random sequence of edits against a
// tree array and a plain slice, comparing the results.
func TestRandomEditsAgainstSlice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treearray")
	defer teardown()
	//
	rnd := rand.New(rand.NewPCG(1, 2))
	ta := New[int]()
	var ref []int
	for step := range 3000 {
		switch op := rnd.IntN(10); {
		case op < 5:
			i := rnd.IntN(len(ref) + 1)
			ref = slices.Insert(ref, i, step)
			if err := ta.InsertAt(i, step); err != nil {
				t.Fatalf("step %d: InsertAt(%d): %v", step, i, err)
			}
		case op < 7 && len(ref) > 0:
			i := rnd.IntN(len(ref))
			want := ref[i]
			ref = slices.Delete(ref, i, i+1)
			got, err := ta.DeleteAt(i)
			if err != nil || got != want {
				t.Fatalf("step %d: DeleteAt(%d) = %d, %v; want %d", step, i, got, err, want)
			}
		case op < 8 && len(ref) > 0:
			i := rnd.IntN(len(ref))
			ref[i] = -step
			if _, err := ta.Set(i, -step); err != nil {
				t.Fatalf("step %d: Set(%d): %v", step, i, err)
			}
		case len(ref) > 0:
			i := rnd.IntN(len(ref))
			got, err := ta.At(i)
			if err != nil || got != ref[i] {
				t.Fatalf("step %d: At(%d) = %d, %v; want %d", step, i, got, err, ref[i])
			}
		}
		if ta.Len() != len(ref) {
			t.Fatalf("step %d: len = %d, want %d", step, ta.Len(), len(ref))
		}
	}
	if err := ta.Check(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(ref, ta.Values()); diff != "" {
		t.Errorf("final values differ (-want +got):\n%s", diff)
	}
}

func TestCheckDetectsSizeDrift(t *testing.T) {
	ta := FromSlice([]int{1, 2, 3})
	ta.root.left.size = 7 // corrupt on purpose
	err := ta.Check()
	if !errors.Is(err, ErrCorruptTree) {
		t.Fatalf("expected ErrCorruptTree, got %v", err)
	}
	if !strings.Contains(err.Error(), "position 0") {
		t.Errorf("expected error to name position 0, got %v", err)
	}
}

func TestTreeArray2Dot(t *testing.T) {
	ta := FromSlice([]string{"x", "y", "z", "w"})
	var buf bytes.Buffer
	if err := TreeArray2Dot(ta, &buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("not a DOT digraph:\n%s", dot)
	}
	for _, v := range []string{"x", "y", "z", "w"} {
		if !strings.Contains(dot, "label=\""+v+"\\n") {
			t.Errorf("expected node for %q in\n%s", v, dot)
		}
	}
	if ta.root.value != "z" {
		t.Errorf("DOT output must not splay the tree")
	}
}
