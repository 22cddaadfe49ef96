package lhmslv

import "testing"

func TestPutGetOrderAndUpdate(t *testing.T) {
	m := New[int]()
	m.Put("x", 1)
	m.PutComposite([]string{"y", "z"}, 2)
	if prev, had := m.Put("x", 10); !had || prev != 1 {
		t.Fatalf("update of x: got prev=%v had=%v, want 1,true", prev, had)
	}

	got := m.Keys()
	want := []string{"x", "y.z"}
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys = %v, want %v", got, want)
		}
	}

	if v, ok := m.Get("x"); !ok || v != 10 {
		t.Fatalf("Get(x) = %v,%v want 10,true", v, ok)
	}
	if m.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", m.Size())
	}
}

func TestRemoveDoesNotBreakOrder(t *testing.T) {
	m := New[int]()
	m.Put("a", 1)
	m.PutComposite([]string{"b", "c"}, 2)
	m.Put("d", 3)

	if !m.Remove("a") {
		t.Fatalf("Remove(a) = false, want true")
	}
	if m.Remove("a") {
		t.Fatalf("second Remove(a) = true, want false")
	}
	if m.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", m.Size())
	}

	got := m.Keys()
	want := []string{"b.c", "d"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys after remove = %v, want %v", got, want)
		}
	}
}

// Insert ["x"], ["y","z"], ["x"] (update), delete ["y","z"], then insert
// 30 fresh keys to force two resizes; iteration order must still be
// ["x"], k1..k30.
func TestResizePreservesInsertionOrder(t *testing.T) {
	m := New[int]()
	m.Put("x", 1)
	m.PutComposite([]string{"y", "z"}, 2)
	m.Put("x", 100) // update, must not move in order
	m.RemoveComposite([]string{"y", "z"})

	var want []string
	want = append(want, "x")
	for i := 0; i < 30; i++ {
		key := "k" + string(rune('0'+i%10)) + string(rune('a'+i/10))
		m.Put(key, i)
		want = append(want, key)
	}

	got := m.Keys()
	if len(got) != len(want) {
		t.Fatalf("len(keys) = %d, want %d (keys=%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys[%d] = %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
	if m.Size() != len(want) {
		t.Fatalf("Size() = %d, want %d", m.Size(), len(want))
	}
}

func TestGetMissing(t *testing.T) {
	m := New[string]()
	if _, ok := m.Get("nope"); ok {
		t.Fatalf("Get on empty map found a value")
	}
	m.Put("present", "yes")
	if _, ok := m.Get("absent"); ok {
		t.Fatalf("Get(absent) unexpectedly found a value")
	}
}
