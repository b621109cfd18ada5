package rope

import "testing"

// FuzzFromString tests rope creation from arbitrary strings.
func FuzzFromString(f *testing.F) {
	f.Add("")
	f.Add("hello")
	f.Add("hello\nworld")
	f.Add("日本語")
	f.Add("\x00\x01\x02")

	f.Fuzz(func(t *testing.T, s string) {
		r := FromString(s)

		if r.Len() != len(s) {
			t.Errorf("length mismatch: got %d, want %d", r.Len(), len(s))
		}
		if r.String() != s {
			t.Error("content mismatch")
		}
		if !r.IsBalanced() {
			t.Error("built tree should be balanced")
		}
	})
}

// FuzzInsert tests insert against string splicing.
func FuzzInsert(f *testing.F) {
	f.Add("hello", 0, "x")
	f.Add("hello", 5, "x")
	f.Add("hello", 3, "world")
	f.Add("", 0, "test")
	f.Add("日本語", 3, "x")

	f.Fuzz(func(t *testing.T, initial string, offset int, insert string) {
		r := FromString(initial)

		if offset < 0 || offset > len(initial) {
			if err := r.Insert(offset, insert); err == nil {
				t.Errorf("expected error for offset %d", offset)
			}
			if r.String() != initial {
				t.Error("failed insert mutated the rope")
			}
			return
		}

		if err := r.Insert(offset, insert); err != nil {
			t.Fatalf("Insert(%d): %v", offset, err)
		}
		expected := initial[:offset] + insert + initial[offset:]
		if r.String() != expected {
			t.Errorf("insert mismatch at offset %d", offset)
		}
	})
}

// FuzzDelete tests delete against string splicing.
func FuzzDelete(f *testing.F) {
	f.Add("hello world", 0, 5)
	f.Add("hello world", 6, 11)
	f.Add("hello world", 5, 6)
	f.Add("日本語", 0, 3)

	f.Fuzz(func(t *testing.T, initial string, start, end int) {
		r := FromString(initial)

		if start == end {
			if err := r.Delete(start, end); err != nil {
				t.Errorf("Delete(%d, %d) must be a no-op, got %v", start, end, err)
			}
			if r.String() != initial {
				t.Error("no-op delete mutated the rope")
			}
			return
		}

		if start < 0 || end > len(initial) || start > end {
			if err := r.Delete(start, end); err == nil {
				t.Errorf("expected error for range [%d, %d)", start, end)
			}
			if r.String() != initial {
				t.Error("failed delete mutated the rope")
			}
			return
		}

		if err := r.Delete(start, end); err != nil {
			t.Fatalf("Delete(%d, %d): %v", start, end, err)
		}
		expected := initial[:start] + initial[end:]
		if r.String() != expected {
			t.Errorf("delete mismatch: range [%d, %d)", start, end)
		}
	})
}

// FuzzSlice tests sub-range extraction and content stability.
func FuzzSlice(f *testing.F) {
	f.Add("hello world", 0, 5)
	f.Add("hello world", 6, 11)
	f.Add("hello world", 0, 11)
	f.Add("日本語", 0, 3)

	f.Fuzz(func(t *testing.T, s string, start, end int) {
		r := FromString(s)

		if start < 0 || end > len(s) || start > end {
			if _, err := r.Slice(start, end); err == nil {
				t.Errorf("expected error for range [%d, %d)", start, end)
			}
			return
		}

		got, err := r.Slice(start, end)
		if err != nil {
			t.Fatalf("Slice(%d, %d): %v", start, end, err)
		}
		if got != s[start:end] {
			t.Errorf("slice mismatch: range [%d, %d)", start, end)
		}
		if r.String() != s {
			t.Error("Slice changed the rope's content")
		}
	})
}

// FuzzOperationSequence applies a short edit sequence and checks the rope
// against a reference string.
func FuzzOperationSequence(f *testing.F) {
	f.Add("hello", 0, 0, 5, "x")
	f.Add("hello", 1, 0, 3, "")
	f.Add("hello", 2, 1, 4, "abc")

	f.Fuzz(func(t *testing.T, initial string, op int, pos1, pos2 int, text string) {
		r := FromString(initial)
		ref := initial

		// Clamp positions into range so every op is valid.
		if pos1 < 0 {
			pos1 = 0
		}
		if pos1 > len(ref) {
			pos1 = len(ref)
		}
		if pos2 < pos1 {
			pos2 = pos1
		}
		if pos2 > len(ref) {
			pos2 = len(ref)
		}

		switch ((op % 3) + 3) % 3 {
		case 0:
			if err := r.Insert(pos1, text); err != nil {
				t.Fatalf("Insert: %v", err)
			}
			ref = ref[:pos1] + text + ref[pos1:]
		case 1:
			if err := r.Delete(pos1, pos2); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			ref = ref[:pos1] + ref[pos2:]
		case 2:
			got, err := r.Slice(pos1, pos2)
			if err != nil {
				t.Fatalf("Slice: %v", err)
			}
			if got != ref[pos1:pos2] {
				t.Error("slice mismatch")
			}
		}

		if r.String() != ref {
			t.Error("rope diverged from reference")
		}
		if r.Len() != len(ref) {
			t.Errorf("length mismatch: Len()=%d, want %d", r.Len(), len(ref))
		}
	})
}
