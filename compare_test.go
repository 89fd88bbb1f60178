package treediff

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDifferingFiles(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "treediff_compare_test_*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	listPair := func(t *testing.T, root1, root2 string) (EntrySet, EntrySet) {
		t.Helper()
		entries1, err := ListTree(root1)
		if err != nil {
			t.Fatalf("Failed to list %s: %v", root1, err)
		}
		entries2, err := ListTree(root2)
		if err != nil {
			t.Fatalf("Failed to list %s: %v", root2, err)
		}
		return entries1, entries2
	}

	t.Run("IdenticalContent", func(t *testing.T) {
		root1 := filepath.Join(tmpDir, "same1")
		root2 := filepath.Join(tmpDir, "same2")
		writeTree(t, root1, map[string]string{"x.txt": "hello"})
		writeTree(t, root2, map[string]string{"x.txt": "hello"})

		entries1, entries2 := listPair(t, root1, root2)
		if differs := DifferingFiles(root1, entries1, root2, entries2); differs.Len() != 0 {
			t.Errorf("Identical files must not differ, got %v", differs.Paths())
		}
	})

	t.Run("DifferentContent", func(t *testing.T) {
		root1 := filepath.Join(tmpDir, "diff1")
		root2 := filepath.Join(tmpDir, "diff2")
		writeTree(t, root1, map[string]string{"x.txt": "hello"})
		writeTree(t, root2, map[string]string{"x.txt": "world"})

		entries1, entries2 := listPair(t, root1, root2)
		differs := DifferingFiles(root1, entries1, root2, entries2)
		if differs.Len() != 1 || !differs.Contains("x.txt") {
			t.Errorf("Expected exactly x.txt to differ, got %v", differs.Paths())
		}
	})

	t.Run("DifferentLength", func(t *testing.T) {
		root1 := filepath.Join(tmpDir, "len1")
		root2 := filepath.Join(tmpDir, "len2")
		writeTree(t, root1, map[string]string{"x.txt": "hello"})
		writeTree(t, root2, map[string]string{"x.txt": "hello there"})

		entries1, entries2 := listPair(t, root1, root2)
		if differs := DifferingFiles(root1, entries1, root2, entries2); !differs.Contains("x.txt") {
			t.Errorf("Prefix-equal files of different length must differ, got %v", differs.Paths())
		}
	})

	t.Run("ContentLargerThanBuffer", func(t *testing.T) {
		root1 := filepath.Join(tmpDir, "big1")
		root2 := filepath.Join(tmpDir, "big2")
		common := strings.Repeat("a", 100)
		writeTree(t, root1, map[string]string{
			"equal.bin": common,
			"tail.bin":  common + "x",
		})
		writeTree(t, root2, map[string]string{
			"equal.bin": common,
			"tail.bin":  common + "y",
		})

		entries1, entries2 := listPair(t, root1, root2)
		differs := DifferingFiles(root1, entries1, root2, entries2, WithBufferSize(16))
		if differs.Contains("equal.bin") {
			t.Error("Equal multi-buffer file reported as differing")
		}
		if !differs.Contains("tail.bin") {
			t.Error("Difference past the first buffer not detected")
		}
	})

	t.Run("NonPositiveBufferSizeIgnored", func(t *testing.T) {
		root1 := filepath.Join(tmpDir, "buf1")
		root2 := filepath.Join(tmpDir, "buf2")
		writeTree(t, root1, map[string]string{"same.txt": "hello", "other.txt": "aaa"})
		writeTree(t, root2, map[string]string{"same.txt": "hello", "other.txt": "bbb"})

		entries1, entries2 := listPair(t, root1, root2)
		for _, size := range []int{0, -1} {
			differs := DifferingFiles(root1, entries1, root2, entries2, WithBufferSize(size))
			if differs.Contains("same.txt") {
				t.Errorf("Buffer size %d: equal files reported as differing", size)
			}
			if !differs.Contains("other.txt") {
				t.Errorf("Buffer size %d: differing files not detected", size)
			}
		}
	})

	t.Run("OnlyIntersectionInspected", func(t *testing.T) {
		root1 := filepath.Join(tmpDir, "inter1")
		root2 := filepath.Join(tmpDir, "inter2")
		writeTree(t, root1, map[string]string{"shared.txt": "s", "solo1.txt": "1"})
		writeTree(t, root2, map[string]string{"shared.txt": "s", "solo2.txt": "2"})

		entries1, entries2 := listPair(t, root1, root2)
		differs := DifferingFiles(root1, entries1, root2, entries2)
		if differs.Contains("solo1.txt") || differs.Contains("solo2.txt") {
			t.Errorf("Paths unique to one side must never be inspected, got %v", differs.Paths())
		}
	})

	t.Run("DirectoryMarkersSkipped", func(t *testing.T) {
		root1 := filepath.Join(tmpDir, "dirs1")
		root2 := filepath.Join(tmpDir, "dirs2")
		writeTree(t, root1, map[string]string{"sub/f.txt": "f"})
		writeTree(t, root2, map[string]string{"sub/f.txt": "f"})

		entries1, entries2 := listPair(t, root1, root2)
		if differs := DifferingFiles(root1, entries1, root2, entries2); differs.Contains("sub/") {
			t.Errorf("Directory markers must never be compared, got %v", differs.Paths())
		}
	})

	t.Run("TypeChangedSinceListingTolerated", func(t *testing.T) {
		root1 := filepath.Join(tmpDir, "racy1")
		root2 := filepath.Join(tmpDir, "racy2")
		writeTree(t, root1, map[string]string{"morph": "was a file"})
		if err := os.MkdirAll(filepath.Join(root2, "morph"), 0755); err != nil {
			t.Fatalf("Failed to create dir: %v", err)
		}

		// Simulate an entry whose type changed between listing and
		// comparison: both sets claim "morph" is a file.
		entries := EntrySet{"morph": true}
		if differs := DifferingFiles(root1, entries, root2, entries); differs.Len() != 0 {
			t.Errorf("Type change since listing must be silently tolerated, got %v", differs.Paths())
		}
	})

	t.Run("VanishedSinceListingTolerated", func(t *testing.T) {
		root1 := filepath.Join(tmpDir, "gone1")
		root2 := filepath.Join(tmpDir, "gone2")
		writeTree(t, root1, map[string]string{"ghost.txt": "boo"})
		writeTree(t, root2, map[string]string{"other.txt": "x"})

		entries := EntrySet{"ghost.txt": true}
		if differs := DifferingFiles(root1, entries, root2, entries); differs.Len() != 0 {
			t.Errorf("A vanished entry must be silently tolerated, got %v", differs.Paths())
		}
	})
}
