// Copyright (c) 2026 randomLevelup
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCanon(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c int
		want    triKey
	}{
		{"already canonical", 0, 1, 2, triKey{0, 1, 2}},
		{"rotate once", 1, 2, 0, triKey{0, 1, 2}},
		{"rotate twice", 2, 0, 1, triKey{0, 1, 2}},
		{"preserves cycle", 5, 3, 8, triKey{3, 8, 5}},
		{"sentinel leads", 4, sentinelLow, sentinelHigh, triKey{sentinelLow, sentinelHigh, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canon(tt.a, tt.b, tt.c); got != tt.want {
				t.Errorf("canon(%d, %d, %d) = %v, want %v", tt.a, tt.b, tt.c, got, tt.want)
			}
		})
	}
}

func TestTriKeyHasSentinel(t *testing.T) {
	if canon(0, 1, 2).hasSentinel() {
		t.Error("hasSentinel() = true for all-real triangle")
	}
	if !canon(0, 1, sentinelHigh).hasSentinel() {
		t.Error("hasSentinel() = false for sentinel triangle")
	}
}

func sortedKeys(keys []triKey) []triKey {
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})
	return keys
}

func TestHistory_SplitAndFlip(t *testing.T) {
	h := newHistory()
	root := canon(0, 1, 2)
	h.addRoot(root)

	if diff := cmp.Diff([]triKey{root}, sortedKeys(h.leaves())); diff != "" {
		t.Fatalf("leaves() after addRoot mismatch (-want +got):\n%s", diff)
	}

	// Split the root into three triangles around vertex 3.
	k1, k2, k3 := canon(0, 1, 3), canon(1, 2, 3), canon(2, 0, 3)
	h.addChildren(root, k1, k2, k3)

	if h.hasChildren(k1) {
		t.Errorf("hasChildren(%v) = true for fresh leaf", k1)
	}
	if !h.hasChildren(root) {
		t.Error("hasChildren(root) = false after split")
	}
	if diff := cmp.Diff([]triKey{k1, k2, k3}, h.children(root)); diff != "" {
		t.Errorf("children(root) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(sortedKeys([]triKey{k1, k2, k3}), sortedKeys(h.leaves())); diff != "" {
		t.Errorf("leaves() after split mismatch (-want +got):\n%s", diff)
	}

	// Flip shared by two parents: both point at the same two children.
	f1, f2 := canon(1, 2, 4), canon(3, 4, 2)
	h.addChildren(k2, f1, f2)
	h.addChildren(canon(2, 1, 4), f1, f2)

	if diff := cmp.Diff([]triKey{f1, f2}, h.children(k2)); diff != "" {
		t.Errorf("children after flip mismatch (-want +got):\n%s", diff)
	}
	want := sortedKeys([]triKey{k1, k3, f1, f2})
	if diff := cmp.Diff(want, sortedKeys(h.leaves())); diff != "" {
		t.Errorf("leaves() after flip mismatch (-want +got):\n%s", diff)
	}
}

func TestHistory_SharedChildRegisteredOnce(t *testing.T) {
	h := newHistory()
	p1, p2 := canon(0, 1, 2), canon(1, 0, 3)
	h.addRoot(p1)
	h.addChildren(p1, canon(0, 4, 2))

	shared := canon(1, 4, 3)
	h.addChildren(p1, shared)
	h.addChildren(p2, shared)

	if h.hasChildren(shared) {
		t.Errorf("hasChildren(%v) = true, shared child gained children", shared)
	}
	if got := len(h.children(p1)); got != 2 {
		t.Errorf("len(children(p1)) = %d, want 2", got)
	}
	if got := len(h.children(p2)); got != 1 {
		t.Errorf("len(children(p2)) = %d, want 1", got)
	}
}
