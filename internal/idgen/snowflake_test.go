package idgen

import "testing"

func TestNew_Unique(t *testing.T) {
	if err := Init(1); err != nil {
		t.Fatalf("init: %v", err)
	}
	seen := make(map[int64]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := New()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id: %d", id)
		}
		seen[id] = struct{}{}
	}
}

func TestInit_InvalidNode(t *testing.T) {
	if err := Init(1024); err == nil {
		t.Errorf("node id 1024 should be rejected")
	}
}
