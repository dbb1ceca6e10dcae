// internal/catalog/catalog_test.go
package catalog

import (
	"bytes"
	"testing"

	"github.com/mwiater/forge/internal/console"
	"github.com/mwiater/forge/internal/ollama"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		want Bucket
	}{
		{"qwen2.5:0.5b", Tiny},
		{"llama3.2:1b", Tiny},
		{"gemma:2b", Tiny},
		{"phi3:mini", Tiny},
		{"llama3.2:3b", Small},
		{"llama3.1:7b", Small},
		{"llama3.3:70b", Large},
		{"mixtral:8x22b", Large},
		{"some-model:latest", Large},
		// "mini" beats "3b" because tiny markers are checked first.
		{"mini3b", Tiny},
		// Name matching is case-insensitive.
		{"Phi3:MINI", Tiny},
	}
	for _, tc := range cases {
		if got := Classify(tc.name); got != tc.want {
			t.Errorf("Classify(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestBucketLabels(t *testing.T) {
	if Tiny.Label() == Small.Label() || Small.Label() == Large.Label() {
		t.Error("bucket labels must be distinct")
	}
}

func TestSortOrdersBucketsAndPreservesInventoryOrder(t *testing.T) {
	records := []ollama.ModelRecord{
		{Name: "llama3.3:70b"},
		{Name: "qwen2.5:0.5b"},
		{Name: "llama3.1:7b"},
		{Name: "gemma:2b"},
		{Name: "llama3.2:3b"},
	}

	ordered := Sort(records)
	want := []string{"qwen2.5:0.5b", "gemma:2b", "llama3.1:7b", "llama3.2:3b", "llama3.3:70b"}
	if len(ordered) != len(want) {
		t.Fatalf("Sort returned %d records, want %d", len(ordered), len(want))
	}
	for i, name := range want {
		if ordered[i].Name != name {
			t.Errorf("ordered[%d] = %q, want %q", i, ordered[i].Name, name)
		}
	}
}

func TestRenderReturnsDisplayOrder(t *testing.T) {
	records := []ollama.ModelRecord{
		{Name: "llama3.3:70b", Size: "42GB"},
		{Name: "llama3.2:1b", Size: "1.3GB"},
	}

	out := &bytes.Buffer{}
	ordered := Render(console.New(out), records)
	if len(ordered) != 2 {
		t.Fatalf("Render returned %d records, want 2", len(ordered))
	}
	if ordered[0].Name != "llama3.2:1b" || ordered[1].Name != "llama3.3:70b" {
		t.Errorf("display order wrong: %v, %v", ordered[0].Name, ordered[1].Name)
	}
	if out.Len() == 0 {
		t.Error("Render produced no output")
	}
}
