package archipelago

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		relPath string
		want    string
	}{
		{"root index", "/index.ts", "/"},
		{"bare root index", "index.yaml", "/"},
		{"plain file", "/about.ts", "/about"},
		{"directory index", "/admin/index.ts", "/admin"},
		{"nested param index", "/admin/orders/[id]/index.ts", "/admin/orders/:id"},
		{"catch-all", "/admin/[...].ts", "/admin/*"},
		{"catch-all without extension", "/admin/[...]", "/admin/*"},
		{"named param file", "/users/[userId].yaml", "/users/:userId"},
		{"multiple params", "/users/[userId]/posts/[postId].ts", "/users/:userId/posts/:postId"},
		{"anonymous params", "/files/[]/[].ts", "/files/:_0/:_1"},
		{"mixed segment", "/reports/q-[quarter].json", "/reports/q-:quarter"},
		{"index prefix", "/admin/index.route", "/admin"},
		{"index-like name", "/admin/indexer.ts", "/admin"},
		{"dotted directory keeps its name", "/api/v1.2/index.ts", "/api/v1.2"},
		{"double extension", "/orders/list.test.ts", "/orders/list.test"},
		{"windows separators", `\admin\orders\[id]\index.ts`, "/admin/orders/:id"},
		{"no leading slash", "admin/orders.ts", "/admin/orders"},
		{"unbalanced bracket passes through", "/odd/[id.ts", "/odd/[id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compile(tt.relPath))
		})
	}
}

func TestCompile_Deterministic(t *testing.T) {
	inputs := []string{"/admin/[...].ts", "/a/[]/b/[]/index.ts", "/admin/orders/[id]/index.ts"}
	for _, in := range inputs {
		assert.Equal(t, Compile(in), Compile(in), in)
	}
}

func TestCompile_IndexNeverAddsTrailingSegment(t *testing.T) {
	for _, dir := range []string{"/admin", "/admin/orders", "/admin/orders/[id]"} {
		route := Compile(dir + "/index.ts")
		assert.NotContains(t, route, "index")
		assert.Equal(t, Compile(dir+".ts"), route)
	}
}
