package papergen

import "testing"

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `[{"text":"q"}]`, `[{"text":"q"}]`},
		{"bare fence", "```\n[1,2]\n```", "[1,2]"},
		{"language tag", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{}\n```  \n", "{}"},
		{"fence without newline", "```", ""},
		{"fence only opening", "```json\n{\"a\":1}", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFence(tt.in); got != tt.want {
				t.Fatalf("stripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripCodeFence_Reproducible(t *testing.T) {
	in := "```json\n[{\"text\":\"What is $O(n)$?\"}]\n```"
	first := stripCodeFence(in)
	for range 5 {
		if got := stripCodeFence(in); got != first {
			t.Fatal("sanitization must be bit-for-bit reproducible")
		}
	}
}

func TestSanitizeSubjective(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Define a binary tree.", "Define a binary tree."},
		{"double quotes", `"Define a binary tree."`, "Define a binary tree."},
		{"single quotes", "'Define a binary tree.'", "Define a binary tree."},
		{"bold pairs", "Define a **binary tree** and its **height**.", "Define a binary tree and its height."},
		{"quoted and bold", `"**Define** a binary tree."`, "Define a binary tree."},
		{"only leading quote kept", `"unbalanced`, `"unbalanced`},
		{"fenced", "```\nDefine a heap.\n```", "Define a heap."},
		{"inner quotes survive", `Explain the "big-O" notation.`, `Explain the "big-O" notation.`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeSubjective([]byte(tt.in)); got != tt.want {
				t.Fatalf("sanitizeSubjective(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
