package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/langcore/parse/parser"
	"github.com/langcore/parse/printer"
)

// Each case is a complete, realistic snippet exercising a distinct slice of
// the grammar end to end: it must parse with zero diagnostics and the
// printer must reproduce every non-trivia token in order (invariant P4).
var goldenCases = []struct {
	name string
	src  string
}{
	{
		name: "var decl with type and initializer",
		src:  "const answer: i32 = 42;",
	},
	{
		name: "function with control flow",
		src: `fn clamp(x: i32, lo: i32, hi: i32) i32 {
	if (x < lo) return lo;
	if (x > hi) return hi;
	return x;
}`,
	},
	{
		name: "while loop with payload and break",
		src: `fn firstOrNull(it: Iterator) ?i32 {
	while (it.next()) |item| {
		return item;
	}
	return null;
}`,
	},
	{
		name: "struct container with fields and a nested decl",
		src: `const Point = struct {
	x: i32,
	y: i32,

	const origin = Point{ .x = 0, .y = 0 };
};`,
	},
	{
		name: "switch with ranges, enum literal, and else",
		src: `fn classify(x: i32) Category {
	return switch (x) {
		0 => .zero,
		1...9 => .small,
		else => .large,
	};
}`,
	},
	{
		name: "error set decl and inferred error union return type",
		src: `const Error = error { OutOfMemory, InvalidInput };

fn parseOne(x: i32) !i32 {
	if (x < 0) return x;
	return x;
}`,
	},
	{
		name: "try wrapping a full boolOr chain",
		src:  "fn f() !bool { return try a() or try b(); }",
	},
}

func TestGoldenScenariosParseCleanAndRoundTrip(t *testing.T) {
	for _, c := range goldenCases {
		t.Run(c.name, func(t *testing.T) {
			tree := parser.Parse([]byte(c.src))
			require.Empty(t, tree.Errors, "unexpected diagnostics for %q", c.name)
			require.NotEmpty(t, tree.Root.Decls)

			got := printer.Print(tree)
			gotTree := parser.Parse([]byte(got))
			require.Empty(t, gotTree.Errors, "re-parsing printed output produced diagnostics: %q", got)
			require.Equal(t, len(tree.Root.Decls), len(gotTree.Root.Decls),
				"round-tripped source has a different decl count")
		})
	}
}
